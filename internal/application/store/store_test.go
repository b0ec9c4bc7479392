package store

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/admin-console-api/internal/domain"
	"github.com/jhoicas/admin-console-api/internal/domain/entity"
	"github.com/jhoicas/admin-console-api/internal/domain/repository"
	"github.com/jhoicas/admin-console-api/internal/infrastructure/localstore"
	"github.com/jhoicas/admin-console-api/pkg/logger"
)

func newTestStore(t *testing.T) (*Store, *localstore.MemoryStore) {
	t.Helper()
	kv := localstore.NewMemory()
	s, err := Open(kv, logger.Nop())
	require.NoError(t, err)
	return s, kv
}

func TestOpen_SlotsVaciosAplicanSemilla(t *testing.T) {
	s, kv := newTestStore(t)

	// Las dos colecciones arrancan con la semilla documentada
	assert.Len(t, s.Products(), 3)
	assert.Len(t, s.Users(), 3)
	assert.Equal(t, "iPhone 15 Pro Max", s.Products()[0].Name)
	assert.Equal(t, "Aji Prasetia", s.Users()[0].Name)

	// Y la semilla quedó persistida en sus slots
	raw, ok, err := kv.Get(repository.KeyProducts)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []entity.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Len(t, persisted, 3)
}

func TestOpen_SlotCorruptoCaeASemilla(t *testing.T) {
	kv := localstore.NewMemoryWith(map[string]string{
		repository.KeyProducts: "{esto no es json",
	})

	s, err := Open(kv, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, s.Products(), 3)

	// El slot corrupto fue sobrescrito con la semilla válida
	raw, ok, _ := kv.Get(repository.KeyProducts)
	require.True(t, ok)
	var persisted []entity.Product
	assert.NoError(t, json.Unmarshal([]byte(raw), &persisted))
}

func TestOpen_SlotExistenteSeRespeta(t *testing.T) {
	existing := []entity.Product{{
		ID:     "p-1",
		Name:   "Monitor 4K",
		Price:  decimal.NewFromInt(350),
		Stock:  12,
		Status: entity.ProductStatusActive,
	}}
	raw, err := json.Marshal(existing)
	require.NoError(t, err)

	kv := localstore.NewMemoryWith(map[string]string{
		repository.KeyProducts: string(raw),
	})
	s, err := Open(kv, logger.Nop())
	require.NoError(t, err)

	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Monitor 4K", products[0].Name)
	assert.True(t, decimal.NewFromInt(350).Equal(products[0].Price))
}

func TestRoundTrip_ReabrirConservaLaColeccion(t *testing.T) {
	s, kv := newTestStore(t)

	require.NoError(t, s.PrependProduct(entity.Product{
		ID:    "nuevo",
		Name:  "Teclado Mecánico",
		Price: decimal.NewFromInt(89),
		Stock: 30,
	}))

	// Reabrir sobre el mismo KV reproduce la colección byte a byte
	reopened, err := Open(kv, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, s.Products(), reopened.Products())
	assert.Equal(t, "nuevo", reopened.Products()[0].ID)
}

func TestPrependProduct_InsertaAlInicio(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.PrependProduct(entity.Product{ID: "a", Name: "A"}))
	require.NoError(t, s.PrependProduct(entity.Product{ID: "b", Name: "B"}))

	products := s.Products()
	assert.Equal(t, "b", products[0].ID)
	assert.Equal(t, "a", products[1].ID)
	assert.Len(t, products, 5)
}

func TestUpdateProduct_IDyCreatedAtInmutables(t *testing.T) {
	s, _ := newTestStore(t)
	original, ok := s.FindProduct("1")
	require.True(t, ok)

	updated, err := s.UpdateProduct("1", func(p *entity.Product) {
		p.Name = "Renombrado"
		p.ID = "hackeado"
		p.CreatedAt = original.CreatedAt.AddDate(1, 0, 0)
	})
	require.NoError(t, err)

	assert.Equal(t, "Renombrado", updated.Name)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
}

func TestUpdateProduct_NoEncontrado(t *testing.T) {
	s, kv := newTestStore(t)
	before, _, _ := kv.Get(repository.KeyProducts)

	_, err := s.UpdateProduct("no-existe", func(p *entity.Product) { p.Name = "x" })
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Nada cambió, ni en memoria ni en el slot
	after, _, _ := kv.Get(repository.KeyProducts)
	assert.Equal(t, before, after)
}

func TestDeleteProduct(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.DeleteProduct("2"))
	_, ok := s.FindProduct("2")
	assert.False(t, ok)
	assert.Len(t, s.Products(), 2)

	assert.ErrorIs(t, s.DeleteProduct("2"), domain.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.DeleteUser("3"))
	assert.Len(t, s.Users(), 2)
	assert.ErrorIs(t, s.DeleteUser("3"), domain.ErrNotFound)
}

func TestProducts_DevuelveCopia(t *testing.T) {
	s, _ := newTestStore(t)

	snapshot := s.Products()
	snapshot[0].Name = "mutado por el caller"

	assert.NotEqual(t, "mutado por el caller", s.Products()[0].Name)
}

func TestPrecioSeSerializaComoNumeroJSON(t *testing.T) {
	_, kv := newTestStore(t)

	raw, ok, err := kv.Get(repository.KeyProducts)
	require.NoError(t, err)
	require.True(t, ok)

	// El precio viaja como número JSON, no como string
	assert.Contains(t, raw, `"price":1199`)
	assert.NotContains(t, raw, `"price":"1199"`)
}
