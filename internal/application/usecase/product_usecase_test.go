package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/admin-console-api/internal/application/dto"
	"github.com/jhoicas/admin-console-api/internal/application/notify"
	"github.com/jhoicas/admin-console-api/internal/application/store"
	"github.com/jhoicas/admin-console-api/internal/domain"
	"github.com/jhoicas/admin-console-api/internal/infrastructure/localstore"
	"github.com/jhoicas/admin-console-api/pkg/logger"
)

func newProductUC(t *testing.T) (*ProductUseCase, *notify.Channel) {
	t.Helper()
	st, err := store.Open(localstore.NewMemory(), logger.Nop())
	require.NoError(t, err)
	ch := notify.NewChannel(time.Minute)
	return NewProductUseCase(st, ch), ch
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestProductCreate(t *testing.T) {
	uc, ch := newProductUC(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:     "Test",
		Category: "Elektronik",
		Price:    decimal.NewFromInt(100),
		Stock:    5,
		Status:   "draft",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "Test", created.Name)

	// Más reciente primero: el nuevo producto encabeza el listado
	list := uc.List(dto.ProductFilter{})
	assert.Equal(t, 4, list.Total)
	assert.Equal(t, created.ID, list.Items[0].ID)

	// Y quedó el toast de éxito
	cur := ch.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Produk berhasil ditambahkan", cur.Message)
	assert.Equal(t, notify.SeveritySuccess, cur.Severity)
}

func TestProductCreate_IDsDistintos(t *testing.T) {
	uc, _ := newProductUC(t)

	a, err := uc.Create(dto.CreateProductRequest{Name: "A", Category: "Buku", Status: "active"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateProductRequest{Name: "B", Category: "Buku", Status: "active"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestProductUpdate_MergeParcial(t *testing.T) {
	uc, ch := newProductUC(t)
	before, err := uc.GetByID("1")
	require.NoError(t, err)

	updated, err := uc.Update("1", dto.UpdateProductRequest{
		Name:  strPtr("iPhone renombrado"),
		Stock: intPtr(99),
	})
	require.NoError(t, err)

	// Solo cambian los campos enviados
	assert.Equal(t, "iPhone renombrado", updated.Name)
	assert.Equal(t, 99, updated.Stock)
	assert.Equal(t, before.Category, updated.Category)
	assert.True(t, before.Price.Equal(updated.Price))

	// ID y CreatedAt intactos
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)

	cur := ch.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Produk berhasil diperbarui", cur.Message)
}

func TestProductUpdate_NoEncontrado(t *testing.T) {
	uc, ch := newProductUC(t)

	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, ch.Current())
}

func TestProductDelete(t *testing.T) {
	uc, ch := newProductUC(t)

	require.NoError(t, uc.Delete("2", true))
	_, err := uc.GetByID("2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, uc.List(dto.ProductFilter{}).Total)

	cur := ch.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Produk berhasil dihapus", cur.Message)
}

func TestProductDelete_SinConfirmacionNoTocaNada(t *testing.T) {
	uc, ch := newProductUC(t)

	err := uc.Delete("2", false)
	assert.ErrorIs(t, err, domain.ErrConfirmRequired)

	// Cancelar un diálogo de confirmación no cambia el estado
	_, err = uc.GetByID("2")
	assert.NoError(t, err)
	assert.Nil(t, ch.Current())
}

func TestProductDelete_NoEncontrado(t *testing.T) {
	uc, _ := newProductUC(t)
	assert.ErrorIs(t, uc.Delete("no-existe", true), domain.ErrNotFound)
}

func TestProductList_Filtros(t *testing.T) {
	uc, _ := newProductUC(t)

	// Búsqueda por substring insensible a mayúsculas sobre name y category
	res := uc.List(dto.ProductFilter{Search: "iphone"})
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "iPhone 15 Pro Max", res.Items[0].Name)

	res = uc.List(dto.ProductFilter{Search: "ELEKTRONIK"})
	assert.Equal(t, 2, res.Total)

	// Filtro exacto de status; "all" y "" lo desactivan
	res = uc.List(dto.ProductFilter{Status: "draft"})
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Kaos Katun Organik", res.Items[0].Name)

	assert.Equal(t, 3, uc.List(dto.ProductFilter{Status: "all"}).Total)
	assert.Equal(t, 3, uc.List(dto.ProductFilter{}).Total)

	// Combinados
	res = uc.List(dto.ProductFilter{Search: "elektronik", Status: "active"})
	assert.Equal(t, 2, res.Total)

	// Sin coincidencias: lista vacía, no nil
	res = uc.List(dto.ProductFilter{Search: "zzz"})
	assert.NotNil(t, res.Items)
	assert.Equal(t, 0, res.Total)
}

func TestProductList_NoMutaLaColeccion(t *testing.T) {
	uc, _ := newProductUC(t)

	uc.List(dto.ProductFilter{Search: "iphone"})
	assert.Equal(t, 3, uc.List(dto.ProductFilter{}).Total)
}
