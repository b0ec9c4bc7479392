package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/admin-console-api/internal/application/dto"
	"github.com/jhoicas/admin-console-api/internal/application/notify"
	"github.com/jhoicas/admin-console-api/internal/application/store"
	"github.com/jhoicas/admin-console-api/internal/domain"
	"github.com/jhoicas/admin-console-api/internal/domain/entity"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
// Cada mutación exitosa deja su toast en el canal de notificaciones.
type ProductUseCase struct {
	store  *store.Store
	notify *notify.Channel
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(st *store.Store, ch *notify.Channel) *ProductUseCase {
	return &ProductUseCase{store: st, notify: ch}
}

// Create crea un producto: ID y CreatedAt se generan aquí y el registro se
// inserta al inicio de la colección (más reciente primero).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Status:      in.Status,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.store.PrependProduct(product); err != nil {
		return nil, err
	}
	uc.notify.Success("Produk berhasil ditambahkan")
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, ok := uc.store.FindProduct(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update mezcla los campos enviados sobre el registro existente; ID y
// CreatedAt no se tocan. Si el ID no existe devuelve ErrNotFound.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.store.UpdateProduct(id, func(p *entity.Product) {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.Status != nil {
			p.Status = *in.Status
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Image != nil {
			p.Image = *in.Image
		}
	})
	if err != nil {
		return nil, err
	}
	uc.notify.Success("Produk berhasil diperbarui")
	return toProductResponse(product), nil
}

// Delete elimina un producto. La operación es destructiva: sin confirm no se
// toca nada (cancelar = sin cambios). ID inexistente devuelve ErrNotFound.
func (uc *ProductUseCase) Delete(id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmRequired
	}
	if err := uc.store.DeleteProduct(id); err != nil {
		return err
	}
	uc.notify.Success("Produk berhasil dihapus")
	return nil
}

// List devuelve la colección filtrada sin mutarla: coincidencia de substring
// insensible a mayúsculas sobre name/category, combinada con filtro exacto de
// status. Término vacío empareja todo; el orden de la colección se conserva.
func (uc *ProductUseCase) List(filter dto.ProductFilter) *dto.ProductListResponse {
	products := uc.store.Products()
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if !matchesSearch(filter.Search, p.Name, p.Category) {
			continue
		}
		if !matchesExact(filter.Status, p.Status) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// matchesSearch busca term como substring de alguno de los campos, con case
// folding Unicode (no solo ASCII lowercase).
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	folded := cases.Fold().String(term)
	for _, f := range fields {
		if strings.Contains(cases.Fold().String(f), folded) {
			return true
		}
	}
	return false
}

// matchesExact filtro exacto; "" y "all" desactivan el filtro.
func matchesExact(want, got string) bool {
	return want == "" || want == "all" || want == got
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Status:      p.Status,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
	}
}
