package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/admin-console-api/internal/application/store"
	"github.com/jhoicas/admin-console-api/internal/infrastructure/pdf"
)

// ExportHandler genera el export en PDF del catálogo de productos.
type ExportHandler struct {
	store     *store.Store
	generator *pdf.CatalogPDFGenerator
}

// NewExportHandler construye el handler.
func NewExportHandler(st *store.Store, gen *pdf.CatalogPDFGenerator) *ExportHandler {
	return &ExportHandler{store: st, generator: gen}
}

// CatalogPDF godoc
// @Summary      Exportar el catálogo de productos a PDF
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/products/export/pdf [get]
func (h *ExportHandler) CatalogPDF(c *fiber.Ctx) error {
	raw, err := h.generator.GenerateCatalogPDF(h.store.Products())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"code": "INTERNAL", "message": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="katalog-produk.pdf"`)
	return c.Send(raw)
}
