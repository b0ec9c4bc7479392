// Package pdf genera el export en PDF del catálogo de productos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Categoría | Precio | Stock | Estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos + valor de inventario                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/admin-console-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CatalogPDFGenerator genera el PDF del catálogo usando Maroto v2.
type CatalogPDFGenerator struct{}

// NewCatalogPDFGenerator construye el generador.
func NewCatalogPDFGenerator() *CatalogPDFGenerator { return &CatalogPDFGenerator{} }

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *CatalogPDFGenerator) GenerateCatalogPDF(products []entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Katalog Produk", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Katalog Produk", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9}))
	}
	return row.New(7).Add(
		header(4, "Nombre"),
		header(3, "Categoría"),
		header(2, "Precio"),
		header(1, "Stock"),
		header(2, "Estado"),
	)
}

func productRow(p entity.Product) core.Row {
	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a}))
	}
	return row.New(6).Add(
		cell(4, p.Name, align.Left),
		cell(3, p.Category, align.Left),
		cell(2, p.Price.StringFixed(2), align.Right),
		cell(1, fmt.Sprintf("%d", p.Stock), align.Right),
		cell(2, p.Status, align.Left),
	)
}

func totalsRow(products []entity.Product) core.Row {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.InventoryValue())
	}
	return row.New(8).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("%d productos", len(products)), props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Valor inventario: "+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}
