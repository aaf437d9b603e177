// Package pdf genera los documentos PDF de la consola con Maroto v2.
//
// Etiqueta de paquete (A6):
//
//	┌───────────────────────────────┐
//	│  DOLPHNET        Order #D1001 │
//	│  ───────────────────────────  │
//	│  Cliente / Dirección / Tel    │
//	│  Franja horaria / Ítems       │
//	│  ───────────────────────────  │
//	│  QR (ID de la entrega)        │
//	└───────────────────────────────┘
//
// Reporte de negocio (A4): KPIs, participación por categoría, productos top e insights.
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/pkg/money"
)

const brand = "DOLPHNET"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 14, Green: 116, Blue: 144}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.DocumentGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.DocumentGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// DeliveryLabel etiqueta A6 del paquete. El QR contiene solo el ID de la entrega,
// que es lo que espera POST /delivery-dashboard/scan.
func (g *MarotoPDFGenerator) DeliveryLabel(ctx context.Context, d entity.Delivery) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(6).WithRightMargin(6).
		WithTopMargin(6).WithBottomMargin(6).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Order #"+d.ID, true).
		WithAuthor(brand, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(labelHeaderRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(labelRecipientRow(d))
	m.AddRows(labelSlotRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(labelQRRow(d))

	return generate(m)
}

// BusinessReport reporte A4 del dashboard de negocio.
func (g *MarotoPDFGenerator) BusinessReport(ctx context.Context, r ports.BusinessReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor(brand, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(reportHeaderRow(r.Title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(r.KPIs))
	m.AddRows(line.NewRow(3))

	m.AddRows(sectionRow("Category-wise Revenue"))
	for _, s := range r.Shares {
		m.AddRows(shareRow(s))
	}
	m.AddRows(line.NewRow(3))

	m.AddRows(sectionRow("Top Performing Products"))
	m.AddRows(tableHeaderRow())
	for _, p := range r.TopProducts {
		m.AddRows(productRow(p))
	}

	if len(r.Insights) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionRow("AI-Powered Insights"))
		for _, i := range r.Insights {
			m.AddRows(insightRow(i))
		}
	}

	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Etiqueta ──────────────────────────────────────────────────────────────────

// labelHeaderRow: marca (izq) y número de orden (der).
func labelHeaderRow(d entity.Delivery) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New(brand, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1}),
		),
		col.New(6).Add(
			text.New("Order #"+d.ID, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2}),
		),
	)
}

// labelRecipientRow: destinatario.
func labelRecipientRow(d entity.Delivery) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("SHIP TO", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
			text.New(d.Customer, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New(d.Address, props.Text{Size: 8, Top: 11}),
			text.New("Tel: "+nonEmpty(d.Phone, "—"), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

// labelSlotRow: franja horaria e ítems.
func labelSlotRow(d entity.Delivery) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("Time slot: "+d.TimeSlot, props.Text{Size: 8, Top: 2})),
		col.New(4).Add(text.New("Items: "+strconv.Itoa(d.Items), props.Text{Size: 8, Align: align.Right, Top: 2})),
	)
}

// labelQRRow: QR con el ID de la entrega.
func labelQRRow(d entity.Delivery) core.Row {
	return row.New(45).Add(
		col.New(6).Add(code.NewQr(d.ID, props.Rect{Percent: 95, Center: true})),
		col.New(6).Add(
			text.New("Scan to mark\nas delivered", props.Text{Size: 8, Top: 12, Left: 2, Color: colorGray}),
			text.New(d.ID, props.Text{Style: fontstyle.Bold, Size: 12, Top: 24, Left: 2, Color: colorPrimary}),
		),
	)
}

// ── Reporte ───────────────────────────────────────────────────────────────────

func reportHeaderRow(title string) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New(brand, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
		),
		col.New(6).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

// kpiRow: las cuatro tarjetas en una fila.
func kpiRow(k entity.BusinessKPIs) core.Row {
	card := func(title, value string, change entity.Metric) core.Col {
		return col.New(3).Add(
			text.New(title, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6}),
			text.New(money.Change(change.Change, "last month"), props.Text{Size: 7, Color: colorGray, Top: 13}),
		)
	}
	return row.New(20).Add(
		card("Total Revenue", money.USD(k.TotalRevenue.Value), k.TotalRevenue),
		card("Avg Order Value", money.USD(k.AverageOrderValue.Value), k.AverageOrderValue),
		card("Conversion Rate", money.Percent(k.ConversionRate.Value), k.ConversionRate),
		card("Total Orders", money.Count(int(k.TotalOrders.Value.IntPart())), k.TotalOrders),
	)
}

func shareRow(s entity.CategoryShare) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(string(s.Category), props.Text{Size: 9, Top: 1, Left: 1})),
		col.New(6).Add(text.New(strconv.Itoa(s.Percent)+"%", props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Product", 5, align.Left),
		h("Category", 2, align.Left),
		h("Price", 2, align.Right),
		h("Units", 1, align.Center),
		h("Revenue", 2, align.Right),
	)
}

func productRow(p entity.Product) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(string(p.Category), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(money.USD(p.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(1).Add(text.New(strconv.Itoa(p.UnitsSold), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(money.USD(p.Revenue()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func insightRow(i entity.Insight) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New(i.Title, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		text.New(i.Text, props.Text{Size: 8, Top: 6, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
