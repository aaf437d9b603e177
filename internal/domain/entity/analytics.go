package entity

import "github.com/shopspring/decimal"

// SalesPoint ventas de un mes para el gráfico de línea.
type SalesPoint struct {
	Month string
	Sales decimal.Decimal
}

// CategoryShare participación porcentual de una categoría en ventas.
type CategoryShare struct {
	Category Category
	Percent  int
}

// Metric valor de un KPI con su variación contra el período anterior.
type Metric struct {
	Value  decimal.Decimal
	Change decimal.Decimal
}

// BusinessKPIs indicadores fijos del dashboard del dueño del negocio.
type BusinessKPIs struct {
	TotalRevenue      Metric
	AverageOrderValue Metric
	ConversionRate    Metric // porcentaje
	TotalOrders       Metric
}

// Tone tono visual de un insight.
type Tone string

const (
	ToneWarning  Tone = "warning"
	TonePositive Tone = "positive"
	ToneInfo     Tone = "info"
)

// Insight recomendación de negocio mostrada en la tarjeta de insights.
type Insight struct {
	Title string
	Text  string
	Tone  Tone
}
