package dto

import "github.com/shopspring/decimal"

// TopProductRow fila de la tabla "Top Performing Products". Revenue = Price * UnitsSold.
type TopProductRow struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Image        string          `json:"image"`
	Price        decimal.Decimal `json:"price"`
	PriceLabel   string          `json:"price_label"`
	UnitsSold    int             `json:"units_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	RevenueLabel string          `json:"revenue_label"`
}

// InsightDTO recomendación de la tarjeta "AI-Powered Insights".
type InsightDTO struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Tone  string `json:"tone"`
}

// BusinessDashboardResponse respuesta de GET /business-dashboard.
type BusinessDashboardResponse struct {
	ShellDTO
	Stats         []StatCard      `json:"stats"`
	Charts        ChartsDTO       `json:"charts"`
	TopProducts   []TopProductRow `json:"top_products"`
	InsightsTitle string          `json:"insights_title"`
	Insights      []InsightDTO    `json:"insights"`
	ReportURL     string          `json:"report_url"`
}
