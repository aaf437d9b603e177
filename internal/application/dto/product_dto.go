package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FormNumber valor numérico de formulario tal como se escribió. Acepta "12.5", 12.5 o null.
type FormNumber string

// UnmarshalJSON acepta tanto cadenas como números JSON.
func (f *FormNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FormNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FormNumber(n.String())
	return nil
}

// CreateProductRequest entrada del formulario "Add Product".
// Price y Stock llegan como texto, igual que en el formulario; se validan en el caso de uso.
type CreateProductRequest struct {
	Name        string     `json:"name"`
	Brand       string     `json:"brand"`
	Category    string     `json:"category"`
	Price       FormNumber `json:"price"`
	Stock       FormNumber `json:"stock"`
	Image       string     `json:"image"`
	Description string     `json:"description"`
	Sizes       []string   `json:"sizes"`
	Colors      []string   `json:"colors"`
}

// ProductResponse salida de un producto del catálogo del vendedor.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	PriceLabel  string          `json:"price_label"`
	Stock       int             `json:"stock"`
	StockStatus string          `json:"stock_status"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Rating      float64         `json:"rating"`
	CreatedAt   string          `json:"created_at"`
	SellerID    string          `json:"seller_id"`
	UnitsSold   int             `json:"units_sold,omitempty"`
}

// SalesPointDTO punto del gráfico de ventas.
type SalesPointDTO struct {
	Name  string          `json:"name"`
	Sales decimal.Decimal `json:"sales"`
}

// CategoryShareDTO porción del gráfico de categorías.
type CategoryShareDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ChartsDTO series de los gráficos "Weekly Sales Trends" y "Category-wise Revenue".
type ChartsDTO struct {
	SalesTitle    string             `json:"sales_title"`
	Sales         []SalesPointDTO    `json:"sales"`
	CategoryTitle string             `json:"category_title"`
	Categories    []CategoryShareDTO `json:"categories"`
}

// SellerDashboardResponse respuesta de GET /seller-dashboard.
type SellerDashboardResponse struct {
	ShellDTO
	Stats      []StatCard        `json:"stats"`
	Charts     ChartsDTO         `json:"charts"`
	Products   []ProductResponse `json:"products"`
	Categories []string          `json:"categories"`
}
