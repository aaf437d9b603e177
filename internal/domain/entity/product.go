package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category categoría de calzado del catálogo.
type Category string

const (
	CategoryRunning    Category = "Running"
	CategoryCasual     Category = "Casual"
	CategoryBasketball Category = "Basketball"
	CategoryHiking     Category = "Hiking"
	CategoryWalking    Category = "Walking"
	CategoryTraining   Category = "Training"
	CategoryFormal     Category = "Formal"
)

// Categories en el orden del selector del formulario.
var Categories = []Category{
	CategoryRunning, CategoryCasual, CategoryBasketball, CategoryHiking,
	CategoryWalking, CategoryTraining, CategoryFormal,
}

// Valid informa si la categoría es reconocida.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Badges de stock.
const (
	StockInStock    = "In Stock"
	StockLowStock   = "Low Stock"
	StockOutOfStock = "Out of Stock"
)

// DateLayout formato de fechas de calendario de los fixtures.
const DateLayout = "2006-01-02"

// Product artículo del catálogo de un vendedor. Price y Stock nunca son negativos.
type Product struct {
	ID          string
	Name        string
	Brand       string
	Category    Category
	Price       decimal.Decimal
	Stock       int
	Image       string
	Description string
	Sizes       []string
	Colors      []string
	Rating      float64
	CreatedAt   time.Time
	SellerID    string
	UnitsSold   int // 0 si no se conoce
}

// EntityID implementa collection.Identified.
func (p Product) EntityID() string { return p.ID }

// StockStatus badge de stock: >20 In Stock, >0 Low Stock, si no Out of Stock.
func (p Product) StockStatus() string {
	switch {
	case p.Stock > 20:
		return StockInStock
	case p.Stock > 0:
		return StockLowStock
	default:
		return StockOutOfStock
	}
}

// Revenue ingresos del producto: precio por unidades vendidas.
func (p Product) Revenue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.UnitsSold)))
}

// Clone copia profunda (las listas de tallas y colores no se comparten).
func (p Product) Clone() Product {
	c := p
	c.Sizes = append([]string(nil), p.Sizes...)
	c.Colors = append([]string(nil), p.Colors...)
	return c
}
