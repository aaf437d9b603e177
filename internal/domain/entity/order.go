package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido de cliente.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderLine producto y cantidad dentro de un pedido.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// Order pedido de cliente sobre productos del vendedor. Solo lectura.
type Order struct {
	ID           string
	CustomerID   string
	CustomerName string
	Lines        []OrderLine
	Total        decimal.Decimal
	Status       OrderStatus
	Date         time.Time
}

// EntityID implementa collection.Identified.
func (o Order) EntityID() string { return o.ID }

// Open informa si el pedido aún espera despacho (pending o processing).
func (o Order) Open() bool {
	return o.Status == OrderPending || o.Status == OrderProcessing
}
