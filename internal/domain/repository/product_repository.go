package repository

import "github.com/jhoicas/dolphnet-api/internal/domain/entity"

// ProductRepository puerto de lectura del catálogo semilla.
type ProductRepository interface {
	List() []entity.Product
}

// OrderRepository puerto de lectura de los pedidos semilla.
type OrderRepository interface {
	List() []entity.Order
}
