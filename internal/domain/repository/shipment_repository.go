package repository

import "github.com/jhoicas/dolphnet-api/internal/domain/entity"

// ShipmentRepository puerto de lectura de los envíos semilla.
type ShipmentRepository interface {
	List() []entity.Shipment
}

// DeliveryRepository puerto de lectura de las entregas semilla.
type DeliveryRepository interface {
	List() []entity.Delivery
}

// SystemLogRepository puerto de lectura del log del sistema semilla.
type SystemLogRepository interface {
	List() []entity.SystemLog
}
