package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/dolphnet-api/internal/domain"
)

// ShipmentStatus estado de un envío. Avanza pending → in_transit → delivered sin retroceso.
type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
)

// Label etiqueta legible del estado ("in_transit" → "in transit").
func (s ShipmentStatus) Label() string {
	if s == ShipmentInTransit {
		return "in transit"
	}
	return string(s)
}

// Shipment envío asignado al socio logístico.
type Shipment struct {
	ID               string
	Destination      string
	Driver           string
	Status           ShipmentStatus
	DepartureDate    time.Time
	EstimatedArrival time.Time
	Vehicle          string
	Items            int
}

// EntityID implementa collection.Identified.
func (s Shipment) EntityID() string { return s.ID }

// StartTransit devuelve una copia en in_transit. Solo desde pending.
func (s Shipment) StartTransit() (Shipment, error) {
	return s.advance(ShipmentPending, ShipmentInTransit)
}

// MarkDelivered devuelve una copia en delivered. Solo desde in_transit.
func (s Shipment) MarkDelivered() (Shipment, error) {
	return s.advance(ShipmentInTransit, ShipmentDelivered)
}

func (s Shipment) advance(from, to ShipmentStatus) (Shipment, error) {
	if s.Status != from {
		return s, fmt.Errorf("envío %s: %s → %s: %w", s.ID, s.Status, to, domain.ErrInvalidTransition)
	}
	s.Status = to
	return s, nil
}
