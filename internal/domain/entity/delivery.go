package entity

import (
	"fmt"

	"github.com/jhoicas/dolphnet-api/internal/domain"
)

// DeliveryStatus estado de una entrega. delivered y failed son terminales.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

// Delivery entrega de última milla asignada al repartidor.
type Delivery struct {
	ID       string
	Customer string
	Address  string
	TimeSlot string
	Items    int
	Phone    string
	Status   DeliveryStatus
}

// EntityID implementa collection.Identified.
func (d Delivery) EntityID() string { return d.ID }

// Complete devuelve una copia en delivered. Solo desde pending.
func (d Delivery) Complete() (Delivery, error) {
	return d.finish(DeliveryDelivered)
}

// Fail devuelve una copia en failed. Solo desde pending.
func (d Delivery) Fail() (Delivery, error) {
	return d.finish(DeliveryFailed)
}

func (d Delivery) finish(to DeliveryStatus) (Delivery, error) {
	if d.Status != DeliveryPending {
		return d, fmt.Errorf("entrega %s: %s → %s: %w", d.ID, d.Status, to, domain.ErrInvalidTransition)
	}
	d.Status = to
	return d, nil
}
