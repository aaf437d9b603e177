package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dolphnet-api/internal/domain"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Envíos: pending → in_transit → delivered, sin retroceso
// ──────────────────────────────────────────────────────────────────────────────

func TestShipment_AvanceCompleto(t *testing.T) {
	s := entity.Shipment{ID: "S1", Status: entity.ShipmentPending}

	s, err := s.StartTransit()
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentInTransit, s.Status)

	s, err = s.MarkDelivered()
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentDelivered, s.Status)
}

func TestShipment_TransicionesInvalidas(t *testing.T) {
	cases := []struct {
		name string
		from entity.ShipmentStatus
		step func(entity.Shipment) (entity.Shipment, error)
	}{
		{"entregar desde pending", entity.ShipmentPending, entity.Shipment.MarkDelivered},
		{"iniciar tránsito dos veces", entity.ShipmentInTransit, entity.Shipment.StartTransit},
		{"iniciar tránsito ya entregado", entity.ShipmentDelivered, entity.Shipment.StartTransit},
		{"entregar ya entregado", entity.ShipmentDelivered, entity.Shipment.MarkDelivered},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orig := entity.Shipment{ID: "S1", Status: tc.from}
			got, err := tc.step(orig)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.Equal(t, orig, got, "el envío no debe cambiar")
		})
	}
}

func TestShipmentStatus_Label(t *testing.T) {
	assert.Equal(t, "in transit", entity.ShipmentInTransit.Label())
	assert.Equal(t, "pending", entity.ShipmentPending.Label())
}

// ──────────────────────────────────────────────────────────────────────────────
// Entregas: solo desde pending; delivered y failed son terminales
// ──────────────────────────────────────────────────────────────────────────────

func TestDelivery_CompleteYFailDesdePending(t *testing.T) {
	d := entity.Delivery{ID: "D1", Status: entity.DeliveryPending}

	done, err := d.Complete()
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryDelivered, done.Status)

	failed, err := d.Fail()
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryFailed, failed.Status)

	assert.Equal(t, entity.DeliveryPending, d.Status, "el original no se modifica")
}

func TestDelivery_EstadosTerminales(t *testing.T) {
	for _, st := range []entity.DeliveryStatus{entity.DeliveryDelivered, entity.DeliveryFailed} {
		d := entity.Delivery{ID: "D1", Status: st}
		_, err := d.Complete()
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		_, err = d.Fail()
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos e identidades
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_StockStatus(t *testing.T) {
	assert.Equal(t, entity.StockInStock, entity.Product{Stock: 21}.StockStatus())
	assert.Equal(t, entity.StockLowStock, entity.Product{Stock: 20}.StockStatus())
	assert.Equal(t, entity.StockLowStock, entity.Product{Stock: 1}.StockStatus())
	assert.Equal(t, entity.StockOutOfStock, entity.Product{Stock: 0}.StockStatus())
}

func TestProduct_CloneNoCompartePorciones(t *testing.T) {
	p := entity.Product{ID: "p1", Sizes: []string{"7", "8"}, Colors: []string{"Blue"}}
	c := p.Clone()
	c.Sizes[0] = "12"
	c.Colors = append(c.Colors, "Red")

	assert.Equal(t, []string{"7", "8"}, p.Sizes)
	assert.Equal(t, []string{"Blue"}, p.Colors)
}

func TestCategoryYRole_Valid(t *testing.T) {
	assert.True(t, entity.CategoryHiking.Valid())
	assert.False(t, entity.Category("Sandals").Valid())
	assert.True(t, entity.RoleDelivery.Valid())
	assert.False(t, entity.Role("guest").Valid())
}

func TestIdentity_Presentacion(t *testing.T) {
	last := time.Date(2023, 4, 12, 15, 15, 0, 0, time.UTC)
	u := entity.Identity{Name: "Barbara Business", LastLogin: &last}

	assert.Equal(t, "BB", u.Initials())
	assert.Equal(t, "2023-04-12 03:15 PM", u.LastLoginLabel())
	assert.Equal(t, "https://ui-avatars.com/api/?name=Barbara+Business&background=0D8ABC&color=fff", u.AvatarURL())

	u.LastLogin = nil
	assert.Equal(t, "Never", u.LastLoginLabel())
}

func TestIdentity_InicialesConAcentos(t *testing.T) {
	assert.Equal(t, "É", entity.Identity{Name: "élodie"}.Initials())
	assert.Equal(t, "ÁN", entity.Identity{Name: "álvaro núñez"}.Initials())
	assert.Equal(t, "", entity.Identity{Name: "  "}.Initials())
}
