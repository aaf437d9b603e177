package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dolphnet-api/internal/application/usecase"
	"github.com/jhoicas/dolphnet-api/internal/domain"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/memory"
)

var lisa = entity.Identity{ID: "2", Name: "Lisa Logistics", Email: "lisa@dolphnet.com", Role: entity.RoleLogistics}

func newLogistics() (*usecase.LogisticsUseCase, *transitions) {
	notifier, _ := newNotifier()
	rec := &transitions{}
	uc := usecase.NewLogisticsUseCase(fixtures.New().Shipments(), memory.NewViewStore[[]entity.Shipment](), notifier, rec)
	return uc, rec
}

func TestLogistics_DashboardInicial(t *testing.T) {
	uc, _ := newLogistics()

	page := uc.Dashboard(session("s1", lisa))

	values := []string{}
	for _, st := range page.Stats {
		values = append(values, st.Value)
	}
	assert.Equal(t, []string{"5", "2", "1", "2"}, values)
	assert.Equal(t, "Route Planning Map", page.MapTitle)

	require.Len(t, page.Shipments, 5)
	assert.Equal(t, []string{usecase.ActionMarkDelivered}, page.Shipments[0].Actions)
	assert.Equal(t, "in transit", page.Shipments[0].StatusLabel)
	assert.Equal(t, []string{usecase.ActionStartTransit}, page.Shipments[1].Actions)
	assert.Empty(t, page.Shipments[2].Actions)
}

func TestLogistics_CicloCompletoDeUnEnvio(t *testing.T) {
	uc, rec := newLogistics()
	s := session("s1", lisa)

	out, err := uc.StartTransit(s, "S1004")
	require.NoError(t, err)
	assert.Equal(t, "Shipment #S1004 status changed to in_transit", out.Notification.Description)
	assert.Equal(t, "3", out.Page.Stats[1].Value)

	out, err = uc.MarkDelivered(s, "S1004")
	require.NoError(t, err)
	assert.Equal(t, "Shipment #S1004 status changed to delivered", out.Notification.Description)
	assert.Equal(t, "2", out.Page.Stats[2].Value)

	sh, err := uc.GetShipment(s, "S1004")
	require.NoError(t, err)
	assert.Equal(t, string(entity.ShipmentDelivered), sh.Status)

	assert.Equal(t, []string{"logistics/start-transit", "logistics/mark-delivered"}, rec.list())
}

func TestLogistics_TransicionInvalidaNoModifica(t *testing.T) {
	uc, rec := newLogistics()
	s := session("s1", lisa)

	_, err := uc.MarkDelivered(s, "S1002")
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

	_, err = uc.StartTransit(s, "S1003")
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

	_, err = uc.StartTransit(s, "S0000")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	sh, err := uc.GetShipment(s, "S1002")
	require.NoError(t, err)
	assert.Equal(t, string(entity.ShipmentPending), sh.Status)
	assert.Empty(t, rec.list())
}

func TestLogistics_SesionesAisladas(t *testing.T) {
	uc, _ := newLogistics()

	_, err := uc.StartTransit(session("s1", lisa), "S1002")
	require.NoError(t, err)

	sh, err := uc.GetShipment(session("s2", lisa), "S1002")
	require.NoError(t, err)
	assert.Equal(t, string(entity.ShipmentPending), sh.Status)
}
