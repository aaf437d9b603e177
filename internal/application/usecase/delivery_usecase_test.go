package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/usecase"
	"github.com/jhoicas/dolphnet-api/internal/domain"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/memory"
)

var dave = entity.Identity{ID: "3", Name: "Dave Delivery", Email: "dave@dolphnet.com", Role: entity.RoleDelivery}

func newDelivery() (*usecase.DeliveryUseCase, *docsSpy, *transitions) {
	notifier, _ := newNotifier()
	docs := &docsSpy{}
	rec := &transitions{}
	uc := usecase.NewDeliveryUseCase(fixtures.New().Deliveries(), memory.NewViewStore[[]entity.Delivery](), notifier, docs, rec)
	return uc, docs, rec
}

func TestDelivery_DashboardInicial(t *testing.T) {
	uc, _, _ := newDelivery()

	page := uc.Dashboard(session("s1", dave))

	require.Len(t, page.Stats, 3)
	assert.Equal(t, "3", page.Stats[0].Value)
	assert.Equal(t, "1", page.Stats[1].Value)
	assert.Equal(t, "1", page.Stats[2].Value)
	assert.Empty(t, page.Stats[0].Hint)

	require.Len(t, page.Today, 3)
	assert.Equal(t, "Order #D1001", page.Today[0].Title)
	assert.Equal(t, "/delivery-dashboard/deliveries/D1001/label", page.Today[0].LabelURL)
	assert.Len(t, page.All, 5)
	assert.Nil(t, page.Empty)
	assert.Equal(t, "/delivery-dashboard/scan", page.Scanner.ScanPath)
}

func TestDelivery_CompletarYFallar(t *testing.T) {
	uc, _, rec := newDelivery()
	s := session("s1", dave)

	out, err := uc.MarkDelivered(s, "D1001")
	require.NoError(t, err)
	assert.Equal(t, "Delivery Completed", out.Notification.Title)
	assert.Equal(t, "Delivery #D1001 has been marked as completed!", out.Notification.Description)
	assert.Equal(t, "default", out.Notification.Variant)

	out, err = uc.MarkFailed(s, "D1002")
	require.NoError(t, err)
	assert.Equal(t, "Delivery Failed", out.Notification.Title)
	assert.Equal(t, "Delivery #D1002 has been marked as failed.", out.Notification.Description)
	assert.Equal(t, "destructive", out.Notification.Variant)

	assert.Equal(t, "1", out.Page.Stats[0].Value)
	assert.Equal(t, "2", out.Page.Stats[1].Value)
	assert.Equal(t, "2", out.Page.Stats[2].Value)
	assert.Equal(t, []string{"delivery/delivered", "delivery/failed"}, rec.list())

	_, err = uc.MarkFailed(s, "D1001")
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
}

func TestDelivery_SinPendientesMuestraEstadoVacio(t *testing.T) {
	uc, _, _ := newDelivery()
	s := session("s1", dave)

	for _, id := range []string{"D1001", "D1002", "D1005"} {
		_, err := uc.MarkDelivered(s, id)
		require.NoError(t, err)
	}

	page := uc.Dashboard(s)
	assert.Empty(t, page.Today)
	require.NotNil(t, page.Empty)
	assert.Equal(t, "No pending deliveries", page.Empty.Title)
}

func TestDelivery_Scan(t *testing.T) {
	uc, _, _ := newDelivery()
	s := session("s1", dave)

	out, err := uc.Scan(s, dto.ScanRequest{Code: " D1005 "})
	require.NoError(t, err)
	assert.Len(t, out.Page.Today, 2)

	_, err = uc.Scan(s, dto.ScanRequest{Code: "   "})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "code", verr.Fields[0].Field)

	_, err = uc.Scan(s, dto.ScanRequest{Code: "D9999"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDelivery_Label(t *testing.T) {
	uc, docs, _ := newDelivery()
	s := session("s1", dave)

	pdfBytes, err := uc.Label(context.Background(), s, "D1002")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-label"), pdfBytes)
	assert.Equal(t, "Cody Fisher", docs.label.Customer)
	assert.True(t, docs.hasDeadline)

	_, err = uc.Label(context.Background(), s, "D0000")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	docs.err = context.DeadlineExceeded
	_, err = uc.Label(context.Background(), s, "D1002")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
