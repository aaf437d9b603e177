package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/application/shell"
	"github.com/jhoicas/dolphnet-api/internal/domain"
	"github.com/jhoicas/dolphnet-api/internal/domain/collection"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
	"github.com/jhoicas/dolphnet-api/pkg/money"
)

// labelTimeout tiempo máximo para generar la etiqueta PDF de un paquete.
const labelTimeout = 10 * time.Second

// DeliveryUseCase dashboard del repartidor: entregas del día, cierre por botón o por QR y etiqueta del paquete.
type DeliveryUseCase struct {
	deliveries repository.DeliveryRepository
	views      repository.ViewRepository[[]entity.Delivery]
	notifier   *notify.Service
	documents  ports.DocumentGenerator
	metrics    ports.MetricsRecorder
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	deliveries repository.DeliveryRepository,
	views repository.ViewRepository[[]entity.Delivery],
	notifier *notify.Service,
	documents ports.DocumentGenerator,
	metrics ports.MetricsRecorder,
) *DeliveryUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &DeliveryUseCase{deliveries: deliveries, views: views, notifier: notifier, documents: documents, metrics: metrics}
}

// Dashboard página del repartidor calculada sobre la copia de la sesión.
func (uc *DeliveryUseCase) Dashboard(s entity.Session) *dto.DeliveryDashboardResponse {
	return uc.page(s, uc.views.Load(s.ID, uc.deliveries.List))
}

// MarkDelivered cierra una entrega pendiente como completada.
func (uc *DeliveryUseCase) MarkDelivered(s entity.Session, id string) (*dto.ActionResponse[*dto.DeliveryDashboardResponse], error) {
	return uc.finish(s, id, "delivered", entity.Delivery.Complete,
		"Delivery Completed", "Delivery #%s has been marked as completed!", entity.VariantDefault)
}

// MarkFailed cierra una entrega pendiente como fallida.
func (uc *DeliveryUseCase) MarkFailed(s entity.Session, id string) (*dto.ActionResponse[*dto.DeliveryDashboardResponse], error) {
	return uc.finish(s, id, "failed", entity.Delivery.Fail,
		"Delivery Failed", "Delivery #%s has been marked as failed.", entity.VariantDestructive)
}

// Scan marca como completada la entrega cuyo ID viene en el QR del paquete.
func (uc *DeliveryUseCase) Scan(s entity.Session, in dto.ScanRequest) (*dto.ActionResponse[*dto.DeliveryDashboardResponse], error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		v := &domain.ValidationError{}
		v.Add("code", "requerido")
		return nil, v
	}
	return uc.MarkDelivered(s, code)
}

// Label etiqueta PDF del paquete con el QR de la entrega.
func (uc *DeliveryUseCase) Label(ctx context.Context, s entity.Session, id string) ([]byte, error) {
	d, err := collection.Find(uc.views.Load(s.ID, uc.deliveries.List), id)
	if err != nil {
		return nil, fmt.Errorf("entrega: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, labelTimeout)
	defer cancel()
	return uc.documents.DeliveryLabel(ctx, d)
}

func (uc *DeliveryUseCase) finish(
	s entity.Session,
	id, action string,
	fn func(entity.Delivery) (entity.Delivery, error),
	title, description string,
	variant entity.Variant,
) (*dto.ActionResponse[*dto.DeliveryDashboardResponse], error) {
	items, err := uc.views.Update(s.ID, uc.deliveries.List, func(cur []entity.Delivery) ([]entity.Delivery, error) {
		out, _, err := collection.Replace(cur, id, fn)
		return out, err
	})
	if err != nil {
		return nil, err
	}
	n := uc.notifier.Push(s.ID, title, fmt.Sprintf(description, id), variant)
	uc.metrics.TransitionRecorded("delivery", action)
	return &dto.ActionResponse[*dto.DeliveryDashboardResponse]{Notification: notify.ToDTO(n), Page: uc.page(s, items)}, nil
}

func (uc *DeliveryUseCase) page(s entity.Session, items []entity.Delivery) *dto.DeliveryDashboardResponse {
	var today, all []dto.DeliveryResponse
	all = make([]dto.DeliveryResponse, 0, len(items))
	today = make([]dto.DeliveryResponse, 0, len(items))
	var completed, failed int
	for _, d := range items {
		row := toDeliveryResponse(d)
		all = append(all, row)
		switch d.Status {
		case entity.DeliveryPending:
			today = append(today, row)
		case entity.DeliveryDelivered:
			completed++
		case entity.DeliveryFailed:
			failed++
		}
	}

	out := &dto.DeliveryDashboardResponse{
		ShellDTO: shell.Build(s.Identity, navigation.PathDeliveryDashboard),
		Stats: []dto.StatCard{
			{Title: "Pending Deliveries", Value: money.Count(len(today)), Icon: "clock"},
			{Title: "Completed Today", Value: money.Count(completed), Icon: "check-circle"},
			{Title: "Failed Attempts", Value: money.Count(failed), Icon: "x-circle"},
		},
		Today: today,
		All:   all,
		Scanner: dto.ScannerDTO{
			Title:    "QR Code Scanner",
			Text:     "Scan the QR code on the package to quickly mark deliveries as complete",
			ScanPath: navigation.PathDeliveryDashboard + "/scan",
		},
	}
	if len(today) == 0 {
		out.Empty = &dto.EmptyStateDTO{
			Title: "No pending deliveries",
			Text:  "You have completed all your assigned deliveries for today!",
		}
	}
	return out
}

func toDeliveryResponse(d entity.Delivery) dto.DeliveryResponse {
	return dto.DeliveryResponse{
		ID:       d.ID,
		Title:    "Order #" + d.ID,
		Customer: d.Customer,
		Address:  d.Address,
		TimeSlot: d.TimeSlot,
		Items:    d.Items,
		Phone:    d.Phone,
		Status:   string(d.Status),
		LabelURL: navigation.PathDeliveryDashboard + "/deliveries/" + d.ID + "/label",
	}
}
