package usecase

import (
	"fmt"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/application/shell"
	"github.com/jhoicas/dolphnet-api/internal/domain/collection"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
	"github.com/jhoicas/dolphnet-api/pkg/money"
)

// Acciones disponibles sobre un envío según su estado.
const (
	ActionStartTransit  = "start-transit"
	ActionMarkDelivered = "mark-delivered"
)

// LogisticsUseCase dashboard logístico: envíos activos y su avance pending → in_transit → delivered.
type LogisticsUseCase struct {
	shipments repository.ShipmentRepository
	views     repository.ViewRepository[[]entity.Shipment]
	notifier  *notify.Service
	metrics   ports.MetricsRecorder
}

// NewLogisticsUseCase construye el caso de uso.
func NewLogisticsUseCase(
	shipments repository.ShipmentRepository,
	views repository.ViewRepository[[]entity.Shipment],
	notifier *notify.Service,
	metrics ports.MetricsRecorder,
) *LogisticsUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &LogisticsUseCase{shipments: shipments, views: views, notifier: notifier, metrics: metrics}
}

// Dashboard página logística calculada sobre la copia de la sesión.
func (uc *LogisticsUseCase) Dashboard(s entity.Session) *dto.LogisticsDashboardResponse {
	return uc.page(s, uc.views.Load(s.ID, uc.shipments.List))
}

// GetShipment detalle de un envío de la copia de la sesión.
func (uc *LogisticsUseCase) GetShipment(s entity.Session, id string) (*dto.ShipmentResponse, error) {
	sh, err := collection.Find(uc.views.Load(s.ID, uc.shipments.List), id)
	if err != nil {
		return nil, fmt.Errorf("envío: %w", err)
	}
	out := toShipmentResponse(sh)
	return &out, nil
}

// StartTransit pending → in_transit.
func (uc *LogisticsUseCase) StartTransit(s entity.Session, id string) (*dto.ActionResponse[*dto.LogisticsDashboardResponse], error) {
	return uc.transition(s, id, ActionStartTransit, entity.Shipment.StartTransit)
}

// MarkDelivered in_transit → delivered.
func (uc *LogisticsUseCase) MarkDelivered(s entity.Session, id string) (*dto.ActionResponse[*dto.LogisticsDashboardResponse], error) {
	return uc.transition(s, id, ActionMarkDelivered, entity.Shipment.MarkDelivered)
}

func (uc *LogisticsUseCase) transition(s entity.Session, id, action string, fn func(entity.Shipment) (entity.Shipment, error)) (*dto.ActionResponse[*dto.LogisticsDashboardResponse], error) {
	var updated entity.Shipment
	items, err := uc.views.Update(s.ID, uc.shipments.List, func(cur []entity.Shipment) ([]entity.Shipment, error) {
		out, sh, err := collection.Replace(cur, id, fn)
		updated = sh
		return out, err
	})
	if err != nil {
		return nil, err
	}
	n := uc.notifier.Push(s.ID, "Status Updated",
		fmt.Sprintf("Shipment #%s status changed to %s", updated.ID, updated.Status), entity.VariantDefault)
	uc.metrics.TransitionRecorded("logistics", action)
	return &dto.ActionResponse[*dto.LogisticsDashboardResponse]{Notification: notify.ToDTO(n), Page: uc.page(s, items)}, nil
}

func (uc *LogisticsUseCase) page(s entity.Session, items []entity.Shipment) *dto.LogisticsDashboardResponse {
	status := func(st entity.ShipmentStatus) func(entity.Shipment) bool {
		return func(sh entity.Shipment) bool { return sh.Status == st }
	}
	rows := make([]dto.ShipmentResponse, 0, len(items))
	for _, sh := range items {
		rows = append(rows, toShipmentResponse(sh))
	}
	return &dto.LogisticsDashboardResponse{
		ShellDTO: shell.Build(s.Identity, navigation.PathLogisticsDashboard),
		Stats: []dto.StatCard{
			{Title: "Total Shipments", Value: money.Count(len(items)), Hint: "All assigned shipments", Icon: "package"},
			{Title: "In Transit", Value: money.Count(collection.CountWhere(items, status(entity.ShipmentInTransit))), Hint: "Currently being delivered", Icon: "truck"},
			{Title: "Delivered", Value: money.Count(collection.CountWhere(items, status(entity.ShipmentDelivered))), Hint: "Successfully completed", Icon: "map-pin"},
			{Title: "Pending", Value: money.Count(collection.CountWhere(items, status(entity.ShipmentPending))), Hint: "Awaiting processing", Icon: "alert-circle"},
		},
		MapTitle:  "Route Planning Map",
		Shipments: rows,
	}
}

func toShipmentResponse(sh entity.Shipment) dto.ShipmentResponse {
	actions := []string{}
	switch sh.Status {
	case entity.ShipmentPending:
		actions = append(actions, ActionStartTransit)
	case entity.ShipmentInTransit:
		actions = append(actions, ActionMarkDelivered)
	}
	return dto.ShipmentResponse{
		ID:               sh.ID,
		Destination:      sh.Destination,
		Driver:           sh.Driver,
		Status:           string(sh.Status),
		StatusLabel:      sh.Status.Label(),
		DepartureDate:    sh.DepartureDate.Format(entity.DateLayout),
		EstimatedArrival: sh.EstimatedArrival.Format(entity.DateLayout),
		Vehicle:          sh.Vehicle,
		Items:            sh.Items,
		Actions:          actions,
	}
}
