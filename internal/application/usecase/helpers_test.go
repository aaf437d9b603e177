package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/memory"
)

// transitions registra las acciones de los dashboards.
type transitions struct {
	mu      sync.Mutex
	actions []string
}

func (r *transitions) LoginRecorded(string) {}

func (r *transitions) TransitionRecorded(dashboard, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, dashboard+"/"+action)
}

func (r *transitions) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.actions...)
}

// docsSpy generador de PDF que recuerda lo que se le pidió.
type docsSpy struct {
	label       entity.Delivery
	hasDeadline bool
	err         error
}

func (d *docsSpy) DeliveryLabel(ctx context.Context, del entity.Delivery) ([]byte, error) {
	d.label = del
	_, d.hasDeadline = ctx.Deadline()
	if d.err != nil {
		return nil, d.err
	}
	return []byte("%PDF-label"), nil
}

func (d *docsSpy) BusinessReport(context.Context, ports.BusinessReport) ([]byte, error) {
	return []byte("%PDF-report"), nil
}

func newNotifier() (*notify.Service, *memory.NotificationStore) {
	notes := memory.NewNotificationStore()
	return notify.NewService(notes, time.Minute), notes
}

func session(id string, who entity.Identity) entity.Session {
	return entity.Session{ID: id, Identity: who, CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}
}
