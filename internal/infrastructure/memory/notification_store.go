package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationStore)(nil)

// NotificationStore colas de avisos por sesión. Los vencidos se descartan en cada Push y Live.
type NotificationStore struct {
	mu     sync.Mutex
	queues map[string][]entity.Notification
	now    func() time.Time
}

// NewNotificationStore construye un store vacío.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{queues: make(map[string][]entity.Notification), now: time.Now}
}

// Push encola un aviso para la sesión.
func (s *NotificationStore) Push(sessionID string, n entity.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[sessionID] = append(s.pruneLocked(sessionID), n)
}

// Live avisos no vencidos, el más reciente primero.
func (s *NotificationStore) Live(sessionID string) []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.pruneLocked(sessionID)
	out := make([]entity.Notification, 0, len(q))
	for i := len(q) - 1; i >= 0; i-- {
		out = append(out, q[i])
	}
	return out
}

// Clear descarta todos los avisos de la sesión.
func (s *NotificationStore) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.queues, sessionID)
	s.mu.Unlock()
}

func (s *NotificationStore) pruneLocked(sessionID string) []entity.Notification {
	now := s.now()
	q := s.queues[sessionID]
	live := q[:0]
	for _, n := range q {
		if n.Live(now) {
			live = append(live, n)
		}
	}
	if len(live) == 0 {
		delete(s.queues, sessionID)
		return nil
	}
	s.queues[sessionID] = live
	return live
}
