package repository

import (
	"time"

	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
)

// SessionRepository almacena las sesiones vivas (una por pestaña).
type SessionRepository interface {
	Save(session entity.Session) error
	// Get devuelve domain.ErrSessionRequired si la sesión no existe o venció.
	Get(id string) (entity.Session, error)
	Delete(id string)
	// DeleteExpired elimina las sesiones vencidas y devuelve sus IDs.
	DeleteExpired(now time.Time) []string
}

// NotificationRepository cola de avisos transitorios por sesión.
type NotificationRepository interface {
	Push(sessionID string, n entity.Notification)
	// Live devuelve los avisos no vencidos, el más reciente primero.
	Live(sessionID string) []entity.Notification
	Clear(sessionID string)
}
