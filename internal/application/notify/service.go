// Package notify genera los avisos transitorios (toasts) de cada sesión.
package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
)

// DefaultDismiss auto-descarte de los avisos si no se configura otro.
const DefaultDismiss = 5 * time.Second

// Service crea avisos con auto-descarte fijo y los encola por sesión.
type Service struct {
	repo    repository.NotificationRepository
	dismiss time.Duration
	now     func() time.Time
}

// NewService construye el servicio. dismiss <= 0 usa DefaultDismiss.
func NewService(repo repository.NotificationRepository, dismiss time.Duration) *Service {
	if dismiss <= 0 {
		dismiss = DefaultDismiss
	}
	return &Service{repo: repo, dismiss: dismiss, now: time.Now}
}

// Build crea un aviso sin encolarlo (p. ej. el de logout, cuya sesión ya no existe).
func (s *Service) Build(title, description string, variant entity.Variant) entity.Notification {
	now := s.now()
	return entity.Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.dismiss),
	}
}

// Push crea el aviso y lo encola en la sesión.
func (s *Service) Push(sessionID, title, description string, variant entity.Variant) entity.Notification {
	n := s.Build(title, description, variant)
	if sessionID != "" {
		s.repo.Push(sessionID, n)
	}
	return n
}

// Live avisos vigentes de la sesión.
func (s *Service) Live(sessionID string) []entity.Notification {
	return s.repo.Live(sessionID)
}

// Clear descarta los avisos de la sesión.
func (s *Service) Clear(sessionID string) {
	s.repo.Clear(sessionID)
}

// Error error de un caso de uso que además generó un aviso para el usuario.
type Error struct {
	Err          error
	Notification entity.Notification
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// ToDTO convierte el aviso a su forma HTTP.
func ToDTO(n entity.Notification) *dto.NotificationDTO {
	return &dto.NotificationDTO{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Variant:     string(n.Variant),
		CreatedAt:   n.CreatedAt,
		ExpiresAt:   n.ExpiresAt,
	}
}

// ListToDTO convierte una lista de avisos.
func ListToDTO(items []entity.Notification) []dto.NotificationDTO {
	out := make([]dto.NotificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, *ToDTO(n))
	}
	return out
}
