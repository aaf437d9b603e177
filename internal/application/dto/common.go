package dto

import (
	"time"

	"github.com/jhoicas/dolphnet-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
// RedirectTo indica al cliente a qué ruta navegar (p. ej. "/login" sin sesión).
type ErrorResponse struct {
	Code         string              `json:"code"`
	Message      string              `json:"message"`
	RedirectTo   string              `json:"redirect_to,omitempty"`
	Path         string              `json:"path,omitempty"`
	Fields       []domain.FieldError `json:"fields,omitempty"`
	Notification *NotificationDTO    `json:"notification,omitempty"`
}

// NotificationDTO aviso transitorio (toast) que el cliente muestra y descarta solo.
type NotificationDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant"` // default | destructive
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NotificationListResponse avisos vivos de la sesión, el más reciente primero.
type NotificationListResponse struct {
	Items []NotificationDTO `json:"items"`
}

// StatCard tarjeta de estadística de un dashboard.
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Hint  string `json:"hint"`
	Icon  string `json:"icon"`
}

// ActionResponse respuesta común a las acciones de los dashboards: el aviso generado
// y la página recalculada tras el cambio.
type ActionResponse[T any] struct {
	Notification *NotificationDTO `json:"notification"`
	Page         T                `json:"page"`
}
