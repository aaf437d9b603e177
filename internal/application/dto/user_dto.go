package dto

import "time"

// LoginRequest entrada del formulario de login. La contraseña no se verifica.
// TabID identifica la instancia del formulario: envíos simultáneos con el mismo TabID
// se resuelven como uno solo.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	TabID    string `json:"tab_id"`
}

// LoginResponse salida del login: token de la pestaña y destino por rol.
type LoginResponse struct {
	Token        string           `json:"token"`
	ExpiresAt    time.Time        `json:"expires_at"`
	User         UserDTO          `json:"user"`
	RedirectTo   string           `json:"redirect_to"`
	Menu         []MenuItemDTO    `json:"menu"`
	Notification *NotificationDTO `json:"notification"`
}

// SessionResponse respuesta de GET /session.
type SessionResponse struct {
	SessionID  string        `json:"session_id"`
	User       UserDTO       `json:"user"`
	RedirectTo string        `json:"redirect_to"`
	Menu       []MenuItemDTO `json:"menu"`
	CreatedAt  time.Time     `json:"created_at"`
	ExpiresAt  time.Time     `json:"expires_at"`
}

// LogoutResponse respuesta de POST /logout.
type LogoutResponse struct {
	RedirectTo   string           `json:"redirect_to"`
	Notification *NotificationDTO `json:"notification"`
}

// ReloadResponse respuesta de POST /reload.
type ReloadResponse struct {
	RedirectTo string `json:"redirect_to"`
}

// AdminUserRow fila de la tabla "User Management".
type AdminUserRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
	IsActive  bool   `json:"is_active"`
	Status    string `json:"status"` // Active | Inactive
	LastLogin string `json:"last_login"`
}

// SystemLogRow fila de la tabla "System Logs".
type SystemLogRow struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// AdminPanelResponse respuesta de GET /admin-panel.
type AdminPanelResponse struct {
	ShellDTO
	Stats []StatCard     `json:"stats"`
	Users []AdminUserRow `json:"users"`
	Logs  []SystemLogRow `json:"logs"`
}
