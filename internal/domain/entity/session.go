package entity

import "time"

// Session una por pestaña: el token del cliente lleva su ID. Guarda una copia de la identidad.
type Session struct {
	ID        string
	Identity  Identity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired informa si la sesión venció en el instante dado.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
