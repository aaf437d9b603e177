package entity

import "time"

// Variant estilo visual del toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification aviso transitorio de una sesión, con auto-descarte fijo.
type Notification struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Live informa si el aviso sigue visible en el instante dado.
func (n Notification) Live(now time.Time) bool {
	return now.Before(n.ExpiresAt)
}
