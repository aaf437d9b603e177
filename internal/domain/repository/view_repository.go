package repository

// ViewRepository guarda la copia local de un dashboard por sesión. La copia se crea con
// seed en la primera lectura y solo cambia a través de Update.
type ViewRepository[S any] interface {
	Load(sessionID string, seed func() S) S
	// Update aplica fn sobre la copia actual. Si fn falla la copia no cambia.
	Update(sessionID string, seed func() S, fn func(S) (S, error)) (S, error)
	// Reset descarta la copia de la sesión (recarga del navegador).
	Reset(sessionID string)
}
