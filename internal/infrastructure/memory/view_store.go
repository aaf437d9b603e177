package memory

import (
	"sync"

	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
)

var _ repository.ViewRepository[[]string] = (*ViewStore[[]string])(nil)

// ViewStore copia local de un dashboard por sesión. Se crea perezosamente con seed
// y los cambios de una sesión nunca se ven desde otra.
type ViewStore[S any] struct {
	mu    sync.Mutex
	views map[string]S
}

// NewViewStore construye un store vacío.
func NewViewStore[S any]() *ViewStore[S] {
	return &ViewStore[S]{views: make(map[string]S)}
}

// Load devuelve la copia de la sesión, creándola si es la primera lectura.
func (v *ViewStore[S]) Load(sessionID string, seed func() S) S {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadLocked(sessionID, seed)
}

// Update aplica fn bajo el lock de la vista. Si fn falla la copia queda igual.
func (v *ViewStore[S]) Update(sessionID string, seed func() S, fn func(S) (S, error)) (S, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	cur := v.loadLocked(sessionID, seed)
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	v.views[sessionID] = next
	return next, nil
}

// Reset descarta la copia de la sesión.
func (v *ViewStore[S]) Reset(sessionID string) {
	v.mu.Lock()
	delete(v.views, sessionID)
	v.mu.Unlock()
}

func (v *ViewStore[S]) loadLocked(sessionID string, seed func() S) S {
	cur, ok := v.views[sessionID]
	if !ok {
		cur = seed()
		v.views[sessionID] = cur
	}
	return cur
}
