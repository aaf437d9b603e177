// Package memory implementa los repositorios mutables en memoria del proceso:
// sesiones, copias locales de los dashboards y avisos.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/dolphnet-api/internal/domain"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionStore)(nil)

// SessionStore sesiones vivas indexadas por ID (el jti del token).
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	now      func() time.Time
}

// NewSessionStore construye un store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entity.Session), now: time.Now}
}

// Save crea o reemplaza la sesión.
func (s *SessionStore) Save(session entity.Session) error {
	if session.ID == "" {
		return fmt.Errorf("guardar sesión: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return nil
}

// Get devuelve la sesión si existe y no venció. Las vencidas se eliminan al consultarlas.
func (s *SessionStore) Get(id string) (entity.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return entity.Session{}, domain.ErrSessionRequired
	}
	if sess.Expired(s.now()) {
		s.Delete(id)
		return entity.Session{}, domain.ErrSessionRequired
	}
	return sess, nil
}

// Delete elimina la sesión. No falla si no existe.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// DeleteExpired elimina las sesiones vencidas en now y devuelve sus IDs.
func (s *SessionStore) DeleteExpired(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			ids = append(ids, id)
		}
	}
	return ids
}

// Len cantidad de sesiones guardadas (incluye vencidas aún no consultadas).
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
