package repository

import "github.com/jhoicas/dolphnet-api/internal/domain/entity"

// IdentityRepository puerto de lectura de las identidades del seed.
type IdentityRepository interface {
	List() []entity.Identity
	// FindByEmailAndRole busca la identidad cuyo email Y rol coinciden.
	FindByEmailAndRole(email string, role entity.Role) (entity.Identity, bool)
}
