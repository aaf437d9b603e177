package entity

import (
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Role determina el dashboard y el menú de la identidad.
type Role string

// Roles válidos para Identity.
const (
	RoleSeller    Role = "seller"
	RoleLogistics Role = "logistics"
	RoleDelivery  Role = "delivery"
	RoleBusiness  Role = "business"
	RoleAdmin     Role = "admin"
)

// Roles en el orden en que los presenta el formulario de login.
var Roles = []Role{RoleSeller, RoleLogistics, RoleDelivery, RoleBusiness, RoleAdmin}

// Valid informa si el rol pertenece al enum conocido.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Label etiqueta del selector "Login as".
func (r Role) Label() string {
	switch r {
	case RoleSeller:
		return "Seller"
	case RoleLogistics:
		return "Logistics Partner"
	case RoleDelivery:
		return "Delivery Partner"
	case RoleBusiness:
		return "Business Owner"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}

// LastLoginLayout formato con el que se muestra el último acceso.
const LastLoginLayout = "2006-01-02 03:04 PM"

// Identity es el usuario autenticado de una sesión. Solo se crea en el seed de fixtures
// (o se sintetiza en el login) y solo el panel de admin cambia IsActive.
type Identity struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	Avatar    string
	IsActive  bool
	LastLogin *time.Time // nil = nunca
}

// EntityID implementa collection.Identified.
func (u Identity) EntityID() string { return u.ID }

// AvatarURL devuelve el avatar o el generado a partir del nombre.
func (u Identity) AvatarURL() string {
	if u.Avatar != "" {
		return u.Avatar
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(u.Name) + "&background=0D8ABC&color=fff"
}

// Initials iniciales del nombre para el avatar de respaldo: "Lisa Logistics" → "LL".
func (u Identity) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(u.Name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// LastLoginLabel último acceso formateado o "Never".
func (u Identity) LastLoginLabel() string {
	if u.LastLogin == nil {
		return "Never"
	}
	return u.LastLogin.Format(LastLoginLayout)
}
