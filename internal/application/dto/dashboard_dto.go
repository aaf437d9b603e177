package dto

// UserDTO identidad de la sesión tal como la pinta la barra de navegación.
type UserDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	Initials string `json:"initials"`
	IsActive bool   `json:"is_active"`
}

// MenuItemDTO entrada del menú lateral.
type MenuItemDTO struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// ShellDTO datos comunes a toda página de dashboard: usuario, menú y encabezado.
type ShellDTO struct {
	User     UserDTO       `json:"user"`
	Menu     []MenuItemDTO `json:"menu"`
	Help     MenuItemDTO   `json:"help"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
}

// NavigationResponse respuesta de GET /navigation.
type NavigationResponse struct {
	Role          string        `json:"role"`
	DashboardPath string        `json:"dashboard_path"`
	Menu          []MenuItemDTO `json:"menu"`
}

// FeatureDTO tarjeta de rol de la landing.
type FeatureDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// LandingResponse respuesta de GET /.
type LandingResponse struct {
	Brand    string       `json:"brand"`
	Headline string       `json:"headline"`
	Tagline  string       `json:"tagline"`
	CTA      string       `json:"cta"`
	CTAPath  string       `json:"cta_path"`
	Features []FeatureDTO `json:"features"`
	Footer   string       `json:"footer"`
}

// RoleOption opción del selector "Login as".
type RoleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LoginPageResponse respuesta de GET /login.
type LoginPageResponse struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Roles       []RoleOption `json:"roles"`
	DefaultRole string       `json:"default_role"`
	Hint        string       `json:"hint"`
}
