// Package navigation resuelve el dashboard de destino y el menú lateral de cada rol.
// Funciones puras: no dependen de la sesión ni de datos mutables.
package navigation

import "github.com/jhoicas/dolphnet-api/internal/domain/entity"

// Rutas de los dashboards.
const (
	PathLogin              = "/login"
	PathSellerDashboard    = "/seller-dashboard"
	PathLogisticsDashboard = "/logistics-dashboard"
	PathDeliveryDashboard  = "/delivery-dashboard"
	PathBusinessDashboard  = "/business-dashboard"
	PathAdminPanel         = "/admin-panel"
)

// Dashboards todas las rutas protegidas por el guard de rol.
var Dashboards = []string{
	PathSellerDashboard, PathLogisticsDashboard, PathDeliveryDashboard,
	PathBusinessDashboard, PathAdminPanel,
}

// MenuItem entrada del menú lateral. Icon es el nombre del ícono lucide.
type MenuItem struct {
	Label  string
	Icon   string
	Path   string
	Active bool
}

// Help enlace fijo al pie del menú.
var Help = MenuItem{Label: "Help & Support", Icon: "circle-help", Path: "/help"}

// Resolution destino y menú de un rol.
type Resolution struct {
	DashboardPath string
	Menu          []MenuItem
}

var menus = map[entity.Role][]MenuItem{
	entity.RoleSeller: {
		{Label: "Dashboard", Icon: "home", Path: PathSellerDashboard},
		{Label: "Products", Icon: "package", Path: "/seller-products"},
		{Label: "Orders", Icon: "shopping-bag", Path: "/seller-orders"},
		{Label: "Inventory", Icon: "list-filter", Path: "/seller-inventory"},
		{Label: "Analytics", Icon: "bar-chart-3", Path: "/seller-analytics"},
		{Label: "Support", Icon: "message-square", Path: "/seller-support"},
	},
	entity.RoleLogistics: {
		{Label: "Routes", Icon: "layout-grid", Path: "/logistics-routes"},
		{Label: "Shipments", Icon: "package", Path: "/logistics-shipments"},
		{Label: "Vehicles", Icon: "truck", Path: "/logistics-vehicles"},
		{Label: "Reports", Icon: "line-chart", Path: "/logistics-reports"},
	},
	entity.RoleDelivery: {
		{Label: "Dashboard", Icon: "home", Path: PathDeliveryDashboard},
		{Label: "Schedule", Icon: "calendar", Path: "/delivery-schedule"},
		{Label: "Feedback", Icon: "message-square", Path: "/delivery-feedback"},
	},
	entity.RoleBusiness: {
		{Label: "Overview", Icon: "home", Path: "/business-overview"},
		{Label: "Analytics", Icon: "bar-chart-3", Path: "/business-analytics"},
		{Label: "Sellers", Icon: "users", Path: "/business-sellers"},
		{Label: "Products", Icon: "package", Path: "/business-products"},
		{Label: "Reports", Icon: "line-chart", Path: "/business-reports"},
	},
	entity.RoleAdmin: {
		{Label: "Dashboard", Icon: "home", Path: "/admin-dashboard"},
		{Label: "Users", Icon: "users", Path: "/admin-users"},
		{Label: "Settings", Icon: "settings", Path: "/admin-settings"},
		{Label: "Logs", Icon: "list-filter", Path: "/admin-logs"},
	},
}

var dashboards = map[entity.Role]string{
	entity.RoleSeller:    PathSellerDashboard,
	entity.RoleLogistics: PathLogisticsDashboard,
	entity.RoleDelivery:  PathDeliveryDashboard,
	entity.RoleBusiness:  PathBusinessDashboard,
	entity.RoleAdmin:     PathAdminPanel,
}

var fallbackMenu = []MenuItem{
	{Label: "Dashboard", Icon: "home", Path: PathSellerDashboard},
}

// Resolve devuelve el dashboard y el menú del rol. Un rol desconocido cae al
// dashboard de vendedor con una única entrada "Dashboard".
func Resolve(role entity.Role) Resolution {
	path, ok := dashboards[role]
	if !ok {
		return Resolution{DashboardPath: PathSellerDashboard, Menu: clone(fallbackMenu)}
	}
	return Resolution{DashboardPath: path, Menu: clone(menus[role])}
}

// Menu devuelve el menú del rol marcando como activa la entrada cuya ruta es currentPath.
func Menu(role entity.Role, currentPath string) []MenuItem {
	items := Resolve(role).Menu
	for i := range items {
		items[i].Active = items[i].Path == currentPath
	}
	return items
}

// CanOpen informa si el rol puede abrir el dashboard indicado.
func CanOpen(role entity.Role, dashboardPath string) bool {
	return Resolve(role).DashboardPath == dashboardPath
}

// IsDashboard informa si path es una de las rutas de dashboard.
func IsDashboard(path string) bool {
	for _, d := range Dashboards {
		if d == path {
			return true
		}
	}
	return false
}

func clone(items []MenuItem) []MenuItem {
	return append([]MenuItem(nil), items...)
}
