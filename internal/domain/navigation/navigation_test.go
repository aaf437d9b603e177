package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
)

func labels(items []navigation.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestResolve_CincoRolesConMenuPropio(t *testing.T) {
	cases := []struct {
		role      entity.Role
		dashboard string
		menu      []string
	}{
		{entity.RoleSeller, "/seller-dashboard", []string{"Dashboard", "Products", "Orders", "Inventory", "Analytics", "Support"}},
		{entity.RoleLogistics, "/logistics-dashboard", []string{"Routes", "Shipments", "Vehicles", "Reports"}},
		{entity.RoleDelivery, "/delivery-dashboard", []string{"Dashboard", "Schedule", "Feedback"}},
		{entity.RoleBusiness, "/business-dashboard", []string{"Overview", "Analytics", "Sellers", "Products", "Reports"}},
		{entity.RoleAdmin, "/admin-panel", []string{"Dashboard", "Users", "Settings", "Logs"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			res := navigation.Resolve(tc.role)
			assert.Equal(t, tc.dashboard, res.DashboardPath)
			require.NotEmpty(t, res.Menu)
			assert.Equal(t, tc.menu, labels(res.Menu))
		})
	}
}

func TestResolve_RolDesconocido_CaeAlVendedor(t *testing.T) {
	for _, role := range []entity.Role{"", "guest", "SELLER"} {
		res := navigation.Resolve(role)
		assert.Equal(t, "/seller-dashboard", res.DashboardPath)
		require.Len(t, res.Menu, 1)
		assert.Equal(t, navigation.MenuItem{Label: "Dashboard", Icon: "home", Path: "/seller-dashboard"}, res.Menu[0])
	}
}

func TestResolve_DevuelveCopia(t *testing.T) {
	res := navigation.Resolve(entity.RoleAdmin)
	res.Menu[0].Label = "mutado"

	assert.Equal(t, "Dashboard", navigation.Resolve(entity.RoleAdmin).Menu[0].Label)
}

func TestMenu_MarcaEntradaActiva(t *testing.T) {
	items := navigation.Menu(entity.RoleSeller, "/seller-dashboard")

	active := 0
	for _, it := range items {
		if it.Active {
			active++
			assert.Equal(t, "Dashboard", it.Label)
		}
	}
	assert.Equal(t, 1, active)

	for _, it := range navigation.Menu(entity.RoleAdmin, "/admin-panel") {
		assert.False(t, it.Active, "/admin-panel no figura en el menú de admin")
	}
}

func TestCanOpen(t *testing.T) {
	assert.True(t, navigation.CanOpen(entity.RoleAdmin, "/admin-panel"))
	assert.False(t, navigation.CanOpen(entity.RoleSeller, "/admin-panel"))
	assert.True(t, navigation.CanOpen("guest", "/seller-dashboard"))
	assert.False(t, navigation.CanOpen("guest", "/logistics-dashboard"))
}
