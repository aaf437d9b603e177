package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dolphnet-api/internal/application/shell"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
)

func TestBuild_EncabezadoYMenuActivo(t *testing.T) {
	id := entity.Identity{ID: "1", Name: "John Seller", Email: "john@dolphnet.com", Role: entity.RoleSeller}
	s := shell.Build(id, "/seller-dashboard")

	assert.Equal(t, "Seller Dashboard", s.Title)
	assert.Equal(t, "Welcome back, John Seller. Here's what's happening with your products today.", s.Subtitle)
	assert.Equal(t, "JS", s.User.Initials)
	require.Len(t, s.Menu, 6)
	assert.True(t, s.Menu[0].Active)
	assert.Equal(t, "/help", s.Help.Path)
}

func TestBuild_SaludoPorDashboard(t *testing.T) {
	id := entity.Identity{Name: "Admin User", Role: entity.RoleAdmin}
	assert.Equal(t, "Welcome back, Admin User. Manage system users and monitor platform health.",
		shell.Build(id, "/admin-panel").Subtitle)

	id = entity.Identity{Name: "Dave Delivery", Role: entity.RoleDelivery}
	assert.Equal(t, "Delivery Partner Dashboard", shell.Build(id, "/delivery-dashboard").Title)
}

func TestLoginPage_RolesEnOrden(t *testing.T) {
	p := shell.LoginPage()
	require.Len(t, p.Roles, 5)
	assert.Equal(t, "Logistics Partner", p.Roles[1].Label)
	assert.Equal(t, "seller", p.DefaultRole)
	assert.Equal(t, "Enter any email and password to login", p.Hint)
}

func TestNavigation_RolDesconocido(t *testing.T) {
	n := shell.Navigation("guest")
	assert.Equal(t, "/seller-dashboard", n.DashboardPath)
	require.Len(t, n.Menu, 1)
	assert.True(t, n.Menu[0].Active)
}
