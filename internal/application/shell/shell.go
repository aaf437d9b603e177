// Package shell arma los datos comunes de las páginas: barra de navegación, menú lateral,
// encabezado de bienvenida y las páginas públicas (landing y login).
package shell

import (
	"context"
	"fmt"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
)

const brand = "DOLPHNET"

type header struct {
	title   string
	welcome string
}

var headers = map[string]header{
	navigation.PathSellerDashboard:    {"Seller Dashboard", "Here's what's happening with your products today."},
	navigation.PathLogisticsDashboard: {"Logistics Dashboard", "Manage your shipments and routes here."},
	navigation.PathDeliveryDashboard:  {"Delivery Partner Dashboard", "Manage your daily deliveries here."},
	navigation.PathBusinessDashboard:  {"Business Overview", "Here's your business performance at a glance."},
	navigation.PathAdminPanel:         {"Admin Panel", "Manage system users and monitor platform health."},
}

// Build datos comunes de la página path para la identidad de la sesión.
func Build(id entity.Identity, path string) dto.ShellDTO {
	h := headers[path]
	return dto.ShellDTO{
		User:     User(id),
		Menu:     Menu(navigation.Menu(id.Role, path)),
		Help:     menuItem(navigation.Help),
		Title:    h.title,
		Subtitle: "Welcome back, " + id.Name + ". " + h.welcome,
	}
}

// User identidad para la barra de navegación.
func User(id entity.Identity) dto.UserDTO {
	return dto.UserDTO{
		ID:       id.ID,
		Name:     id.Name,
		Email:    id.Email,
		Role:     string(id.Role),
		Avatar:   id.AvatarURL(),
		Initials: id.Initials(),
		IsActive: id.IsActive,
	}
}

// Menu convierte las entradas del menú lateral.
func Menu(items []navigation.MenuItem) []dto.MenuItemDTO {
	out := make([]dto.MenuItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, menuItem(it))
	}
	return out
}

func menuItem(it navigation.MenuItem) dto.MenuItemDTO {
	return dto.MenuItemDTO{Label: it.Label, Icon: it.Icon, Path: it.Path, Active: it.Active}
}

// Navigation destino y menú de un rol, sin sesión.
func Navigation(role entity.Role) dto.NavigationResponse {
	res := navigation.Resolve(role)
	return dto.NavigationResponse{
		Role:          string(role),
		DashboardPath: res.DashboardPath,
		Menu:          Menu(navigation.Menu(role, res.DashboardPath)),
	}
}

// Landing página pública de inicio.
func Landing() dto.LandingResponse {
	return dto.LandingResponse{
		Brand:    brand,
		Headline: "Unified E-commerce Business Platform",
		Tagline:  "DOLPHNET simplifies e-commerce operations with specialized dashboards for every role in your business. Streamline your workflow today.",
		CTA:      "Get Started",
		CTAPath:  navigation.PathLogin,
		Features: []dto.FeatureDTO{
			{Title: "Seller Dashboard", Icon: "shopping-bag", Description: "Manage products, track sales, and monitor inventory all in one place."},
			{Title: "Logistics Partner", Icon: "truck", Description: "Optimize routes, manage vehicles, and track shipments efficiently."},
			{Title: "Delivery Partner", Icon: "package", Description: "Update delivery status, manage daily schedule, and submit feedback."},
			{Title: "Business Owner", Icon: "bar-chart", Description: "View performance analytics, get insights, and make data-driven decisions."},
		},
		Footer: "© 2024 DOLPHNET. All rights reserved.",
	}
}

// LoginPage formulario de login.
func LoginPage() dto.LoginPageResponse {
	roles := make([]dto.RoleOption, 0, len(entity.Roles))
	for _, r := range entity.Roles {
		roles = append(roles, dto.RoleOption{Value: string(r), Label: r.Label()})
	}
	return dto.LoginPageResponse{
		Title:       "Sign in to your account",
		Subtitle:    "Unified E-commerce Business Platform",
		Roles:       roles,
		DefaultRole: string(entity.RoleSeller),
		Hint:        "Enter any email and password to login",
	}
}

// Charts series de "Weekly Sales Trends" y "Category-wise Revenue".
func Charts(ctx context.Context, repo repository.AnalyticsRepository) (dto.ChartsDTO, error) {
	sales, err := repo.SalesSeries(ctx)
	if err != nil {
		return dto.ChartsDTO{}, fmt.Errorf("serie de ventas: %w", err)
	}
	shares, err := repo.CategoryShares(ctx)
	if err != nil {
		return dto.ChartsDTO{}, fmt.Errorf("ventas por categoría: %w", err)
	}
	out := dto.ChartsDTO{
		SalesTitle:    "Weekly Sales Trends",
		Sales:         make([]dto.SalesPointDTO, 0, len(sales)),
		CategoryTitle: "Category-wise Revenue",
		Categories:    make([]dto.CategoryShareDTO, 0, len(shares)),
	}
	for _, p := range sales {
		out.Sales = append(out.Sales, dto.SalesPointDTO{Name: p.Month, Sales: p.Sales})
	}
	for _, c := range shares {
		out.Categories = append(out.Categories, dto.CategoryShareDTO{Name: string(c.Category), Value: c.Percent})
	}
	return out, nil
}
