// Package analytics contiene los casos de uso del dashboard del dueño del negocio
// y su reporte PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/application/shell"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
	"github.com/jhoicas/dolphnet-api/pkg/money"
)

const (
	dashboardTopProducts = 5 // filas de "Top Performing Products"
	reportTimeout        = 15 * time.Second
	changePeriod         = "last month"
)

// DashboardUseCase arma el resumen del negocio: KPIs, gráficos, productos top e insights.
//
// Fuente de datos: AnalyticsRepository (read-only) e InsightsProvider.
// El dashboard no tiene acciones; no hay copia por sesión.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	insights      ports.InsightsProvider
	documents     ports.DocumentGenerator
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	insights ports.InsightsProvider,
	documents ports.DocumentGenerator,
) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, insights: insights, documents: documents}
}

type summary struct {
	kpis     entity.BusinessKPIs
	top      []entity.Product
	insights []entity.Insight
	charts   dto.ChartsDTO
}

// load lanza las cuatro lecturas en paralelo:
//  1. BusinessKPIs          → tarjetas
//  2. TopProducts(top 5)    → tabla
//  3. BusinessInsights      → tarjeta de insights
//  4. SalesSeries + shares  → gráficos
func (uc *DashboardUseCase) load(ctx context.Context) (*summary, error) {
	type kpisResult struct {
		kpis entity.BusinessKPIs
		err  error
	}
	type topResult struct {
		top []entity.Product
		err error
	}
	type insightsResult struct {
		items []entity.Insight
		err   error
	}
	type chartsResult struct {
		charts dto.ChartsDTO
		err    error
	}

	kpisCh := make(chan kpisResult, 1)
	topCh := make(chan topResult, 1)
	insightsCh := make(chan insightsResult, 1)
	chartsCh := make(chan chartsResult, 1)

	go func() {
		k, err := uc.analyticsRepo.BusinessKPIs(ctx)
		kpisCh <- kpisResult{k, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.TopProducts(ctx, dashboardTopProducts)
		topCh <- topResult{t, err}
	}()
	go func() {
		i, err := uc.insights.BusinessInsights(ctx)
		insightsCh <- insightsResult{i, err}
	}()
	go func() {
		c, err := shell.Charts(ctx, uc.analyticsRepo)
		chartsCh <- chartsResult{c, err}
	}()

	kpis := <-kpisCh
	top := <-topCh
	ins := <-insightsCh
	charts := <-chartsCh

	if kpis.err != nil {
		return nil, fmt.Errorf("dashboard: KPIs: %w", kpis.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: productos top: %w", top.err)
	}
	if ins.err != nil {
		return nil, fmt.Errorf("dashboard: insights: %w", ins.err)
	}
	if charts.err != nil {
		return nil, fmt.Errorf("dashboard: gráficos: %w", charts.err)
	}
	return &summary{kpis: kpis.kpis, top: top.top, insights: ins.items, charts: charts.charts}, nil
}

// GetSummary página del dashboard de negocio.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, s entity.Session) (*dto.BusinessDashboardResponse, error) {
	sum, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.TopProductRow, 0, len(sum.top))
	for _, p := range sum.top {
		revenue := p.Revenue()
		rows = append(rows, dto.TopProductRow{
			ID:           p.ID,
			Name:         p.Name,
			Category:     string(p.Category),
			Image:        p.Image,
			Price:        p.Price,
			PriceLabel:   money.USD(p.Price),
			UnitsSold:    p.UnitsSold,
			Revenue:      revenue,
			RevenueLabel: money.USD(revenue),
		})
	}
	insights := make([]dto.InsightDTO, 0, len(sum.insights))
	for _, i := range sum.insights {
		insights = append(insights, dto.InsightDTO{Title: i.Title, Text: i.Text, Tone: string(i.Tone)})
	}

	k := sum.kpis
	return &dto.BusinessDashboardResponse{
		ShellDTO: shell.Build(s.Identity, navigation.PathBusinessDashboard),
		Stats: []dto.StatCard{
			{Title: "Total Revenue", Value: money.USD(k.TotalRevenue.Value), Hint: money.Change(k.TotalRevenue.Change, changePeriod), Icon: "dollar-sign"},
			{Title: "Avg Order Value", Value: money.USD(k.AverageOrderValue.Value), Hint: money.Change(k.AverageOrderValue.Change, changePeriod), Icon: "shopping-cart"},
			{Title: "Conversion Rate", Value: money.Percent(k.ConversionRate.Value), Hint: money.Change(k.ConversionRate.Change, changePeriod), Icon: "trending-up"},
			{Title: "Total Orders", Value: money.Count(int(k.TotalOrders.Value.IntPart())), Hint: money.Change(k.TotalOrders.Change, changePeriod), Icon: "bar-chart-3"},
		},
		Charts:        sum.charts,
		TopProducts:   rows,
		InsightsTitle: "AI-Powered Insights",
		Insights:      insights,
		ReportURL:     navigation.PathBusinessDashboard + "/report",
	}, nil
}

// Report reporte PDF con KPIs, participación por categoría, productos top e insights.
func (uc *DashboardUseCase) Report(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()

	sum, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	shares, err := uc.analyticsRepo.CategoryShares(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: ventas por categoría: %w", err)
	}
	return uc.documents.BusinessReport(ctx, ports.BusinessReport{
		Title:       "Business Overview",
		KPIs:        sum.kpis,
		Shares:      shares,
		TopProducts: sum.top,
		Insights:    sum.insights,
	})
}
