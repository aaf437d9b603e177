package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dolphnet-api/internal/application/analytics"
	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/ai"
	"github.com/jhoicas/dolphnet-api/internal/infrastructure/fixtures"
)

type reportSpy struct {
	got ports.BusinessReport
}

func (r *reportSpy) DeliveryLabel(context.Context, entity.Delivery) ([]byte, error) {
	return nil, errors.New("no usado")
}

func (r *reportSpy) BusinessReport(_ context.Context, rep ports.BusinessReport) ([]byte, error) {
	r.got = rep
	return []byte("%PDF"), nil
}

type brokenInsights struct{}

func (brokenInsights) BusinessInsights(context.Context) ([]entity.Insight, error) {
	return nil, errors.New("proveedor caído")
}

var barbara = entity.Session{ID: "s1", Identity: entity.Identity{ID: "4", Name: "Barbara Business", Role: entity.RoleBusiness}}

func TestGetSummary(t *testing.T) {
	store := fixtures.New()
	uc := analytics.NewDashboardUseCase(store, ai.NewStaticInsights(store), &reportSpy{})

	out, err := uc.GetSummary(context.Background(), barbara)
	require.NoError(t, err)

	require.Len(t, out.Stats, 4)
	assert.Equal(t, "$45,280.90", out.Stats[0].Value)
	assert.Equal(t, "+12.5% from last month", out.Stats[0].Hint)
	assert.Equal(t, "$120.75", out.Stats[1].Value)
	assert.Equal(t, "4.8%", out.Stats[2].Value)
	assert.Equal(t, "375", out.Stats[3].Value)

	require.Len(t, out.TopProducts, 5)
	assert.Equal(t, "p1", out.TopProducts[0].ID)
	assert.Equal(t, "$15,598.80", out.TopProducts[0].RevenueLabel)

	assert.Equal(t, "AI-Powered Insights", out.InsightsTitle)
	assert.Len(t, out.Insights, 3)
	assert.Equal(t, "Category-wise Revenue", out.Charts.CategoryTitle)
	assert.Equal(t, "/business-dashboard/report", out.ReportURL)
	assert.Equal(t, "Barbara Business", out.User.Name)
}

func TestGetSummary_FallaDeInsights(t *testing.T) {
	store := fixtures.New()
	uc := analytics.NewDashboardUseCase(store, brokenInsights{}, &reportSpy{})

	_, err := uc.GetSummary(context.Background(), barbara)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proveedor caído")
}

func TestGetSummary_ContextoCancelado(t *testing.T) {
	store := fixtures.New()
	uc := analytics.NewDashboardUseCase(store, ai.NewStaticInsights(store), &reportSpy{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.GetSummary(ctx, barbara)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport(t *testing.T) {
	store := fixtures.New()
	spy := &reportSpy{}
	uc := analytics.NewDashboardUseCase(store, ai.NewStaticInsights(store), spy)

	pdfBytes, err := uc.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdfBytes)

	assert.Equal(t, "Business Overview", spy.got.Title)
	assert.Len(t, spy.got.TopProducts, 5)
	assert.Len(t, spy.got.Insights, 3)
	assert.NotEmpty(t, spy.got.Shares)
}
