package repository

import (
	"context"

	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
)

// AnalyticsRepository define las consultas de lectura del dashboard de negocio.
// Las implementaciones son read-only.
type AnalyticsRepository interface {
	// SalesSeries ventas mensuales en orden cronológico.
	SalesSeries(ctx context.Context) ([]entity.SalesPoint, error)
	// CategoryShares participación de ventas por categoría.
	CategoryShares(ctx context.Context) ([]entity.CategoryShare, error)
	BusinessKPIs(ctx context.Context) (entity.BusinessKPIs, error)
	// TopProducts productos más vendidos, de mayor a menor. limit <= 0 devuelve todos.
	TopProducts(ctx context.Context, limit int) ([]entity.Product, error)
}
