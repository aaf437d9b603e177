package ports

import (
	"context"

	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
)

// InsightsProvider define el puerto de salida para las recomendaciones de negocio
// de la tarjeta "AI-Powered Insights". Cualquier adaptador (estático, LLM) debe implementarlo.
type InsightsProvider interface {
	BusinessInsights(ctx context.Context) ([]entity.Insight, error)
}
