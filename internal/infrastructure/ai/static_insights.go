package ai

import (
	"context"

	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que StaticInsights implementa InsightsProvider.
var _ ports.InsightsProvider = (*StaticInsights)(nil)

// InsightSource origen de las recomendaciones fijas (el store de fixtures).
type InsightSource interface {
	Insights() []entity.Insight
}

// StaticInsights adaptador sin red: devuelve las recomendaciones del seed.
// Ocupa el lugar de un modelo de lenguaje detrás del mismo puerto.
type StaticInsights struct {
	source InsightSource
}

// NewStaticInsights construye el adaptador.
func NewStaticInsights(source InsightSource) *StaticInsights {
	return &StaticInsights{source: source}
}

// BusinessInsights respeta la cancelación del contexto como lo haría una llamada remota.
func (s *StaticInsights) BusinessInsights(ctx context.Context) ([]entity.Insight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.source.Insights(), nil
}
