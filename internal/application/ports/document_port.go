package ports

import (
	"context"

	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
)

// BusinessReport datos del reporte PDF del dashboard de negocio.
type BusinessReport struct {
	Title       string
	KPIs        entity.BusinessKPIs
	Shares      []entity.CategoryShare
	TopProducts []entity.Product
	Insights    []entity.Insight
}

// DocumentGenerator define el puerto de salida para los documentos PDF.
type DocumentGenerator interface {
	// DeliveryLabel etiqueta del paquete con un QR que contiene el ID de la entrega.
	DeliveryLabel(ctx context.Context, d entity.Delivery) ([]byte, error)
	BusinessReport(ctx context.Context, r BusinessReport) ([]byte, error)
}
