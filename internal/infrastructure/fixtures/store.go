// Package fixtures implementa los puertos de lectura sobre los datos semilla en memoria.
// Los datos nunca cambian después de New y cada lectura devuelve una copia.
package fixtures

import (
	"context"
	"strings"

	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
)

var (
	_ repository.IdentityRepository  = (*Store)(nil)
	_ repository.ProductRepository   = (*Products)(nil)
	_ repository.OrderRepository     = (*Orders)(nil)
	_ repository.ShipmentRepository  = (*Shipments)(nil)
	_ repository.DeliveryRepository  = (*Deliveries)(nil)
	_ repository.SystemLogRepository = (*SystemLogs)(nil)
	_ repository.AnalyticsRepository = (*Store)(nil)
)

// Store datos semilla de la consola.
type Store struct {
	identities []entity.Identity
	products   []entity.Product
	orders     []entity.Order
	shipments  []entity.Shipment
	deliveries []entity.Delivery
	logs       []entity.SystemLog
	sales      []entity.SalesPoint
	shares     []entity.CategoryShare
	kpis       entity.BusinessKPIs
	insights   []entity.Insight
}

// New construye el store con el seed completo.
func New() *Store {
	return &Store{
		identities: seedIdentities(),
		products:   seedProducts(),
		orders:     seedOrders(),
		shipments:  seedShipments(),
		deliveries: seedDeliveries(),
		logs:       seedSystemLogs(),
		sales:      seedSales(),
		shares:     seedCategoryShares(),
		kpis:       seedKPIs(),
		insights:   seedInsights(),
	}
}

// ── Identidades ───────────────────────────────────────────────────────────────

// List devuelve las identidades del seed.
func (s *Store) List() []entity.Identity {
	out := make([]entity.Identity, len(s.identities))
	for i, u := range s.identities {
		out[i] = cloneIdentity(u)
	}
	return out
}

// FindByEmailAndRole busca sin distinguir mayúsculas en el email.
func (s *Store) FindByEmailAndRole(email string, role entity.Role) (entity.Identity, bool) {
	email = strings.TrimSpace(email)
	for _, u := range s.identities {
		if strings.EqualFold(u.Email, email) && u.Role == role {
			return cloneIdentity(u), true
		}
	}
	return entity.Identity{}, false
}

func cloneIdentity(u entity.Identity) entity.Identity {
	if u.LastLogin != nil {
		t := *u.LastLogin
		u.LastLogin = &t
	}
	return u
}

// ── Vistas por colección ──────────────────────────────────────────────────────
// Store expone un List por colección a través de tipos con nombre para que cada
// uno satisfaga su propio puerto.

// Products vista de productos del store.
type Products struct{ s *Store }

// Orders vista de pedidos del store.
type Orders struct{ s *Store }

// Shipments vista de envíos del store.
type Shipments struct{ s *Store }

// Deliveries vista de entregas del store.
type Deliveries struct{ s *Store }

// SystemLogs vista del log del sistema del store.
type SystemLogs struct{ s *Store }

func (s *Store) Products() *Products     { return &Products{s} }
func (s *Store) Orders() *Orders         { return &Orders{s} }
func (s *Store) Shipments() *Shipments   { return &Shipments{s} }
func (s *Store) Deliveries() *Deliveries { return &Deliveries{s} }
func (s *Store) SystemLogs() *SystemLogs { return &SystemLogs{s} }

func (v *Products) List() []entity.Product {
	out := make([]entity.Product, len(v.s.products))
	for i, p := range v.s.products {
		out[i] = p.Clone()
	}
	return out
}

func (v *Orders) List() []entity.Order {
	out := make([]entity.Order, len(v.s.orders))
	for i, o := range v.s.orders {
		o.Lines = append([]entity.OrderLine(nil), o.Lines...)
		out[i] = o
	}
	return out
}

func (v *Shipments) List() []entity.Shipment {
	return append([]entity.Shipment(nil), v.s.shipments...)
}

func (v *Deliveries) List() []entity.Delivery {
	return append([]entity.Delivery(nil), v.s.deliveries...)
}

func (v *SystemLogs) List() []entity.SystemLog {
	return append([]entity.SystemLog(nil), v.s.logs...)
}

// ── Analítica ─────────────────────────────────────────────────────────────────

func (s *Store) SalesSeries(_ context.Context) ([]entity.SalesPoint, error) {
	return append([]entity.SalesPoint(nil), s.sales...), nil
}

func (s *Store) CategoryShares(_ context.Context) ([]entity.CategoryShare, error) {
	return append([]entity.CategoryShare(nil), s.shares...), nil
}

func (s *Store) BusinessKPIs(_ context.Context) (entity.BusinessKPIs, error) {
	return s.kpis, nil
}

func (s *Store) TopProducts(_ context.Context, limit int) ([]entity.Product, error) {
	byID := make(map[string]entity.Product, len(s.products))
	for _, p := range s.products {
		byID[p.ID] = p
	}
	out := make([]entity.Product, 0, len(topProductIDs))
	for _, id := range topProductIDs {
		if limit > 0 && len(out) == limit {
			break
		}
		if p, ok := byID[id]; ok {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// Insights recomendaciones de negocio del seed.
func (s *Store) Insights() []entity.Insight {
	return append([]entity.Insight(nil), s.insights...)
}
