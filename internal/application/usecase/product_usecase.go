package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/application/ports"
	"github.com/jhoicas/dolphnet-api/internal/application/shell"
	"github.com/jhoicas/dolphnet-api/internal/domain"
	"github.com/jhoicas/dolphnet-api/internal/domain/collection"
	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
	"github.com/jhoicas/dolphnet-api/internal/domain/repository"
	"github.com/jhoicas/dolphnet-api/pkg/money"
)

// maxStock tope del stock de un producto.
var maxStock = decimal.NewFromInt(math.MaxInt32)

// revenueThisMonth cifra base de la tarjeta "Revenue This Month".
var revenueThisMonth = decimal.RequireFromString("1089.90")

// SellerUseCase dashboard del vendedor: catálogo propio, altas y bajas sobre la copia de la sesión.
type SellerUseCase struct {
	catalog   repository.ProductRepository
	orders    repository.OrderRepository
	analytics repository.AnalyticsRepository
	views     repository.ViewRepository[[]entity.Product]
	notifier  *notify.Service
	metrics   ports.MetricsRecorder

	seq atomic.Int64
	now func() time.Time
}

// NewSellerUseCase construye el caso de uso. Los IDs nuevos continúan después del mayor
// "pN" del catálogo semilla y nunca se reutilizan.
func NewSellerUseCase(
	catalog repository.ProductRepository,
	orders repository.OrderRepository,
	analytics repository.AnalyticsRepository,
	views repository.ViewRepository[[]entity.Product],
	notifier *notify.Service,
	metrics ports.MetricsRecorder,
) *SellerUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	uc := &SellerUseCase{
		catalog:   catalog,
		orders:    orders,
		analytics: analytics,
		views:     views,
		notifier:  notifier,
		metrics:   metrics,
		now:       time.Now,
	}
	uc.seq.Store(highestSeq(catalog.List()))
	return uc
}

func highestSeq(items []entity.Product) int64 {
	var max int64
	for _, p := range items {
		n, err := strconv.ParseInt(strings.TrimPrefix(p.ID, "p"), 10, 64)
		if err == nil && n > max {
			max = n
		}
	}
	return max
}

func (uc *SellerUseCase) seed() []entity.Product { return uc.catalog.List() }

// Dashboard página del vendedor calculada sobre la copia de la sesión.
func (uc *SellerUseCase) Dashboard(ctx context.Context, s entity.Session) (*dto.SellerDashboardResponse, error) {
	return uc.page(ctx, s, uc.views.Load(s.ID, uc.seed))
}

// AddProduct valida el formulario y agrega el producto al final de la lista.
// Si el formulario es inválido la lista no cambia y se genera el aviso "Validation Error".
func (uc *SellerUseCase) AddProduct(ctx context.Context, s entity.Session, in dto.CreateProductRequest) (*dto.ActionResponse[*dto.SellerDashboardResponse], error) {
	product, err := uc.fromForm(s, in)
	if err != nil {
		n := uc.notifier.Push(s.ID, "Validation Error", "Please fill in all required fields.", entity.VariantDestructive)
		return nil, &notify.Error{Err: err, Notification: n}
	}
	product.ID = fmt.Sprintf("p%d", uc.seq.Add(1))

	items, err := uc.views.Update(s.ID, uc.seed, func(cur []entity.Product) ([]entity.Product, error) {
		return collection.Append(cur, product), nil
	})
	if err != nil {
		return nil, err
	}
	n := uc.notifier.Push(s.ID, "Product Added", "The product has been successfully added.", entity.VariantDefault)
	uc.metrics.TransitionRecorded("seller", "add_product")
	return uc.action(ctx, s, items, n)
}

// DeleteProduct quita el producto conservando el orden del resto.
func (uc *SellerUseCase) DeleteProduct(ctx context.Context, s entity.Session, id string) (*dto.ActionResponse[*dto.SellerDashboardResponse], error) {
	items, err := uc.views.Update(s.ID, uc.seed, func(cur []entity.Product) ([]entity.Product, error) {
		out, _, err := collection.Remove(cur, id)
		return out, err
	})
	if err != nil {
		return nil, fmt.Errorf("producto: %w", err)
	}
	n := uc.notifier.Push(s.ID, "Product Deleted", "The product has been successfully deleted.", entity.VariantDefault)
	uc.metrics.TransitionRecorded("seller", "delete_product")
	return uc.action(ctx, s, items, n)
}

func (uc *SellerUseCase) action(ctx context.Context, s entity.Session, items []entity.Product, n entity.Notification) (*dto.ActionResponse[*dto.SellerDashboardResponse], error) {
	page, err := uc.page(ctx, s, items)
	if err != nil {
		return nil, err
	}
	return &dto.ActionResponse[*dto.SellerDashboardResponse]{Notification: notify.ToDTO(n), Page: page}, nil
}

// fromForm aplica las reglas del formulario "Add Product".
func (uc *SellerUseCase) fromForm(s entity.Session, in dto.CreateProductRequest) (entity.Product, error) {
	v := &domain.ValidationError{}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		v.Add("name", "requerido")
	}
	category := entity.Category(strings.TrimSpace(in.Category))
	switch {
	case category == "":
		v.Add("category", "requerido")
	case !category.Valid():
		v.Add("category", "categoría desconocida")
	}

	var price decimal.Decimal
	if raw := strings.TrimSpace(string(in.Price)); raw == "" {
		v.Add("price", "requerido")
	} else if d, err := decimal.NewFromString(raw); err != nil {
		v.Add("price", "debe ser un número")
	} else if d.IsNegative() {
		v.Add("price", "debe ser mayor o igual a 0")
	} else {
		price = d
	}

	var stock int
	if raw := strings.TrimSpace(string(in.Stock)); raw == "" {
		v.Add("stock", "requerido")
	} else if d, err := decimal.NewFromString(raw); err != nil {
		v.Add("stock", "debe ser un número")
	} else if d.IsNegative() {
		v.Add("stock", "debe ser mayor o igual a 0")
	} else if d.Truncate(0).GreaterThan(maxStock) {
		v.Add("stock", "excede el máximo permitido")
	} else {
		stock = int(d.Truncate(0).IntPart())
	}

	if v.HasErrors() {
		return entity.Product{}, v
	}

	sellerID := s.Identity.ID
	if sellerID == "" {
		sellerID = "1"
	}
	return entity.Product{
		Name:        name,
		Brand:       strings.TrimSpace(in.Brand),
		Category:    category,
		Price:       price,
		Stock:       stock,
		Image:       strings.TrimSpace(in.Image),
		Description: strings.TrimSpace(in.Description),
		Sizes:       compact(in.Sizes),
		Colors:      compact(in.Colors),
		Rating:      0,
		CreatedAt:   uc.now(),
		SellerID:    sellerID,
	}, nil
}

// compact recorta los valores de una lista separada por comas y descarta los vacíos.
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (uc *SellerUseCase) page(ctx context.Context, s entity.Session, items []entity.Product) (*dto.SellerDashboardResponse, error) {
	orders := uc.orders.List()
	open := collection.CountWhere(orders, entity.Order.Open)
	active := collection.CountWhere(items, func(p entity.Product) bool { return p.Stock > 0 })

	activeHint := "All products currently active"
	if active < len(items) {
		activeHint = fmt.Sprintf("%d out of stock", len(items)-active)
	}

	charts, err := shell.Charts(ctx, uc.analytics)
	if err != nil {
		return nil, err
	}

	products := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		products = append(products, toProductResponse(p))
	}
	categories := make([]string, 0, len(entity.Categories))
	for _, c := range entity.Categories {
		categories = append(categories, string(c))
	}

	return &dto.SellerDashboardResponse{
		ShellDTO: shell.Build(s.Identity, navigation.PathSellerDashboard),
		Stats: []dto.StatCard{
			{Title: "Total Products", Value: money.Count(len(items)), Hint: "+2 from last week", Icon: "package"},
			{Title: "Active Listings", Value: money.Count(active), Hint: activeHint, Icon: "tag"},
			{Title: "Pending Orders", Value: money.Count(open), Hint: fmt.Sprintf("%d awaiting shipment", open), Icon: "shopping-cart"},
			{Title: "Revenue This Month", Value: money.USD(revenueThisMonth), Hint: "+12.4% from last month", Icon: "badge-dollar-sign"},
		},
		Charts:     charts,
		Products:   products,
		Categories: categories,
	}, nil
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    string(p.Category),
		Price:       p.Price,
		PriceLabel:  money.USD(p.Price),
		Stock:       p.Stock,
		StockStatus: p.StockStatus(),
		Image:       p.Image,
		Description: p.Description,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt.Format(entity.DateLayout),
		SellerID:    p.SellerID,
		UnitsSold:   p.UnitsSold,
	}
}
