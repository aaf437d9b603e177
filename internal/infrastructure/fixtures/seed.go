package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dolphnet-api/internal/domain/entity"
)

// Datos semilla de la consola. Se construyen una sola vez en New.

func avatar(first, last string) string {
	return "https://ui-avatars.com/api/?name=" + first + "+" + last + "&background=0D8ABC&color=fff"
}

func lastLogin(s string) *time.Time {
	t, err := time.Parse(entity.LastLoginLayout, s)
	if err != nil {
		panic("fixtures: lastLogin inválido " + s)
	}
	return &t
}

func date(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic("fixtures: fecha inválida " + s)
	}
	return t
}

func stamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("fixtures: timestamp inválido " + s)
	}
	return t
}

func usd(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedIdentities() []entity.Identity {
	return []entity.Identity{
		{ID: "1", Name: "John Seller", Email: "john@dolphnet.com", Role: entity.RoleSeller, Avatar: avatar("John", "Seller"), IsActive: true, LastLogin: lastLogin("2023-04-12 09:45 AM")},
		{ID: "2", Name: "Lisa Logistics", Email: "lisa@dolphnet.com", Role: entity.RoleLogistics, Avatar: avatar("Lisa", "Logistics"), IsActive: true, LastLogin: lastLogin("2023-04-13 11:20 AM")},
		{ID: "3", Name: "Dave Delivery", Email: "dave@dolphnet.com", Role: entity.RoleDelivery, Avatar: avatar("Dave", "Delivery"), IsActive: true, LastLogin: lastLogin("2023-04-13 08:30 AM")},
		{ID: "4", Name: "Barbara Business", Email: "barbara@dolphnet.com", Role: entity.RoleBusiness, Avatar: avatar("Barbara", "Business"), IsActive: true, LastLogin: lastLogin("2023-04-12 03:15 PM")},
		{ID: "5", Name: "Admin User", Email: "admin@dolphnet.com", Role: entity.RoleAdmin, Avatar: avatar("Admin", "User"), IsActive: true, LastLogin: lastLogin("2023-04-13 10:05 AM")},
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID: "p1", Name: "Wave Runner Athletic Shoe", Brand: "WaveTech", Category: entity.CategoryRunning,
			Price: usd("129.99"), Stock: 45, Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
			Description: "Lightweight running shoes with wave technology for enhanced stability and comfort.",
			Sizes:       []string{"7", "8", "9", "10", "11", "12"}, Colors: []string{"Blue", "Black", "Red"},
			Rating: 4.7, CreatedAt: date("2023-12-01"), SellerID: "1", UnitsSold: 120,
		},
		{
			ID: "p2", Name: "Aqua Comfort Casual Sneakers", Brand: "AquaStep", Category: entity.CategoryCasual,
			Price: usd("89.99"), Stock: 28, Image: "https://images.unsplash.com/photo-1549298916-b41d501d3772",
			Description: "Stylish sneakers with water-resistant coating and memory foam insoles.",
			Sizes:       []string{"6", "7", "8", "9", "10"}, Colors: []string{"White", "Gray", "Navy"},
			Rating: 4.3, CreatedAt: date("2023-11-15"), SellerID: "1", UnitsSold: 65,
		},
		{
			ID: "p3", Name: "Pro Tide Basketball Shoes", Brand: "TideMax", Category: entity.CategoryBasketball,
			Price: usd("159.99"), Stock: 12, Image: "https://images.unsplash.com/photo-1607522370275-f14206abe5d3",
			Description: "High-performance basketball shoes with extra ankle support and cushioned landing.",
			Sizes:       []string{"8", "9", "10", "11", "12", "13"}, Colors: []string{"Black/Red", "White/Blue", "Gray/Orange"},
			Rating: 4.9, CreatedAt: date("2024-01-05"), SellerID: "1", UnitsSold: 87,
		},
		{
			ID: "p4", Name: "Dolphin Flex Hiking Boots", Brand: "TrekPath", Category: entity.CategoryHiking,
			Price: usd("149.99"), Stock: 8, Image: "https://images.unsplash.com/photo-1520639888713-7851133b1ed0",
			Description: "Waterproof hiking boots with superior grip and ankle protection.",
			Sizes:       []string{"7", "8", "9", "10", "11", "12"}, Colors: []string{"Brown", "Green", "Black"},
			Rating: 4.8, CreatedAt: date("2023-10-20"), SellerID: "1", UnitsSold: 52,
		},
		{
			ID: "p5", Name: "Net Flow Slip-ons", Brand: "FlowStep", Category: entity.CategoryCasual,
			Price: usd("69.99"), Stock: 34, Image: "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a",
			Description: "Breathable slip-on shoes perfect for everyday comfort.",
			Sizes:       []string{"6", "7", "8", "9", "10", "11"}, Colors: []string{"White", "Black", "Gray", "Blue"},
			Rating: 4.5, CreatedAt: date("2023-11-28"), SellerID: "1",
		},
		{
			ID: "p6", Name: "Ocean Depth Training Shoes", Brand: "DeepBlue", Category: entity.CategoryTraining,
			Price: usd("119.99"), Stock: 22, Image: "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa",
			Description: "Cross-training shoes with stability control and impact absorption.",
			Sizes:       []string{"7", "8", "9", "10", "11"}, Colors: []string{"Blue/Black", "Gray/Lime", "Black/Red"},
			Rating: 4.6, CreatedAt: date("2023-12-15"), SellerID: "1",
		},
		{
			ID: "p7", Name: "Tech Mesh Walking Shoes", Brand: "MeshTech", Category: entity.CategoryWalking,
			Price: usd("79.99"), Stock: 41, Image: "https://images.unsplash.com/photo-1608231387042-66d1773070a5",
			Description: "Lightweight walking shoes with breathable mesh upper and cushioned soles.",
			Sizes:       []string{"7", "8", "9", "10", "11", "12"}, Colors: []string{"Gray", "Black", "Blue", "Red"},
			Rating: 4.2, CreatedAt: date("2024-02-01"), SellerID: "1",
		},
		{
			ID: "p8", Name: "Aqua Formal Leather Oxfords", Brand: "AquaFormal", Category: entity.CategoryFormal,
			Price: usd("139.99"), Stock: 15, Image: "https://images.unsplash.com/photo-1613987876445-18a6d069d78d",
			Description: "Premium leather oxford shoes with water-resistant treatment and comfort insoles.",
			Sizes:       []string{"8", "9", "10", "11", "12"}, Colors: []string{"Black", "Brown", "Tan"},
			Rating: 4.7, CreatedAt: date("2023-09-10"), SellerID: "1", UnitsSold: 43,
		},
	}
}

// topProductIDs orden del ranking de más vendidos.
var topProductIDs = []string{"p1", "p3", "p2", "p4", "p8"}

func seedOrders() []entity.Order {
	return []entity.Order{
		{ID: "O1001", CustomerID: "c1", CustomerName: "Emma Wilson", Lines: []entity.OrderLine{{ProductID: "p1", Quantity: 1}}, Total: usd("129.99"), Status: entity.OrderDelivered, Date: date("2024-03-15")},
		{ID: "O1002", CustomerID: "c2", CustomerName: "Michael Brown", Lines: []entity.OrderLine{{ProductID: "p3", Quantity: 1}, {ProductID: "p5", Quantity: 2}}, Total: usd("299.97"), Status: entity.OrderShipped, Date: date("2024-03-24")},
		{ID: "O1003", CustomerID: "c3", CustomerName: "Sophia Garcia", Lines: []entity.OrderLine{{ProductID: "p2", Quantity: 1}}, Total: usd("89.99"), Status: entity.OrderProcessing, Date: date("2024-04-02")},
		{ID: "O1004", CustomerID: "c4", CustomerName: "James Martinez", Lines: []entity.OrderLine{{ProductID: "p4", Quantity: 1}, {ProductID: "p7", Quantity: 1}}, Total: usd("229.98"), Status: entity.OrderPending, Date: date("2024-04-10")},
		{ID: "O1005", CustomerID: "c5", CustomerName: "Olivia Johnson", Lines: []entity.OrderLine{{ProductID: "p6", Quantity: 2}}, Total: usd("239.98"), Status: entity.OrderProcessing, Date: date("2024-04-08")},
	}
}

func seedSales() []entity.SalesPoint {
	return []entity.SalesPoint{
		{Month: "Jan", Sales: decimal.NewFromInt(4000)},
		{Month: "Feb", Sales: decimal.NewFromInt(3000)},
		{Month: "Mar", Sales: decimal.NewFromInt(2000)},
		{Month: "Apr", Sales: decimal.NewFromInt(2780)},
		{Month: "May", Sales: decimal.NewFromInt(1890)},
		{Month: "Jun", Sales: decimal.NewFromInt(2390)},
		{Month: "Jul", Sales: decimal.NewFromInt(3490)},
	}
}

func seedCategoryShares() []entity.CategoryShare {
	return []entity.CategoryShare{
		{Category: entity.CategoryRunning, Percent: 35},
		{Category: entity.CategoryCasual, Percent: 30},
		{Category: entity.CategoryBasketball, Percent: 15},
		{Category: entity.CategoryHiking, Percent: 10},
		{Category: entity.CategoryFormal, Percent: 10},
	}
}

func seedKPIs() entity.BusinessKPIs {
	return entity.BusinessKPIs{
		TotalRevenue:      entity.Metric{Value: usd("45280.90"), Change: usd("12.5")},
		AverageOrderValue: entity.Metric{Value: usd("120.75"), Change: usd("3.2")},
		ConversionRate:    entity.Metric{Value: usd("4.8"), Change: usd("0.5")},
		TotalOrders:       entity.Metric{Value: decimal.NewFromInt(375), Change: usd("8.3")},
	}
}

func seedShipments() []entity.Shipment {
	return []entity.Shipment{
		{ID: "S1001", Destination: "New York, NY", Driver: "Michael Johnson", Status: entity.ShipmentInTransit, DepartureDate: date("2023-04-12"), EstimatedArrival: date("2023-04-14"), Vehicle: "Van-XL-102", Items: 24},
		{ID: "S1002", Destination: "Boston, MA", Driver: "Sarah Williams", Status: entity.ShipmentPending, DepartureDate: date("2023-04-14"), EstimatedArrival: date("2023-04-16"), Vehicle: "Truck-L-205", Items: 36},
		{ID: "S1003", Destination: "Chicago, IL", Driver: "Robert Davis", Status: entity.ShipmentDelivered, DepartureDate: date("2023-04-10"), EstimatedArrival: date("2023-04-13"), Vehicle: "Van-M-087", Items: 18},
		{ID: "S1004", Destination: "Los Angeles, CA", Driver: "Emily Thompson", Status: entity.ShipmentPending, DepartureDate: date("2023-04-15"), EstimatedArrival: date("2023-04-20"), Vehicle: "Truck-XL-314", Items: 52},
		{ID: "S1005", Destination: "Miami, FL", Driver: "Daniel Martinez", Status: entity.ShipmentInTransit, DepartureDate: date("2023-04-11"), EstimatedArrival: date("2023-04-15"), Vehicle: "Van-L-159", Items: 31},
	}
}

func seedDeliveries() []entity.Delivery {
	return []entity.Delivery{
		{ID: "D1001", Customer: "Jane Cooper", Address: "123 Main St, Apt 4B, New York, NY", TimeSlot: "10:00 AM - 12:00 PM", Items: 2, Phone: "(555) 123-4567", Status: entity.DeliveryPending},
		{ID: "D1002", Customer: "Cody Fisher", Address: "456 Elm Ave, Boston, MA", TimeSlot: "1:00 PM - 3:00 PM", Items: 1, Phone: "(555) 987-6543", Status: entity.DeliveryPending},
		{ID: "D1003", Customer: "Esther Howard", Address: "789 Oak Rd, Chicago, IL", TimeSlot: "3:00 PM - 5:00 PM", Items: 3, Phone: "(555) 456-7890", Status: entity.DeliveryDelivered},
		{ID: "D1004", Customer: "Cameron Williamson", Address: "321 Pine St, Miami, FL", TimeSlot: "9:00 AM - 11:00 AM", Items: 2, Phone: "(555) 234-5678", Status: entity.DeliveryFailed},
		{ID: "D1005", Customer: "Brooklyn Simmons", Address: "654 Cedar Ln, Seattle, WA", TimeSlot: "4:00 PM - 6:00 PM", Items: 4, Phone: "(555) 876-5432", Status: entity.DeliveryPending},
	}
}

func seedSystemLogs() []entity.SystemLog {
	return []entity.SystemLog{
		{ID: "log-001", Type: entity.LogSecurity, Action: "Unauthorized login attempt", Timestamp: stamp("2023-04-13T08:12:30Z"), Level: entity.LevelWarning},
		{ID: "log-002", Type: entity.LogSystem, Action: "Database backup completed", Timestamp: stamp("2023-04-13T07:00:00Z"), Level: entity.LevelInfo},
		{ID: "log-003", Type: entity.LogUser, Action: "User Barbara Business updated profile", Timestamp: stamp("2023-04-12T14:25:10Z"), Level: entity.LevelInfo},
		{ID: "log-004", Type: entity.LogOrder, Action: "Order O1003 payment failed", Timestamp: stamp("2023-04-12T11:32:45Z"), Level: entity.LevelError},
		{ID: "log-005", Type: entity.LogSystem, Action: "API rate limit exceeded", Timestamp: stamp("2023-04-12T10:18:22Z"), Level: entity.LevelWarning},
		{ID: "log-006", Type: entity.LogSecurity, Action: "Admin user logged in", Timestamp: stamp("2023-04-13T10:05:00Z"), Level: entity.LevelInfo},
		{ID: "log-007", Type: entity.LogSystem, Action: "Server CPU usage exceeded 90%", Timestamp: stamp("2023-04-11T15:45:12Z"), Level: entity.LevelError},
		{ID: "log-008", Type: entity.LogUser, Action: "New user John Seller registered", Timestamp: stamp("2023-04-10T09:20:30Z"), Level: entity.LevelInfo},
	}
}

func seedInsights() []entity.Insight {
	return []entity.Insight{
		{Title: "Stock Optimization", Tone: entity.ToneInfo, Text: `Consider reducing inventory for "Tech Mesh Walking Shoes" as they're showing 15% lower sales than last month.`},
		{Title: "Growth Opportunity", Tone: entity.TonePositive, Text: `The "Running" category is trending up 23% this month. Consider increasing marketing spend for these products.`},
		{Title: "Price Optimization", Tone: entity.ToneWarning, Text: `Your "Aqua Formal Leather Oxfords" are priced 12% higher than market average. Consider a price adjustment to increase sales volume.`},
	}
}
