package dto

// ShipmentResponse fila de la tabla "Active Shipments".
// Actions lista las transiciones disponibles para el estado actual.
type ShipmentResponse struct {
	ID               string   `json:"id"`
	Destination      string   `json:"destination"`
	Driver           string   `json:"driver"`
	Status           string   `json:"status"`
	StatusLabel      string   `json:"status_label"`
	DepartureDate    string   `json:"departure_date"`
	EstimatedArrival string   `json:"estimated_arrival"`
	Vehicle          string   `json:"vehicle"`
	Items            int      `json:"items"`
	Actions          []string `json:"actions"`
}

// LogisticsDashboardResponse respuesta de GET /logistics-dashboard.
type LogisticsDashboardResponse struct {
	ShellDTO
	Stats     []StatCard         `json:"stats"`
	MapTitle  string             `json:"map_title"`
	Shipments []ShipmentResponse `json:"shipments"`
}
