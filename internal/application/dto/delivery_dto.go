package dto

// DeliveryResponse tarjeta de una entrega.
type DeliveryResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"` // "Order #D1001"
	Customer string `json:"customer"`
	Address  string `json:"address"`
	TimeSlot string `json:"time_slot"`
	Items    int    `json:"items"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	LabelURL string `json:"label_url"`
}

// EmptyStateDTO mensaje cuando no quedan entregas pendientes.
type EmptyStateDTO struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ScannerDTO tarjeta del escáner QR.
type ScannerDTO struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	ScanPath string `json:"scan_path"`
}

// DeliveryDashboardResponse respuesta de GET /delivery-dashboard.
// Today solo contiene entregas pendientes; All conserva la lista completa.
type DeliveryDashboardResponse struct {
	ShellDTO
	Stats   []StatCard         `json:"stats"`
	Today   []DeliveryResponse `json:"today"`
	Empty   *EmptyStateDTO     `json:"empty,omitempty"`
	All     []DeliveryResponse `json:"all"`
	Scanner ScannerDTO         `json:"scanner"`
}

// ScanRequest código leído del QR del paquete.
type ScanRequest struct {
	Code string `json:"code"`
}
