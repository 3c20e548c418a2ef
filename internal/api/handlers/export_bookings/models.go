package export_bookings

// ExportResponse ответ с результатом экспорта
type ExportResponse struct {
	ExportedCount int `json:"exportedCount"`
}
