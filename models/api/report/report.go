package reportapimodels

type ProductStockRow struct {
	ProductID   string  `json:"product_id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	UnitPrice   float64 `json:"unit_price"`
	TotalValue  float64 `json:"total_value"`
	StockStatus string  `json:"stock_status"`
	IsActive    bool    `json:"is_active"`
}

type MakerCheckerSummaryRow struct {
	EntityType         string  `json:"entity_type"`
	TotalRequests      int64   `json:"total_requests"`
	PendingCount       int64   `json:"pending_count"`
	ApprovedCount      int64   `json:"approved_count"`
	RejectedCount      int64   `json:"rejected_count"`
	ApprovalRate       float64 `json:"approval_rate"`
	AvgProcessingHours float64 `json:"avg_processing_hours"`
}
