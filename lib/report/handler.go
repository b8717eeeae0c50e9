package reporthandler

import (
	"sort"

	"admin-dashboard-backend/db"
	pendingrequeststore "admin-dashboard-backend/lib/maker-checker/store"
	productstore "admin-dashboard-backend/lib/product/store"
	"admin-dashboard-backend/models"
	reportapimodels "admin-dashboard-backend/models/api/report"
)

type Provider interface {
	ProductStockReport(spaceID string) (rows []reportapimodels.ProductStockRow, err error)
	MakerCheckerSummary(spaceID string) (rows []reportapimodels.MakerCheckerSummaryRow, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		productStore: productstore.NewInstance(db.DB),
		requestStore: pendingrequeststore.NewInstance(db.DB),
	}
}

// NewInstance is used in tests to inject fake stores.
func NewInstance(productStore productstore.Provider, requestStore pendingrequeststore.Provider) Provider {
	return impl{
		productStore: productStore,
		requestStore: requestStore,
	}
}

type impl struct {
	productStore productstore.Provider
	requestStore pendingrequeststore.Provider
}

func (i impl) ProductStockReport(spaceID string) ([]reportapimodels.ProductStockRow, error) {
	list, err := i.productStore.ListAll(spaceID)
	if err != nil {
		return nil, err
	}
	rows := make([]reportapimodels.ProductStockRow, 0, len(list))
	for _, rec := range list {
		rows = append(rows, reportapimodels.ProductStockRow{
			ProductID:   rec.ID,
			Code:        rec.Code,
			Name:        rec.Name,
			Category:    rec.Category,
			Stock:       rec.Stock,
			UnitPrice:   rec.Price,
			TotalValue:  rec.Price * float64(rec.Stock),
			StockStatus: rec.StockStatus(),
			IsActive:    rec.IsActive,
		})
	}
	return rows, nil
}

func (i impl) MakerCheckerSummary(spaceID string) ([]reportapimodels.MakerCheckerSummaryRow, error) {
	list, _, err := i.requestStore.List(spaceID, nil, 0, 0)
	if err != nil {
		return nil, err
	}
	type acc struct {
		total          int64
		pending        int64
		approved       int64
		rejected       int64
		processedHours float64
		processedCount int64
	}
	byEntity := map[models.EntityType]*acc{}
	for _, rec := range list {
		a, ok := byEntity[rec.EntityType]
		if !ok {
			a = &acc{}
			byEntity[rec.EntityType] = a
		}
		a.total++
		switch rec.Status {
		case models.RequestStatusPending:
			a.pending++
		case models.RequestStatusApproved:
			a.approved++
		case models.RequestStatusRejected:
			a.rejected++
		}
		if rec.AuthorizedAt != nil {
			a.processedHours += rec.AuthorizedAt.Sub(rec.CreatedAt).Hours()
			a.processedCount++
		}
	}
	rows := make([]reportapimodels.MakerCheckerSummaryRow, 0, len(byEntity))
	for entityType, a := range byEntity {
		row := reportapimodels.MakerCheckerSummaryRow{
			EntityType:    string(entityType),
			TotalRequests: a.total,
			PendingCount:  a.pending,
			ApprovedCount: a.approved,
			RejectedCount: a.rejected,
		}
		decided := a.approved + a.rejected
		if decided > 0 {
			row.ApprovalRate = float64(a.approved) / float64(decided)
		}
		if a.processedCount > 0 {
			row.AvgProcessingHours = a.processedHours / float64(a.processedCount)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(a, b int) bool {
		return rows[a].EntityType < rows[b].EntityType
	})
	return rows, nil
}
