package reporthandler

import (
	"testing"
	"time"

	"admin-dashboard-backend/models"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeProductStore struct {
	products []dbmodels.Product
}

func (s *fakeProductStore) Create(rec dbmodels.Product) (string, error) { return "", nil }
func (s *fakeProductStore) Update(spaceID, id string, updMap map[string]interface{}) error {
	return nil
}
func (s *fakeProductStore) Delete(spaceID, id string) error { return nil }
func (s *fakeProductStore) GetByID(spaceID, id string) (*dbmodels.Product, error) {
	return nil, nil
}
func (s *fakeProductStore) FindByCode(spaceID, code string) (*dbmodels.Product, error) {
	return nil, nil
}
func (s *fakeProductStore) List(spaceID string, page, limit int) ([]dbmodels.Product, int64, error) {
	return nil, 0, nil
}
func (s *fakeProductStore) ListAll(spaceID string) ([]dbmodels.Product, error) {
	return s.products, nil
}

type fakeRequestStore struct {
	recs []dbmodels.PendingRequest
}

func (s *fakeRequestStore) Create(rec dbmodels.PendingRequest) (string, error) { return "", nil }
func (s *fakeRequestStore) GetByID(spaceID, id string) (*dbmodels.PendingRequest, error) {
	return nil, nil
}
func (s *fakeRequestStore) List(spaceID string, status *models.RequestStatus, page, limit int) ([]dbmodels.PendingRequest, int64, error) {
	return s.recs, int64(len(s.recs)), nil
}
func (s *fakeRequestStore) TryTransition(spaceID, id string, expected, next models.RequestStatus, checkerID, checkerName, comments string, authorizedAt time.Time) (bool, error) {
	return false, nil
}
func (s *fakeRequestStore) MarkExecuted(spaceID, id string, executedAt time.Time) error { return nil }
func (s *fakeRequestStore) ListApprovedUnexecuted(limit int) ([]dbmodels.PendingRequest, error) {
	return nil, nil
}

func request(entityType models.EntityType, status models.RequestStatus, processing time.Duration) dbmodels.PendingRequest {
	rec := dbmodels.PendingRequest{
		EntityType: entityType,
		Status:     status,
	}
	rec.CreatedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if status != models.RequestStatusPending {
		authorizedAt := rec.CreatedAt.Add(processing)
		rec.AuthorizedAt = &authorizedAt
	}
	return rec
}

func TestReports(t *testing.T) {
	t.Run("product stock report", func(t *testing.T) {
		product := dbmodels.Product{
			Code:     "SKU-1",
			Name:     "Widget",
			Category: "tools",
			Price:    10,
			Stock:    4,
			IsActive: true,
		}
		handler := NewInstance(&fakeProductStore{products: []dbmodels.Product{product}}, &fakeRequestStore{})

		rows, err := handler.ProductStockReport("space-1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "SKU-1", rows[0].Code)
		require.Equal(t, float64(40), rows[0].TotalValue)
		require.Equal(t, product.StockStatus(), rows[0].StockStatus)
	})

	t.Run("request summary aggregates per entity type", func(t *testing.T) {
		recs := []dbmodels.PendingRequest{
			request(models.EntityTypeProduct, models.RequestStatusApproved, 2*time.Hour),
			request(models.EntityTypeProduct, models.RequestStatusApproved, 4*time.Hour),
			request(models.EntityTypeProduct, models.RequestStatusRejected, 6*time.Hour),
			request(models.EntityTypeProduct, models.RequestStatusPending, 0),
			request(models.EntityTypeUser, models.RequestStatusPending, 0),
		}
		handler := NewInstance(&fakeProductStore{}, &fakeRequestStore{recs: recs})

		rows, err := handler.MakerCheckerSummary("space-1")
		require.NoError(t, err)
		require.Len(t, rows, 2)

		// sorted by entity type: PRODUCT before USER
		product := rows[0]
		require.Equal(t, string(models.EntityTypeProduct), product.EntityType)
		require.Equal(t, int64(4), product.TotalRequests)
		require.Equal(t, int64(1), product.PendingCount)
		require.Equal(t, int64(2), product.ApprovedCount)
		require.Equal(t, int64(1), product.RejectedCount)
		require.InDelta(t, 2.0/3.0, product.ApprovalRate, 0.0001)
		require.InDelta(t, 4.0, product.AvgProcessingHours, 0.0001)

		user := rows[1]
		require.Equal(t, string(models.EntityTypeUser), user.EntityType)
		require.Equal(t, int64(1), user.TotalRequests)
		require.Zero(t, user.ApprovalRate)
		require.Zero(t, user.AvgProcessingHours)
	})
}
