package pendingrequeststore

import (
	"testing"
	"time"

	"admin-dashboard-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockedStore(t *testing.T) (Provider, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return NewInstance(gormDB), mock
}

func TestPendingRequestStore(t *testing.T) {
	t.Run("TryTransition wins when the row is still pending", func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectExec(`UPDATE "pending_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := store.TryTransition("space-1", "req-1",
			models.RequestStatusPending, models.RequestStatusApproved,
			"checker-1", "Checker One", "fine", time.Now())
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TryTransition loses when the row was already decided", func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectExec(`UPDATE "pending_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := store.TryTransition("space-1", "req-1",
			models.RequestStatusPending, models.RequestStatusRejected,
			"checker-2", "Checker Two", "no", time.Now())
		require.NoError(t, err)
		require.False(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByID returns nil on a missing row", func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectQuery(`SELECT \* FROM "pending_requests" WHERE id = \$1 AND space_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rec, err := store.GetByID("space-1", "req-404")
		require.NoError(t, err)
		require.Nil(t, rec)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MarkExecuted updates the execution marker", func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectExec(`UPDATE "pending_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.MarkExecuted("space-1", "req-1", time.Now())
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListApprovedUnexecuted selects approved rows without a marker", func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectQuery(`SELECT \* FROM "pending_requests" WHERE status = \$1 AND executed_at IS NULL`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "space_id", "status"}).
				AddRow("req-1", "space-1", string(models.RequestStatusApproved)))

		list, err := store.ListApprovedUnexecuted(100)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "req-1", list[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
