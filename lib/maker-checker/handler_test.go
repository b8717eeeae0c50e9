package makercheckerhandler

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"admin-dashboard-backend/lib/envelope"
	mcexecutor "admin-dashboard-backend/lib/maker-checker/executor"
	"admin-dashboard-backend/models"
	mcapimodels "admin-dashboard-backend/models/api/makerchecker"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testSpaceID = "space-1"

type fakeStore struct {
	mu   sync.Mutex
	recs map[string]*dbmodels.PendingRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: map[string]*dbmodels.PendingRequest{}}
}

func (s *fakeStore) Create(rec dbmodels.PendingRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	s.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (s *fakeStore) GetByID(spaceID, id string) (*dbmodels.PendingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok || rec.SpaceID != spaceID {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (s *fakeStore) List(spaceID string, status *models.RequestStatus, page, limit int) ([]dbmodels.PendingRequest, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []dbmodels.PendingRequest{}
	for _, rec := range s.recs {
		if rec.SpaceID != spaceID {
			continue
		}
		if status != nil && rec.Status != *status {
			continue
		}
		list = append(list, *rec)
	}
	return list, int64(len(list)), nil
}

func (s *fakeStore) TryTransition(spaceID, id string, expected, next models.RequestStatus, checkerID, checkerName, comments string, authorizedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok || rec.SpaceID != spaceID || rec.Status != expected {
		return false, nil
	}
	rec.Status = next
	rec.CheckerID = checkerID
	rec.CheckerName = checkerName
	rec.CheckerComments = comments
	rec.AuthorizedAt = &authorizedAt
	return true, nil
}

func (s *fakeStore) MarkExecuted(spaceID, id string, executedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok || rec.SpaceID != spaceID {
		return errors.New("record is not found")
	}
	rec.ExecutedAt = &executedAt
	return nil
}

func (s *fakeStore) ListApprovedUnexecuted(limit int) ([]dbmodels.PendingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []dbmodels.PendingRequest{}
	for _, rec := range s.recs {
		if rec.Status == models.RequestStatusApproved && rec.ExecutedAt == nil {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeExecutor struct {
	mu      sync.Mutex
	creates int
	updates int
	deletes int
	failErr error
}

func (e *fakeExecutor) Create(spaceID string, fields envelope.FieldMap) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.failErr != nil {
		return e.failErr
	}
	e.creates++
	return nil
}

func (e *fakeExecutor) Update(spaceID, targetID string, fields envelope.FieldMap) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.failErr != nil {
		return e.failErr
	}
	e.updates++
	return nil
}

func (e *fakeExecutor) Delete(spaceID, targetID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.failErr != nil {
		return e.failErr
	}
	e.deletes++
	return nil
}

func (e *fakeExecutor) setFail(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failErr = err
}

func newTestHandler() (Provider, *fakeStore, *fakeExecutor) {
	store := newFakeStore()
	executor := &fakeExecutor{}
	registry := mcexecutor.NewRegistry()
	registry.Register(models.EntityTypeProduct, executor)
	return NewInstance(store, registry), store, executor
}

func submitCreate(t *testing.T, handler Provider, makerID string) string {
	t.Helper()
	id, err := handler.Submit(testSpaceID, mcapimodels.SubmitRequest{
		EntityType: string(models.EntityTypeProduct),
		Operation:  string(models.OperationCreate),
		Fields:     json.RawMessage(`{"code":"SKU-1","name":"Widget","price":9.99,"stock":5,"is_active":true}`),
	}, makerID, "Maker One")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func TestMakerCheckerWorkflow(t *testing.T) {
	t.Run("submit and approve executes the change", func(t *testing.T) {
		handler, store, executor := newTestHandler()
		id := submitCreate(t, handler, "maker-1")

		view, err := handler.GetByID(testSpaceID, id)
		require.NoError(t, err)
		require.Equal(t, string(models.RequestStatusPending), view.Status)
		require.Equal(t, "maker-1", view.MakerID)

		result, err := handler.Approve(testSpaceID, id, "checker-1", "Checker One", "looks good")
		require.NoError(t, err)
		require.Equal(t, string(models.RequestStatusApproved), result.Status)
		require.True(t, result.Executed)
		require.Empty(t, result.ExecutionError)
		require.Equal(t, 1, executor.creates)

		rec, err := store.GetByID(testSpaceID, id)
		require.NoError(t, err)
		require.Equal(t, "checker-1", rec.CheckerID)
		require.NotNil(t, rec.AuthorizedAt)
		require.NotNil(t, rec.ExecutedAt)
	})

	t.Run("unknown request", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		_, err := handler.Approve(testSpaceID, uuid.NewString(), "checker-1", "Checker One", "")
		require.ErrorIs(t, err, ErrNotFound)
		_, err = handler.GetByID(testSpaceID, uuid.NewString())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("request is invisible outside its space", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		id := submitCreate(t, handler, "maker-1")
		_, err := handler.GetByID("space-2", id)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("maker can not approve own request", func(t *testing.T) {
		handler, _, executor := newTestHandler()
		id := submitCreate(t, handler, "maker-1")
		_, err := handler.Approve(testSpaceID, id, "maker-1", "Maker One", "")
		require.ErrorIs(t, err, ErrSelfApproval)
		require.Equal(t, 0, executor.creates)

		view, err := handler.GetByID(testSpaceID, id)
		require.NoError(t, err)
		require.Equal(t, string(models.RequestStatusPending), view.Status)
	})

	t.Run("rejection requires comments", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		id := submitCreate(t, handler, "maker-1")
		err := handler.Reject(testSpaceID, id, "checker-1", "Checker One", "   ")
		require.ErrorIs(t, err, ErrMissingComments)

		err = handler.Reject(testSpaceID, id, "checker-1", "Checker One", "wrong price")
		require.NoError(t, err)
		view, err := handler.GetByID(testSpaceID, id)
		require.NoError(t, err)
		require.Equal(t, string(models.RequestStatusRejected), view.Status)
		require.Equal(t, "wrong price", view.CheckerComments)
	})

	t.Run("terminal decision is final", func(t *testing.T) {
		handler, _, executor := newTestHandler()
		id := submitCreate(t, handler, "maker-1")
		err := handler.Reject(testSpaceID, id, "checker-1", "Checker One", "no")
		require.NoError(t, err)

		_, err = handler.Approve(testSpaceID, id, "checker-2", "Checker Two", "")
		require.ErrorIs(t, err, ErrAlreadyProcessed)
		err = handler.Reject(testSpaceID, id, "checker-2", "Checker Two", "again")
		require.ErrorIs(t, err, ErrAlreadyProcessed)
		require.Equal(t, 0, executor.creates)
	})

	t.Run("concurrent decisions, exactly one wins", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		id := submitCreate(t, handler, "maker-1")

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, errs[0] = handler.Approve(testSpaceID, id, "checker-1", "Checker One", "")
		}()
		go func() {
			defer wg.Done()
			errs[1] = handler.Reject(testSpaceID, id, "checker-2", "Checker Two", "no")
		}()
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				require.ErrorIs(t, err, ErrAlreadyProcessed)
			}
		}
		require.Equal(t, 1, winners)

		view, err := handler.GetByID(testSpaceID, id)
		require.NoError(t, err)
		require.True(t, models.RequestStatus(view.Status).IsTerminal())
	})

	t.Run("execute requires the approved status", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		id := submitCreate(t, handler, "maker-1")
		err := handler.ExecuteApproved(testSpaceID, id)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("execute with no registered executor", func(t *testing.T) {
		store := newFakeStore()
		handler := NewInstance(store, mcexecutor.NewRegistry())
		id := submitCreate(t, handler, "maker-1")
		result, err := handler.Approve(testSpaceID, id, "checker-1", "Checker One", "")
		require.NoError(t, err)
		require.False(t, result.Executed)
		require.Contains(t, result.ExecutionError, ErrUnsupportedEntityType.Error())
	})

	t.Run("approval survives execution failure and is retried", func(t *testing.T) {
		handler, store, executor := newTestHandler()
		id := submitCreate(t, handler, "maker-1")
		executor.setFail(errors.New("entity store is down"))

		result, err := handler.Approve(testSpaceID, id, "checker-1", "Checker One", "")
		require.NoError(t, err)
		require.Equal(t, string(models.RequestStatusApproved), result.Status)
		require.False(t, result.Executed)
		require.NotEmpty(t, result.ExecutionError)

		pending, err := store.ListApprovedUnexecuted(10)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		executor.setFail(nil)
		err = handler.ExecuteApproved(testSpaceID, id)
		require.NoError(t, err)
		require.Equal(t, 1, executor.creates)

		pending, err = store.ListApprovedUnexecuted(10)
		require.NoError(t, err)
		require.Empty(t, pending)
	})

	t.Run("repeated execution is a no-op", func(t *testing.T) {
		handler, _, executor := newTestHandler()
		id := submitCreate(t, handler, "maker-1")
		_, err := handler.Approve(testSpaceID, id, "checker-1", "Checker One", "")
		require.NoError(t, err)

		err = handler.ExecuteApproved(testSpaceID, id)
		require.NoError(t, err)
		err = handler.ExecuteApproved(testSpaceID, id)
		require.NoError(t, err)
		require.Equal(t, 1, executor.creates)
	})

	t.Run("list with status filter", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		first := submitCreate(t, handler, "maker-1")
		submitCreate(t, handler, "maker-1")
		err := handler.Reject(testSpaceID, first, "checker-1", "Checker One", "no")
		require.NoError(t, err)

		pendingStatus := models.RequestStatusPending
		list, rowCount, err := handler.List(testSpaceID, &pendingStatus, 1, 10)
		require.NoError(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Len(t, list, 1)
		require.Equal(t, string(models.RequestStatusPending), list[0].Status)

		list, rowCount, err = handler.List(testSpaceID, nil, 1, 10)
		require.NoError(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Len(t, list, 2)
	})

	t.Run("submit validation", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		_, err := handler.Submit(testSpaceID, mcapimodels.SubmitRequest{
			EntityType: string(models.EntityTypeProduct),
			Operation:  string(models.OperationUpdate),
			Fields:     json.RawMessage(`{"price":1.5}`),
		}, "maker-1", "Maker One")
		require.Error(t, err)

		_, err = handler.Submit(testSpaceID, mcapimodels.SubmitRequest{
			EntityType: string(models.EntityTypeProduct),
			Operation:  string(models.OperationCreate),
			Fields:     json.RawMessage(`{"nested":{"a":1}}`),
		}, "maker-1", "Maker One")
		require.ErrorIs(t, err, ErrMalformedPayload)

		_, err = handler.Submit(testSpaceID, mcapimodels.SubmitRequest{
			EntityType: string(models.EntityTypeProduct),
			Operation:  string(models.OperationCreate),
			Fields:     json.RawMessage(`null`),
		}, "maker-1", "Maker One")
		require.ErrorIs(t, err, ErrMalformedPayload)
	})
}
