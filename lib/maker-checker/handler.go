package makercheckerhandler

import (
	"strings"
	"time"

	"admin-dashboard-backend/db"
	"admin-dashboard-backend/lib/envelope"
	mcexecutor "admin-dashboard-backend/lib/maker-checker/executor"
	pendingrequeststore "admin-dashboard-backend/lib/maker-checker/store"
	"admin-dashboard-backend/models"
	mcapimodels "admin-dashboard-backend/models/api/makerchecker"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Submit(spaceID string, request mcapimodels.SubmitRequest, makerID, makerName string) (id string, err error)
	GetByID(spaceID, id string) (*mcapimodels.PendingRequestView, error)
	List(spaceID string, status *models.RequestStatus, page, limit int) (list []mcapimodels.PendingRequestView, rowCount int64, err error)
	Approve(spaceID, id, checkerID, checkerName, comments string) (mcapimodels.DecisionView, error)
	Reject(spaceID, id, checkerID, checkerName, comments string) error
	ExecuteApproved(spaceID, id string) error
}

var Instance Provider

func NewHandler(registry *mcexecutor.Registry) {
	Instance = impl{
		store:    pendingrequeststore.NewInstance(db.DB),
		registry: registry,
	}
}

// NewInstance builds a handler with injected collaborators.
func NewInstance(store pendingrequeststore.Provider, registry *mcexecutor.Registry) Provider {
	return impl{
		store:    store,
		registry: registry,
	}
}

type impl struct {
	store    pendingrequeststore.Provider
	registry *mcexecutor.Registry
}

func (i impl) GetLogger(spaceID, requestID string) *log.Entry {
	logger := log.
		WithField("space_id", spaceID).
		WithField("pending_request_id", requestID)
	return logger
}

// Submit captures a maker's intent as a pending request. The real entity
// store is not touched here.
func (i impl) Submit(spaceID string, request mcapimodels.SubmitRequest, makerID, makerName string) (id string, err error) {
	if err = request.Validate(); err != nil {
		return "", err
	}
	fields := envelope.FieldMap{}
	if len(request.Fields) > 0 {
		fields, err = envelope.Decode(string(request.Fields))
		if err != nil {
			return "", errors.Wrap(ErrMalformedPayload, err.Error())
		}
	}
	payload, err := envelope.Encode(fields)
	if err != nil {
		return "", err
	}
	rec := dbmodels.PendingRequest{
		EntityType:     models.EntityType(request.EntityType),
		Operation:      models.CrudOperation(request.Operation),
		TargetEntityID: request.TargetEntityID,
		Payload:        payload,
		MakerID:        makerID,
		MakerName:      makerName,
		Status:         models.RequestStatusPending,
	}
	rec.SpaceID = spaceID
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to save the change request")
	}
	return id, nil
}

func (i impl) GetByID(spaceID, id string) (*mcapimodels.PendingRequestView, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) List(spaceID string, status *models.RequestStatus, page, limit int) ([]mcapimodels.PendingRequestView, int64, error) {
	list, rowCount, err := i.store.List(spaceID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]mcapimodels.PendingRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}

// Approve moves the request to APPROVED and synchronously materializes it.
// The decision is never rolled back on execution failure: the caller gets a
// partial-success view and the sweep worker retries later.
func (i impl) Approve(spaceID, id, checkerID, checkerName, comments string) (mcapimodels.DecisionView, error) {
	result := mcapimodels.DecisionView{RequestID: id}
	err := i.decide(spaceID, id, checkerID, checkerName, comments, models.RequestStatusApproved)
	if err != nil {
		return result, err
	}
	result.Status = string(models.RequestStatusApproved)

	execErr := i.ExecuteApproved(spaceID, id)
	if execErr != nil {
		i.GetLogger(spaceID, id).
			WithError(execErr).
			Error("change request is approved but not executed")
		result.ExecutionError = execErr.Error()
		return result, nil
	}
	result.Executed = true
	return result, nil
}

// Reject moves the request to REJECTED. No materialization happens.
func (i impl) Reject(spaceID, id, checkerID, checkerName, comments string) error {
	if strings.TrimSpace(comments) == "" {
		return ErrMissingComments
	}
	return i.decide(spaceID, id, checkerID, checkerName, comments, models.RequestStatusRejected)
}

// decide validates preconditions and performs the one-way status transition.
// The write is conditioned on the record still being PENDING, so the status
// read here is advisory only: a concurrent checker losing the race gets
// ErrAlreadyProcessed from the conditional update, not a double decision.
func (i impl) decide(spaceID, id, checkerID, checkerName, comments string, next models.RequestStatus) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.Status != models.RequestStatusPending {
		return ErrAlreadyProcessed
	}
	if rec.MakerID == checkerID {
		return ErrSelfApproval
	}
	ok, err := i.store.TryTransition(spaceID, id, models.RequestStatusPending, next, checkerID, checkerName, comments, time.Now())
	if err != nil {
		return errors.Wrap(err, "failed to save the decision")
	}
	if !ok {
		return ErrAlreadyProcessed
	}
	return nil
}

// ExecuteApproved materializes an approved request against the entity store.
// Safe to re-run: an already executed request is a no-op success.
func (i impl) ExecuteApproved(spaceID, id string) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.Status != models.RequestStatusApproved {
		return ErrInvalidState
	}
	if rec.ExecutedAt != nil {
		return nil
	}
	fields, err := envelope.Decode(rec.Payload)
	if err != nil {
		return errors.Wrap(ErrMalformedPayload, err.Error())
	}
	executor, err := i.registry.Get(rec.EntityType)
	if err != nil {
		return errors.Wrap(ErrUnsupportedEntityType, string(rec.EntityType))
	}
	switch rec.Operation {
	case models.OperationCreate:
		err = executor.Create(spaceID, fields)
	case models.OperationUpdate:
		err = executor.Update(spaceID, rec.TargetEntityID, fields)
	case models.OperationDelete:
		err = executor.Delete(spaceID, rec.TargetEntityID)
	default:
		return errors.Wrapf(ErrMalformedPayload, "unknown operation %q", rec.Operation)
	}
	if err != nil {
		return errors.Wrap(ErrExecutionFailed, err.Error())
	}
	err = i.store.MarkExecuted(spaceID, id, time.Now())
	if err != nil {
		// the mutation is applied, the sweep will retry the mark and the
		// executor tolerates the repeat
		i.GetLogger(spaceID, id).WithError(err).Error("failed to mark the change request as executed")
		return errors.Wrap(err, "failed to mark the change request as executed")
	}
	return nil
}
