package mcapimodels

import (
	"encoding/json"
	"time"

	"admin-dashboard-backend/models"
	apimodels "admin-dashboard-backend/models/api"

	"github.com/pkg/errors"
)

type SubmitRequest struct {
	EntityType     string          `json:"entity_type"`
	Operation      string          `json:"operation"`
	TargetEntityID string          `json:"target_entity_id,omitempty"`
	Fields         json.RawMessage `json:"fields"`
}

func (r SubmitRequest) Validate() error {
	if r.EntityType == "" {
		return errors.New("entity type is not set")
	}
	op := models.CrudOperation(r.Operation)
	if !op.IsValid() {
		return errors.Errorf("unknown operation %q", r.Operation)
	}
	if op.RequiresTarget() && r.TargetEntityID == "" {
		return errors.New("target entity id is required for update/delete")
	}
	if op == models.OperationCreate && r.TargetEntityID != "" {
		return errors.New("target entity id must be empty for create")
	}
	if len(r.Fields) == 0 && op != models.OperationDelete {
		return errors.New("fields are not set")
	}
	return nil
}

type DecideRequest struct {
	Comments string `json:"comments"`
}

type ListRequest struct {
	apimodels.Pagination
	Status string `json:"status,omitempty"` // optional status filter
}

func (r ListRequest) Validate() error {
	if r.Status == "" {
		return nil
	}
	if !models.RequestStatus(r.Status).IsValid() {
		return errors.Errorf("unknown status %q", r.Status)
	}
	return nil
}

// StatusFilter returns nil when no filter is requested.
func (r ListRequest) StatusFilter() *models.RequestStatus {
	if r.Status == "" {
		return nil
	}
	status := models.RequestStatus(r.Status)
	return &status
}

type PendingRequestView struct {
	ID              string     `json:"id"`
	SpaceID         string     `json:"space_id"`
	EntityType      string     `json:"entity_type"`
	Operation       string     `json:"operation"`
	TargetEntityID  string     `json:"target_entity_id,omitempty"`
	Payload         string     `json:"payload"`
	MakerID         string     `json:"maker_id"`
	MakerName       string     `json:"maker_name"`
	CreatedAt       time.Time  `json:"created_at"`
	Status          string     `json:"status"`
	StatusName      string     `json:"status_name"`
	CheckerID       string     `json:"checker_id,omitempty"`
	CheckerName     string     `json:"checker_name,omitempty"`
	CheckerComments string     `json:"checker_comments,omitempty"`
	AuthorizedAt    *time.Time `json:"authorized_at,omitempty"`
	ExecutedAt      *time.Time `json:"executed_at,omitempty"`
}

type DecisionView struct {
	RequestID      string `json:"request_id"`
	Status         string `json:"status"`
	Executed       bool   `json:"executed"`
	ExecutionError string `json:"execution_error,omitempty"`
}
