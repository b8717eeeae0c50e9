package dbmodels

import (
	"time"

	"admin-dashboard-backend/models"
	mcapimodels "admin-dashboard-backend/models/api/makerchecker"
)

// PendingRequest is a proposed entity mutation captured by a maker and
// awaiting a checker decision. Records are append-only: a request is
// mutated exactly once, by the PENDING -> APPROVED/REJECTED transition,
// and never deleted.
type PendingRequest struct {
	BaseSpaceModel
	EntityType     models.EntityType    `gorm:"type:varchar(50);index"`
	Operation      models.CrudOperation `gorm:"type:varchar(20)"`
	TargetEntityID string               `gorm:"type:varchar(36)"`
	Payload        string               `gorm:"type:text"`
	MakerID        string               `gorm:"type:varchar(36);index"`
	MakerName      string               `gorm:"type:varchar(300)"`
	Status         models.RequestStatus `gorm:"type:varchar(20);index"`
	CheckerID      string               `gorm:"type:varchar(36)"`
	CheckerName    string               `gorm:"type:varchar(300)"`
	CheckerComments string              `gorm:"type:varchar(1000)"`
	AuthorizedAt   *time.Time
	// ExecutedAt is set once the approved mutation has been applied to the
	// entity store. An APPROVED record with nil ExecutedAt is picked up by
	// the sweep worker and re-executed.
	ExecutedAt *time.Time
}

func (r PendingRequest) ToModel() mcapimodels.PendingRequestView {
	return mcapimodels.PendingRequestView{
		ID:              r.ID,
		SpaceID:         r.SpaceID,
		EntityType:      string(r.EntityType),
		Operation:       string(r.Operation),
		TargetEntityID:  r.TargetEntityID,
		Payload:         r.Payload,
		MakerID:         r.MakerID,
		MakerName:       r.MakerName,
		CreatedAt:       r.CreatedAt,
		Status:          string(r.Status),
		StatusName:      r.Status.ToHuman(),
		CheckerID:       r.CheckerID,
		CheckerName:     r.CheckerName,
		CheckerComments: r.CheckerComments,
		AuthorizedAt:    r.AuthorizedAt,
		ExecutedAt:      r.ExecutedAt,
	}
}
