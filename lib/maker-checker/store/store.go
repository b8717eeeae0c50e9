package pendingrequeststore

import (
	"time"

	"admin-dashboard-backend/models"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PendingRequest) (id string, err error)
	GetByID(spaceID, id string) (rec *dbmodels.PendingRequest, err error)
	List(spaceID string, status *models.RequestStatus, page, limit int) (list []dbmodels.PendingRequest, rowCount int64, err error)
	TryTransition(spaceID, id string, expected, next models.RequestStatus, checkerID, checkerName, comments string, authorizedAt time.Time) (bool, error)
	MarkExecuted(spaceID, id string, executedAt time.Time) error
	ListApprovedUnexecuted(limit int) (list []dbmodels.PendingRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PendingRequest) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.PendingRequest, error) {
	rec := dbmodels.PendingRequest{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(spaceID string, status *models.RequestStatus, page, limit int) (list []dbmodels.PendingRequest, rowCount int64, err error) {
	list = []dbmodels.PendingRequest{}
	tx := i.db.
		Model(&dbmodels.PendingRequest{}).
		Where("space_id = ?", spaceID)
	if status != nil {
		tx = tx.Where("status = ?", *status)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	i.setPage(tx, page, limit)
	err = tx.
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

// TryTransition performs the status change as a single conditional update.
// Returns false when the stored status no longer matches expected, so of two
// concurrent decisions on the same request exactly one wins.
func (i impl) TryTransition(spaceID, id string, expected, next models.RequestStatus, checkerID, checkerName, comments string, authorizedAt time.Time) (bool, error) {
	updMap := map[string]interface{}{
		"status":           next,
		"checker_id":       checkerID,
		"checker_name":     checkerName,
		"checker_comments": comments,
		"authorized_at":    authorizedAt,
	}
	tx := i.db.
		Model(&dbmodels.PendingRequest{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Where("status = ?", expected).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (i impl) MarkExecuted(spaceID, id string, executedAt time.Time) error {
	err := i.db.
		Model(&dbmodels.PendingRequest{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(map[string]interface{}{"executed_at": executedAt}).
		Error
	if err != nil {
		return err
	}
	return nil
}

// ListApprovedUnexecuted returns approved requests across all spaces whose
// mutation has not been materialized yet. Used by the sweep worker.
func (i impl) ListApprovedUnexecuted(limit int) (list []dbmodels.PendingRequest, err error) {
	list = []dbmodels.PendingRequest{}
	err = i.db.
		Where("status = ?", models.RequestStatusApproved).
		Where("executed_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	if limit == 0 {
		return
	}
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	tx.Offset(offset).Limit(limit)
}
