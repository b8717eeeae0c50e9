package filestoragestore

import (
	"time"

	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.FileStorage) (string, error)
	GetByID(spaceID, id string) (rec *dbmodels.FileStorage, err error)
	List(spaceID string, page, limit int) (list []dbmodels.FileStorage, rowCount int64, err error)
	MarkDeleted(spaceID, id, deletedBy string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FileStorage) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Where("is_deleted = ?", false).
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

func (i impl) List(spaceID string, page, limit int) (list []dbmodels.FileStorage, rowCount int64, err error) {
	tx := i.db.
		Model(&dbmodels.FileStorage{}).
		Where("space_id = ?", spaceID).
		Where("is_deleted = ?", false)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	i.setPage(tx, page, limit)
	err = tx.
		Order("created_at DESC").
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

// MarkDeleted soft-deletes the record, the object itself stays in storage.
func (i impl) MarkDeleted(spaceID, id, deletedBy string) error {
	now := time.Now()
	err := i.db.
		Model(&dbmodels.FileStorage{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_by": deletedBy,
			"deleted_at": now,
		}).
		Error
	if err != nil {
		return err
	}
	return nil
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
