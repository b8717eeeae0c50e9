package productstore

import (
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Product) (string, error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	Delete(spaceID, id string) error
	GetByID(spaceID, id string) (rec *dbmodels.Product, err error)
	FindByCode(spaceID, code string) (rec *dbmodels.Product, err error)
	List(spaceID string, page, limit int) (list []dbmodels.Product, rowCount int64, err error)
	ListAll(spaceID string) (list []dbmodels.Product, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Product) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(spaceID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Product{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(spaceID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Delete(&dbmodels.Product{}).
		Error
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.Product, error) {
	rec := dbmodels.Product{}
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

func (i impl) FindByCode(spaceID, code string) (*dbmodels.Product, error) {
	rec := dbmodels.Product{}
	err := i.db.
		Where("code = ?", code).
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

func (i impl) List(spaceID string, page, limit int) (list []dbmodels.Product, rowCount int64, err error) {
	tx := i.db.
		Model(&dbmodels.Product{}).
		Where("space_id = ?", spaceID)
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

func (i impl) ListAll(spaceID string) (list []dbmodels.Product, err error) {
	err = i.db.
		Where("space_id = ?", spaceID).
		Order("code ASC").
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
