package adminpaneluserstore

import (
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AdminPanelUser) (string, error)
	Update(id string, updMap map[string]interface{}) error
	FindByEmail(email string) (rec *dbmodels.AdminPanelUser, err error)
	GetByID(id string) (rec *dbmodels.AdminPanelUser, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AdminPanelUser) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.AdminPanelUser{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) FindByEmail(email string) (rec *dbmodels.AdminPanelUser, err error) {
	rec = &dbmodels.AdminPanelUser{}
	err = i.db.
		Where("email = ?", email).
		First(rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.AdminPanelUser, err error) {
	rec = &dbmodels.AdminPanelUser{}
	err = i.db.
		Where("id = ?", id).
		First(rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}
