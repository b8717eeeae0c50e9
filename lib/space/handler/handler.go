package spacehandler

import (
	"admin-dashboard-backend/db"
	spacestore "admin-dashboard-backend/lib/space/store"
	spaceusersstore "admin-dashboard-backend/lib/space/users/store"
	authutils "admin-dashboard-backend/lib/utils/auth-utils"
	"admin-dashboard-backend/models"
	spaceapimodels "admin-dashboard-backend/models/api/space"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateSpace(data spaceapimodels.CreateSpace) (id string, err error)
	UpdateSpace(id string, data spaceapimodels.UpdateSpace) error
	GetByID(id string) (*spaceapimodels.SpaceView, error)
	List(page, limit int) (list []spaceapimodels.SpaceView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:         db.DB,
		store:      spacestore.NewInstance(db.DB),
		usersStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	db         *gorm.DB
	store      spacestore.Provider
	usersStore spaceusersstore.Provider
}

// CreateSpace creates the tenant together with its first space admin in one
// transaction.
func (i impl) CreateSpace(data spaceapimodels.CreateSpace) (id string, err error) {
	exist, err := i.usersStore.ExistByEmail(data.AdminUser.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.Errorf("user with email %v already exists", data.AdminUser.Email)
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		spaceRec := dbmodels.Space{
			OrganizationName: data.OrganizationName,
			Description:      data.Description,
			IsActive:         true,
		}
		spaceID, err := spacestore.NewInstance(tx).Create(spaceRec)
		if err != nil {
			return errors.Wrap(err, "failed to create the space")
		}
		userRec := dbmodels.SpaceUser{
			Password:    authutils.GetMD5Hash(data.AdminUser.Password),
			FirstName:   data.AdminUser.FirstName,
			LastName:    data.AdminUser.LastName,
			Email:       data.AdminUser.Email,
			IsActive:    true,
			PhoneNumber: data.AdminUser.PhoneNumber,
			SpaceID:     spaceID,
			Role:        models.SpaceAdminRole,
		}
		_, err = spaceusersstore.NewInstance(tx).Create(userRec)
		if err != nil {
			return errors.Wrap(err, "failed to create the space admin")
		}
		id = spaceID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (i impl) UpdateSpace(id string, data spaceapimodels.UpdateSpace) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Errorf("space %v is not found", id)
	}
	updMap := map[string]interface{}{}
	if data.OrganizationName != nil {
		updMap["organization_name"] = *data.OrganizationName
	}
	if data.Description != nil {
		updMap["description"] = *data.Description
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (*spaceapimodels.SpaceView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Errorf("space %v is not found", id)
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) List(page, limit int) ([]spaceapimodels.SpaceView, int64, error) {
	list, rowCount, err := i.store.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]spaceapimodels.SpaceView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}
