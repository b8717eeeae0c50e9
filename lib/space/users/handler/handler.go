package spaceusershandler

import (
	"admin-dashboard-backend/db"
	spaceusersstore "admin-dashboard-backend/lib/space/users/store"
	authutils "admin-dashboard-backend/lib/utils/auth-utils"
	"admin-dashboard-backend/models"
	spaceapimodels "admin-dashboard-backend/models/api/space"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	CreateUser(spaceID string, data spaceapimodels.CreateSpaceUser) (id string, err error)
	UpdateUser(spaceID, userID string, data spaceapimodels.UpdateSpaceUser) error
	DeleteUser(spaceID, userID string) error
	GetByID(spaceID, userID string) (*spaceapimodels.SpaceUserView, error)
	GetListUsers(spaceID string, page, limit int) (list []spaceapimodels.SpaceUserView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store spaceusersstore.Provider
}

func (i impl) CreateUser(spaceID string, data spaceapimodels.CreateSpaceUser) (id string, err error) {
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.Errorf("user with email %v already exists", data.Email)
	}
	role := models.UserRole(data.Role)
	if data.Role == "" {
		role = models.SpaceMakerRole
	}
	if !role.IsValid() || role == models.UserRoleSuperAdmin {
		return "", errors.Errorf("unknown role %q", data.Role)
	}
	rec := dbmodels.SpaceUser{
		Password:    authutils.GetMD5Hash(data.Password),
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		IsActive:    true,
		PhoneNumber: data.PhoneNumber,
		SpaceID:     spaceID,
		Role:        role,
	}
	return i.store.Create(rec)
}

func (i impl) UpdateUser(spaceID, userID string, data spaceapimodels.UpdateSpaceUser) error {
	user, err := i.getSpaceUser(spaceID, userID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{}
	if data.Password != nil {
		updMap["password"] = authutils.GetMD5Hash(*data.Password)
	}
	if data.FirstName != nil {
		updMap["first_name"] = *data.FirstName
	}
	if data.LastName != nil {
		updMap["last_name"] = *data.LastName
	}
	if data.PhoneNumber != nil {
		updMap["phone_number"] = *data.PhoneNumber
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	if data.Role != nil {
		role := models.UserRole(*data.Role)
		if !role.IsValid() || role == models.UserRoleSuperAdmin {
			return errors.Errorf("unknown role %q", *data.Role)
		}
		updMap["role"] = role
	}
	return i.store.Update(user.ID, updMap)
}

func (i impl) DeleteUser(spaceID, userID string) error {
	user, err := i.getSpaceUser(spaceID, userID)
	if err != nil {
		return err
	}
	return i.store.Delete(user.ID)
}

func (i impl) GetByID(spaceID, userID string) (*spaceapimodels.SpaceUserView, error) {
	user, err := i.getSpaceUser(spaceID, userID)
	if err != nil {
		return nil, err
	}
	view := user.ToModel()
	return &view, nil
}

func (i impl) GetListUsers(spaceID string, page, limit int) ([]spaceapimodels.SpaceUserView, int64, error) {
	list, rowCount, err := i.store.GetList(spaceID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]spaceapimodels.SpaceUserView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}

func (i impl) getSpaceUser(spaceID, userID string) (*dbmodels.SpaceUser, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.SpaceID != spaceID {
		return nil, errors.Errorf("user %v is not found in the space", userID)
	}
	return user, nil
}
