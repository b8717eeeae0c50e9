package mcexecutor

import (
	"admin-dashboard-backend/lib/envelope"
	spaceusersstore "admin-dashboard-backend/lib/space/users/store"
	authutils "admin-dashboard-backend/lib/utils/auth-utils"
	"admin-dashboard-backend/models"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
)

// NewUserExecutor applies approved change requests to space users.
func NewUserExecutor(store spaceusersstore.Provider) Provider {
	return &userExecutor{
		store: store,
	}
}

type userExecutor struct {
	store spaceusersstore.Provider
}

func (e userExecutor) Create(spaceID string, fields envelope.FieldMap) error {
	email := fields.StringOr("email", "")
	if email == "" {
		return errors.New("user email is not set in the change payload")
	}
	existed, err := e.store.FindByEmail(email)
	if err != nil {
		return err
	}
	if existed != nil {
		// the request was already materialized on a prior attempt
		return nil
	}
	rec := dbmodels.SpaceUser{
		Email:       email,
		FirstName:   fields.StringOr("first_name", ""),
		LastName:    fields.StringOr("last_name", ""),
		PhoneNumber: fields.StringOr("phone_number", ""),
		IsActive:    fields.BoolOr("is_active", true),
		Role:        models.UserRole(fields.StringOr("role", string(models.SpaceMakerRole))),
	}
	rec.SpaceID = spaceID
	if password := fields.StringOr("password", ""); password != "" {
		rec.Password = authutils.GetMD5Hash(password)
	}
	_, err = e.store.Create(rec)
	return err
}

func (e userExecutor) Update(spaceID, targetID string, fields envelope.FieldMap) error {
	user, err := e.store.GetByID(targetID)
	if err != nil {
		return err
	}
	if user == nil || user.SpaceID != spaceID {
		return errors.Errorf("user %v is not found in the space", targetID)
	}
	updMap := map[string]interface{}{}
	if fields.Has("email") {
		updMap["email"] = fields.StringOr("email", user.Email)
	}
	if fields.Has("first_name") {
		updMap["first_name"] = fields.StringOr("first_name", "")
	}
	if fields.Has("last_name") {
		updMap["last_name"] = fields.StringOr("last_name", "")
	}
	if fields.Has("phone_number") {
		updMap["phone_number"] = fields.StringOr("phone_number", "")
	}
	if fields.Has("is_active") {
		updMap["is_active"] = fields.BoolOr("is_active", user.IsActive)
	}
	if fields.Has("role") {
		updMap["role"] = fields.StringOr("role", string(user.Role))
	}
	if password := fields.StringOr("password", ""); password != "" {
		updMap["password"] = authutils.GetMD5Hash(password)
	}
	return e.store.Update(targetID, updMap)
}

func (e userExecutor) Delete(spaceID, targetID string) error {
	user, err := e.store.GetByID(targetID)
	if err != nil {
		return err
	}
	if user == nil || user.SpaceID != spaceID {
		// already gone, nothing to do on retry
		return nil
	}
	return e.store.Delete(targetID)
}
