package adminpanelauthhandler

import (
	"fmt"
	"time"

	"admin-dashboard-backend/db"
	adminpaneluserstore "admin-dashboard-backend/lib/admin-panel/store"
	authutils "admin-dashboard-backend/lib/utils/auth-utils"
	authapimodels "admin-dashboard-backend/models/api/auth"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: adminpaneluserstore.NewInstance(db.DB),
	}
}

type impl struct {
	store adminpaneluserstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to find the admin user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("admin user with this email is not found")
		return authapimodels.JWTResponse{}, errors.New("user with this email is not found")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("admin user failed the password check")
		return authapimodels.JWTResponse{}, errors.New("wrong email or password")
	}
	tokenString, err := authutils.GetAdminPanelToken(user.ID, fmt.Sprintf("%s %s", user.FirstName, user.LastName), user.Role)
	if err != nil {
		logger.WithError(err).Error("failed to issue JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to update the last login date")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}
