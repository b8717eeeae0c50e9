package db

import (
	"admin-dashboard-backend/config"
	adminpaneluserstore "admin-dashboard-backend/lib/admin-panel/store"
	authutils "admin-dashboard-backend/lib/utils/auth-utils"
	"admin-dashboard-backend/models"
	dbmodels "admin-dashboard-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addSuperAdmin()
}

func addSuperAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("super admin is not seeded, ADMIN_EMAIL is not set")
		return
	}
	adminStore := adminpaneluserstore.NewInstance(DB)
	existedRec, err := adminStore.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("failed to seed super admin")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.AdminPanelUser{
		IsActive:    true,
		Role:        models.UserRoleSuperAdmin,
		Password:    authutils.GetMD5Hash(config.Conf.Admin.Password),
		FirstName:   config.Conf.Admin.FirstName,
		LastName:    config.Conf.Admin.LastName,
		Email:       config.Conf.Admin.Email,
		PhoneNumber: config.Conf.Admin.PhoneNumber,
	}
	_, err = adminStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to seed super admin")
	}
}
