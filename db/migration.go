package db

import (
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Running migrations")
	if err := DB.AutoMigrate(&dbmodels.Space{}); err != nil {
		return errors.Wrap(err, "failed to migrate Space")
	}
	if err := DB.AutoMigrate(&dbmodels.SpaceUser{}); err != nil {
		return errors.Wrap(err, "failed to migrate SpaceUser")
	}
	if err := DB.AutoMigrate(&dbmodels.AdminPanelUser{}); err != nil {
		return errors.Wrap(err, "failed to migrate AdminPanelUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Product{}); err != nil {
		return errors.Wrap(err, "failed to migrate Product")
	}
	if err := DB.AutoMigrate(&dbmodels.PendingRequest{}); err != nil {
		return errors.Wrap(err, "failed to migrate PendingRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "failed to migrate FileStorage")
	}
	log.Info("Migrations finished")
	return nil
}
