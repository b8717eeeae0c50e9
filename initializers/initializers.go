package initializers

import (
	"context"

	"admin-dashboard-backend/config"
	"admin-dashboard-backend/db"
	"admin-dashboard-backend/fiberlog"
	adminpanelauthhandler "admin-dashboard-backend/lib/admin-panel/auth"
	xlsexport "admin-dashboard-backend/lib/export/xls"
	filestoragehandler "admin-dashboard-backend/lib/file-storage"
	makercheckerhandler "admin-dashboard-backend/lib/maker-checker"
	mcexecutor "admin-dashboard-backend/lib/maker-checker/executor"
	sweepworker "admin-dashboard-backend/lib/maker-checker/sweep-worker"
	producthandler "admin-dashboard-backend/lib/product"
	productstore "admin-dashboard-backend/lib/product/store"
	reporthandler "admin-dashboard-backend/lib/report"
	spaceauthhandler "admin-dashboard-backend/lib/space/auth"
	spacehandler "admin-dashboard-backend/lib/space/handler"
	spaceusershandler "admin-dashboard-backend/lib/space/users/handler"
	spaceusersstore "admin-dashboard-backend/lib/space/users/store"
	"admin-dashboard-backend/models"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	filestoragehandler.NewHandler()
	spaceusershandler.NewHandler()
	spacehandler.NewHandler()
	spaceauthhandler.NewHandler()
	adminpanelauthhandler.NewHandler()
	producthandler.NewHandler()
	reporthandler.NewHandler()
	xlsexport.NewHandler()
	makercheckerhandler.NewHandler(newExecutorRegistry())
	go initWorkers(ctx)
}

// newExecutorRegistry binds every reviewable entity type to the executor that
// materializes approved changes for it.
func newExecutorRegistry() *mcexecutor.Registry {
	registry := mcexecutor.NewRegistry()
	registry.Register(models.EntityTypeUser, mcexecutor.NewUserExecutor(spaceusersstore.NewInstance(db.DB)))
	registry.Register(models.EntityTypeProduct, mcexecutor.NewProductExecutor(productstore.NewInstance(db.DB)))
	return registry
}

func initWorkers(ctx context.Context) {
	// re-executes approved requests whose mutation did not materialize
	sweepworker.StartWorker(ctx)
}
