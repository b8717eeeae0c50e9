package sweepworker

import (
	"context"
	"time"

	"admin-dashboard-backend/config"
	"admin-dashboard-backend/db"
	makercheckerhandler "admin-dashboard-backend/lib/maker-checker"
	pendingrequeststore "admin-dashboard-backend/lib/maker-checker/store"
	baseworker "admin-dashboard-backend/lib/utils/base-worker"
)

const sweepBatchSize = 100

// StartWorker periodically re-executes approved requests whose mutation was
// not materialized, e.g. after a crash between the decision and the entity
// store write. ExecuteApproved is idempotent, so repeats are harmless.
func StartWorker(ctx context.Context) {
	w := worker{
		BaseImpl: *baseworker.NewInstance(
			"approved_requests_sweep",
			time.Second*time.Duration(config.Conf.Sweep.FirstRunDelayInSec),
			time.Second*time.Duration(config.Conf.Sweep.RunIntervalInSec),
		),
		store: pendingrequeststore.NewInstance(db.DB),
	}
	go w.Run(ctx, w.sweep)
}

type worker struct {
	baseworker.BaseImpl
	store pendingrequeststore.Provider
}

func (w worker) sweep(ctx context.Context) {
	logger := w.GetLogger()
	list, err := w.store.ListApprovedUnexecuted(sweepBatchSize)
	if err != nil {
		logger.WithError(err).Error("failed to list approved unexecuted change requests")
		return
	}
	for _, rec := range list {
		select {
		case <-ctx.Done():
			return
		default:
		}
		err = makercheckerhandler.Instance.ExecuteApproved(rec.SpaceID, rec.ID)
		if err != nil {
			logger.
				WithField("space_id", rec.SpaceID).
				WithField("pending_request_id", rec.ID).
				WithError(err).
				Error("failed to re-execute the approved change request")
		}
	}
}
