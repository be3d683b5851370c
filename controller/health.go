package controller

import (
	"context"
	"time"

	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/repository"
)

// HealthCheck checks the controller repository health. Repositories that
// don't implement the repository.HealthChecker interface report the pass
// status with a note.
func (c *Controller) HealthCheck(ctx context.Context) (*repository.HealthResponse, error) {
	checker, ok := c.Repository.(repository.HealthChecker)
	if !ok {
		return &repository.HealthResponse{
			Status: repository.StatusPass,
			Notes:  []string{"repository doesn't define health checks"},
		}, nil
	}

	var cancelFunc context.CancelFunc
	if _, deadlineSet := ctx.Deadline(); !deadlineSet {
		// if no default timeout is already set - try with 30 second timeout.
		ctx, cancelFunc = context.WithTimeout(ctx, time.Second*30)
	} else {
		// otherwise create a cancel function.
		ctx, cancelFunc = context.WithCancel(ctx)
	}
	defer cancelFunc()

	health, err := checker.HealthCheck(ctx)
	if err != nil {
		log.Debugf("HealthCheck failed: %v", err)
		return nil, err
	}
	log.Debug2f("HealthCheck status: '%s'", health.Status)
	return health, nil
}
