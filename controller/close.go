package controller

import (
	"context"
	"time"

	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/repository"
)

// CloseAll gently closes the controller repository connection.
// Repositories that don't implement the repository.Closer interface keep no
// connections and the close is a no-op.
func (c *Controller) CloseAll(ctx context.Context) error {
	closer, ok := c.Repository.(repository.Closer)
	if !ok {
		log.Debugf("Repository: '%T' has no connections to close", c.Repository)
		return nil
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

	if err := closer.Close(ctx); err != nil {
		log.Errorf("Close failed: %v", err)
		return err
	}
	log.Debug("Closed the repository with success")
	return nil
}
