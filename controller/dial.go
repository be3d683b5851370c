package controller

import (
	"context"
	"time"

	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/repository"
)

// DialAll establish the connection for the controller repository.
// Repositories that don't implement the repository.Dialer interface
// don't maintain connections and the dial is a no-op.
func (c *Controller) DialAll(ctx context.Context) error {
	dialer, ok := c.Repository.(repository.Dialer)
	if !ok {
		log.Debugf("Repository: '%T' doesn't establish connections", c.Repository)
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

	if err := dialer.Dial(ctx); err != nil {
		log.Errorf("Dial failed: %v", err)
		return err
	}
	log.Debug("Successful dial to the repository")
	return nil
}
