package core

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neuronlabs/sideload/config"
	"github.com/neuronlabs/sideload/controller"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/repository"
	"github.com/neuronlabs/sideload/server"
)

// Service is the root sideload service structure.
type Service struct {
	// Options are the service options.
	Options *Options

	// Controller keeps the service serializers, repository and renderer.
	Controller *controller.Controller
	// Server serves the rendered resource documents.
	Server server.Server

	initialized bool
}

// New creates new service with provided options. The controller gets
// created from the options config, the serializers are registered and the
// repository is set.
func New(options ...Option) (*Service, error) {
	svc := &Service{Options: defaultOptions()}
	for _, option := range options {
		option(svc.Options)
	}

	cfg := svc.Options.Config
	if cfg == nil && svc.Options.ConfigFile != "" {
		var err error
		cfg, err = config.ReadNamedConfig(svc.Options.ConfigFile, svc.Options.ConfigPaths...)
		if err != nil {
			return nil, err
		}
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if svc.Options.NamingConvention != "" {
		cfg.NamingConvention = svc.Options.NamingConvention
	}
	c, err := controller.New(cfg)
	if err != nil {
		return nil, err
	}
	svc.Controller = c

	if len(svc.Options.Serializers) == 0 {
		return nil, errors.WrapDet(ErrService, "no serializers defined for the service")
	}
	if err = c.RegisterSerializers(svc.Options.Serializers...); err != nil {
		return nil, err
	}
	if svc.Options.Repository != nil {
		if err = c.SetRepository(svc.Options.Repository); err != nil {
			return nil, err
		}
	}
	svc.Server = svc.Options.Server
	return svc, nil
}

// Initialize establishes the repository connection and initializes the
// server endpoints.
func (s *Service) Initialize(ctx context.Context) error {
	if ctx == nil {
		ctx = s.Options.Context
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

	if err := s.Controller.DialAll(ctx); err != nil {
		return err
	}
	if s.Server != nil {
		if err := s.Server.Initialize(s.serverOptions()); err != nil {
			return err
		}
	}
	s.initialized = true
	return nil
}

// Run starts the service. With the signal handling enabled the service
// shuts the server down gently on the os interrupt signals and on the
// context finish.
func (s *Service) Run(ctx context.Context) error {
	if s.Server == nil {
		return errors.WrapDet(server.ErrServer, "no server defined for the service")
	}
	if !s.initialized {
		if err := s.Initialize(ctx); err != nil {
			return err
		}
	}
	if ctx == nil {
		ctx = s.Options.Context
	}
	if !s.Options.HandleSignals {
		return s.Server.Serve()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGABRT, syscall.SIGINT, syscall.SIGTERM)

	errorChan := make(chan error, 1)
	go func() {
		var err error
		if err = s.Server.Serve(); err != nil && err != http.ErrServerClosed {
			log.Errorf("Serve failed: %v", err)
			errorChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Infof("Service context had finished.")
	case sig := <-quit:
		log.Infof("Received signal: '%s'. Shutdown server begins...", sig.String())
	case err := <-errorChan:
		// the error from the server listen and serve
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()
	if err := s.Server.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
		return err
	}
	log.Info("Server had shutdown successfully.")
	return nil
}

// CloseAll closes the repository connections.
func (s *Service) CloseAll(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return s.Controller.CloseAll(ctx)
}

// HealthCheck checks the service repository health.
func (s *Service) HealthCheck(ctx context.Context) (*repository.HealthResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return s.Controller.HealthCheck(ctx)
}

func (s *Service) serverOptions() server.Options {
	return server.Options{
		Name:       s.Options.Name,
		Version:    s.Options.Version,
		Controller: s.Controller,
	}
}
