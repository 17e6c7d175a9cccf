// Package shutdown coordinates graceful teardown of long-running services.
package shutdown

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

type service struct {
	name string
	stop func(context.Context) error
}

// Manager stops registered services in parallel when a shutdown is requested.
type Manager struct {
	services []service
	timeout  time.Duration
	mu       sync.Mutex
}

func NewManager(timeout time.Duration) *Manager {
	return &Manager{timeout: timeout}
}

// Register adds a named stop function to run on shutdown.
func (m *Manager) Register(name string, stop func(context.Context) error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.services = append(m.services, service{name: name, stop: stop})
	logrus.WithField("service", name).Debug("Service registered for graceful shutdown")
}

// Wait blocks until SIGINT or SIGTERM, then runs Shutdown.
func (m *Manager) Wait() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logrus.WithField("signal", sig.String()).Info("Received shutdown signal")

	return m.Shutdown()
}

// Shutdown stops all registered services in parallel within the timeout.
func (m *Manager) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	m.mu.Lock()
	services := make([]service, len(m.services))
	copy(services, m.services)
	m.mu.Unlock()

	errChan := make(chan error, len(services))
	var wg sync.WaitGroup

	for _, svc := range services {
		wg.Add(1)
		go func(svc service) {
			defer wg.Done()

			if err := svc.stop(ctx); err != nil {
				logrus.WithError(err).WithField("service", svc.name).Error("Error during service shutdown")
				errChan <- fmt.Errorf("service %s shutdown failed: %w", svc.name, err)
			} else {
				logrus.WithField("service", svc.name).Info("Service shutdown completed")
			}
		}(svc)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logrus.Warn("Shutdown timeout exceeded, forcing shutdown")
		return fmt.Errorf("shutdown timeout exceeded")
	}

	close(errChan)
	for err := range errChan {
		// Report the first failure; the rest are already logged.
		return err
	}
	return nil
}
