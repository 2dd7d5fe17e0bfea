package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sports-camp360/camp-service/internal/repositories"
	"github.com/sports-camp360/camp-service/internal/validator"
)

// serviceManager implements ServiceManager interface
type serviceManager struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	payments  PaymentServiceConfig

	userService       UserService
	classService      ClassService
	catalogService    CatalogService
	enrollmentService EnrollmentService
	paymentService    PaymentService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

func NewServiceManager(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, payments PaymentServiceConfig) ServiceManager {
	return &serviceManager{
		repo:      repo,
		logger:    logger,
		validator: validator,
		payments:  payments,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.payments.Provider == nil || sm.payments.Publisher == nil {
		return fmt.Errorf("payment provider and event publisher are required")
	}

	sm.logger.Info("Initializing service manager")

	sm.userService = NewUserService(sm.repo, sm.logger, sm.validator)
	sm.classService = NewClassService(sm.repo, sm.logger, sm.validator)
	sm.catalogService = NewCatalogService(sm.repo, sm.logger, sm.validator)
	sm.enrollmentService = NewEnrollmentService(sm.repo, sm.logger, sm.validator)
	sm.paymentService = NewPaymentService(sm.repo, sm.logger, sm.validator, sm.payments)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")
	return nil
}

func (sm *serviceManager) mustBeReady(name string) {
	if !sm.initialized {
		panic(fmt.Sprintf("service manager not initialized: %s requested", name))
	}
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("user")
	return sm.userService
}

func (sm *serviceManager) Class() ClassService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("class")
	return sm.classService
}

func (sm *serviceManager) Catalog() CatalogService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("catalog")
	return sm.catalogService
}

func (sm *serviceManager) Enrollment() EnrollmentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("enrollment")
	return sm.enrollmentService
}

func (sm *serviceManager) Payment() PaymentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady("payment")
	return sm.paymentService
}

// HealthCheck pings the store and cache behind the repository.
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}
	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}
	return nil
}

// Shutdown closes the event publisher. The repository is owned by its
// manager and closed there.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}
	sm.logger.Info("Shutting down service manager")

	if sm.payments.Publisher != nil {
		if err := sm.payments.Publisher.Close(); err != nil {
			sm.logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")
	return nil
}
