package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/CodeSmart-NG/school-service/internal/events"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/validator"
)

// ServiceManagerConfig holds dependencies the services share.
type ServiceManagerConfig struct {
	// Maximum testimonials returned by the public endpoint.
	TestimonialLimit int

	// Checkout gateway used by the payment service. When nil a stub
	// gateway is used and checkout URLs are not produced.
	Gateway CheckoutGateway
}

// serviceManager implements ServiceManager.
type serviceManager struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	config    ServiceManagerConfig

	contactService     ContactService
	catalogService     CatalogService
	enrollmentService  EnrollmentService
	newsletterService  NewsletterService
	testimonialService TestimonialService
	scheduleService    ScheduleService
	paymentService     PaymentService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, config ServiceManagerConfig) ServiceManager {
	if config.TestimonialLimit <= 0 {
		config.TestimonialLimit = publicTestimonialLimit
	}
	if config.Gateway == nil {
		config.Gateway = NewStubGateway()
	}
	return &serviceManager{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		config:    config,
	}
}

// Initialize wires up all services.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.contactService = NewContactService(sm.repo, sm.logger, sm.validator, sm.publisher)
	sm.catalogService = NewCatalogService(sm.repo, sm.logger)
	sm.enrollmentService = NewEnrollmentService(sm.repo, sm.logger, sm.validator, sm.publisher)
	sm.newsletterService = NewNewsletterService(sm.repo, sm.logger, sm.validator, sm.publisher)
	sm.testimonialService = NewTestimonialService(sm.repo, sm.logger, sm.config.TestimonialLimit)
	sm.scheduleService = NewScheduleService(sm.logger)
	sm.paymentService = NewPaymentService(sm.repo, sm.logger, sm.validator, sm.publisher, sm.config.Gateway)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")
	return nil
}

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

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")
	sm.shutdown = true
	return nil
}

func (sm *serviceManager) mustBeInitialized() {
	if !sm.initialized {
		panic("service manager not initialized")
	}
}

func (sm *serviceManager) Contact() ContactService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.contactService
}

func (sm *serviceManager) Catalog() CatalogService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.catalogService
}

func (sm *serviceManager) Enrollment() EnrollmentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.enrollmentService
}

func (sm *serviceManager) Newsletter() NewsletterService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.newsletterService
}

func (sm *serviceManager) Testimonial() TestimonialService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.testimonialService
}

func (sm *serviceManager) Schedule() ScheduleService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.scheduleService
}

func (sm *serviceManager) Payment() PaymentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.paymentService
}
