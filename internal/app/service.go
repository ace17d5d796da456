// Package service provides the activity registry service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	repository "github.com/okian/activities/internal/adapters/repository"
	"github.com/okian/activities/internal/domain/model"
	"github.com/okian/activities/internal/domain/seed"
	"github.com/okian/activities/pkg/logger"
	"github.com/okian/activities/pkg/metrics"
)

// Operation names used for logs and rejection metrics.
const (
	opSignup     = "signup"
	opUnregister = "unregister"
)

// Service owns the activity registry and exposes list, signup and
// unregister to the HTTP layer.
type Service struct {
	mu sync.RWMutex

	store repository.Store

	// Configuration
	seed            model.Catalog
	seedFile        string
	enforceCapacity bool

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed replaces the built-in catalog the registry starts with.
func WithSeed(c model.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.seed = c.Clone()
		}
	}
}

// WithSeedFile loads the starting catalog from a YAML/JSON file on Start.
func WithSeedFile(path string) Option {
	return func(s *Service) {
		s.seedFile = path
	}
}

// WithCapacityEnforcement rejects signups once max_participants is reached.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *Service) {
		s.enforceCapacity = enabled
	}
}

// WithStore injects a prebuilt store; seed options are then ignored.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// New constructs a Service whose registry is ready to serve immediately;
// Start only matters when a seed file has to be loaded.
func New(opts ...Option) *Service {
	s := &Service{
		seed: seed.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = s.newStore(context.Background(), s.seed)
	}
	return s
}

func (s *Service) newStore(ctx context.Context, c model.Catalog) repository.Store {
	return repository.NewRegistryStore(ctx, c, repository.WithCapacityEnforcement(s.enforceCapacity))
}

// Start loads the seed file, if any, and marks the service started.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting activity registry...")

	if s.seedFile != "" {
		c, err := seed.Load(ctx, s.seedFile)
		if err != nil {
			return fmt.Errorf("start registry: %w", err)
		}
		s.seed = c
		s.store = s.newStore(ctx, c)
		s.logger.Info(ctx, "loaded seed file", logger.String("path", s.seedFile))
	}

	s.started = true
	s.logger.Info(ctx, "activity registry started",
		logger.Int("activities", s.store.Count(ctx)),
		logger.Bool("enforceCapacity", s.enforceCapacity),
	)
	s.logger.Debug(ctx, "registry activities", logger.Any("names", s.store.Names(ctx)))
	return nil
}

// Stop marks the service stopped. The registry is discarded with the process.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	if s.logger != nil {
		s.logger.Info(context.Background(), "activity registry stopped")
	}
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	l := s.logger
	s.mu.RUnlock()
	if l == nil {
		return logger.Get()
	}
	return l
}

func (s *Service) registry() repository.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (model.Catalog, error) {
	return s.registry().List(ctx), nil
}

// GetActivity returns a single activity by name.
func (s *Service) GetActivity(ctx context.Context, name string) (model.Activity, error) {
	return s.registry().Get(ctx, name)
}

// Signup enrolls email in the named activity and returns a confirmation.
func (s *Service) Signup(ctx context.Context, name, email string) (string, error) {
	a, err := s.registry().Signup(ctx, name, email)
	if err != nil {
		s.reject(ctx, opSignup, name, email, err)
		return "", err
	}

	metrics.RecordSignup(name)
	s.log().Info(ctx, "participant signed up",
		logger.String("activity", name),
		logger.String("email", email),
		logger.Int("participants", len(a.Participants)),
	)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity and returns a confirmation.
func (s *Service) Unregister(ctx context.Context, name, email string) (string, error) {
	a, err := s.registry().Unregister(ctx, name, email)
	if err != nil {
		s.reject(ctx, opUnregister, name, email, err)
		return "", err
	}

	metrics.RecordUnregistration(name)
	s.log().Info(ctx, "participant unregistered",
		logger.String("activity", name),
		logger.String("email", email),
		logger.Int("participants", len(a.Participants)),
	)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func (s *Service) reject(ctx context.Context, op, name, email string, err error) {
	reason := rejectionReason(err)
	metrics.RecordMembershipRejected(op, reason)
	s.log().Debug(ctx, op+" rejected",
		logger.String("activity", name),
		logger.String("email", email),
		logger.String("reason", reason),
		logger.Error(err),
	)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, repository.ErrNotSignedUp):
		return "not_signed_up"
	case errors.Is(err, repository.ErrActivityFull):
		return "full"
	default:
		return "unknown"
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	enforce := s.enforceCapacity
	store := s.store
	s.mu.RUnlock()

	ctx := context.Background()
	catalog := store.List(ctx)
	participants := catalog.ParticipantCount()

	metrics.UpdateActivitiesTotal(len(catalog))
	metrics.UpdateTotalParticipants(participants)

	return map[string]interface{}{
		"started":         started,
		"activities":      len(catalog),
		"participants":    participants,
		"enforceCapacity": enforce,
	}
}
