package signupcheck

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/okian/activities/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// PercentageMultiplier converts ratios into percentages.
const PercentageMultiplier = 100

type counters struct {
	signups            atomic.Int64
	duplicatesRejected atomic.Int64
	unregistrations    atomic.Int64
	absentRejected     atomic.Int64
	failed             atomic.Int64
}

// Run executes a complete signup check against a running service:
// every synthetic student signs up, a repeated signup must be rejected,
// every student unregisters, a repeated unregister must be rejected, and
// the registry is verified after each phase.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.Named("signupcheck")
	stats := &Stats{StartTime: time.Now()}
	client := NewClient(cfg.BaseURL, cfg.Timeout)

	log.Info(ctx, "starting signup check",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("students", cfg.Students),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout))

	// Step 1: Check service health
	if err := client.Health(ctx); err != nil {
		return nil, err
	}

	// Step 2: Snapshot and plan
	before, err := client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot registry: %w", err)
	}
	plan, err := Plan(cfg, before)
	if err != nil {
		return nil, err
	}
	stats.ActivitiesTargeted = countActivities(plan)
	stats.ParticipantsBefore = totalParticipants(before)

	var c counters

	// Step 3: Sign everyone up, then check that a repeat is rejected
	err = forEach(ctx, cfg.Workers, plan, func(ctx context.Context, e Enrollment) error {
		res, err := client.Signup(ctx, e.Activity, e.Email)
		if err != nil {
			return err
		}
		if !expect(ctx, cfg, &c, res, http.StatusOK, "signup", e) {
			return nil
		}
		c.signups.Add(1)

		res, err = client.Signup(ctx, e.Activity, e.Email)
		if err != nil {
			return err
		}
		if expect(ctx, cfg, &c, res, http.StatusBadRequest, "duplicate signup", e) {
			c.duplicatesRejected.Add(1)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("signup phase: %w", err)
	}

	// Step 4: Every student is listed exactly once
	if err := verify(ctx, client, plan, 1); err != nil {
		return nil, err
	}

	// Step 5: Unregister everyone, then check that a repeat is rejected
	err = forEach(ctx, cfg.Workers, plan, func(ctx context.Context, e Enrollment) error {
		res, err := client.Unregister(ctx, e.Activity, e.Email)
		if err != nil {
			return err
		}
		if !expect(ctx, cfg, &c, res, http.StatusOK, "unregister", e) {
			return nil
		}
		c.unregistrations.Add(1)

		res, err = client.Unregister(ctx, e.Activity, e.Email)
		if err != nil {
			return err
		}
		if expect(ctx, cfg, &c, res, http.StatusBadRequest, "repeat unregister", e) {
			c.absentRejected.Add(1)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unregister phase: %w", err)
	}

	// Step 6: Nobody is left behind
	if err := verify(ctx, client, plan, 0); err != nil {
		return nil, err
	}
	after, err := client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("final snapshot: %w", err)
	}

	stats.Signups = int(c.signups.Load())
	stats.DuplicatesRejected = int(c.duplicatesRejected.Load())
	stats.Unregistrations = int(c.unregistrations.Load())
	stats.AbsentRejected = int(c.absentRejected.Load())
	stats.Failed = int(c.failed.Load())
	stats.ParticipantsAfter = totalParticipants(after)
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(ctx, stats)

	if stats.ParticipantsAfter != stats.ParticipantsBefore {
		// Other clients may be using the service concurrently.
		log.Warn(ctx, "participant total changed during the run",
			logger.Int("before", stats.ParticipantsBefore),
			logger.Int("after", stats.ParticipantsAfter))
	}
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %d unexpected responses", ErrVerification, stats.Failed)
	}

	log.Info(ctx, "signup check completed successfully")
	return stats, nil
}

// forEach runs fn for every enrollment with at most workers in flight.
func forEach(ctx context.Context, workers int, plan []Enrollment, fn func(context.Context, Enrollment) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, e := range plan {
		g.Go(func() error {
			return fn(gctx, e)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("run requests: %w", err)
	}
	return nil
}

func expect(ctx context.Context, cfg *Config, c *counters, res Result, want int, step string, e Enrollment) bool {
	if res.Status == want {
		if cfg.Verbose {
			logger.Get().Debug(ctx, step+" ok",
				logger.String("activity", e.Activity),
				logger.String("email", e.Email),
				logger.Int("status", res.Status))
		}
		return true
	}
	c.failed.Add(1)
	logger.Get().Warn(ctx, step+" returned unexpected status",
		logger.String("activity", e.Activity),
		logger.String("email", e.Email),
		logger.Int("status", res.Status),
		logger.Int("want", want),
		logger.String("detail", res.Detail))
	return false
}

// verify checks that each planned email appears exactly want times on its
// activity's roster.
func verify(ctx context.Context, client *Client, plan []Enrollment, want int) error {
	catalog, err := client.List(ctx)
	if err != nil {
		return fmt.Errorf("verify registry: %w", err)
	}
	for _, e := range plan {
		a, ok := catalog[e.Activity]
		if !ok {
			return fmt.Errorf("%w: activity %q disappeared", ErrVerification, e.Activity)
		}
		got := 0
		for _, p := range a.Participants {
			if p == e.Email {
				got++
			}
		}
		if got != want {
			return fmt.Errorf("%w: %s listed %d times on %q, want %d", ErrVerification, e.Email, got, e.Activity, want)
		}
	}
	logger.Get().Info(ctx, "registry verified", logger.Int("students", len(plan)), logger.Int("occurrences", want))
	return nil
}

func countActivities(plan []Enrollment) int {
	seen := make(map[string]struct{})
	for _, e := range plan {
		seen[e.Activity] = struct{}{}
	}
	return len(seen)
}

func totalParticipants(catalog map[string]Activity) int {
	n := 0
	for _, a := range catalog {
		n += len(a.Participants)
	}
	return n
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var successRate, requestsPerSecond float64

	requests := stats.Signups + stats.DuplicatesRejected + stats.Unregistrations + stats.AbsentRejected + stats.Failed
	if requests > 0 {
		successRate = float64(requests-stats.Failed) / float64(requests) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		requestsPerSecond = float64(requests) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("signups", stats.Signups),
		logger.Int("duplicatesRejected", stats.DuplicatesRejected),
		logger.Int("unregistrations", stats.Unregistrations),
		logger.Int("absentRejected", stats.AbsentRejected),
		logger.Int("failed", stats.Failed),
		logger.Int("activitiesTargeted", stats.ActivitiesTargeted),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", successRate),
		logger.Float64("requestsPerSecond", requestsPerSecond))
}
