// Package service orchestrates one refresh operation end to end: loading
// bracket, single-flight fetch, rendering, and applying the instruction
// sequence to a display surface.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"usercards/internal/platform/metrics"
	"usercards/internal/users/display"
	"usercards/internal/users/models"
	"usercards/internal/users/render"
)

// UserFetcher fetches one classified outcome from the upstream API.
type UserFetcher interface {
	Fetch(ctx context.Context) models.FetchOutcome
}

// Service drives the fetch-and-render pipeline.
//
// Concurrent triggers are coalesced: while a fetch is in flight, additional
// Refresh calls share its outcome instead of issuing a second upstream
// request. Each caller still renders into its own surface.
type Service struct {
	fetcher UserFetcher
	logger  *slog.Logger
	metrics *metrics.Metrics
	flight  singleflight.Group
}

// New creates the refresh service.
func New(fetcher UserFetcher, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger,
		metrics: m,
	}
}

// Refresh runs one full operation against the given surface and returns the
// fetch outcome. The loading indicator is hidden exactly once on every exit
// path, including a panicking surface.
func (s *Service) Refresh(ctx context.Context, surface display.Surface) models.FetchOutcome {
	s.metrics.RefreshesInFlight.Inc()
	defer s.metrics.RefreshesInFlight.Dec()

	surface.ShowLoading()
	surface.HideError()
	defer surface.HideLoading()

	outcome := s.fetchShared(ctx)
	s.observe(outcome)

	s.apply(surface, render.Render(outcome))
	return outcome
}

// fetchShared performs the fetch through the single-flight group so duplicate
// triggers reuse the in-flight result.
func (s *Service) fetchShared(ctx context.Context) models.FetchOutcome {
	start := time.Now()
	v, _, shared := s.flight.Do("users", func() (any, error) {
		return s.fetcher.Fetch(ctx), nil
	})
	s.metrics.FetchLatency.Observe(time.Since(start).Seconds())
	if shared {
		s.metrics.RefreshesCoalesced.Inc()
		s.logger.Debug("refresh coalesced into in-flight fetch")
	}
	return v.(models.FetchOutcome)
}

// observe records the outcome in metrics and logs, keeping the raw diagnostic
// out of anything user-facing.
func (s *Service) observe(outcome models.FetchOutcome) {
	if outcome.Failed() {
		s.metrics.FetchesTotal.WithLabelValues(string(outcome.Err.Kind)).Inc()
		s.logger.Warn("fetch failed",
			"kind", outcome.Err.Kind,
			"error", outcome.Err.Error(),
		)
		return
	}
	s.metrics.FetchesTotal.WithLabelValues("success").Inc()
	s.logger.Info("fetch succeeded", "user_count", len(outcome.Users))
}

// apply overwrites the card container and replays the instruction sequence.
// A panicking surface operation is downgraded to the generic error sentence;
// the loading bracket in Refresh is unaffected either way.
func (s *Service) apply(surface display.Surface, instructions []render.Instruction) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("rendering failed", "panic", r)
			surface.ShowError(render.UserSentence(models.KindUnknown))
		}
	}()

	surface.ClearCards()
	for _, in := range instructions {
		switch in.Op {
		case render.OpShowCard:
			surface.AppendCard(in.Card)
			s.metrics.CardsRendered.Inc()
		case render.OpShowEmpty:
			surface.ShowEmpty()
		case render.OpShowError:
			surface.ShowError(in.Message)
		}
	}
}
