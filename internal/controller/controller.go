// Package controller keeps applied power settings and persisted preferences
// in sync.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/watchfire-io/turboboost/internal/models"
)

// Applier applies a turbo state for one power context.
type Applier interface {
	Apply(ctx context.Context, c models.PowerContext, enabled bool) error
}

// Store persists preferences.
type Store interface {
	Load() (models.Preferences, error)
	Get(c models.PowerContext) bool
	Set(c models.PowerContext, enabled bool) error
	Snapshot() models.Preferences
}

// Controller wires the store and applier together. Calls must be
// serialized by the caller; there is a single control path.
type Controller struct {
	store   Store
	applier Applier
	logger  zerolog.Logger
}

// New creates a controller.
func New(store Store, applier Applier, logger zerolog.Logger) *Controller {
	return &Controller{
		store:   store,
		applier: applier,
		logger:  logger.With().Str("component", "controller").Logger(),
	}
}

// Initialize loads persisted preferences and re-applies both contexts so the
// OS matches them even if the scheme drifted. Storage errors fall back to
// defaults; apply errors for each context are joined and returned after
// both contexts have been attempted.
func (c *Controller) Initialize(ctx context.Context) error {
	c.logger.Info().Msg("Initializing Turbo Boost Manager")

	if _, err := c.store.Load(); err != nil {
		c.logger.Warn().Err(err).Msg("Continuing with default preferences")
	}

	c.logger.Info().Msg("Applying saved settings")
	var errs []error
	for _, pc := range models.AllContexts() {
		if err := c.applier.Apply(ctx, pc, c.store.Get(pc)); err != nil {
			errs = append(errs, fmt.Errorf("apply %s: %w", pc, err))
		}
	}
	return errors.Join(errs...)
}

// HandleUserToggle applies the requested turbo state and, only if that
// succeeds, records it. A failed apply leaves the preference untouched and
// returns the error for the presenter to report. A failed save after a
// successful apply is logged; the in-memory preference is still updated.
func (c *Controller) HandleUserToggle(ctx context.Context, pc models.PowerContext, enabled bool) error {
	log := c.logger.With().Str("context", pc.String()).Bool("enabled", enabled).Logger()
	log.Info().Msgf("User selected: %s -> %s", pc.Label(), models.OnOff(enabled))

	if err := c.applier.Apply(ctx, pc, enabled); err != nil {
		log.Error().Err(err).Msg("Turbo mode change failed; preference unchanged")
		return err
	}

	if err := c.store.Set(pc, enabled); err != nil {
		log.Warn().Err(err).Msg("Turbo mode applied but not persisted")
	}

	log.Info().Msg("Turbo mode updated")
	return nil
}

// Preferences returns a snapshot of the current preferences.
func (c *Controller) Preferences() models.Preferences {
	return c.store.Snapshot()
}
