// Package power applies turbo-boost preferences through powercfg.
package power

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/watchfire-io/turboboost/internal/models"
)

// Processor throttle ceilings. Capping at 99% keeps the CPU out of boost
// clocks; 100% allows full boost.
const (
	ThrottleEnabled  = 100
	ThrottleDisabled = 99
)

// powercfg sub-group and setting aliases.
const (
	subProcessor    = "SUB_PROCESSOR"
	procThrottleMax = "PROCTHROTTLEMAX"
)

// ExternalCommandError reports a failed or unparseable powercfg invocation.
type ExternalCommandError struct {
	Args   []string // full command line, program first
	Output string   // captured output, trimmed
	Err    error
}

func (e *ExternalCommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command(), e.Err)
}

func (e *ExternalCommandError) Unwrap() error { return e.Err }

// Command returns the command line as a single string.
func (e *ExternalCommandError) Command() string {
	return strings.Join(e.Args, " ")
}

// ThrottlePercent returns the processor throttle ceiling for a turbo state.
func ThrottlePercent(enabled bool) int {
	if enabled {
		return ThrottleEnabled
	}
	return ThrottleDisabled
}

// ValueIndexFlag returns the powercfg flag that writes the setting for c.
func ValueIndexFlag(c models.PowerContext) string {
	if c == models.OnBattery {
		return "/setdcvalueindex"
	}
	return "/setacvalueindex"
}

// Status is the live throttle configuration of the active scheme.
type Status struct {
	Scheme    Scheme
	ACPercent int
	DCPercent int
}

// Percent returns the throttle ceiling for c.
func (s *Status) Percent(c models.PowerContext) int {
	if c == models.OnBattery {
		return s.DCPercent
	}
	return s.ACPercent
}

// TurboEnabled reports whether the live ceiling for c permits boost clocks.
func (s *Status) TurboEnabled(c models.PowerContext) bool {
	return s.Percent(c) >= ThrottleEnabled
}

// Applier drives powercfg.
type Applier struct {
	tool   string
	runner Runner
	logger zerolog.Logger
}

// NewApplier creates an applier invoking tool through runner.
func NewApplier(tool string, runner Runner, logger zerolog.Logger) *Applier {
	if tool == "" {
		tool = "powercfg"
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Applier{
		tool:   tool,
		runner: runner,
		logger: logger.With().Str("component", "power").Logger(),
	}
}

// Apply sets the processor throttle ceiling for c on the active scheme and
// re-activates the scheme so the value takes effect immediately. The first
// failing step aborts the rest; nothing is retried or rolled back.
func (a *Applier) Apply(ctx context.Context, c models.PowerContext, enabled bool) error {
	pct := ThrottlePercent(enabled)
	log := a.logger.With().Str("context", c.String()).Int("percent", pct).Logger()
	log.Info().Msg("Setting CPU power")

	scheme, err := a.ActiveScheme(ctx)
	if err != nil {
		return err
	}
	log.Debug().Str("scheme", scheme.GUID).Msg("Active power scheme")

	if _, err := a.run(ctx, ValueIndexFlag(c), scheme.GUID, subProcessor, procThrottleMax, strconv.Itoa(pct)); err != nil {
		return err
	}
	if _, err := a.run(ctx, "/setactive", scheme.GUID); err != nil {
		return err
	}

	log.Info().Msg("CPU power set")
	return nil
}

// ActiveScheme queries the currently active power scheme.
func (a *Applier) ActiveScheme(ctx context.Context) (Scheme, error) {
	args := []string{"/getactivescheme"}
	out, err := a.run(ctx, args...)
	if err != nil {
		return Scheme{}, err
	}

	scheme, err := ParseActiveScheme(string(out))
	if err != nil {
		return Scheme{}, a.fail(args, out, err)
	}
	return scheme, nil
}

// Status reads the active scheme and its current AC/DC throttle ceilings.
func (a *Applier) Status(ctx context.Context) (*Status, error) {
	scheme, err := a.ActiveScheme(ctx)
	if err != nil {
		return nil, err
	}

	args := []string{"/query", scheme.GUID, subProcessor, procThrottleMax}
	out, err := a.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	ac, dc, err := ParseThrottleQuery(string(out))
	if err != nil {
		return nil, a.fail(args, out, err)
	}
	return &Status{Scheme: scheme, ACPercent: ac, DCPercent: dc}, nil
}

func (a *Applier) run(ctx context.Context, args ...string) ([]byte, error) {
	a.logger.Debug().Str("command", a.commandLine(args)).Msg("Executing command")

	out, err := a.runner.Run(ctx, a.tool, args...)
	if err != nil {
		return out, a.fail(args, out, err)
	}
	return out, nil
}

func (a *Applier) fail(args []string, out []byte, err error) error {
	cerr := &ExternalCommandError{
		Args:   append([]string{a.tool}, args...),
		Output: strings.TrimSpace(string(out)),
		Err:    err,
	}
	a.logger.Error().
		Err(err).
		Str("command", cerr.Command()).
		Str("output", cerr.Output).
		Msg("Error executing powercfg command")
	return cerr
}

func (a *Applier) commandLine(args []string) string {
	return a.tool + " " + strings.Join(args, " ")
}
