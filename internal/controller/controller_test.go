package controller

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/watchfire-io/turboboost/internal/models"
	"github.com/watchfire-io/turboboost/internal/power"
	"github.com/watchfire-io/turboboost/internal/state"
)

const activeScheme = "Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e  (Balanced)"

// scriptedRunner stands in for powercfg.
type scriptedRunner struct {
	calls  [][]string
	scheme string
	failOn string
}

func (r *scriptedRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, args)
	if args[0] == r.failOn {
		return []byte("Invalid Parameters"), errors.New("exit status 1")
	}
	if args[0] == "/getactivescheme" {
		return []byte(r.scheme), nil
	}
	return nil, nil
}

// setCalls returns "<flag> <percent>" for each value-index invocation.
func (r *scriptedRunner) setCalls() []string {
	var out []string
	for _, c := range r.calls {
		if c[0] == "/setacvalueindex" || c[0] == "/setdcvalueindex" {
			out = append(out, c[0]+" "+c[len(c)-1])
		}
	}
	return out
}

type fixture struct {
	runner *scriptedRunner
	store  *state.Store
	ctrl   *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	runner := &scriptedRunner{scheme: activeScheme}
	store := state.NewStore(filepath.Join(t.TempDir(), "turbo_boost_state.json"), zerolog.Nop())
	applier := power.NewApplier("powercfg", runner, zerolog.Nop())
	return &fixture{
		runner: runner,
		store:  store,
		ctrl:   New(store, applier, zerolog.Nop()),
	}
}

func TestInitializeFreshInstall(t *testing.T) {
	f := newFixture(t)

	if err := f.ctrl.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	want := []string{"/setacvalueindex 99", "/setdcvalueindex 99"}
	got := f.runner.setCalls()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("set calls = %v, want %v", got, want)
	}
	if _, err := os.Stat(f.store.Path()); !os.IsNotExist(err) {
		t.Error("Initialize must not create the state file")
	}
}

func TestInitializeReplaysPersistedState(t *testing.T) {
	f := newFixture(t)
	if err := os.WriteFile(f.store.Path(), []byte(`{"PLUGGED_IN": true, "ON_BATTERY": false}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := f.ctrl.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	want := []string{"/setacvalueindex 100", "/setdcvalueindex 99"}
	got := f.runner.setCalls()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("set calls = %v, want %v", got, want)
	}
}

func TestInitializeAttemptsBothContextsOnFailure(t *testing.T) {
	f := newFixture(t)
	f.runner.failOn = "/setacvalueindex"

	err := f.ctrl.Initialize(context.Background())

	var cerr *power.ExternalCommandError
	if !errors.As(err, &cerr) {
		t.Fatalf("Initialize() error = %v, want *ExternalCommandError", err)
	}
	got := f.runner.setCalls()
	if len(got) != 2 || got[1] != "/setdcvalueindex 99" {
		t.Errorf("set calls = %v, want both contexts attempted", got)
	}
}

func TestHandleUserToggleSuccessUpdatesOneField(t *testing.T) {
	f := newFixture(t)
	if err := os.WriteFile(f.store.Path(), []byte(`{"PLUGGED_IN": true, "ON_BATTERY": false}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := f.ctrl.Initialize(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := f.ctrl.HandleUserToggle(context.Background(), models.OnBattery, true); err != nil {
		t.Fatalf("HandleUserToggle() error: %v", err)
	}

	want := models.Preferences{PluggedIn: true, OnBattery: true}
	if got := f.ctrl.Preferences(); got != want {
		t.Errorf("Preferences() = %+v, want %+v", got, want)
	}

	persisted, err := state.NewStore(f.store.Path(), zerolog.Nop()).Load()
	if err != nil {
		t.Fatal(err)
	}
	if persisted != want {
		t.Errorf("persisted = %+v, want %+v", persisted, want)
	}
}

func TestHandleUserToggleUnparseableSchemeLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	f.runner.scheme = "The system cannot find the file specified."
	before := f.store.Get(models.OnBattery)

	err := f.ctrl.HandleUserToggle(context.Background(), models.OnBattery, true)

	var cerr *power.ExternalCommandError
	if !errors.As(err, &cerr) {
		t.Fatalf("HandleUserToggle() error = %v, want *ExternalCommandError", err)
	}
	if f.store.Get(models.OnBattery) != before {
		t.Error("preference changed despite apply failure")
	}
	if _, err := os.Stat(f.store.Path()); !os.IsNotExist(err) {
		t.Error("state file written despite apply failure")
	}
}

func TestHandleUserToggleApplyFailureKeepsPersistedValue(t *testing.T) {
	f := newFixture(t)
	if err := f.ctrl.HandleUserToggle(context.Background(), models.PluggedIn, true); err != nil {
		t.Fatal(err)
	}
	f.runner.failOn = "/setactive"

	if err := f.ctrl.HandleUserToggle(context.Background(), models.PluggedIn, false); err == nil {
		t.Fatal("HandleUserToggle() expected error")
	}

	if !f.store.Get(models.PluggedIn) {
		t.Error("in-memory preference rolled forward despite failure")
	}
	persisted, err := state.NewStore(f.store.Path(), zerolog.Nop()).Load()
	if err != nil {
		t.Fatal(err)
	}
	if !persisted.PluggedIn {
		t.Error("persisted preference changed despite failure")
	}
}

// failingStore wraps a store and fails every Set after mutating memory.
type failingStore struct {
	prefs models.Preferences
}

func (s *failingStore) Load() (models.Preferences, error) { return s.prefs, nil }
func (s *failingStore) Get(c models.PowerContext) bool    { return s.prefs.Get(c) }
func (s *failingStore) Snapshot() models.Preferences      { return s.prefs }
func (s *failingStore) Set(c models.PowerContext, v bool) error {
	s.prefs = s.prefs.With(c, v)
	return &state.StorageError{Op: "save", Path: "x", Err: errors.New("disk full")}
}

func TestHandleUserToggleSaveFailureStillSucceeds(t *testing.T) {
	runner := &scriptedRunner{scheme: activeScheme}
	store := &failingStore{}
	ctrl := New(store, power.NewApplier("powercfg", runner, zerolog.Nop()), zerolog.Nop())

	if err := ctrl.HandleUserToggle(context.Background(), models.PluggedIn, true); err != nil {
		t.Fatalf("HandleUserToggle() error: %v", err)
	}
	if !ctrl.Preferences().PluggedIn {
		t.Error("in-memory preference should reflect the applied change")
	}
}

// loadErrorStore reports a storage error on Load.
type loadErrorStore struct{ failingStore }

func (s *loadErrorStore) Load() (models.Preferences, error) {
	return s.prefs, &state.StorageError{Op: "load", Path: "x", Err: errors.New("access denied")}
}

func TestInitializeContinuesAfterStorageError(t *testing.T) {
	runner := &scriptedRunner{scheme: activeScheme}
	ctrl := New(&loadErrorStore{}, power.NewApplier("powercfg", runner, zerolog.Nop()), zerolog.Nop())

	if err := ctrl.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if got := runner.setCalls(); len(got) != 2 {
		t.Errorf("set calls = %v, want both contexts applied with defaults", got)
	}
}
