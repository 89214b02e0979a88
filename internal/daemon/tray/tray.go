package tray

import (
	_ "embed"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/watchfire-io/turboboost/internal/buildinfo"
	"github.com/watchfire-io/turboboost/internal/models"
)

//go:embed assets/icon.ico
var iconData []byte

// Options configures Run.
type Options struct {
	State     AppState
	Notifier  Notifier
	Autostart Autostart // nil hides the Start with Windows entry
	Logger    zerolog.Logger
	OnStart   func() // called once the menu exists
	OnExit    func() // called when the tray exits
}

type sectionItems struct {
	context models.PowerContext
	on      *systray.MenuItem
	off     *systray.MenuItem
}

var (
	opts     Options
	logger   zerolog.Logger
	sections []sectionItems

	autostartItem *systray.MenuItem
	quitItem      *systray.MenuItem
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
func Run(o Options) {
	opts = o
	logger = o.Logger.With().Str("component", "tray").Logger()
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetIcon(iconData)
	systray.SetTitle(buildinfo.Name)

	model := RenderMenu(opts.State.Preferences())
	systray.SetTooltip(model.Tooltip)

	sections = sections[:0]
	for _, sec := range model.Sections {
		parent := systray.AddMenuItem(sec.Title, "Turbo boost "+sec.Title)
		sections = append(sections, sectionItems{
			context: sec.Context,
			on:      parent.AddSubMenuItemCheckbox(sec.On.Title, "Allow boost clocks", sec.On.Checked),
			off:     parent.AddSubMenuItemCheckbox(sec.Off.Title, "Cap the CPU at 99%", sec.Off.Checked),
		})
	}

	systray.AddSeparator()

	if opts.Autostart != nil {
		enabled, err := opts.Autostart.Enabled()
		autostartItem = systray.AddMenuItemCheckbox("Start with Windows", "Launch at sign-in", enabled)
		if err != nil {
			logger.Warn().Err(err).Msg("Start with Windows unavailable")
			autostartItem.Disable()
		}
		systray.AddSeparator()
	}

	quitItem = systray.AddMenuItem("Exit", "Quit "+buildinfo.Name)

	if opts.OnStart != nil {
		opts.OnStart()
	}

	go handleClicks()
}

func onQuit() {
	if opts.OnExit != nil {
		opts.OnExit()
	}
}

// handleClicks serializes every menu action on one goroutine.
func handleClicks() {
	var autostartCh chan struct{}
	if autostartItem != nil {
		autostartCh = autostartItem.ClickedCh
	}

	for {
		select {
		case <-sections[0].on.ClickedCh:
			toggle(sections[0].context, true)
		case <-sections[0].off.ClickedCh:
			toggle(sections[0].context, false)
		case <-sections[1].on.ClickedCh:
			toggle(sections[1].context, true)
		case <-sections[1].off.ClickedCh:
			toggle(sections[1].context, false)

		case <-autostartCh:
			toggleAutostart()

		case <-quitItem.ClickedCh:
			logger.Info().Msg("Application shutdown requested by user")
			systray.Quit()
			return
		}
	}
}

func toggle(c models.PowerContext, enabled bool) {
	if err := opts.State.SetTurbo(c, enabled); err != nil && opts.Notifier != nil {
		opts.Notifier.ToggleFailed(c, enabled, err)
	}
	render(RenderMenu(opts.State.Preferences()))
}

func toggleAutostart() {
	want := !autostartItem.Checked()
	if err := opts.Autostart.Set(want); err != nil {
		logger.Error().Err(err).Bool("enabled", want).Msg("Failed to change Start with Windows")
		return
	}
	logger.Info().Bool("enabled", want).Msg("Start with Windows updated")
	setChecked(autostartItem, want)
}

// render pushes a menu model into the live menu items.
func render(model MenuModel) {
	systray.SetTooltip(model.Tooltip)
	for i, sec := range model.Sections {
		if i >= len(sections) {
			break
		}
		setChecked(sections[i].on, sec.On.Checked)
		setChecked(sections[i].off, sec.Off.Checked)
	}
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}
