// Package models defines the data types shared across turboboost packages.
package models

import (
	"fmt"
	"strings"
)

// PowerContext identifies the power source a turbo preference applies to.
type PowerContext int

const (
	PluggedIn PowerContext = iota
	OnBattery
)

// AllContexts returns every power context in apply order.
func AllContexts() []PowerContext {
	return []PowerContext{PluggedIn, OnBattery}
}

// String returns the persisted key for the context.
func (c PowerContext) String() string {
	switch c {
	case PluggedIn:
		return "PLUGGED_IN"
	case OnBattery:
		return "ON_BATTERY"
	default:
		return fmt.Sprintf("PowerContext(%d)", int(c))
	}
}

// Label returns the human-readable menu label.
func (c PowerContext) Label() string {
	switch c {
	case PluggedIn:
		return "Plugged in"
	case OnBattery:
		return "On battery"
	default:
		return c.String()
	}
}

// ShortLabel returns the AC/DC abbreviation used in tooltips.
func (c PowerContext) ShortLabel() string {
	if c == OnBattery {
		return "DC"
	}
	return "AC"
}

// ParsePowerContext converts a CLI spelling into a PowerContext.
func ParsePowerContext(s string) (PowerContext, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plugged-in", "plugged_in", "pluggedin", "plugged", "ac":
		return PluggedIn, nil
	case "on-battery", "on_battery", "onbattery", "battery", "dc":
		return OnBattery, nil
	}
	return 0, fmt.Errorf("unknown power context %q (expected plugged-in or on-battery)", s)
}

// Preferences holds the turbo-boost choice for each power context.
// This corresponds to turbo_boost_state.json.
type Preferences struct {
	PluggedIn bool `json:"PLUGGED_IN"`
	OnBattery bool `json:"ON_BATTERY"`
}

// DefaultPreferences returns turbo disabled in both contexts.
func DefaultPreferences() Preferences {
	return Preferences{}
}

// Get returns the preference for the given context.
func (p Preferences) Get(c PowerContext) bool {
	if c == OnBattery {
		return p.OnBattery
	}
	return p.PluggedIn
}

// With returns a copy of p with the given context set to enabled.
func (p Preferences) With(c PowerContext, enabled bool) Preferences {
	if c == OnBattery {
		p.OnBattery = enabled
	} else {
		p.PluggedIn = enabled
	}
	return p
}

// OnOff renders a boolean preference as "On" or "Off".
func OnOff(enabled bool) string {
	if enabled {
		return "On"
	}
	return "Off"
}
