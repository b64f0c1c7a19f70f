// Package config loads the behavior toggles that shape a dialog session.
package config

// #region imports
import (
	"github.com/spf13/viper"
)

// #endregion

// #region options

// Options are the four independent behavior toggles. The zero value is the
// documented default for every toggle.
type Options struct {
	// ConfirmPreferences asks the user to confirm each captured slot value
	// before committing it.
	ConfirmPreferences bool `mapstructure:"confirm_each_preference"`
	// AllowRestart enables mid-dialog restarts via restart phrases.
	AllowRestart bool `mapstructure:"allow_restart"`
	// InformalPhrasing switches system messages to the informal variants.
	InformalPhrasing bool `mapstructure:"informal_phrasing"`
	// RandomSlotOrder shuffles the slot-ask order once at session start.
	RandomSlotOrder bool `mapstructure:"random_slot_order"`
}

// #endregion

// #region load

// Load reads options from a JSON config file. A missing, unreadable or
// malformed file yields all-false defaults; configuration problems are never
// fatal to a session.
func Load(path string) Options {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("confirm_each_preference", false)
	v.SetDefault("allow_restart", false)
	v.SetDefault("informal_phrasing", false)
	v.SetDefault("random_slot_order", false)

	if err := v.ReadInConfig(); err != nil {
		return Options{}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}
	}
	return opts
}

// #endregion
