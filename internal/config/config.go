// Package config holds the tunable knobs of the schedule creator: the
// teacher-preference coefficient table, the slot penalties, the number of
// class days and the solver executable locations. Values come from built-in
// defaults overridden by an optional JSON config file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Coefficients are the objective-function weights. More negative means more
// desirable to the minimizer: a strong preference must carry the most
// negative coefficient and an unavailable slot the most positive one.
type Coefficients struct {
	PreferenceNeutral                float64 `mapstructure:"preferenceNeutral"`
	PreferenceNotAvailable           float64 `mapstructure:"preferenceNotAvailable"`
	PreferenceIfNotOtherwisePossible float64 `mapstructure:"preferenceIfNotOtherwisePossible"`
	PreferencePreferablyNot          float64 `mapstructure:"preferencePreferablyNot"`
	PreferenceIdeallyYes             float64 `mapstructure:"preferenceIdeallyYes"`
	PreferenceStrongPreference       float64 `mapstructure:"preferenceStrongPreference"`

	FirstHour    float64 `mapstructure:"firstHour"`
	LunchBreak   float64 `mapstructure:"lunchBreak"`
	EveningHours float64 `mapstructure:"eveningHours"`
}

type Config struct {
	ClassDays    int          `mapstructure:"classDays"`
	Coefficients Coefficients `mapstructure:"coefficients"`
	CbcPath      string       `mapstructure:"cbcPath"`
	GlpsolPath   string       `mapstructure:"glpsolPath"`
}

// Load returns the configuration, merging the JSON file at the given path
// (if any) over the defaults.
func Load(file string) (Config, error) {
	v := viper.New()

	v.SetDefault("classDays", 5)
	v.SetDefault("coefficients.preferenceNeutral", 0)
	v.SetDefault("coefficients.preferenceNotAvailable", 1000)
	v.SetDefault("coefficients.preferenceIfNotOtherwisePossible", 100)
	v.SetDefault("coefficients.preferencePreferablyNot", 10)
	v.SetDefault("coefficients.preferenceIdeallyYes", -10)
	v.SetDefault("coefficients.preferenceStrongPreference", -100)
	v.SetDefault("coefficients.firstHour", 10)
	v.SetDefault("coefficients.lunchBreak", 25)
	v.SetDefault("coefficients.eveningHours", 15)
	v.SetDefault("cbcPath", "")
	v.SetDefault("glpsolPath", "")

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("cannot read config file %v: %w", file, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("cannot unmarshal config: %w", err)
	}
	return config, nil
}
