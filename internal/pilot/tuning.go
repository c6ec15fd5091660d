package pilot

import (
	"fmt"

	"github.com/spf13/viper"
)

// Tuning holds the pilot's behaviour thresholds. Components receive this
// plain struct; only LoadTuning touches viper.
type Tuning struct {
	NearRange   float64 // uu; inside this, aim at the ball directly
	LeadTime    float64 // seconds of ball lead when far away
	FlipGateMin float64 // uu/s, flip gate lower bound, inclusive
	FlipGateMax float64 // uu/s, flip gate upper bound, exclusive
	ThoughtCap  int     // decision log ring size
}

// DefaultTuning returns the stock thresholds.
func DefaultTuning() Tuning {
	return Tuning{
		NearRange:   1500,
		LeadTime:    2.0,
		FlipGateMin: 750,
		FlipGateMax: 800,
		ThoughtCap:  60,
	}
}

// LoadTuning reads pilot tuning from rocket_sense.cfg.json in configDir,
// falling back to defaults for any missing key. A missing file is fine;
// a malformed one is an error.
func LoadTuning(configDir string) (Tuning, error) {
	d := DefaultTuning()

	v := viper.New()
	v.SetDefault("pilot.nearRange", d.NearRange)
	v.SetDefault("pilot.leadTime", d.LeadTime)
	v.SetDefault("pilot.flipGateMin", d.FlipGateMin)
	v.SetDefault("pilot.flipGateMax", d.FlipGateMax)
	v.SetDefault("pilot.thoughtCap", d.ThoughtCap)

	v.SetConfigName("rocket_sense.cfg.json")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return d, fmt.Errorf("reading config: %w", err)
		}
	}

	return Tuning{
		NearRange:   v.GetFloat64("pilot.nearRange"),
		LeadTime:    v.GetFloat64("pilot.leadTime"),
		FlipGateMin: v.GetFloat64("pilot.flipGateMin"),
		FlipGateMax: v.GetFloat64("pilot.flipGateMax"),
		ThoughtCap:  v.GetInt("pilot.thoughtCap"),
	}, nil
}
