package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Rillus/Calendar-sub001/internal/ring"
	"github.com/Rillus/Calendar-sub001/pkg/arcpath"
	"github.com/Rillus/Calendar-sub001/pkg/dateutil"
	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Ring  RingConfig      `mapstructure:"ring"`
	Month MonthViewConfig `mapstructure:"month"`
	Log   LogConfig       `mapstructure:"log"`
}

// RingConfig represents the circular face configuration
type RingConfig struct {
	CenterX           float64           `mapstructure:"center_x"`
	CenterY           float64           `mapstructure:"center_y"`
	Radius            float64           `mapstructure:"radius"`
	InnerRadius       float64           `mapstructure:"inner_radius"`
	RotationDegrees   float64           `mapstructure:"rotation_degrees"`
	Segments          int               `mapstructure:"segments"`
	FullThresholdDays int               `mapstructure:"full_threshold_days"`
	FullRadius        float64           `mapstructure:"full_radius"`
	NotchedRadius     float64           `mapstructure:"notched_radius"`
	LargeArcMode      string            `mapstructure:"large_arc_mode"` // "legacy" or "radians"
	Colours           [][]int           `mapstructure:"colours"`
	Months            []RingMonthConfig `mapstructure:"months"`
}

// RingMonthConfig is an explicit month entry of the ring
type RingMonthConfig struct {
	Label  string `mapstructure:"label"`
	Colour []int  `mapstructure:"colour"`
	Days   int    `mapstructure:"days"`
}

// MonthViewConfig represents month grid configuration
type MonthViewConfig struct {
	WeekStartsOn int    `mapstructure:"week_starts_on"`
	Locale       string `mapstructure:"locale"`
	Today        string `mapstructure:"today"` // YYYY-MM-DD override
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ring.center_x", 200.0)
	v.SetDefault("ring.center_y", 200.0)
	v.SetDefault("ring.radius", 200.0)
	v.SetDefault("ring.inner_radius", 0.0)
	v.SetDefault("ring.rotation_degrees", float64(ring.DefaultRotationDegrees))
	v.SetDefault("ring.segments", 12)
	v.SetDefault("ring.full_threshold_days", 31)
	v.SetDefault("ring.full_radius", 1.0)
	v.SetDefault("ring.notched_radius", 0.95)
	v.SetDefault("ring.large_arc_mode", "legacy")
	v.SetDefault("month.week_starts_on", 1)
	v.SetDefault("month.locale", "en-GB")
	v.SetDefault("month.today", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// New returns a viper instance with defaults, env binding and search paths set.
// An empty configPath searches the standard locations.
func New(configPath string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.calendar-face")
		v.AddConfigPath("/etc/calendar-face")
	}

	v.SetEnvPrefix("CALENDAR_FACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads configuration from file. A config file missing from the search
// paths leaves the defaults in place; an explicit path must exist.
func Load(configPath string) (*Config, error) {
	v := New(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return Decode(v)
}

// Decode unmarshals and validates the current state of v
func Decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	r := c.Ring
	if r.Radius <= 0 {
		return fmt.Errorf("ring.radius must be positive")
	}
	if r.InnerRadius < 0 || r.InnerRadius >= r.Radius {
		return fmt.Errorf("ring.inner_radius must be in [0, ring.radius)")
	}
	if r.Segments <= 0 {
		return fmt.Errorf("ring.segments must be positive")
	}
	if r.FullRadius <= 0 || r.FullRadius > 1 {
		return fmt.Errorf("ring.full_radius must be in (0, 1]")
	}
	if r.NotchedRadius <= 0 || r.NotchedRadius > 1 {
		return fmt.Errorf("ring.notched_radius must be in (0, 1]")
	}
	if r.NotchedRadius > r.FullRadius {
		return fmt.Errorf("ring.notched_radius must not exceed ring.full_radius")
	}
	if _, err := arcpath.ParseLargeArcMode(r.LargeArcMode); err != nil {
		return fmt.Errorf("ring.large_arc_mode: %w", err)
	}
	for i, ch := range r.Colours {
		if _, err := ring.RGBFromInts(ch); err != nil {
			return fmt.Errorf("ring.colours[%d]: %w", i, err)
		}
	}
	if len(r.Months) > 0 && len(r.Months) != r.Segments {
		return fmt.Errorf("ring.months has %d entries, want ring.segments (%d)", len(r.Months), r.Segments)
	}
	for i, m := range r.Months {
		if m.Label == "" {
			return fmt.Errorf("ring.months[%d].label is required", i)
		}
		if m.Days <= 0 {
			return fmt.Errorf("ring.months[%d].days must be positive", i)
		}
		if m.Colour != nil {
			if _, err := ring.RGBFromInts(m.Colour); err != nil {
				return fmt.Errorf("ring.months[%d].colour: %w", i, err)
			}
		}
	}
	if len(r.Months) == 0 && r.Segments != 12 {
		return fmt.Errorf("ring.segments other than 12 requires explicit ring.months")
	}

	if c.Month.WeekStartsOn < 0 || c.Month.WeekStartsOn > 6 {
		return fmt.Errorf("month.week_starts_on must be between 0 and 6")
	}
	if c.Month.Today != "" {
		if _, err := dateutil.ParseDate(c.Month.Today); err != nil {
			return fmt.Errorf("month.today: %w", err)
		}
	}

	return nil
}

// GetLargeArcMode returns the parsed large arc mode
func (r *RingConfig) GetLargeArcMode() arcpath.LargeArcMode {
	mode, err := arcpath.ParseLargeArcMode(r.LargeArcMode)
	if err != nil {
		return arcpath.LargeArcLegacy
	}
	return mode
}

// GetGeometry returns the drawing frame for the ring
func (r *RingConfig) GetGeometry() ring.Geometry {
	return ring.Geometry{
		CenterX:         r.CenterX,
		CenterY:         r.CenterY,
		Radius:          r.Radius,
		InnerRadius:     r.InnerRadius,
		RotationDegrees: r.RotationDegrees,
		LargeArcMode:    r.GetLargeArcMode(),
	}
}

// GetRadiusPolicy returns the full/notched radius policy
func (r *RingConfig) GetRadiusPolicy() ring.RadiusPolicy {
	return ring.RadiusPolicy{
		FullThresholdDays: r.FullThresholdDays,
		FullRadius:        r.FullRadius,
		NotchedRadius:     r.NotchedRadius,
	}
}

// GetColours returns the configured colour overrides. Invalid entries are
// rejected by Validate, so they are skipped here.
func (r *RingConfig) GetColours() []ring.RGB {
	colours := make([]ring.RGB, 0, len(r.Colours))
	for _, ch := range r.Colours {
		c, err := ring.RGBFromInts(ch)
		if err != nil {
			continue
		}
		colours = append(colours, c)
	}
	return colours
}

// GetToday returns the configured today override, or the current day
func (m *MonthViewConfig) GetToday() time.Time {
	if m.Today == "" {
		return dateutil.Today()
	}
	t, err := dateutil.ParseDate(m.Today)
	if err != nil {
		return dateutil.Today()
	}
	return dateutil.StartOfDay(t)
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.Month.Locale = os.ExpandEnv(c.Month.Locale)
}
