package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	carve "github.com/bglenden/carving-designer-sub000"
)

// Config carries the carved daemon settings.
type Config struct {
	Addr         string      `toml:"addr"`
	DBPath       string      `toml:"db_path"`
	ReadTimeout  int         `toml:"read_timeout"`
	WriteTimeout int         `toml:"write_timeout"`
	Interaction  Interaction `toml:"interaction"`
}

// Interaction is the tunable surface the editing front end bootstraps from
// the service: hit target sizing, zoom clamps and jiggle bounds. Defaults
// mirror the carve package constants.
type Interaction struct {
	HandleHitRadius       float64 `toml:"handle_hit_radius" json:"handle_hit_radius"`
	ActiveHandleHitRadius float64 `toml:"active_handle_hit_radius" json:"active_handle_hit_radius"`
	RotationHandleOffset  float64 `toml:"rotation_handle_offset" json:"rotation_handle_offset"`
	MinZoom               float64 `toml:"min_zoom" json:"min_zoom"`
	MaxZoom               float64 `toml:"max_zoom" json:"max_zoom"`
	JigglePosition        float64 `toml:"jiggle_position" json:"jiggle_position"`
	JiggleRotation        float64 `toml:"jiggle_rotation" json:"jiggle_rotation"`
	JiggleCurvature       float64 `toml:"jiggle_curvature" json:"jiggle_curvature"`
}

// Default returns the built-in settings.
func Default() Config {
	jig := carve.DefaultJiggleParams()
	return Config{
		Addr:         ":3004",
		DBPath:       "data/db/carve.db",
		ReadTimeout:  10,
		WriteTimeout: 10,
		Interaction: Interaction{
			HandleHitRadius:       carve.HandleHitRadius,
			ActiveHandleHitRadius: carve.ActiveHandleHitRadius,
			RotationHandleOffset:  carve.RotationHandleOffset,
			MinZoom:               carve.MinZoom,
			MaxZoom:               carve.MaxZoom,
			JigglePosition:        jig.Position,
			JiggleRotation:        jig.Rotation,
			JiggleCurvature:       jig.Curvature,
		},
	}
}

// Load resolves settings with ascending precedence: defaults, then the TOML
// file at path if one exists, then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, err
		}
	}

	cfg.Addr = getEnv("CARVED_ADDR", cfg.Addr)
	cfg.DBPath = getEnv("CARVED_DB_PATH", cfg.DBPath)
	cfg.ReadTimeout = getEnvAsInt("CARVED_READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvAsInt("CARVED_WRITE_TIMEOUT", cfg.WriteTimeout)
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
