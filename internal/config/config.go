package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Rating      RatingConfig        `mapstructure:"rating"`
	Display     DisplayConfig       `mapstructure:"display"`
	Photo       PhotoConfig         `mapstructure:"photo"`
	Output      OutputConfig        `mapstructure:"output"`
	Log         LogConfig           `mapstructure:"log"`
	Keybindings map[string][]string `mapstructure:"keybindings"`
}

// RatingConfig sizes the star row. Star dimensions are in points.
type RatingConfig struct {
	StarCount  int     `mapstructure:"star_count"`
	StarWidth  float64 `mapstructure:"star_width"`
	StarHeight float64 `mapstructure:"star_height"`
}

// DisplayConfig maps points onto terminal cells.
type DisplayConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
}

// PhotoConfig controls the picker and the preview box (in cells).
type PhotoConfig struct {
	StartDir      string `mapstructure:"start_dir"`
	PreviewWidth  int    `mapstructure:"preview_width"`
	PreviewHeight int    `mapstructure:"preview_height"`
}

// OutputConfig selects how a saved meal is written to stdout.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LogConfig holds debug log settings. An empty File discards log output
// while the UI owns the terminal.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()
	v.SetDefault("rating.star_count", 5)
	v.SetDefault("rating.star_width", 44.0)
	v.SetDefault("rating.star_height", 44.0)
	v.SetDefault("display.cell_width", 8.0)
	v.SetDefault("display.cell_height", 16.0)
	v.SetDefault("photo.start_dir", filepath.Join(home, "Pictures"))
	v.SetDefault("photo.preview_width", 24)
	v.SetDefault("photo.preview_height", 8)
	v.SetDefault("output.format", "yaml")
	v.SetDefault("log.file", "")
	v.SetDefault("log.debug", false)
}

// Path returns the config file location. FOODTRACKER_CONFIG overrides it.
func Path() string {
	if p := os.Getenv("FOODTRACKER_CONFIG"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "foodtracker", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix FOODTRACKER_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("FOODTRACKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine, a broken one is not
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

// WriteIfMissing saves cfg when no config file exists yet, so a first run
// leaves an editable file behind. It reports whether a file was written.
func WriteIfMissing(cfg Config) (bool, error) {
	_, err := os.Stat(Path())
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("rating.star_count", cfg.Rating.StarCount)
	v.Set("rating.star_width", cfg.Rating.StarWidth)
	v.Set("rating.star_height", cfg.Rating.StarHeight)
	v.Set("display.cell_width", cfg.Display.CellWidth)
	v.Set("display.cell_height", cfg.Display.CellHeight)
	v.Set("photo.start_dir", cfg.Photo.StartDir)
	v.Set("photo.preview_width", cfg.Photo.PreviewWidth)
	v.Set("photo.preview_height", cfg.Photo.PreviewHeight)
	v.Set("output.format", cfg.Output.Format)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.debug", cfg.Log.Debug)
	for action, keys := range cfg.Keybindings {
		v.Set("keybindings."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
