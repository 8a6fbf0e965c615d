// Package config loads and persists mdflourish settings.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MDFLOURISH_THEME or
// MDFLOURISH_EDITOR_TAB_WIDTH.
const EnvPrefix = "MDFLOURISH"

type Config struct {
	Theme   string        `mapstructure:"theme"`
	Editor  EditorConfig  `mapstructure:"editor"`
	Preview PreviewConfig `mapstructure:"preview"`
	File    FileConfig    `mapstructure:"file"`
}

type EditorConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
	HistoryLimit    int  `mapstructure:"history_limit"`
	TabWidth        int  `mapstructure:"tab_width"`
	// Autosave keeps the unnamed buffer in DraftPath between runs.
	Autosave bool `mapstructure:"autosave"`
}

type PreviewConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// FileConfig names the working document. Dir is where save and export
// write; empty means the current directory.
type FileConfig struct {
	Name string `mapstructure:"name"`
	Dir  string `mapstructure:"dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("editor.show_line_numbers", true)
	v.SetDefault("editor.history_limit", 1000)
	v.SetDefault("editor.tab_width", 4)
	v.SetDefault("editor.autosave", true)
	v.SetDefault("preview.enabled", true)
	v.SetDefault("file.name", "")
	v.SetDefault("file.dir", "")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := newViper()
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	} else {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}

// SaveTheme stores the theme id in the config file at path (or the default
// location), keeping the file's other settings.
func SaveTheme(path, themeID string) error {
	if path == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		path = p
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "read %s", path)
	}
	v.Set("theme", themeID)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Dir returns $XDG_CONFIG_HOME/mdflourish, falling back to
// ~/.config/mdflourish.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mdflourish"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(home, ".config", "mdflourish"), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DraftPath returns where the unnamed buffer is autosaved.
func DraftPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "draft.md"), nil
}
