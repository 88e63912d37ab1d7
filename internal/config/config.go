package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aem-labs/aemx/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyComponentGroup        = "component.group"
	KeyComponentDialog       = "component.dialog"
	KeyComponentCqDialog     = "component.cq_dialog"
	KeyComponentCqEditConfig = "component.cq_edit_config"
	KeyComponentCqTemplate   = "component.cq_template"
	KeyClientLibCSS          = "clientlib.css"
	KeyClientLibLess         = "clientlib.less"
	KeyClientLibJS           = "clientlib.js"
	KeyLogLevel              = "log.level"
	KeyTemplatesDir          = "templates.dir"
)

var defaults = map[string]any{
	KeyComponentGroup:        "",
	KeyComponentDialog:       false,
	KeyComponentCqDialog:     false,
	KeyComponentCqEditConfig: false,
	KeyComponentCqTemplate:   false,
	KeyClientLibCSS:          false,
	KeyClientLibLess:         false,
	KeyClientLibJS:           false,
	KeyLogLevel:              "warn",
	KeyTemplatesDir:          "",
}

// Dir returns the path to the config directory (~/.aemx/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.aemx/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Defaults registers the default value of every known key.
func Defaults() {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to variables with dots replaced, e.g. log.level is read
// from AEMX_LOG_LEVEL.
func Load() {
	Defaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys lists the known keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether key is a known configuration key.
func IsKnown(key string) bool {
	_, ok := defaults[key]
	return ok
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value; unset or unparsable values are false.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	if _, isBool := defaults[key].(bool); isBool {
		switch strings.ToLower(value) {
		case "true", "false":
			viper.Set(key, strings.ToLower(value) == "true")
		default:
			return fmt.Errorf("config key %q expects true or false, got %q", key, value)
		}
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
