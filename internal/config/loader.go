package config

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	menuerrors "github.com/youruser/menucard/pkg/errors"
)

// Environment variables that override file values.
const (
	EnvFont     = "MENUCARD_FONT"
	EnvOutput   = "MENUCARD_OUTPUT"
	EnvLogLevel = "MENUCARD_LOG_LEVEL"
	EnvAddr     = "MENUCARD_ADDR"
	EnvQRText   = "MENUCARD_QR_TEXT"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load builds a configuration from defaults overlaid with the YAML file at path.
// An empty path yields the defaults. The result is not validated; callers apply
// their overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, menuerrors.NewParseError(path, 0, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, menuerrors.NewParseError(path, extractLine(err), err)
	}
	return cfg, nil
}

// LoadDotEnv reads KEY=value pairs from a .env file into the process
// environment without replacing variables that are already set. A missing file
// is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return menuerrors.NewParseError(path, 0, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any of the MENUCARD_* variables that lookup finds.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvFont); ok && v != "" {
		cfg.Font = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		cfg.Output = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Server.Addr = v
	}
	if v, ok := lookup(EnvQRText); ok {
		cfg.QR.Text = v
	}
}

// MapLookup adapts a map, such as the result of godotenv.Read, for ApplyEnv.
func MapLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
