package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/Reader10/Interprete-QDraw/pkg"
)

// configPaths returns the candidate config file locations in resolution
// order. Command-line flags override config file values.
func configPaths() []string {
	paths := []string{"." + pkg.Name + ".yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, pkg.Name, "config.yaml"))
	}
	return paths
}

// resolve is a [kong.ConfigurationLoader] that parses YAML config files.
//
// Flag names with hyphens (e.g., "log-level") may use either hyphens or
// underscores in the config file:
//
//	log-level: debug
//	log_format: json
//	log-pretty: true
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		// Malformed config file - ignore it and use defaults
		return config{}, nil
	}

	return config(normalize(values)), nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	// Try the underscore variant
	underscoreName := strings.ReplaceAll(flag.Name, "-", "_")
	if value, ok := c[underscoreName]; ok {
		return value, nil
	}

	// Not found - let Kong use defaults
	return nil, nil
}

// normalize converts YAML scalar types to the string forms Kong expects.
func normalize(values map[string]any) map[string]any {
	result := make(map[string]any, len(values))

	for key, value := range values {
		switch v := value.(type) {
		case int64:
			result[key] = strconv.FormatInt(v, 10)
		case uint64:
			result[key] = strconv.FormatUint(v, 10)
		case float64:
			result[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			result[key] = value
		}
	}

	return result
}
