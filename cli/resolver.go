package cli

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/hopter/log"
)

// loadYAML is a [kong.ConfigurationLoader] that reads flag defaults from a
// YAML document.
//
// Keys name flags without their leading dashes. Nested mappings are joined
// with "-", and underscores may stand in for hyphens, so the following are
// equivalent:
//
//	log-level: debug
//	log_level: debug
//	log:
//	  level: debug
//
// Command-line flags override config file values. A document that cannot be
// decoded is ignored with a warning.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.Warn("ignoring configuration", slog.String("error", err.Error()))
		}

		return config{}, nil
	}

	cfg := make(config)
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

func (c config) flatten(prefix string, doc map[string]any) {
	for key, value := range doc {
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := value.(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = scalar(value)
	}
}

// scalar converts numbers to strings, which kong parses with the flag's own
// mapper.
func scalar(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return v
	}
}
