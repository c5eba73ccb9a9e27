package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// configExt is the extension of the YAML configuration file.
const configExt = ".yaml"

// resolve returns a [kong.ConfigurationLoader] for YAML configuration files.
//
// Flag values are read from the mapping under the top-level key name, or
// from the top-level mapping itself when that key is absent:
//
//	config:
//	  log-level: debug
//	  log_pretty: false
//
// Flag names may be written with hyphens or underscores. Command-line flags
// override values from the file. A file that cannot be decoded contributes
// no values.
func resolve(name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return config{}, nil
		}

		if sub, ok := doc[name].(map[string]any); ok {
			doc = sub
		}

		return makeConfig(doc), nil
	}
}

// config implements [kong.Resolver] over a flat map of flag values.
type config map[string]any

func makeConfig(doc map[string]any) config {
	c := make(config, len(doc))

	for key, value := range doc {
		c[key] = flagValue(value)
	}

	return c
}

// flagValue converts decoded YAML scalars to the forms kong parses. Kong
// requires numbers as strings.
func flagValue(v any) any {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case []any:
		out := make([]any, len(n))
		for i, e := range n {
			out[i] = flagValue(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, e := range n {
			out[k] = flagValue(e)
		}

		return out
	default:
		return v
	}
}

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
