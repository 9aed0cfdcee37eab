package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix for strand environment variables.
const DefaultEnvPrefix = "STRAND_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "STRAND_")
	mapping map[string]string // Env var -> config path
	lists   map[string]bool   // Config paths holding comma-separated lists
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "STRAND_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		lists:   defaultListPaths(),
		environ: os.Environ,
	}
}

// defaultEnvMapping returns mappings for variables whose names do not follow
// the SECTION_SETTING convention.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"STRAND_LOG_LEVEL": "log.level",
		"STRAND_VARIANT":   "strand.variant",
	}
}

// defaultListPaths returns the config paths whose values are lists.
func defaultListPaths() map[string]bool {
	return map[string]bool{
		"bench.variants": true,
	}
}

// AddListPath marks a config path as a comma-separated list.
func (l *EnvLoader) AddListPath(configPath string) {
	if l.lists == nil {
		l.lists = make(map[string]bool)
	}
	l.lists[configPath] = true
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		if l.lists[path] {
			setByPath(config, path, parseList(value))
		} else {
			setByPath(config, path, parseValue(value))
		}
	}

	return config, nil
}

// envToPath converts STRAND_BENCH_SPLICEE_MAX to bench.spliceeMax.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(name, "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}

	section := strings.ToLower(parts[0])
	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if len(part) > 0 {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only if it contains a decimal point to avoid misinterpreting ints
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return s
}

// parseList splits a comma-separated value. Items are trimmed and empty
// items dropped, so "" yields an empty list.
func parseList(s string) []any {
	items := make([]any, 0)
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part].(map[string]any); ok {
			current = next
		} else {
			next := make(map[string]any)
			current[part] = next
			current = next
		}
	}

	current[parts[len(parts)-1]] = value
}
