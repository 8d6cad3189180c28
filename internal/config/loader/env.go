// Package loader reads configuration values from the environment.
//
// Values are keyed by dot-separated setting paths such as "logging.level".
// There is no configuration file.
package loader

import "strings"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "KILO_")
	mapping map[string]string // Env var -> config path
	vars    map[string]string
}

// NewEnvLoader creates a loader over "KEY=value" entries, typically
// os.Environ(). The prefix should include the trailing underscore
// (e.g., "KILO_").
func NewEnvLoader(prefix string, environ []string) *EnvLoader {
	vars := make(map[string]string)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(name, prefix) {
			vars[name] = value
		}
	}
	return &EnvLoader{
		prefix:  prefix,
		mapping: envMapping(prefix),
		vars:    vars,
	}
}

// envMapping returns the environment variable of each config path.
func envMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_FILE":  "logging.file",
		prefix + "LOG_LEVEL": "logging.level",
		prefix + "QUIT_KEY":  "keys.quit",
	}
}

// LookupString returns the value set for a config path. An empty value
// still counts as set.
func (l *EnvLoader) LookupString(path string) (string, bool) {
	for env, p := range l.mapping {
		if p != path {
			continue
		}
		v, ok := l.vars[env]
		return v, ok
	}
	return "", false
}
