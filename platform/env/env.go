package env

import (
	"go.uber.org/zap"
	"os"
	"strings"
)

// OrDefault return the value of an env var, or def when the env var is empty
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	log.Debugw("env", "var", env, "status", "using default")
	return def
}

// Must return the value of an env var, exiting the process when it is empty
func Must(log *zap.SugaredLogger, env string) string {
	v := strings.TrimSpace(os.Getenv(env))
	if v == "" {
		log.Fatalw("env", "var", env, "status", "missing required env var")
	}
	return v
}

// ListDefault return a comma separated env var as a slice, blanks removed
func ListDefault(log *zap.SugaredLogger, env, def string) []string {
	var out []string
	for _, s := range strings.Split(OrDefault(log, env, def), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
