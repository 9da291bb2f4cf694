package env

import (
	"go.uber.org/zap"
	"time"
)

// DurationDefault return the result of searching an env var as time.Duration, falling back to def
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	v := OrDefault(log, env, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warnw("env", "var", env, "value", v, "ERROR", err)
		d, _ = time.ParseDuration(def)
	}
	return d
}
