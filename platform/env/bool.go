package env

import (
	"go.uber.org/zap"
	"strconv"
)

// BoolDefault return the result of searching an env var as bool, falling back to def
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	v := OrDefault(log, env, def)
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnw("env", "var", env, "value", v, "ERROR", err)
		b, _ = strconv.ParseBool(def)
	}
	return b
}
