package env

import (
	"go.uber.org/zap"
	"strconv"
)

// Int64Default return the result of searching an env var as int64, falling back to def
func Int64Default(log *zap.SugaredLogger, env, def string) int64 {
	v := OrDefault(log, env, def)
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Warnw("env", "var", env, "value", v, "ERROR", err)
		i, _ = strconv.ParseInt(def, 10, 64)
	}
	return i
}

// IntDefault return the result of searching an env var as int, falling back to def
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	return int(Int64Default(log, env, def))
}
