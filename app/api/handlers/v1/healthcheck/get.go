package healthcheck

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"github.com/ribgsilva/note-share/sys"
	"net/http"
)

type Status struct {
	Status  string `json:"status" example:"ok"`
	Storage string `json:"storage" example:"ok"`
}

// Get godoc
// @Summary Health check
// @Description Reports whether the service and its bucket are reachable
// @Tags Health
// @Produce json
// @Success 200 {object} Status
// @Failure 503 {object} Status
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	pingCtx, pingCancel := context.WithTimeout(ctx.Request.Context(), sys.Configs.Storage.PingTimeout)
	defer pingCancel()

	ok, err := sys.R.Bucket.IsAccessible(pingCtx)
	if err != nil || !ok {
		sys.R.Log.Warnw("healthcheck", "storage", "unavailable", "ERROR", err)
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   Status{Status: "degraded", Storage: "unavailable"},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok", Storage: "ok"},
	}
}
