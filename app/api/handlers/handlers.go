package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-share/app/api/handlers/v1/files"
	"github.com/ribgsilva/note-share/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-share/app/api/handlers/v1/upload"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"path"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
	r.GET("/v1/files/*key", handler.Wrapper(files.Get))
}

// MapApi registers the upload route under basePath, /api when empty
func MapApi(r *gin.Engine, basePath string) {
	if basePath == "" {
		basePath = "/api"
	}
	r.POST(path.Join("/", basePath, "upload"), handler.Wrapper(upload.Post))
}
