package files

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-share/persistence/v1/object"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"github.com/ribgsilva/note-share/sys"
	"net/http"
	"strings"
)

// Get godoc
// @Summary Download an uploaded file
// @Description Streams an object of the notes bucket. This is where fileUrl points when no public provider domain is configured.
// @Tags Files
// @Produce octet-stream
// @Param key path string true "Object key, for example notes_pdfs/1700000000000-lecture"
// @Success 200 {file} binary
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/files/{key} [get]
func Get(ctx *gin.Context) handler.Result {
	logger := sys.R.Log
	key := strings.TrimPrefix(ctx.Param("key"), "/")

	r, ok, err := object.Open(ctx.Request.Context(), key)
	switch {
	case err != nil:
		logger.Errorw("files", "object", key, "ERROR", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "could not read file", Error: err.Error()},
		}
	case !ok:
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "file not found"},
		}
	}
	defer r.Close()

	ctx.DataFromReader(http.StatusOK, r.Size(), r.ContentType(), r, nil)
	return handler.Result{}
}
