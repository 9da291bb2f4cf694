package upload

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-share/business/v1/upload"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"github.com/ribgsilva/note-share/sys"
	"net/http"
)

// FieldName is the multipart part holding the file
const FieldName = "file"

// Post godoc
// @Summary Upload a note file
// @Description Stores one file in the notes folder of the storage provider and returns its public url.
// @Description The name is the upload time in unix millis followed by the file name without its .pdf suffix.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Note file, usually a pdf"
// @Success 200 {object} upload.Result
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/upload [post]
func Post(ctx *gin.Context) handler.Result {
	logger := sys.R.Log

	fh, err := ctx.FormFile(FieldName)
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: upload.MessageNoFile},
		}
	case err != nil:
		logger.Errorw("upload", "status", "could not read multipart body", "ERROR", err)
		return failed(err)
	}

	f, err := fh.Open()
	if err != nil {
		logger.Errorw("upload", "status", "could not open file part", "file", fh.Filename, "ERROR", err)
		return failed(err)
	}
	defer f.Close()

	up, err := upload.Upload(ctx.Request.Context(), upload.NewUpload{Filename: fh.Filename, Body: f})
	if err != nil {
		logger.Errorw("upload", "status", "provider upload failed", "file", fh.Filename, "ERROR", err)
		return failed(err)
	}

	logger.Infow("upload", "status", "stored", "object", up.Key, "size", up.Size, "contentType", up.ContentType)
	return handler.Result{
		Status: http.StatusOK,
		Body:   upload.Result{Message: upload.MessageSuccess, FileURL: up.FileURL},
	}
}

func failed(err error) handler.Result {
	return handler.Result{
		Status: http.StatusInternalServerError,
		Body:   handler.Error{Message: upload.MessageFailed, Error: err.Error()},
	}
}
