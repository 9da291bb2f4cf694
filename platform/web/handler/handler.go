package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what a handler wants written back to the client.
// A zero Status means the handler already wrote the response itself.
type Result struct {
	Status int
	Body   any
}

// Error is the body of every non 2xx json response
type Error struct {
	Message string `json:"message" example:"Upload failed"`
	Error   string `json:"error,omitempty" example:"blob (key \"notes_pdfs/1700000000000-a\") (code=Unknown): connection refused"`
}

// Wrapper adapts a Result returning handler to gin
func Wrapper(f func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		switch {
		case r.Status == 0:
			return
		case r.Body == nil:
			ctx.Status(r.Status)
		default:
			ctx.JSON(r.Status, r.Body)
		}
	}
}
