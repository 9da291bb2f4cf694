package web

import (
	"net/http"
	"time"
)

// writeMargin is left between the provider timeout and the write deadline so a failed upload can still be answered
const writeMargin = 30 * time.Second

// Timeouts bounds a server. A zero value disables that limit.
// Operation is the longest a handler waits on the storage provider.
type Timeouts struct {
	ReadHeader time.Duration
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
	Operation  time.Duration
}

// NewServer builds the http server for handler.
// Request bodies are only bounded by Read, which is meant to stay zero for upload routes;
// a Write deadline not past Operation is moved past it.
func NewServer(addr string, handler http.Handler, t Timeouts) *http.Server {
	if t.Write > 0 && t.Write <= t.Operation {
		t.Write = t.Operation + writeMargin
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: t.ReadHeader,
		ReadTimeout:       t.Read,
		WriteTimeout:      t.Write,
		IdleTimeout:       t.Idle,
	}
}
