// Package client talks to the upload endpoint of the notes api.
package client

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-resty/resty/v2"
	"github.com/ribgsilva/note-share/business/v1/upload"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"io"
	"time"
)

// FieldName is the multipart part the endpoint reads the file from
const FieldName = "file"

var ErrEmptyFileURL = errors.New("upload response has no fileUrl")

// StatusError is a non 2xx answer from the endpoint
type StatusError struct {
	Status  int
	Message string
	Detail  string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("status %d: %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("status %d: %s", e.Status, e.Message)
}

func (e *StatusError) StatusCode() int {
	return e.Status
}

type Client struct {
	r *resty.Client
}

// New returns a client for the api rooted at baseURL (for example http://localhost:5000/api).
// Requests are never retried.
func New(baseURL string, timeout time.Duration) *Client {
	r := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0)
	return &Client{r: r}
}

// Upload sends body as a multipart file named filename and returns the endpoint answer
func (c *Client) Upload(ctx context.Context, filename string, body io.Reader) (upload.Result, error) {
	var (
		res    upload.Result
		apiErr handler.Error
	)

	resp, err := c.r.R().
		SetContext(ctx).
		SetFileReader(FieldName, filename, body).
		SetResult(&res).
		SetError(&apiErr).
		Post("/upload")
	if err != nil {
		return upload.Result{}, fmt.Errorf("post upload: %w", err)
	}
	if resp.IsError() {
		msg := apiErr.Message
		if msg == "" {
			msg = resp.Status()
		}
		return upload.Result{}, &StatusError{Status: resp.StatusCode(), Message: msg, Detail: apiErr.Error}
	}
	if res.FileURL == "" {
		return upload.Result{}, ErrEmptyFileURL
	}
	return res, nil
}
