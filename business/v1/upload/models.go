package upload

import "io"

const (
	EventCompleted = "upload.completed"

	MessageSuccess = "Upload successful"
	MessageNoFile  = "No file uploaded"
	MessageFailed  = "Upload failed"
)

// NewUpload is one file received from a client
type NewUpload struct {
	Filename string
	Body     io.Reader
}

// Uploaded describes the object created for a NewUpload
type Uploaded struct {
	Key         string `json:"key" example:"notes_pdfs/1700000000000-lecture-1"`
	FileURL     string `json:"fileUrl" example:"https://files.example.com/notes_pdfs/1700000000000-lecture-1"`
	Size        int64  `json:"size" example:"52133"`
	ContentType string `json:"contentType" example:"application/pdf"`
}

// Result is the success body of the upload endpoint
type Result struct {
	Message string `json:"message" example:"Upload successful"`
	FileURL string `json:"fileUrl" example:"https://files.example.com/notes_pdfs/1700000000000-lecture-1"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}
