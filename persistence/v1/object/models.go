package object

type Object struct {
	Key         string
	URL         string
	Size        int64
	ContentType string
}
