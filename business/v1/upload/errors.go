package upload

import "fmt"

// ProviderError is returned when the storage provider fails or rejects an upload
type ProviderError struct {
	Key string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("upload %s: %s", e.Key, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
