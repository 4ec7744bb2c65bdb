package interfaces

import "context"

// IFileStorage abstracts the object-storage service holding event images,
// regulations and other uploaded documents.

type IFileStorage interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (url string, err error)
	Delete(ctx context.Context, key string) error
}
