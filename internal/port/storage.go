package port

import (
	"context"
	"io"
)

// SignatureStore stores delivery-proof signature images.
type SignatureStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	PresignedURL(ctx context.Context, key string, expirySeconds int64) (string, error)
	Delete(ctx context.Context, key string) error
}
