// Package storage provides the binary image store behind recipe image
// uploads. Objects are addressed by generated unique names; resolving a
// name to a servable URL is backend-specific.
package storage

import "context"

// ImageStore stores and removes image blobs by name.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) error
	Remove(ctx context.Context, name string) error
	URL(name string) string
}
