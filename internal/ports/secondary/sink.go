// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// FileSink receives rendered files. Paths are slash-separated and relative
// to the sink's root; intermediate directories are created as needed.
type FileSink interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}
