package log

import "github.com/ardnew/logtree/pkg"

// Predefined errors (sentinel values).
var (
	ErrInvalidLevel         = pkg.NewError("invalid log level")
	ErrNilTransport         = pkg.NewError("transport is nil")
	ErrTransportUnsupported = pkg.NewError("transports are not supported by the process logger")
)
