package transport

import "github.com/ardnew/logtree/pkg"

// Predefined errors (sentinel values).
var (
	ErrEncode    = pkg.NewError("encode record")
	ErrWrite     = pkg.NewError("write record")
	ErrFilter    = pkg.NewError("invalid filter expression")
	ErrEvaluate  = pkg.NewError("evaluate filter")
	ErrNilTarget = pkg.NewError("filter target is nil")
)
