// Package transport provides ready-made [log.Transport] implementations.
//
// Encoding transports write one document per record and never panic; write
// and encoding errors are passed to the handler installed with [OnError] and
// otherwise discarded.
//
//	root := log.NewConsole()
//	only, err := transport.Filter(`atLeast(meta.logLevel, "warn")`, transport.JSON(os.Stdout))
//	if err != nil {
//		return err
//	}
//	_ = root.AttachTransport(only)
package transport
