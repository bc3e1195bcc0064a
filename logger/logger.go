// Package logger provides adapters for popular logger libraries to work with
// the btree.Logger interface.
//
// The standard library's *slog.Logger already implements btree.Logger directly.
//
// Example with zap:
//
//	zapLogger, _ := zap.NewDevelopment()
//	tree, err := btree.New[int](3, btree.WithLogger(logger.NewZap(zapLogger)))
package logger
