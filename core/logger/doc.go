// Package logger provides a structured logging facility based on Zap.
//
// Fetch runs log per category and per failed item with structured fields
// (category, id, url, error). The serve command additionally tags request logs
// with the RayID set by the rayid middleware.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default, human readable) or json
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Downloading", zap.String("category", "icons"), zap.Int("count", 12))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
