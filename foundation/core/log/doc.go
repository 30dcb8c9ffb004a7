// Package log provides structured logging for strkit programs.
//
// Package: log
// Title: strkit Structured Logging
// Description: This package implements leveled structured logging with JSON,
//              text and console formats, persistent context fields, a
//              correlation id per invocation and severity-aware logging of
//              strkit errors. The string library itself never logs; the CLI
//              does.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Trimmed to the features the CLI uses
//
// Usage:
//   import "github.com/msto63/strkit/foundation/core/log"
//
//   logger := log.New().
//     WithLevel(log.LevelInfo).
//     WithFormat(log.FormatText).
//     WithName("strkit").
//     WithCorrelationID(uuid.NewString())
//
//   logger.Info("command started", log.Field("command", "case"))
//
//   timer := logger.StartTimer("markdown")
//   // ...
//   timer.Stop()
//
//   logger.LogError(err)
package log
