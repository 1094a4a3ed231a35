// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("expanded", slog.Int("regions", 3))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// The package-level functions ([Info], [Error], ...) write through a default
// logger bound to [os.Stderr], reconfigured with [Config].
//
// # Pretty Printing
//
// Text output written to a terminal is colorized unless disabled with
// [WithPretty]. Output to anything other than a terminal always uses the
// standard [slog.TextHandler] or [slog.JSONHandler].
//
// # Zero Value
//
// The zero [Logger] discards all messages. Library code can accept a Logger
// option and log unconditionally.
package log
