// Package cli contains the command line interface for hopter.
//
// # Usage
//
//	hopter [flags] <input> <output>
//	hopter check [--format=text|yaml|json] <input>
//	hopter vocab [--arity=N] [query]
//	hopter preview <input>
//
// The expand command is the default, so the two-argument form above behaves
// like "hopter expand <input> <output>". Either path may be "-" for stdin or
// stdout. An input named after a subcommand (check, vocab, preview) is parsed
// as that subcommand unless expand is named explicitly:
//
//	hopter expand vocab vocab.h
//
// # Exit Status
//
// [Run] returns errors for [ExitCode] to translate: 0 on success, 2 when the
// command line is invalid (usage is printed first), and 1 for any other
// failure such as an unreadable input or an unterminated region.
//
// # Configuration
//
// Flag defaults may be set in $XDG_CONFIG_HOME/hopter/config.yaml (or
// config.yaml.json in JSON). Keys are flag names, optionally nested:
//
//	log:
//	  level: debug
//	  format: json
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time: timestamp layout (none, RFC3339, Kitchen, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorize text output on terminals
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (see [profile.Modes])
//   - --pprof-dir: profile output directory
//
// [profile.Modes]: https://pkg.go.dev/github.com/ardnew/hopter/profile#Modes
package cli
