package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/hopter/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, so parse errors are already reported in the
// requested format.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

// defaultTimeLayout omits timestamps; diagnostics go to a terminal or a
// build log that already carries its own.
const defaultTimeLayout = "none"

type logConfig struct {
	Level      logLevel  `default:"${logLevel}"  enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"${logFormat}" enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"${logTime}"   help:"Set timestamp format (none, RFC3339, Kitchen, or a Go layout)." name:"time"`
	Caller     bool      `default:"false"                                help:"Include caller information."                                     negatable:""`
	Pretty     bool      `default:"true"                                 help:"Colorize text output on terminals."                              negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevel":      log.DefaultLevel.String(),
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormat":     log.DefaultFormat.String(),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
		"logTime":       defaultTimeLayout,
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies the fully parsed logger configuration, including the flags
// that do not go through encoding.TextUnmarshaler.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags found in args before kong parses them, so the
// logger is configured regardless of flag position or parse failures.
func (f *logConfig) scan(args []string) {
	log.Config(log.WithTimeLayout(defaultTimeLayout))

	valued := map[string]func(string){
		"--log-level":  func(v string) { _ = f.Level.UnmarshalText([]byte(v)) },
		"--log-format": func(v string) { _ = f.Format.UnmarshalText([]byte(v)) },
		"--log-time": func(v string) {
			f.TimeLayout = v
			log.Config(log.WithTimeLayout(v))
		},
	}
	boolean := map[string]func(bool){
		"caller": func(v bool) {
			f.Caller = v
			log.Config(log.WithCaller(v))
		},
		"pretty": func(v bool) {
			f.Pretty = v
			log.Config(log.WithPretty(v))
		},
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		name, value, assigned := strings.Cut(arg, "=")

		if set, ok := valued[name]; ok {
			// Consume the next argument as the value unless assigned inline.
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				value = args[i+1]
				i++
			}

			set(value)

			continue
		}

		negate := strings.HasPrefix(name, "--no-log-")
		key := strings.TrimPrefix(strings.TrimPrefix(name, "--no-log-"), "--log-")

		set, ok := boolean[key]
		if !ok || key == name {
			continue
		}

		v := true
		if assigned {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				continue
			}

			v = parsed
		}

		set(v != negate)
	}
}
