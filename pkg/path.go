package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the base name used to construct the configuration directory.
//
// By default, Prefix is the base name of the executable file unless it matches
// one of the following substitution rules:
//   - "__debug_bin" (default output of the dlv debugger): replaced with [Name]
//   - "^\.+" (dot-prefixed names): remove the dot prefix
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		exe, err := os.Executable()
		if err == nil {
			id = exe
		}

		return prefixOf(id)
	},
)

func prefixOf(path string) string {
	// Leading dots go first so that ".hidden" is not taken for an extension.
	base := strings.TrimLeft(filepath.Base(path), ".")
	id := strings.TrimSuffix(base, filepath.Ext(base))

	// default output from dlv
	id = regexp.MustCompile(`^__debug_bin\d*$`).ReplaceAllString(id, Name)

	if id == "" {
		return Name
	}

	return id
}

// ConfigDir returns the configuration directory path. The directory is not
// created; configuration files are optional.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err == nil {
				dir = filepath.Join(dir, ".config")
			} else {
				var err error
				dir, err = os.Getwd()
				if err != nil {
					dir = "."
				}
			}
		}

		return filepath.Join(dir, Prefix())
	},
)

// ConfigPath returns the path formed by joining [ConfigDir] with elem.
func ConfigPath(elem ...string) string {
	return filepath.Join(append([]string{ConfigDir()}, elem...)...)
}

// CacheDir returns the directory used for transient files such as profiles.
// Like [ConfigDir], it is not created here.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}

		return filepath.Join(dir, Prefix())
	},
)
