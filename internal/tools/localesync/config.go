package localesync

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	platformcmd "github.com/louisbranch/localesync/internal/platform/cmd"
)

const (
	// DefaultSource is the source-of-truth locale file name.
	DefaultSource = "en.json"
	// DefaultDirName is the locales directory looked up next to the executable.
	DefaultDirName = "locales"
)

// Config holds locale synchronization configuration.
type Config struct {
	Dir    string `env:"DIR"`
	Source string `env:"SOURCE" envDefault:"en.json"`
	Check  bool   `env:"CHECK"`
}

// ParseConfig loads LOCALESYNC_* environment defaults and then parses flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}

	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "locales directory (default: LOCALESYNC_DIR or locales next to the executable)")
	fs.StringVar(&cfg.Source, "source", cfg.Source, "source-of-truth locale file name (default: LOCALESYNC_SOURCE or en.json)")
	fs.BoolVar(&cfg.Check, "check", cfg.Check, "report locale files that would change without writing them")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration that cannot be synchronized.
func (c Config) Validate() error {
	source := strings.TrimSpace(c.Source)
	if source == "" {
		return errors.New("source file name is required")
	}
	if source != c.Source || filepath.Base(source) != source || source == "." || source == ".." {
		return fmt.Errorf("source %q must be a plain file name inside the locales directory", c.Source)
	}
	return nil
}

// ResolveDir returns dir unchanged when set, otherwise the locales directory
// next to the running executable.
func ResolveDir(dir string, executable func() (string, error)) (string, error) {
	if strings.TrimSpace(dir) != "" {
		return dir, nil
	}
	if executable == nil {
		executable = os.Executable
	}
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultDirName), nil
}
