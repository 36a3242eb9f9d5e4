package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/docguard/internal/docsync"
)

// EnvPrefix prefixes every environment variable read by the loader.
// A double underscore separates nesting levels: DOCGUARD_SYNC__LOOKBACK_DAYS.
const EnvPrefix = "DOCGUARD_"

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// flagKeys maps global flag names to configuration keys. Other flags are
// command options and never reach the configuration.
var flagKeys = map[string]string{
	"root":    "root",
	"format":  "format",
	"verbose": "verbose",
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// resolveRoot determines the repository root before the config file is read:
// an explicit --root flag, then DOCGUARD_ROOT, then the working directory.
func resolveRoot(flags *pflag.FlagSet) (string, error) {
	root := ""
	if flags != nil && flags.Changed("root") {
		root, _ = flags.GetString("root")
	}
	if root == "" {
		root = os.Getenv(EnvPrefix + "ROOT")
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %s: %w", root, err)
	}
	return abs, nil
}

// findConfigFile returns the explicit path, or the first config file present in root.
func findConfigFile(explicit, root string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(root, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// envKey transforms DOCGUARD_SYNC__LOOKBACK_DAYS into sync.lookback_days.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// LoadConfig loads configuration from defaults, the config file, environment
// variables and flags, in increasing precedence.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	root, err := resolveRoot(flags)
	if err != nil {
		return nil, err
	}

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile, root)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were set explicitly
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Decode
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// The config file lives in the root, so it cannot move it.
	cfg.Root = root
	if len(cfg.Sync.RootMarkers) == 0 {
		cfg.Sync.RootMarkers = docsync.DefaultRootMarkers(cfg.Docs.FileName)
	}
	if cfg.Lint.Severity == nil {
		cfg.Lint.Severity = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	currentConfig = &cfg
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the most recently loaded configuration, or nil.
func GetCurrentConfig() *Config {
	return currentConfig
}

// NewLogger creates the CLI logger: text on w, debug level when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger stores the logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
