package config

import (
	"errors"
	"log/slog"

	"github.com/giangnmt98/ExtractFeature/internal/errhandling"
)

// Store loads, validates, and holds the extraction configuration.
// Construction performs the whole load-and-validate sequence: a Store that
// exists holds a valid configuration, and a validation failure aborts
// before any table I/O can happen.
type Store struct {
	path string
	cfg  *Config
}

// NewStore loads the configuration file at path, validates it, and
// converts it. Faults:
//   - file_access if the path cannot be read
//   - parse if the content is not a well-formed mapping or a field
//     definition is malformed
//   - configuration (fixed message "invalid configuration file") if
//     schema validation fails, i.e. the "fields" key is absent
func NewStore(path string, log *slog.Logger) (*Store, error) {
	log.Info("loading configuration", slog.String("path", path))

	result := ParseConfig(path)

	if len(result.ParseErrors) > 0 {
		first := result.ParseErrors[0]
		if first.Type == ErrorTypeIO {
			return nil, errhandling.NewFileAccessError(path, errors.New(first.Message))
		}
		return nil, errhandling.NewParseError("failed to parse configuration", first)
	}

	if len(result.ValidationErrors) > 0 {
		for _, vErr := range result.ValidationErrors {
			log.Error("configuration validation failed",
				slog.String("path", vErr.Path),
				slog.String("error", vErr.Message),
			)
		}
		return nil, errhandling.NewConfigurationError("invalid configuration file")
	}

	cfg, err := ConvertToConfig(result.Data)
	if err != nil {
		return nil, errhandling.NewParseError("invalid configuration structure", err)
	}

	log.Info("configuration loaded",
		slog.String("format", result.Format),
		slog.Int("fields", len(cfg.Fields)),
		slog.Int("features", len(cfg.Features)),
		slog.Bool("debug", cfg.Debug),
	)

	return &Store{path: path, cfg: cfg}, nil
}

// Config returns the loaded configuration. The configuration is loaded
// once and never mutated.
func (s *Store) Config() *Config {
	return s.cfg
}

// Path returns the filesystem path the configuration was loaded from.
func (s *Store) Path() string {
	return s.path
}
