package column

import (
	"github.com/arloliu/facet/internal/options"
)

// config holds the construction-time settings for a Categorical.
type config struct {
	levels         []string
	hasLevels      bool
	floatLevels    []float64
	hasFloatLevels bool
	labels         []string
	observer       Observer
}

// Option represents a functional option for configuring Categorical
// construction. This is a type alias for the generic Option interface
// specialized for the construction config.
type Option = options.Option[*config]

// WithLevels declares the level vocabulary explicitly for string sources.
//
// The list is used exactly as given: no sorting, no inference, duplicates
// rejected at construction time. Values in the source that are absent from
// the list code as missing, even when they look well-formed.
func WithLevels(levels []string) Option {
	return options.NoError(func(cfg *config) {
		cfg.levels = levels
		cfg.hasLevels = true
	})
}

// WithFloatLevels declares the level vocabulary explicitly for float
// sources. Level labels are the canonical decimal form of each value.
func WithFloatLevels(levels []float64) Option {
	return options.NoError(func(cfg *config) {
		cfg.floatLevels = levels
		cfg.hasFloatLevels = true
	})
}

// WithLabels substitutes display names for level values, positionally:
// labels[i] becomes the stored label for level i. The list must have the
// same length as the level vocabulary (declared or inferred), otherwise
// construction fails with ErrArityMismatch.
func WithLabels(labels []string) Option {
	return options.NoError(func(cfg *config) {
		cfg.labels = labels
	})
}

// WithObserver installs a diagnostic sink for missing-value coercion on Set.
// A nil observer disables diagnostics (the default).
func WithObserver(obs Observer) Option {
	return options.NoError(func(cfg *config) {
		cfg.observer = obs
	})
}
