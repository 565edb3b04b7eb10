package column

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/arloliu/facet/errs"
	"github.com/arloliu/facet/internal/options"
)

// MissingCode is the sentinel code for rows whose value matched no declared
// level.
const MissingCode int32 = -1

// Categorical is an ordered-level encoder over an array of labels.
//
// It holds an ordered vocabulary of distinct level labels and one int32 code
// per row indexing into that vocabulary, or MissingCode. The column owns no
// reference back to the source it was built from.
//
// Invariants, maintained by every operation:
//   - every code is MissingCode or a valid index into the vocabulary
//   - the vocabulary contains no duplicate labels
//
// A Categorical is not safe for concurrent mutation; the owning container
// must serialize calls to Set, SetLevels and AddLevel. Read-only queries may
// run concurrently with each other.
type Categorical struct {
	levels   []string
	codes    []int32
	observer Observer
}

// New builds a Categorical from a string source.
//
// The empty string is the missing marker for string sources: empty source
// entries code as missing and are excluded from level inference.
//
// Without WithLevels, the vocabulary is inferred as the sorted distinct
// non-missing source values. With WithLevels, the declared list is used
// exactly as given; source values absent from it code as missing regardless
// of how well-formed they look. Declared-set membership is the only
// criterion.
//
// Returns ErrDuplicateLevel for a declared list with repeated labels,
// ErrInvalidLevel for a declared empty-string level, and ErrArityMismatch
// when WithLabels has a different length than the vocabulary.
func New(source []string, opts ...Option) (*Categorical, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.hasFloatLevels {
		return nil, fmt.Errorf("%w: float levels require NewFromFloats", errs.ErrInvalidLevel)
	}

	rawLevels := cfg.levels
	if !cfg.hasLevels {
		rawLevels = inferStringLevels(source)
	}
	if err := validateLevels(rawLevels); err != nil {
		return nil, err
	}

	display, err := applyLabels(rawLevels, cfg.labels)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int32, len(rawLevels))
	for i, level := range rawLevels {
		index[level] = int32(i)
	}

	codes := make([]int32, len(source))
	for i, value := range source {
		if value == "" {
			codes[i] = MissingCode
			continue
		}
		if code, ok := index[value]; ok {
			codes[i] = code
		} else {
			codes[i] = MissingCode
		}
	}

	return &Categorical{
		levels:   display,
		codes:    codes,
		observer: cfg.observer,
	}, nil
}

// NewFromFloats builds a Categorical from a float source.
//
// NaN is the missing marker for float sources. Without WithFloatLevels, the
// vocabulary is inferred as the distinct non-NaN source values in numeric
// order. Level labels are the canonical shortest-form decimal string of each
// value; WithLabels substitutes display names positionally as usual.
func NewFromFloats(source []float64, opts ...Option) (*Categorical, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.hasLevels {
		return nil, fmt.Errorf("%w: string levels require New", errs.ErrInvalidLevel)
	}

	rawLevels := cfg.floatLevels
	if !cfg.hasFloatLevels {
		rawLevels = inferFloatLevels(source)
	}

	index := make(map[float64]int32, len(rawLevels))
	display := make([]string, len(rawLevels))
	for i, level := range rawLevels {
		if math.IsNaN(level) {
			return nil, fmt.Errorf("%w: NaN cannot be a level", errs.ErrInvalidLevel)
		}
		if _, exists := index[level]; exists {
			return nil, fmt.Errorf("%w: %s", errs.ErrDuplicateLevel, formatFloatLabel(level))
		}
		index[level] = int32(i)
		display[i] = formatFloatLabel(level)
	}

	display, err := applyLabels(display, cfg.labels)
	if err != nil {
		return nil, err
	}

	codes := make([]int32, len(source))
	for i, value := range source {
		if math.IsNaN(value) {
			codes[i] = MissingCode
			continue
		}
		if code, ok := index[value]; ok {
			codes[i] = code
		} else {
			codes[i] = MissingCode
		}
	}

	return &Categorical{
		levels:   display,
		codes:    codes,
		observer: cfg.observer,
	}, nil
}

// FromParts reconstructs a Categorical from an already-encoded vocabulary
// and code array, validating both invariants. The blob decoder and tabular
// containers use this to rebuild columns without the original source.
//
// Returns ErrDuplicateLevel or ErrInvalidLevel for a broken vocabulary and
// ErrInvalidCode for a code outside [0, len(levels)) that is not
// MissingCode. Both slices are copied.
func FromParts(levels []string, codes []int32) (*Categorical, error) {
	if err := validateLevels(levels); err != nil {
		return nil, err
	}

	for i, code := range codes {
		if code != MissingCode && (code < 0 || int(code) >= len(levels)) {
			return nil, fmt.Errorf("%w: code %d at row %d, %d levels", errs.ErrInvalidCode, code, i, len(levels))
		}
	}

	return &Categorical{
		levels: slices.Clone(levels),
		codes:  slices.Clone(codes),
	}, nil
}

// Len returns the number of rows in the column.
func (c *Categorical) Len() int {
	return len(c.codes)
}

// Levels returns a copy of the level vocabulary in declared order.
func (c *Categorical) Levels() []string {
	return slices.Clone(c.levels)
}

// Codes returns a copy of the per-row codes.
func (c *Categorical) Codes() []int32 {
	return slices.Clone(c.codes)
}

// IsMissing reports whether the row at index holds the missing sentinel.
// The index must be in [0, Len()).
func (c *Categorical) IsMissing(index int) bool {
	return c.codes[index] == MissingCode
}

// LevelOf returns the level position of the row at index, or false when the
// row is missing. The index must be in [0, Len()).
func (c *Categorical) LevelOf(index int) (int, bool) {
	code := c.codes[index]
	if code == MissingCode {
		return 0, false
	}

	return int(code), true
}

// LabelAt returns the display label of the row at index, or false when the
// row is missing. The index must be in [0, Len()).
func (c *Categorical) LabelAt(index int) (string, bool) {
	code := c.codes[index]
	if code == MissingCode {
		return "", false
	}

	return c.levels[code], true
}

// Set assigns a value into the row at index.
//
// When value exactly matches a current level label, the row's code becomes
// that level's position. Otherwise the row becomes missing WITHOUT an error:
// silent coercion to missing is the documented contract for out-of-level
// assignment. An installed Observer is notified of each coercion.
//
// Returns ErrIndexOutOfRange for an index outside [0, Len()). No other
// row is affected in either case.
func (c *Categorical) Set(index int, value string) error {
	if index < 0 || index >= len(c.codes) {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, index, len(c.codes))
	}

	for i, label := range c.levels {
		if label == value {
			c.codes[index] = int32(i)
			return nil
		}
	}

	c.codes[index] = MissingCode
	if c.observer != nil {
		c.observer.MissingCoerced(index, value)
	}

	return nil
}

// SetLevels replaces the display label at every level position, in order.
// Codes are untouched: this is a pure rename and never creates or removes
// missing values.
//
// Returns ErrUnsupportedLevelRemoval for a shorter list (dropping levels
// requires Recode), ErrArityMismatch for a longer one, ErrDuplicateLevel
// for repeated labels and ErrInvalidLevel for an empty label. The column is
// unchanged on error.
func (c *Categorical) SetLevels(newLabels []string) error {
	switch {
	case len(newLabels) < len(c.levels):
		return fmt.Errorf("%w: %d labels for %d levels", errs.ErrUnsupportedLevelRemoval, len(newLabels), len(c.levels))
	case len(newLabels) > len(c.levels):
		return fmt.Errorf("%w: %d labels for %d levels", errs.ErrArityMismatch, len(newLabels), len(c.levels))
	}

	if err := validateLevels(newLabels); err != nil {
		return err
	}

	c.levels = slices.Clone(newLabels)

	return nil
}

// AddLevel appends a new label to the end of the vocabulary. No codes
// change: no row maps to the new level until assigned via Set.
//
// Returns ErrDuplicateLevel if the label is already declared and
// ErrInvalidLevel for an empty label.
func (c *Categorical) AddLevel(label string) error {
	if label == "" {
		return fmt.Errorf("%w: empty label", errs.ErrInvalidLevel)
	}
	if slices.Contains(c.levels, label) {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateLevel, label)
	}

	c.levels = append(c.levels, label)

	return nil
}

// Recode rebuilds a column from the original source against a different
// vocabulary. This is the only way to drop or reorder levels: source values
// absent from newLevels become missing in the result. The receiver is
// unchanged; the result carries over the receiver's Observer.
func (c *Categorical) Recode(source []string, newLevels []string) (*Categorical, error) {
	return New(source, WithLevels(newLevels), WithObserver(c.observer))
}

// ValueCount is one entry of a ValueCounts report.
type ValueCount struct {
	// Label is the level's display label, or empty for the missing entry.
	Label string
	// Count is the number of rows coded to this level.
	Count int
	// Missing marks the trailing missing-sentinel entry.
	Missing bool
}

// ValueCounts reports the number of rows per level, in declared level order.
// Declared levels with zero occurrences still appear with count 0: a level
// need not be present in the data to be reportable. With includeMissing, a
// trailing entry counts the missing rows.
func (c *Categorical) ValueCounts(includeMissing bool) []ValueCount {
	counts := make([]int, len(c.levels))
	missing := 0
	for _, code := range c.codes {
		if code == MissingCode {
			missing++
		} else {
			counts[code]++
		}
	}

	result := make([]ValueCount, 0, len(c.levels)+1)
	for i, label := range c.levels {
		result = append(result, ValueCount{Label: label, Count: counts[i]})
	}
	if includeMissing {
		result = append(result, ValueCount{Count: missing, Missing: true})
	}

	return result
}

// CountMissing returns the number of missing rows.
func (c *Categorical) CountMissing() int {
	missing := 0
	for _, code := range c.codes {
		if code == MissingCode {
			missing++
		}
	}

	return missing
}

// String returns a short human-readable summary of the column.
func (c *Categorical) String() string {
	return fmt.Sprintf("Categorical(%d rows, %d levels, %d missing)", len(c.codes), len(c.levels), c.CountMissing())
}

// validateLevels checks a vocabulary for empty and duplicate labels.
func validateLevels(levels []string) error {
	seen := make(map[string]struct{}, len(levels))
	for _, label := range levels {
		if label == "" {
			return fmt.Errorf("%w: empty label", errs.ErrInvalidLevel)
		}
		if _, exists := seen[label]; exists {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateLevel, label)
		}
		seen[label] = struct{}{}
	}

	return nil
}

// applyLabels substitutes display names for level values, order-for-order.
func applyLabels(levels []string, labels []string) ([]string, error) {
	if labels == nil {
		return slices.Clone(levels), nil
	}
	if len(labels) != len(levels) {
		return nil, fmt.Errorf("%w: %d labels for %d levels", errs.ErrArityMismatch, len(labels), len(levels))
	}
	if err := validateLevels(labels); err != nil {
		return nil, err
	}

	return slices.Clone(labels), nil
}

// inferStringLevels collects the sorted distinct non-missing source values.
func inferStringLevels(source []string) []string {
	seen := make(map[string]struct{}, len(source))
	levels := make([]string, 0, len(source))
	for _, value := range source {
		if value == "" {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		levels = append(levels, value)
	}
	slices.Sort(levels)

	return levels
}

// inferFloatLevels collects the distinct non-NaN source values in numeric
// order.
func inferFloatLevels(source []float64) []float64 {
	seen := make(map[float64]struct{}, len(source))
	levels := make([]float64, 0, len(source))
	for _, value := range source {
		if math.IsNaN(value) {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		levels = append(levels, value)
	}
	slices.Sort(levels)

	return levels
}

// formatFloatLabel renders a float level as its canonical shortest-form
// decimal string.
func formatFloatLabel(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
