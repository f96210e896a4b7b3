package prefs

import (
	"fmt"
	"strings"

	apierrors "github.com/medobsmind/medobs/internal/errors"
)

// KeySelectedModel is the preference key holding the active model name.
const KeySelectedModel = "selected_model"

// ModelOption is one of the fixed choices offered by the settings screen.
type ModelOption int

const (
	NoOption ModelOption = iota
	MaximumAccuracy
	Balanced
	FastResponse
	DetailedAnalysis
	Standard
)

// DefaultModel is the selection reported when nothing has been saved yet.
const DefaultModel = "Balanced"

// Options returns the selectable options in display order
func Options() []ModelOption {
	return []ModelOption{
		MaximumAccuracy,
		Balanced,
		FastResponse,
		DetailedAnalysis,
		Standard,
	}
}

// DisplayName returns the canonical string persisted for the option.
// NoOption and out-of-range values return "".
func (o ModelOption) DisplayName() string {
	switch o {
	case MaximumAccuracy:
		return "Maximum Accuracy"
	case Balanced:
		return "Balanced"
	case FastResponse:
		return "Fast Response"
	case DetailedAnalysis:
		return "Detailed Analysis"
	case Standard:
		return "Standard"
	default:
		return ""
	}
}

// Description returns a one-line summary shown next to the option
func (o ModelOption) Description() string {
	switch o {
	case MaximumAccuracy:
		return "most thorough reasoning, slowest"
	case Balanced:
		return "good accuracy at moderate speed"
	case FastResponse:
		return "shortest turnaround"
	case DetailedAnalysis:
		return "long-form explanations"
	case Standard:
		return "general purpose"
	default:
		return ""
	}
}

// Valid reports whether o is one of the enumerated options
func (o ModelOption) Valid() bool {
	return o.DisplayName() != ""
}

func (o ModelOption) String() string {
	if name := o.DisplayName(); name != "" {
		return name
	}
	return "none"
}

// ParseOption resolves a model name to its option. Matching ignores case,
// dashes and underscores, so "fast-response" resolves to FastResponse.
// Unknown names return NoOption.
func ParseOption(name string) ModelOption {
	want := normalize(name)
	if want == "" {
		return NoOption
	}
	for _, o := range Options() {
		if normalize(o.DisplayName()) == want {
			return o
		}
	}
	return NoOption
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// LoadSelection returns the persisted model name, or DefaultModel when
// nothing valid is stored. A read error still yields DefaultModel so that
// callers always have a usable name.
func LoadSelection(s Store) (string, error) {
	value, ok, err := s.Get(KeySelectedModel)
	if err != nil {
		return DefaultModel, err
	}
	if !ok {
		return DefaultModel, nil
	}
	if o := ParseOption(value); o.Valid() && o.DisplayName() == value {
		return value, nil
	}
	return DefaultModel, nil
}

// StoredOption returns the option currently persisted, or NoOption when the
// store holds nothing valid.
func StoredOption(s Store) (ModelOption, error) {
	value, ok, err := s.Get(KeySelectedModel)
	if err != nil || !ok {
		return NoOption, err
	}
	o := ParseOption(value)
	if o.DisplayName() != value {
		return NoOption, nil
	}
	return o, nil
}

// SaveSelection persists the option's display name. It fails with a
// NoSelectionError, writing nothing, when o is not an enumerated option.
func SaveSelection(s Store, o ModelOption) (string, error) {
	if !o.Valid() {
		return "", apierrors.NewNoSelectionError("")
	}
	name := o.DisplayName()
	if err := s.Set(KeySelectedModel, name); err != nil {
		return "", fmt.Errorf("failed to save model selection: %w", err)
	}
	return name, nil
}
