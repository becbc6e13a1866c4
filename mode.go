package ik

import "fmt"

// Mode selects INDEX (recall-favoring, every non-overlap-resolved
// candidate survives) versus SEARCH (precision-favoring, one best path per
// overlap group plus numeric+quantifier compounding).
type Mode int

const (
	// ModeIndex is the maximum-recall mode.
	ModeIndex Mode = iota
	// ModeSearch is the single-best-path mode.
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "SEARCH"
	}
	return "INDEX"
}

// ConfigError reports an invalid mode alias or a missing configuration key,
// surfaced at construction time rather than during tokenization.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "ik: config error: " + e.Reason }

// ParseMode parses the configuration-boundary mode aliases ik_max (INDEX)
// and ik_smart (SEARCH). Any other alias is a ConfigError, matching
// ik_segmenter.rs's TryFrom<&str> error shape.
func ParseMode(alias string) (Mode, error) {
	switch alias {
	case "ik_max":
		return ModeIndex, nil
	case "ik_smart":
		return ModeSearch, nil
	default:
		return 0, &ConfigError{Reason: fmt.Sprintf("unrecognized token mode alias %q, want \"ik_max\" or \"ik_smart\"", alias)}
	}
}
