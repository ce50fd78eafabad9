package diag

import "fmt"

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for notes that do not count as violations.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "NOTE"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label is the lowercase form used in short and machine-readable output.
func (s Severity) Label() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// ParseSeverity accepts the Label form ("error", "warning", "note").
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "error":
		return SevError, nil
	case "warning":
		return SevWarning, nil
	case "note", "info":
		return SevInfo, nil
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}
