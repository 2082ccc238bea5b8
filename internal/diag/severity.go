package diag

// Severity is the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is an advisory note; the core never emits it today, but the
	// level exists because the diagnostic record contract (§6) reserves it.
	SevInfo Severity = iota
	SevWarning
	SevError
	// SevHint is reserved for host-side quick-fixes and is never produced
	// by this engine.
	SevHint
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevHint:
		return "hint"
	default:
		return "unknown"
	}
}
