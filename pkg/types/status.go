package types

// Status is the aggregate outcome of an installation run
type Status int

const (
	// StatusOk means every manifest item was installed or already present
	StatusOk Status = iota
	// StatusWarn means at least one manifest source did not exist
	StatusWarn
)

// String returns the display name of the status
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusWarn:
		return "Warn"
	default:
		return "Unknown"
	}
}

// Merge returns the more severe of the two statuses
func (s Status) Merge(other Status) Status {
	if other > s {
		return other
	}
	return s
}
