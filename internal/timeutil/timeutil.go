package timeutil

import "time"

// SnapshotDateLayout is the dataset date format: zero-padded day, month, year with no separators.
const SnapshotDateLayout = "02012006"

// FormatSnapshotDate formats a time as DDMMYYYY in its current location.
func FormatSnapshotDate(t time.Time) string {
	return t.Format(SnapshotDateLayout)
}

// ResolveLocation loads the named zone, falling back to the local zone when empty or unknown.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.Local
}
