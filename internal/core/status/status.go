// Package status defines the record lifecycle status shared by the admin entities.
// Upstream rows carry the status in several legacy encodings (enum strings,
// bare integers, numeric strings, booleans); Parse folds them all into one type
package status

import "strings"

// Status is the canonical lifecycle state of an admin record
type Status string

// Canonical statuses. Unknown is the zero-ish fallback for unparseable input
const (
	Active   Status = "active"
	Inactive Status = "inactive"
	Pending  Status = "pending"
	Approved Status = "approved"
	Rejected Status = "rejected"
	Unknown  Status = "unknown"
)

// All lists the canonical statuses in display order
func All() []Status {
	return []Status{Active, Inactive, Pending, Approved, Rejected}
}

// Parse folds a loosely typed status value into a canonical Status.
// Accepted forms: canonical strings in any case, "1"/"0", ints, bools
func Parse(v any) Status {
	switch t := v.(type) {
	case Status:
		if t.Valid() {
			return t
		}
		return Unknown
	case string:
		return parseString(t)
	case bool:
		if t {
			return Active
		}
		return Inactive
	case int:
		return parseInt(int64(t))
	case int32:
		return parseInt(int64(t))
	case int64:
		return parseInt(t)
	case float64:
		return parseInt(int64(t))
	case nil:
		return Unknown
	}
	return Unknown
}

func parseString(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "enabled", "1", "true":
		return Active
	case "inactive", "disabled", "0", "false":
		return Inactive
	case "pending":
		return Pending
	case "approved":
		return Approved
	case "rejected", "denied":
		return Rejected
	}
	return Unknown
}

func parseInt(n int64) Status {
	switch n {
	case 1:
		return Active
	case 0:
		return Inactive
	}
	return Unknown
}

// Valid reports whether s is one of the canonical statuses
func (s Status) Valid() bool {
	switch s {
	case Active, Inactive, Pending, Approved, Rejected:
		return true
	}
	return false
}

// String implements fmt.Stringer
func (s Status) String() string { return string(s) }

// Reviewable reports whether the status accepts an approve or reject transition
func (s Status) Reviewable() bool { return s == Pending }
