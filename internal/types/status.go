package types

import "strings"

// Status is the review state of a location enrollment. The original client
// branched on raw server strings; here the parse is total and every status
// maps through an explicit table.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusApproved
	StatusRejected
)

// ParseStatus maps a server status string onto the enum. Case-insensitive;
// anything unrecognized becomes StatusUnknown rather than an error, since a
// list screen must still render rows the server has already given it.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending
	case "approved":
		return StatusApproved
	case "rejected":
		return StatusRejected
	default:
		return StatusUnknown
	}
}

// String returns the display label.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Wire returns the lowercase form used in request bodies.
func (s Status) Wire() string {
	return strings.ToLower(s.String())
}
