package models

import (
	"strings"
	"time"
)

// RejectedPrefix is the legacy textual marker on a log's description while
// its last handling outcome is a rejection. It is part of the stored data
// format (older clients and exports depend on it), so it is preserved at
// the storage boundary.
const RejectedPrefix = "DENIED: "

// PointLog is one submitted claim for competition points.
//
// The stored representation overloads two fields: point_type_id is negative
// until the log has been handled for the first time, and the description
// carries the RejectedPrefix while the log sits in a rejected state. In
// memory the model keeps PointTypeID as the positive catalog id plus an
// explicit Handled flag; EncodePointTypeID/DecodePointTypeID translate at
// the storage boundary.
type PointLog struct {
	ID                    string     `db:"id"                     json:"id"`
	House                 string     `db:"house"                  json:"house"`
	ResidentID            string     `db:"resident_id"            json:"resident_id"`
	PointTypeID           int        `db:"point_type_id"          json:"point_type_id"`
	PointTypeName         string     `db:"point_type_name"        json:"point_type_name"`
	PointTypeDescription  string     `db:"point_type_description" json:"point_type_description"`
	Description           string     `db:"description"            json:"description"`
	FloorID               string     `db:"floor_id"               json:"floor_id"`
	DateOccurred          time.Time  `db:"date_occurred"          json:"date_occurred"`
	DateSubmitted         time.Time  `db:"date_submitted"         json:"date_submitted"`
	ApprovedBy            *string    `db:"approved_by"            json:"approved_by"`
	ApprovedOn            *time.Time `db:"approved_on"            json:"approved_on"`
	ResidentFirstName     string     `db:"resident_first_name"    json:"resident_first_name"`
	ResidentLastName      string     `db:"resident_last_name"     json:"resident_last_name"`
	ResidentNotifications int        `db:"resident_notifications" json:"resident_notifications"`
	RHPNotifications      int        `db:"rhp_notifications"      json:"rhp_notifications"`

	// Handled is true once the log has left the pending state at least
	// once, in either direction.
	Handled bool `json:"handled"`
}

// EncodePointTypeID returns the signed id as persisted: negative while the
// log is still pending.
func (l *PointLog) EncodePointTypeID() int {
	if l.Handled {
		return l.PointTypeID
	}
	return -l.PointTypeID
}

// DecodePointTypeID sets PointTypeID and Handled from the stored signed id.
func (l *PointLog) DecodePointTypeID(stored int) {
	if stored < 0 {
		l.PointTypeID = -stored
		l.Handled = false
		return
	}
	l.PointTypeID = stored
	l.Handled = true
}

// Rejected reports whether the last handling outcome was a rejection.
func (l *PointLog) Rejected() bool {
	return strings.HasPrefix(l.Description, RejectedPrefix)
}

// MarkRejected stamps the description with the rejection marker.
// Rejecting an already-rejected log is the caller's 416 case; this method
// is only valid when Rejected() is false.
func (l *PointLog) MarkRejected() {
	l.Description = RejectedPrefix + l.Description
}

// ClearRejected strips the rejection marker if present.
func (l *PointLog) ClearRejected() {
	l.Description = strings.TrimPrefix(l.Description, RejectedPrefix)
}

// Stamp records who resolved the log and when. First-time handling also
// flips the log out of the pending state, whatever the outcome.
func (l *PointLog) Stamp(approver *User, at time.Time) {
	name := approver.FullName()
	l.ApprovedBy = &name
	l.ApprovedOn = &at
	l.Handled = true
}
