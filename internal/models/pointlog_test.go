package models

import (
	"testing"
	"time"
)

func TestPointLogEncodeDecode(t *testing.T) {
	t.Run("pending_stored_negative", func(t *testing.T) {
		l := &PointLog{PointTypeID: 7}
		if got := l.EncodePointTypeID(); got != -7 {
			t.Fatalf("expected -7, got %d", got)
		}
	})

	t.Run("handled_stored_positive", func(t *testing.T) {
		l := &PointLog{PointTypeID: 7, Handled: true}
		if got := l.EncodePointTypeID(); got != 7 {
			t.Fatalf("expected 7, got %d", got)
		}
	})

	t.Run("decode_negative", func(t *testing.T) {
		var l PointLog
		l.DecodePointTypeID(-12)
		if l.PointTypeID != 12 || l.Handled {
			t.Fatalf("expected pending id 12, got id=%d handled=%v", l.PointTypeID, l.Handled)
		}
	})

	t.Run("decode_positive", func(t *testing.T) {
		var l PointLog
		l.DecodePointTypeID(12)
		if l.PointTypeID != 12 || !l.Handled {
			t.Fatalf("expected handled id 12, got id=%d handled=%v", l.PointTypeID, l.Handled)
		}
	})
}

func TestPointLogRejectionMarker(t *testing.T) {
	l := &PointLog{Description: "Attended hall dinner"}
	if l.Rejected() {
		t.Fatal("fresh log must not be rejected")
	}

	l.MarkRejected()
	if !l.Rejected() {
		t.Fatal("expected rejected after MarkRejected")
	}
	if l.Description != RejectedPrefix+"Attended hall dinner" {
		t.Fatalf("unexpected description %q", l.Description)
	}

	l.ClearRejected()
	if l.Rejected() {
		t.Fatal("expected marker cleared")
	}
	if l.Description != "Attended hall dinner" {
		t.Fatalf("description mangled: %q", l.Description)
	}

	// clearing twice must be a no-op
	l.ClearRejected()
	if l.Description != "Attended hall dinner" {
		t.Fatalf("double clear mangled description: %q", l.Description)
	}
}

func TestPointLogRejectionMarkerIsPrefixOnly(t *testing.T) {
	l := &PointLog{Description: "They said DENIED: twice"}
	if l.Rejected() {
		t.Fatal("marker inside the text must not count as rejected")
	}
}

func TestPointLogStamp(t *testing.T) {
	rhp := &User{FirstName: "Dana", LastName: "Reed", PermissionLevel: RHP}
	at := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)

	l := &PointLog{PointTypeID: 3}
	l.Stamp(rhp, at)

	if !l.Handled {
		t.Fatal("stamp must mark the log handled")
	}
	if l.ApprovedBy == nil || *l.ApprovedBy != "Dana Reed" {
		t.Fatalf("unexpected approver %v", l.ApprovedBy)
	}
	if l.ApprovedOn == nil || !l.ApprovedOn.Equal(at) {
		t.Fatalf("unexpected approval time %v", l.ApprovedOn)
	}
}
