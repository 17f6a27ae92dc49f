package models

import "time"

type MessageType string

const (
	MessageTypeComment   MessageType = "comment"
	MessageTypeApproval  MessageType = "approval"
	MessageTypeRejection MessageType = "rejection"
)

// PointLogMessage is one entry in a point log's append-only thread.
type PointLogMessage struct {
	CreationDate          time.Time       `db:"creation_date"           json:"creation_date"`
	Message               string          `db:"message"                 json:"message"`
	MessageType           MessageType     `db:"message_type"            json:"message_type"`
	SenderFirstName       string          `db:"sender_first_name"       json:"sender_first_name"`
	SenderLastName        string          `db:"sender_last_name"        json:"sender_last_name"`
	SenderPermissionLevel PermissionLevel `db:"sender_permission_level" json:"sender_permission_level"`
}

func NewComment(sender *User, text string, at time.Time) PointLogMessage {
	return PointLogMessage{
		CreationDate:          at,
		Message:               text,
		MessageType:           MessageTypeComment,
		SenderFirstName:       sender.FirstName,
		SenderLastName:        sender.LastName,
		SenderPermissionLevel: sender.PermissionLevel,
	}
}

// NewApprovalMessage is the system-generated thread entry for an approval.
func NewApprovalMessage(approver *User, at time.Time) PointLogMessage {
	return PointLogMessage{
		CreationDate:          at,
		Message:               "Point request approved.",
		MessageType:           MessageTypeApproval,
		SenderFirstName:       approver.FirstName,
		SenderLastName:        approver.LastName,
		SenderPermissionLevel: approver.PermissionLevel,
	}
}

// NewRejectionMessage carries the approver-supplied reason.
func NewRejectionMessage(approver *User, reason string, at time.Time) PointLogMessage {
	return PointLogMessage{
		CreationDate:          at,
		Message:               reason,
		MessageType:           MessageTypeRejection,
		SenderFirstName:       approver.FirstName,
		SenderLastName:        approver.LastName,
		SenderPermissionLevel: approver.PermissionLevel,
	}
}
