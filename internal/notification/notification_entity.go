package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeLeaveDelegation = "LEAVE_DELEGATION"
	TypeLeaveRelief     = "LEAVE_RELIEF"
)

type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient;uniqueIndex:uq_notification_recipient_ref"`

	Type  string `gorm:"type:varchar(40);not null;uniqueIndex:uq_notification_recipient_ref"`
	Title string `gorm:"type:varchar(200);not null"`
	Body  string `gorm:"type:text"`

	// ReferenceID points at the aggregate the notification is about, e.g.
	// a leave request id. The unique index makes re-delivered events no-ops.
	ReferenceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_notification_recipient_ref"`

	IsRead    bool `gorm:"not null;default:false"`
	ReadAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
