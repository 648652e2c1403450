package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ChannelEmail   = "EMAIL"
	ChannelWebhook = "WEBHOOK"
)

// NotificationLog keeps an audit row for every admin alert dispatched for
// negative feedback.
type NotificationLog struct {
	gorm.Model
	Reference  string         `gorm:"size:36;uniqueIndex" json:"reference"`
	FeedbackID uint           `gorm:"index;not null" json:"feedback_id"`
	Recipient  string         `gorm:"not null" json:"recipient"`
	Channel    string         `gorm:"size:20;default:'EMAIL'" json:"channel"`
	Payload    datatypes.JSON `json:"payload"`
}
