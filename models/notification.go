package models

import "time"

// Notification is a persisted in-app notification.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"userId" json:"userId"`
	Type      string         `bson:"type" json:"type"`
	Message   string         `bson:"message" json:"message"`
	LinkURL   string         `bson:"linkUrl,omitempty" json:"linkUrl,omitempty"`
	Metadata  map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// NotificationInput is the payload accepted by the notification service.
type NotificationInput struct {
	UserID   string         `json:"userId"`
	Type     string         `json:"type"`
	Message  string         `json:"message"`
	LinkURL  string         `json:"linkUrl,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
