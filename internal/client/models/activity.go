package models

import "github.com/neatdog/neatdog/internal/client/codec"

// ActivityType is a kind of loggable activity. Default types are shared by
// all packs and have no PackID.
type ActivityType struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	PackID    *int64          `json:"packId,omitempty"`
	IsDefault bool            `json:"isDefault"`
	CreatedAt codec.Timestamp `json:"createdAt"`
}

type CreateActivityTypeRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ActivityLog is one logged activity.
type ActivityLog struct {
	ID             int64           `json:"id"`
	PackID         int64           `json:"packId"`
	DogID          int64           `json:"dogId"`
	ActivityTypeID int64           `json:"activityTypeId"`
	UserID         int64           `json:"userId"`
	Notes          *string         `json:"notes,omitempty"`
	LoggedAt       codec.Timestamp `json:"loggedAt"`
	CreatedAt      codec.Timestamp `json:"createdAt"`
}

// ActivityLogWithDetails is an ActivityLog with its type and author inlined.
type ActivityLogWithDetails struct {
	ActivityLog
	ActivityType ActivityType `json:"activityType"`
	User         User         `json:"user"`
}

type CreateActivityLogRequest struct {
	ActivityTypeID int64            `json:"activityTypeId"`
	Notes          *string          `json:"notes,omitempty"`
	LoggedAt       *codec.Timestamp `json:"loggedAt,omitempty"`
}
