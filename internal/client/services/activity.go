package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/neatdog/neatdog/internal/client/client"
	"github.com/neatdog/neatdog/internal/client/codec"
	"github.com/neatdog/neatdog/internal/client/models"
)

const (
	DefaultTypeIcon  = "pawprint.fill"
	DefaultTypeColor = "#3B82F6"

	historyLimit = 100
)

type ActivityService struct {
	caller
	now func() time.Time
}

func NewActivityService(api API, e Expirer) *ActivityService {
	return &ActivityService{caller: caller{api: api, expirer: e}, now: time.Now}
}

// Filter narrows an activity listing. Zero values mean "any".
type Filter struct {
	TypeID int64
	Start  time.Time
	End    time.Time
}

func (f Filter) query() url.Values {
	q := url.Values{}
	if f.TypeID != 0 {
		q.Set("activity_type_id", strconv.FormatInt(f.TypeID, 10))
	}
	if !f.Start.IsZero() {
		q.Set("start_date", codec.FormatTime(f.Start))
	}
	if !f.End.IsZero() {
		q.Set("end_date", codec.FormatTime(f.End))
	}
	q.Set("limit", strconv.Itoa(historyLimit))
	return q
}

// ListTypes returns the default types plus the pack's custom ones.
func (s *ActivityService) ListTypes(ctx context.Context, packID int64) ([]models.ActivityType, error) {
	var types []models.ActivityType
	if err := s.get(ctx, typesPath(packID), &types); err != nil {
		return nil, err
	}
	return types, nil
}

// CreateType adds a custom activity type. Empty icon and color fall back to
// DefaultTypeIcon and DefaultTypeColor.
func (s *ActivityService) CreateType(ctx context.Context, packID int64, name, icon, color string) (models.ActivityType, error) {
	if strings.TrimSpace(name) == "" {
		return models.ActivityType{}, invalid("activity type name cannot be empty")
	}
	if icon == "" {
		icon = DefaultTypeIcon
	}
	if color == "" {
		color = DefaultTypeColor
	}

	var t models.ActivityType
	req := models.CreateActivityTypeRequest{Name: name, Icon: icon, Color: color}
	err := s.post(ctx, typesPath(packID), req, &t)
	return t, err
}

// List returns up to 100 of the pack's activities matching f, newest first
// as ordered by the server.
func (s *ActivityService) List(ctx context.Context, packID int64, f Filter) ([]models.ActivityLogWithDetails, error) {
	var logs []models.ActivityLogWithDetails
	if err := s.get(ctx, client.WithQuery(activitiesPath(packID), f.query()), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Log records an activity. Empty notes are sent as absent; a zero loggedAt
// means now.
func (s *ActivityService) Log(ctx context.Context, packID, typeID int64, notes string, loggedAt time.Time) (models.ActivityLogWithDetails, error) {
	if typeID == 0 {
		return models.ActivityLogWithDetails{}, invalid("please select an activity type")
	}
	if loggedAt.IsZero() {
		loggedAt = s.now()
	}

	ts := codec.NewTimestamp(loggedAt)
	req := models.CreateActivityLogRequest{
		ActivityTypeID: typeID,
		Notes:          optString(notes),
		LoggedAt:       &ts,
	}

	var out models.ActivityLogWithDetails
	err := s.post(ctx, activitiesPath(packID), req, &out)
	return out, err
}

// QuickLog records an activity of typeID now, without notes.
func (s *ActivityService) QuickLog(ctx context.Context, packID, typeID int64) (models.ActivityLogWithDetails, error) {
	return s.Log(ctx, packID, typeID, "", s.now())
}

func typesPath(packID int64) string {
	return fmt.Sprintf("/packs/%d/activity-types", packID)
}

func activitiesPath(packID int64) string {
	return fmt.Sprintf("/packs/%d/activities", packID)
}
