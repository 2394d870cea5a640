package codec_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/neatdog/neatdog/internal/client/codec"
	"github.com/neatdog/neatdog/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMarshal_SnakeCaseKeys(t *testing.T) {
	req := models.CreateActivityLogRequest{
		ActivityTypeID: 7,
		Notes:          ptr("long walk"),
		LoggedAt:       ptr(codec.NewTimestamp(time.Date(2026, 1, 29, 11, 5, 5, 255266000, time.UTC))),
	}

	b, err := codec.Marshal(req)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, map[string]any{
		"activity_type_id": float64(7),
		"notes":            "long walk",
		"logged_at":        "2026-01-29T11:05:05.255266Z",
	}, got)
}

func TestMarshal_OmitsAbsentOptionals(t *testing.T) {
	b, err := codec.Marshal(models.CreateActivityLogRequest{ActivityTypeID: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"activity_type_id":3}`, string(b))
}

func TestRoundTrip_RequestTypes(t *testing.T) {
	birth := codec.NewTimestamp(time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		in   any
		out  func() any
	}{
		{"login", models.LoginRequest{Email: "a@b.com", Password: "secret1"}, func() any { return &models.LoginRequest{} }},
		{"signup", models.SignupRequest{Email: "a@b.com", Password: "secret1", Name: "A"}, func() any { return &models.SignupRequest{} }},
		{"refresh", models.RefreshTokenRequest{RefreshToken: "ref1"}, func() any { return &models.RefreshTokenRequest{} }},
		{"create pack", models.CreatePackRequest{Name: "Rex fans"}, func() any { return &models.CreatePackRequest{} }},
		{"invite", models.InviteMemberRequest{Email: "c@d.com"}, func() any { return &models.InviteMemberRequest{} }},
		{"accept", models.AcceptInvitationRequest{Token: "inv-123"}, func() any { return &models.AcceptInvitationRequest{} }},
		{"create dog", models.CreateDogRequest{Name: "Rex", Breed: ptr("Beagle"), BirthDate: &birth}, func() any { return &models.CreateDogRequest{} }},
		{"update dog", models.UpdateDogRequest{Name: ptr("Rex II")}, func() any { return &models.UpdateDogRequest{} }},
		{"activity type", models.CreateActivityTypeRequest{Name: "Vet", Icon: "cross.fill", Color: "#FF0000"}, func() any { return &models.CreateActivityTypeRequest{} }},
		{"activity log", models.CreateActivityLogRequest{ActivityTypeID: 9, LoggedAt: &birth}, func() any { return &models.CreateActivityLogRequest{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := codec.Marshal(tt.in)
			require.NoError(t, err)

			out := tt.out()
			require.NoError(t, codec.Unmarshal(b, out))
			assert.Equal(t, tt.in, deref(out))
		})
	}
}

func deref(v any) any {
	switch x := v.(type) {
	case *models.LoginRequest:
		return *x
	case *models.SignupRequest:
		return *x
	case *models.RefreshTokenRequest:
		return *x
	case *models.CreatePackRequest:
		return *x
	case *models.InviteMemberRequest:
		return *x
	case *models.AcceptInvitationRequest:
		return *x
	case *models.CreateDogRequest:
		return *x
	case *models.UpdateDogRequest:
		return *x
	case *models.CreateActivityTypeRequest:
		return *x
	case *models.CreateActivityLogRequest:
		return *x
	}
	return v
}

func TestUnmarshal_AuthResponse(t *testing.T) {
	body := `{"access_token":"tok1","refresh_token":"ref1","token_type":"bearer",
		"user":{"id":1,"email":"a@b.com","name":"A","created_at":"2024-01-01T00:00:00"}}`

	var resp models.AuthResponse
	require.NoError(t, codec.Unmarshal([]byte(body), &resp))

	assert.Equal(t, "tok1", resp.AccessToken)
	assert.Equal(t, "ref1", resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(resp.User.CreatedAt.Time))
}

func TestUnmarshal_NaiveAndZuluLoggedAtAgree(t *testing.T) {
	tmpl := `{"id":1,"pack_id":2,"dog_id":3,"activity_type_id":4,"user_id":5,
		"logged_at":%q,"created_at":"2026-01-29T11:05:06Z"}`

	var naive, zulu models.ActivityLog
	require.NoError(t, codec.Unmarshal([]byte(sprintf(tmpl, "2026-01-29T11:05:05.255266")), &naive))
	require.NoError(t, codec.Unmarshal([]byte(sprintf(tmpl, "2026-01-29T11:05:05.255266Z")), &zulu))

	assert.True(t, naive.LoggedAt.Equal(zulu.LoggedAt.Time))
	assert.Nil(t, naive.Notes)
}

func TestUnmarshal_EmbeddedAndNested(t *testing.T) {
	body := `[{"id":10,"pack_id":2,"dog_id":3,"activity_type_id":4,"user_id":5,"notes":"ok",
		"logged_at":"2026-01-29T11:05:05","created_at":"2026-01-29T11:05:05",
		"activity_type":{"id":4,"name":"Walk","icon":"figure.walk","color":"#00FF00","pack_id":null,"is_default":true,"created_at":"2024-01-01T00:00:00Z"},
		"user":{"id":5,"email":"e@f.com","name":"E","created_at":"2024-01-01T00:00:00.000001"},
		"unexpected_field":{"ignored":true}}]`

	var got []models.ActivityLogWithDetails
	require.NoError(t, codec.Unmarshal([]byte(body), &got))
	require.Len(t, got, 1)

	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, "ok", *got[0].Notes)
	assert.Equal(t, "Walk", got[0].ActivityType.Name)
	assert.True(t, got[0].ActivityType.IsDefault)
	assert.Nil(t, got[0].ActivityType.PackID)
	assert.Equal(t, "E", got[0].User.Name)
}

func TestUnmarshal_MissingRequiredField(t *testing.T) {
	var u models.User
	err := codec.Unmarshal([]byte(`{"id":1,"email":"a@b.com","created_at":"2024-01-01T00:00:00"}`), &u)

	var mfe *codec.MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "name", mfe.Path)
}

func TestUnmarshal_NullRequiredNestedField(t *testing.T) {
	body := `{"id":1,"name":"P","created_by":1,"created_at":"2024-01-01T00:00:00",
		"members":[{"id":1,"user_id":1,"role":"owner","joined_at":"2024-01-01T00:00:00","user":null}]}`

	var p models.PackWithMembers
	err := codec.Unmarshal([]byte(body), &p)

	var mfe *codec.MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "members[0].user", mfe.Path)
}

func TestUnmarshal_MissingOptionalIsNil(t *testing.T) {
	body := `{"id":1,"pack_id":2,"name":"Rex","created_at":"2024-01-01T00:00:00"}`

	var d models.Dog
	require.NoError(t, codec.Unmarshal([]byte(body), &d))
	assert.Nil(t, d.Breed)
	assert.Nil(t, d.BirthDate)
	assert.Nil(t, d.PhotoURL)
}

func TestUnmarshal_MalformedDate(t *testing.T) {
	body := `{"id":1,"email":"a@b.com","name":"A","created_at":"01/01/2024"}`

	var u models.User
	err := codec.Unmarshal([]byte(body), &u)

	var de *codec.DateError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "01/01/2024", de.Value)
	assert.True(t, u.CreatedAt.IsZero())
}

func TestUnmarshal_NullDocument(t *testing.T) {
	var u models.User
	var mfe *codec.MissingFieldError
	require.ErrorAs(t, codec.Unmarshal([]byte(`null`), &u), &mfe)

	var list []models.Pack
	require.NoError(t, codec.Unmarshal([]byte(`null`), &list))
	assert.Nil(t, list)
}

func TestUnmarshal_SyntaxError(t *testing.T) {
	var u models.User
	err := codec.Unmarshal([]byte(`{"id":`), &u)
	require.Error(t, err)
}

func TestUnmarshal_RejectsNonPointer(t *testing.T) {
	var u models.User
	require.Error(t, codec.Unmarshal([]byte(`{}`), u))
}

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
