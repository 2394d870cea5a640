package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neatdog/neatdog/internal/client/client"
	"github.com/neatdog/neatdog/internal/client/models"
)

const packWithMembersJSON = `{
  "id": 7, "name": "Rex fans", "created_by": 1, "created_at": "2026-01-29T11:05:05.255266",
  "members": [
    {"id": 1, "user_id": 1, "role": "owner", "joined_at": "2026-01-29T11:05:05Z",
     "user": {"id": 1, "email": "a@b.com", "name": "A", "created_at": "2026-01-29T11:05:05"}}
  ]
}`

func TestPackService_List(t *testing.T) {
	api := &fakeAPI{Responses: map[string]string{
		"GET /packs": `[{"id":7,"name":"Rex fans","created_by":1,"created_at":"2026-01-29T11:05:05Z"}]`,
	}}
	exp := &fakeExpirer{}

	packs, err := NewPackService(api, exp).List(context.Background())
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, "Rex fans", packs[0].Name)
	assert.Len(t, exp.Seen, 1, "every call goes through the expirer")
}

func TestPackService_GetDecodesMembers(t *testing.T) {
	api := &fakeAPI{Responses: map[string]string{"GET /packs/7": packWithMembersJSON}}

	p, err := NewPackService(api, &fakeExpirer{}).Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	require.Len(t, p.Members, 1)
	assert.Equal(t, "owner", p.Members[0].Role)
	assert.Equal(t, "a@b.com", p.Members[0].User.Email)
}

func TestPackService_CreateInviteAccept(t *testing.T) {
	api := &fakeAPI{Responses: map[string]string{
		"POST /packs":                    `{"id":8,"name":"New","created_by":1,"created_at":"2026-01-29T11:05:05Z"}`,
		"POST /packs/8/invitations":      `{"id":3,"email":"c@d.com","expires_at":"2026-02-05T11:05:05","created_at":"2026-01-29T11:05:05"}`,
		"POST /packs/invitations/accept": `{"id":8,"name":"New","created_by":1,"created_at":"2026-01-29T11:05:05Z"}`,
	}}
	svc := NewPackService(api, &fakeExpirer{})
	ctx := context.Background()

	p, err := svc.Create(ctx, "New")
	require.NoError(t, err)
	assert.Equal(t, int64(8), p.ID)
	assert.Equal(t, models.CreatePackRequest{Name: "New"}, api.last().Body)

	inv, err := svc.Invite(ctx, 8, "c@d.com")
	require.NoError(t, err)
	assert.Equal(t, "c@d.com", inv.Email)
	assert.Equal(t, models.InviteMemberRequest{Email: "c@d.com"}, api.last().Body)

	_, err = svc.AcceptInvitation(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, models.AcceptInvitationRequest{Token: "abc123"}, api.last().Body)
}

func TestPackService_RejectsEmptyInput(t *testing.T) {
	api := &fakeAPI{}
	svc := NewPackService(api, &fakeExpirer{})
	ctx := context.Background()

	_, err := svc.Create(ctx, " ")
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Invite(ctx, 1, "")
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.AcceptInvitation(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, api.Calls)
}

func TestPackService_ErrorIsReturnedThroughExpirer(t *testing.T) {
	unauthorized := &client.StatusError{Code: http.StatusUnauthorized}
	api := &fakeAPI{Err: unauthorized}
	exp := &fakeExpirer{}

	_, err := NewPackService(api, exp).List(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.Len(t, exp.Seen, 1)
	assert.Same(t, unauthorized, exp.Seen[0])
}
