package models

import "github.com/neatdog/neatdog/internal/client/codec"

// Pack is a group of users sharing responsibility for a dog.
type Pack struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	CreatedBy int64           `json:"createdBy"`
	CreatedAt codec.Timestamp `json:"createdAt"`
}

// PackWithMembers is the detail view of a pack.
type PackWithMembers struct {
	Pack
	Members []PackMember `json:"members"`
}

type PackMember struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"userId"`
	Role     string          `json:"role"`
	JoinedAt codec.Timestamp `json:"joinedAt"`
	User     User            `json:"user"`
}

// PackInvitation is a pending invitation sent to an email address.
type PackInvitation struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	ExpiresAt codec.Timestamp `json:"expiresAt"`
	CreatedAt codec.Timestamp `json:"createdAt"`
}

type CreatePackRequest struct {
	Name string `json:"name"`
}

type InviteMemberRequest struct {
	Email string `json:"email"`
}

type AcceptInvitationRequest struct {
	Token string `json:"token"`
}
