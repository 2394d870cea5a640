package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/neatdog/neatdog/internal/client/models"
)

type PackService struct {
	caller
}

func NewPackService(api API, e Expirer) *PackService {
	return &PackService{caller{api: api, expirer: e}}
}

// List returns the packs the signed-in user belongs to.
func (s *PackService) List(ctx context.Context) ([]models.Pack, error) {
	var packs []models.Pack
	if err := s.get(ctx, "/packs", &packs); err != nil {
		return nil, err
	}
	return packs, nil
}

func (s *PackService) Get(ctx context.Context, id int64) (models.PackWithMembers, error) {
	var p models.PackWithMembers
	err := s.get(ctx, fmt.Sprintf("/packs/%d", id), &p)
	return p, err
}

func (s *PackService) Create(ctx context.Context, name string) (models.Pack, error) {
	if strings.TrimSpace(name) == "" {
		return models.Pack{}, invalid("pack name cannot be empty")
	}

	var p models.Pack
	err := s.post(ctx, "/packs", models.CreatePackRequest{Name: name}, &p)
	return p, err
}

// Invite sends an invitation to email to join the pack.
func (s *PackService) Invite(ctx context.Context, packID int64, email string) (models.PackInvitation, error) {
	if strings.TrimSpace(email) == "" {
		return models.PackInvitation{}, invalid("email cannot be empty")
	}

	var inv models.PackInvitation
	err := s.post(ctx, fmt.Sprintf("/packs/%d/invitations", packID), models.InviteMemberRequest{Email: email}, &inv)
	return inv, err
}

// AcceptInvitation joins the pack the invitation token belongs to.
func (s *PackService) AcceptInvitation(ctx context.Context, token string) (models.Pack, error) {
	if strings.TrimSpace(token) == "" {
		return models.Pack{}, invalid("token cannot be empty")
	}

	var p models.Pack
	err := s.post(ctx, "/packs/invitations/accept", models.AcceptInvitationRequest{Token: token}, &p)
	return p, err
}
