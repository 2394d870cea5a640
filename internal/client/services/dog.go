package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/neatdog/neatdog/internal/client/client"
	"github.com/neatdog/neatdog/internal/client/codec"
	"github.com/neatdog/neatdog/internal/client/models"
)

type DogService struct {
	caller
}

func NewDogService(api API, e Expirer) *DogService {
	return &DogService{caller{api: api, expirer: e}}
}

// DogInput is the editable part of a dog profile. An empty Breed and a zero
// BirthDate are sent as absent.
type DogInput struct {
	Name      string
	Breed     string
	BirthDate time.Time
}

// Get returns the pack's dog. ok is false, with a nil error, when the pack
// has no dog yet.
func (s *DogService) Get(ctx context.Context, packID int64) (dog models.Dog, ok bool, err error) {
	err = s.get(ctx, dogPath(packID), &dog)
	if errors.Is(err, client.ErrNotFound) {
		return models.Dog{}, false, nil
	}
	if err != nil {
		return models.Dog{}, false, err
	}
	return dog, true, nil
}

func (s *DogService) Create(ctx context.Context, packID int64, in DogInput) (models.Dog, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Dog{}, invalid("dog name cannot be empty")
	}

	req := models.CreateDogRequest{
		Name:      in.Name,
		Breed:     optString(in.Breed),
		BirthDate: optTime(in.BirthDate),
	}

	var dog models.Dog
	err := s.post(ctx, dogPath(packID), req, &dog)
	return dog, err
}

func (s *DogService) Update(ctx context.Context, packID int64, in DogInput) (models.Dog, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Dog{}, invalid("dog name cannot be empty")
	}

	name := in.Name
	req := models.UpdateDogRequest{
		Name:      &name,
		Breed:     optString(in.Breed),
		BirthDate: optTime(in.BirthDate),
	}

	var dog models.Dog
	err := s.patch(ctx, dogPath(packID), req, &dog)
	return dog, err
}

func dogPath(packID int64) string {
	return fmt.Sprintf("/packs/%d/dog", packID)
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optTime(t time.Time) *codec.Timestamp {
	if t.IsZero() {
		return nil
	}
	ts := codec.NewTimestamp(t)
	return &ts
}
