package models

import "github.com/neatdog/neatdog/internal/client/codec"

// Dog is the single dog a pack looks after.
type Dog struct {
	ID        int64            `json:"id"`
	PackID    int64            `json:"packId"`
	Name      string           `json:"name"`
	Breed     *string          `json:"breed,omitempty"`
	BirthDate *codec.Timestamp `json:"birthDate,omitempty"`
	PhotoURL  *string          `json:"photoUrl,omitempty"`
	CreatedAt codec.Timestamp  `json:"createdAt"`
}

type CreateDogRequest struct {
	Name      string           `json:"name"`
	Breed     *string          `json:"breed,omitempty"`
	BirthDate *codec.Timestamp `json:"birthDate,omitempty"`
	PhotoURL  *string          `json:"photoUrl,omitempty"`
}

// UpdateDogRequest is a partial update; nil fields are left unchanged.
type UpdateDogRequest struct {
	Name      *string          `json:"name,omitempty"`
	Breed     *string          `json:"breed,omitempty"`
	BirthDate *codec.Timestamp `json:"birthDate,omitempty"`
	PhotoURL  *string          `json:"photoUrl,omitempty"`
}
