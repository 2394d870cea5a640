// Package models defines the records exchanged with the neatdog backend.
//
// JSON tags carry logical camelCase names; the codec package maps them to
// the snake_case wire form. Pointer fields are optional, every other field
// is required when decoding.
package models
