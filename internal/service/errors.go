package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== User Errors =====
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserHasFavorites   = errors.New("user still has favorites")
)

// ===== Catalog Errors =====
var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrPlanetNotFound    = errors.New("planet not found")
)

// ===== Favorite Errors =====
var (
	ErrFavoriteNotFound = errors.New("Favorite not found")
)

// ===== Seed Errors =====
var (
	ErrSeedFileInvalid = errors.New("invalid seed file")
)
