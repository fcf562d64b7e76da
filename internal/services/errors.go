package services

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Deliberately one error: the login page must not reveal
	// which of the two failed.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUsernameTaken is the uniqueness conflict on registration.
	ErrUsernameTaken = errors.New("username is already registered")

	// ErrPostNotFound means no post exists with the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrNotOwner means the authenticated user is not the post's author.
	ErrNotOwner = errors.New("not the post author")
)
