// Package repository contains the data access layer, kept separate from the
// HTTP handlers. This file defines sentinel errors shared across the
// repositories so handlers can map failures to HTTP statuses with
// errors.Is instead of string matching.
package repository

import "errors"

// ErrClientNotFound is returned when a client id has no row. Handlers
// translate this into an HTTP 404.
var ErrClientNotFound = errors.New("client not found")

// ErrUserNotFound is returned when a username or user id has no row.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when creating a user whose username is
// already taken.
var ErrUsernameExists = errors.New("username already exists")
