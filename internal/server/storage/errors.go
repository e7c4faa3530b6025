package storage

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned on an attempt to create a duplicate user.
	ErrUserExists = errors.New("user already exists")

	// ErrTokenNotFound is returned when an issued token does not exist.
	ErrTokenNotFound = errors.New("token not found")

	// ErrInsufficientBalance is returned when a balance cannot cover a
	// debit (user balance at issue time, token balance at settle time).
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAlreadySettled is returned when a transaction ID has already
	// been settled.
	ErrAlreadySettled = errors.New("transaction already settled")
)
