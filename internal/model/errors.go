package model

import "errors"

var (
	// Account related errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Vehicle related errors
	ErrVehicleNotFound = errors.New("vehicle not found")

	// Permission/Access related errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
