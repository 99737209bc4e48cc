package models

import (
	"errors"
)

// Database errors are replaced with these in the gorm callbacks so that no
// driver details reach API responses.
var (
	// ErrGeneral is returned for all database errors without a specific mapping.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is wrapped with the name of the missing record, e.g.
	// "there is no expense matching your query".
	ErrResourceNotFound = errors.New("there is no")

	// ErrIDNotUnique is returned when a record is inserted with an ID that is taken.
	ErrIDNotUnique = errors.New("a record with this ID already exists")
)
