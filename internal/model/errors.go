package model

import "errors"

// Validation errors returned by Gallery setters. The messages are part of the
// public contract and are returned unwrapped.
var (
	ErrInvalidName = errors.New("Gallery name can contain letters and digits only!")
	ErrInvalidCity = errors.New("City name must start with a letter!")
	ErrInvalidArea = errors.New("Gallery area must be a positive number!")
)

// Field names used when reporting which property rejected a value.
const (
	FieldName = "gallery_name"
	FieldCity = "city"
	FieldArea = "area_sq_m"
)

// FieldOf maps a validation error to the property that produced it.
// It returns "" for errors that are not Gallery validation errors.
func FieldOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidName):
		return FieldName
	case errors.Is(err, ErrInvalidCity):
		return FieldCity
	case errors.Is(err, ErrInvalidArea):
		return FieldArea
	default:
		return ""
	}
}
