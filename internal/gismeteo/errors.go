package gismeteo

import "fmt"

// MissingFieldError reports that an extractor found fewer values on the page
// than the forecast horizon requires.
type MissingFieldError struct {
	Field string
	Want  int
	Got   int
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s: want %d values, got %d", e.Field, e.Want, e.Got)
}

// ConversionError reports a numeric fragment that failed to parse after
// sign and decimal-separator normalization.
type ConversionError struct {
	Field string
	Text  string
	Err   error
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s value %q: %v", e.Field, e.Text, e.Err)
}

func (e ConversionError) Unwrap() error { return e.Err }
