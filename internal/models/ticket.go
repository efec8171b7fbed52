package models

import (
	"errors"
	"time"
)

// Ticket is the fare found for the chosen city on the nearest Saturday.
type Ticket struct {
	ID         string    `json:"id"`
	City       string    `json:"city"`
	Origin     string    `json:"origin"`
	IATA       string    `json:"iata"`
	DepartDate time.Time `json:"depart_date"`
	Price      float64   `json:"price"`
}

// Validate checks that all ticket fields are valid.
func (t *Ticket) Validate() error {
	if t.ID == "" {
		return errors.New("ticket ID must not be empty")
	}
	if t.City == "" {
		return errors.New("city must not be empty")
	}
	if len(t.Origin) != 3 {
		return errors.New("origin must be a 3-letter IATA code")
	}
	if len(t.IATA) != 3 {
		return errors.New("destination must be a 3-letter IATA code")
	}
	if t.DepartDate.Weekday() != time.Saturday {
		return errors.New("depart date must be a Saturday")
	}
	if t.Price <= 0 {
		return errors.New("price must be positive")
	}
	return nil
}
