// Package models defines the core domain entities for the getaway application:
// per-day forecast records scraped from the weather portal, the flat multi-city
// forecast table the analytics run over, and the resulting fare ticket.
//
// Optional numeric fields (temperature and pressure extremes) are pointers, not
// sentinel values: downstream averaging has to distinguish "zero degrees" from
// "the portal did not publish a value for this day".
package models

import (
	"errors"
	"fmt"
	"time"
)

// DaysPerCity is the forecast horizon of a single city page. Every city
// contributes exactly this many rows to the table, in date order, even when
// individual fields could not be extracted.
const DaysPerCity = 10

// ForecastDay is one day of one city's forecast.
type ForecastDay struct {
	Date          time.Time `json:"date"`
	City          string    `json:"city"`
	Summary       string    `json:"summary"`
	MaxTemp       *int      `json:"max_temp"`
	MinTemp       *int      `json:"min_temp"`
	MaxWindSpeed  int       `json:"max_wind_speed"`
	Precipitation float64   `json:"precipitation"`
	MaxPressure   *int      `json:"max_pressure"`
	MinPressure   *int      `json:"min_pressure"`

	// Derived columns, filled in by the analytics pass.
	DayOfWeek      int      `json:"day_of_week"` // 0=Monday .. 6=Sunday
	MaxTempRolling *float64 `json:"max_temp_rolling,omitempty"`
	AverageTemp    *float64 `json:"average_temp,omitempty"`
}

// Validate checks that all forecast day fields are valid.
func (d *ForecastDay) Validate() error {
	if d.City == "" {
		return errors.New("city must not be empty")
	}
	if d.Date.IsZero() {
		return errors.New("date must be set")
	}
	if d.MaxWindSpeed < 0 {
		return errors.New("max wind speed must not be negative")
	}
	if d.Precipitation < 0 {
		return errors.New("precipitation must not be negative")
	}
	if d.MaxPressure != nil && *d.MaxPressure < 0 {
		return errors.New("max pressure must not be negative")
	}
	if d.MinPressure != nil && *d.MinPressure < 0 {
		return errors.New("min pressure must not be negative")
	}
	if d.MaxTemp != nil && d.MinTemp != nil && *d.MinTemp > *d.MaxTemp {
		return errors.New("min temp must not exceed max temp")
	}
	if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
		return errors.New("day of week must be between 0 and 6")
	}
	return nil
}

// ForecastTable is the city-major concatenation of per-city day sequences:
// N cities × DaysPerCity rows, in city discovery order.
type ForecastTable []ForecastDay

// CityBlocks splits the table into consecutive DaysPerCity-row slices, one per
// city, in table order. The slices alias the table's backing array.
func (t ForecastTable) CityBlocks() []ForecastTable {
	blocks := make([]ForecastTable, 0, len(t)/DaysPerCity)
	for i := 0; i+DaysPerCity <= len(t); i += DaysPerCity {
		blocks = append(blocks, t[i:i+DaysPerCity])
	}
	return blocks
}

// Validate checks the table's structural invariants: a whole number of
// city blocks, one city per block, and strictly consecutive dates within
// each block.
func (t ForecastTable) Validate() error {
	if len(t)%DaysPerCity != 0 {
		return fmt.Errorf("table length %d is not a multiple of %d", len(t), DaysPerCity)
	}
	for bi, block := range t.CityBlocks() {
		city := block[0].City
		for i := range block {
			if err := block[i].Validate(); err != nil {
				return fmt.Errorf("row %d: %w", bi*DaysPerCity+i, err)
			}
			if block[i].City != city {
				return fmt.Errorf("block %d mixes cities %q and %q", bi, city, block[i].City)
			}
			if i > 0 {
				want := block[i-1].Date.AddDate(0, 0, 1)
				if !block[i].Date.Equal(want) {
					return fmt.Errorf("block %d row %d: date %s is not the day after %s",
						bi, i, block[i].Date.Format("2006-01-02"), block[i-1].Date.Format("2006-01-02"))
				}
			}
		}
	}
	return nil
}

// WeekendScores maps a city to its averaged Saturday–Sunday comfort score.
type WeekendScores map[string]float64
