// Package forecast turns parsed city pages into the flat multi-city forecast
// table: the assembler zips the field extractors' day-aligned outputs into ten
// dated records per city, and the collector fans out over the discovered city
// pages and concatenates their blocks in discovery order.
package forecast

import (
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"getaway/internal/gismeteo"
	"getaway/internal/models"
)

// IncompleteExtractionError reports an extractor sequence whose length does
// not match the forecast horizon, which would corrupt day alignment.
type IncompleteExtractionError struct {
	City  string
	Field string
	Want  int
	Got   int
}

func (e IncompleteExtractionError) Error() string {
	return fmt.Sprintf("incomplete extraction for %s: field %s has %d values, want %d", e.City, e.Field, e.Got, e.Want)
}

// Assemble runs all field extractors over one city page and zips their
// outputs into DaysPerCity forecast records, dated runDate+0 .. runDate+9.
func Assemble(doc *goquery.Document, runDate time.Time) (models.ForecastTable, error) {
	city, err := gismeteo.City(doc)
	if err != nil {
		return nil, err
	}
	summaries, err := gismeteo.Summaries(doc)
	if err != nil {
		return nil, err
	}
	maxTemps, minTemps, err := gismeteo.Temperatures(doc)
	if err != nil {
		return nil, err
	}
	maxPress, minPress, err := gismeteo.Pressures(doc)
	if err != nil {
		return nil, err
	}
	winds, err := gismeteo.WindSpeeds(doc)
	if err != nil {
		return nil, err
	}
	precs, err := gismeteo.Precipitations(doc)
	if err != nil {
		return nil, err
	}

	for field, got := range map[string]int{
		"summary":        len(summaries),
		"max_temp":       len(maxTemps),
		"min_temp":       len(minTemps),
		"max_pressure":   len(maxPress),
		"min_pressure":   len(minPress),
		"max_wind_speed": len(winds),
		"precipitation":  len(precs),
	} {
		if got != models.DaysPerCity {
			return nil, IncompleteExtractionError{City: city, Field: field, Want: models.DaysPerCity, Got: got}
		}
	}

	start := time.Date(runDate.Year(), runDate.Month(), runDate.Day(), 0, 0, 0, 0, runDate.Location())
	table := make(models.ForecastTable, 0, models.DaysPerCity)
	for n := 0; n < models.DaysPerCity; n++ {
		table = append(table, models.ForecastDay{
			Date:          start.AddDate(0, 0, n),
			City:          city,
			Summary:       summaries[n],
			MaxTemp:       maxTemps[n],
			MinTemp:       minTemps[n],
			MaxWindSpeed:  winds[n],
			Precipitation: precs[n],
			MaxPressure:   maxPress[n],
			MinPressure:   minPress[n],
		})
	}
	return table, nil
}
