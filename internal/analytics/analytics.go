// Package analytics derives the columns the city selection runs on.
//
// Three derived columns are appended to the forecast table after collection:
//
//	day_of_week       calendar weekday, 0=Monday .. 6=Sunday
//	max_temp_rolling  trailing 3-day mean of max temp, windowed per city block
//	average_temp      (max+min)/2, degenerating to max when min is absent
//
// The rolling window restarts at every city boundary: the flat table is
// city-major, so a window that crossed block edges would mix two cities'
// temperatures. A window that contains an absent max temp is itself absent.
package analytics

import (
	"time"

	"getaway/internal/models"
)

// rollingWindow is the trailing window width of the max-temp rolling mean.
const rollingWindow = 3

// Weekday maps a date to the 0=Monday .. 6=Sunday convention.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Enrich appends all derived columns to the table in place.
func Enrich(table models.ForecastTable) {
	for i := range table {
		table[i].DayOfWeek = Weekday(table[i].Date)
	}
	for _, block := range table.CityBlocks() {
		rollMaxTemp(block)
	}
	averageTemps(table)
}

// rollMaxTemp fills MaxTempRolling for one city block. The first
// rollingWindow-1 rows have no full window and stay absent.
func rollMaxTemp(block models.ForecastTable) {
	for i := range block {
		if i < rollingWindow-1 {
			continue
		}
		sum := 0
		complete := true
		for j := i - rollingWindow + 1; j <= i; j++ {
			if block[j].MaxTemp == nil {
				complete = false
				break
			}
			sum += *block[j].MaxTemp
		}
		if !complete {
			continue
		}
		mean := float64(sum) / rollingWindow
		block[i].MaxTempRolling = &mean
	}
}

// averageTemps fills AverageTemp for every row. When the minimum is absent the
// maximum stands in for it, so the average degenerates to the max itself; this
// fallback is the documented contract, not a bug. A row with no max at all
// keeps an absent average.
func averageTemps(table models.ForecastTable) {
	for i := range table {
		day := &table[i]
		if day.MaxTemp == nil {
			continue
		}
		lo := *day.MaxTemp
		if day.MinTemp != nil {
			lo = *day.MinTemp
		}
		avg := float64(*day.MaxTemp+lo) / 2
		day.AverageTemp = &avg
	}
}
