package analytics

import (
	"errors"
	"sort"

	"getaway/internal/logger"
	"getaway/internal/models"
)

// saturday in the 0=Monday weekday convention.
const saturday = 5

// ErrNoWeekend means no city window contained a Saturday–Sunday pair, so
// there is nothing to select from.
var ErrNoWeekend = errors.New("no weekend pair in any city window")

// WeekendScores scans each city window for date-adjacent Saturday–Sunday
// pairs and scores the pair as the mean of the two days' average temps. When
// a window holds more than one weekend pair (possible near month boundaries
// within a ten-day horizon) the later pair overwrites the earlier one, so
// only the last pair's score survives per city. A pair with an absent
// average temp on either day contributes nothing.
func WeekendScores(table models.ForecastTable) models.WeekendScores {
	scores := make(models.WeekendScores)
	for _, block := range table.CityBlocks() {
		for i := 1; i < len(block); i++ {
			if block[i-1].DayOfWeek != saturday {
				continue
			}
			sat, sun := block[i-1].AverageTemp, block[i].AverageTemp
			if sat == nil || sun == nil {
				logger.Warn("Skipping weekend pair for %s: average temp missing", block[i].City)
				continue
			}
			scores[block[i].City] = (*sat + *sun) / 2
		}
	}
	return scores
}

// BestCity returns the city with the highest weekend score. Scores are sorted
// ascending and the last entry wins; score ties break on city name so the
// result is deterministic.
func BestCity(scores models.WeekendScores) (string, error) {
	if len(scores) == 0 {
		return "", ErrNoWeekend
	}

	type pair struct {
		city  string
		score float64
	}
	pairs := make([]pair, 0, len(scores))
	for city, score := range scores {
		pairs = append(pairs, pair{city, score})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].score != pairs[j].score {
			return pairs[i].score < pairs[j].score
		}
		return pairs[i].city < pairs[j].city
	})
	return pairs[len(pairs)-1].city, nil
}

// SelectCity runs the weekend scan over an enriched table and returns the
// winning city.
func SelectCity(table models.ForecastTable) (string, error) {
	scores := WeekendScores(table)
	for city, score := range scores {
		logger.Debug("Weekend score for %s: %.1f", city, score)
	}
	return BestCity(scores)
}
