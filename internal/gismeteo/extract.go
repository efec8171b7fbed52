package gismeteo

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"getaway/internal/models"
)

// Selectors for the portal's ten-day page. The markup is version-fragile;
// these match the layout the extractors were written against.
const (
	citySelector    = "span.locality span"
	tooltipSelector = "span.tooltip"
	valuesSelector  = "div.values"
	maxSlotSelector = "div.maxt"
	minSlotSelector = "div.mint"
	tempUnitClass   = "unit_temperature_c"
	pressUnitClass  = "unit_pressure_mm_hg_atm"
	windUnitClass   = "unit_wind_m_s"
	precSelector    = "div.w_prec__value"
)

var digitsRe = regexp.MustCompile(`\d+`)

// City returns the locality name from the page header.
func City(doc *goquery.Document) (string, error) {
	title, ok := doc.Find(citySelector).First().Attr("title")
	if !ok || title == "" {
		return "", MissingFieldError{Field: "city", Want: 1, Got: 0}
	}
	return title, nil
}

// Summaries returns the textual condition of each forecast day, read from the
// data-text attribute of the first ten tooltip elements in document order.
func Summaries(doc *goquery.Document) ([]string, error) {
	tooltips := doc.Find(tooltipSelector)
	if tooltips.Length() < models.DaysPerCity {
		return nil, MissingFieldError{Field: "summary", Want: models.DaysPerCity, Got: tooltips.Length()}
	}

	summaries := make([]string, 0, models.DaysPerCity)
	tooltips.EachWithBreak(func(i int, s *goquery.Selection) bool {
		summaries = append(summaries, s.AttrOr("data-text", ""))
		return len(summaries) < models.DaysPerCity
	})
	return summaries, nil
}

// Temperatures returns the per-day max and min temperatures from the first
// values container. A day block may carry a max slot, a min slot, both, or
// only a min; an absent slot yields a nil entry in that day's position so the
// ten-slot alignment is never disturbed.
func Temperatures(doc *goquery.Document) (maxs, mins []*int, err error) {
	return extremes(doc.Find(valuesSelector).First(), tempUnitClass, "temperature")
}

// Pressures mirrors Temperatures over the last values container, which holds
// the pressure row. Values are non-negative; a min-only block still yields
// its value.
func Pressures(doc *goquery.Document) (maxs, mins []*int, err error) {
	return extremes(doc.Find(valuesSelector).Last(), pressUnitClass, "pressure")
}

// extremes walks the day blocks of one values container and extracts the max
// and min slot of each, keeping both sequences day-aligned. Scoping the value
// lookup to the min slot guarantees a min-only block is read as a minimum and
// never misassigned to the max sequence.
func extremes(container *goquery.Selection, unitClass, field string) (maxs, mins []*int, err error) {
	container.Children().EachWithBreak(func(_ int, day *goquery.Selection) bool {
		maxVal := day.Find(maxSlotSelector + " span." + unitClass).First()
		if maxVal.Length() > 0 {
			v, convErr := parseSignedInt(maxVal.Text(), field)
			if convErr != nil {
				err = convErr
				return false
			}
			maxs = append(maxs, &v)
		} else {
			maxs = append(maxs, nil)
		}

		minVal := day.Find(minSlotSelector + " span." + unitClass).First()
		if minVal.Length() > 0 {
			v, convErr := parseSignedInt(minVal.Text(), field)
			if convErr != nil {
				err = convErr
				return false
			}
			mins = append(mins, &v)
		} else {
			mins = append(mins, nil)
		}
		return true
	})
	if err != nil {
		return nil, nil, err
	}
	return maxs, mins, nil
}

// Precipitations returns the per-day precipitation amounts. The portal writes
// amounts with a comma decimal separator; the value is rebuilt from the digit
// and separator runes positionally, parsed as a decimal when a separator was
// present and as an integer otherwise.
func Precipitations(doc *goquery.Document) ([]float64, error) {
	var precs []float64
	var err error
	doc.Find(precSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var b strings.Builder
		hasSep := false
		for _, r := range s.Text() {
			switch {
			case r >= '0' && r <= '9':
				b.WriteRune(r)
			case r == ',':
				b.WriteRune('.')
				hasSep = true
			}
		}
		text := b.String()
		if text == "" {
			err = ConversionError{Field: "precipitation", Text: s.Text(), Err: strconv.ErrSyntax}
			return false
		}

		if hasSep {
			v, parseErr := strconv.ParseFloat(text, 64)
			if parseErr != nil {
				err = ConversionError{Field: "precipitation", Text: s.Text(), Err: parseErr}
				return false
			}
			precs = append(precs, v)
		} else {
			v, parseErr := strconv.Atoi(text)
			if parseErr != nil {
				err = ConversionError{Field: "precipitation", Text: s.Text(), Err: parseErr}
				return false
			}
			precs = append(precs, float64(v))
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return precs, nil
}

// WindSpeeds returns the first ten max wind speeds, scanning unit-tagged spans
// in document order. Only spans whose class list carries the exact wind unit
// token are accepted, so wind-direction spans with superstring classes are
// skipped. The scan stops once ten values are collected.
func WindSpeeds(doc *goquery.Document) ([]int, error) {
	var speeds []int
	var err error
	doc.Find("span." + windUnitClass).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !hasClassToken(s, "unit") || !hasClassToken(s, windUnitClass) {
			return true
		}
		digits := digitsRe.FindString(s.Text())
		if digits == "" {
			err = ConversionError{Field: "max_wind_speed", Text: s.Text(), Err: strconv.ErrSyntax}
			return false
		}
		v, parseErr := strconv.Atoi(digits)
		if parseErr != nil {
			err = ConversionError{Field: "max_wind_speed", Text: s.Text(), Err: parseErr}
			return false
		}
		speeds = append(speeds, v)
		return len(speeds) < models.DaysPerCity
	})
	if err != nil {
		return nil, err
	}
	return speeds, nil
}

func hasClassToken(s *goquery.Selection, token string) bool {
	for _, cls := range strings.Fields(s.AttrOr("class", "")) {
		if cls == token {
			return true
		}
	}
	return false
}

// parseSignedInt converts a numeric fragment to a signed integer. The portal
// renders negative values with the unicode minus glyph (U+2212), which strconv
// rejects, so it is normalized to the ASCII minus first.
func parseSignedInt(text, field string) (int, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), "−", "-")
	v, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, ConversionError{Field: field, Text: text, Err: err}
	}
	return v, nil
}
