package models

import (
	"testing"
	"time"
)

func ip(v int) *int { return &v }

func validDay(city string, date time.Time) ForecastDay {
	return ForecastDay{
		Date:          date,
		City:          city,
		Summary:       "Ясно",
		MaxTemp:       ip(20),
		MinTemp:       ip(12),
		MaxWindSpeed:  4,
		Precipitation: 0.3,
		MaxPressure:   ip(752),
		MinPressure:   ip(747),
	}
}

func validBlock(city string, start time.Time) ForecastTable {
	block := make(ForecastTable, 0, DaysPerCity)
	for n := 0; n < DaysPerCity; n++ {
		block = append(block, validDay(city, start.AddDate(0, 0, n)))
	}
	return block
}

func TestForecastDayValidate(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(*ForecastDay)
		wantErr bool
	}{
		{"valid", func(d *ForecastDay) {}, false},
		{"absent extremes are fine", func(d *ForecastDay) { d.MaxTemp = nil; d.MinTemp = nil; d.MaxPressure = nil; d.MinPressure = nil }, false},
		{"empty city", func(d *ForecastDay) { d.City = "" }, true},
		{"zero date", func(d *ForecastDay) { d.Date = time.Time{} }, true},
		{"negative wind", func(d *ForecastDay) { d.MaxWindSpeed = -1 }, true},
		{"negative precipitation", func(d *ForecastDay) { d.Precipitation = -0.1 }, true},
		{"negative pressure", func(d *ForecastDay) { d.MinPressure = ip(-5) }, true},
		{"min above max", func(d *ForecastDay) { d.MinTemp = ip(25) }, true},
		{"day of week out of range", func(d *ForecastDay) { d.DayOfWeek = 7 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := validDay("Казань", start)
			tt.mutate(&day)
			err := day.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestForecastTableValidate(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	table := append(validBlock("Казань", start), validBlock("Сочи", start)...)
	if err := table.Validate(); err != nil {
		t.Errorf("Valid two-city table rejected: %v", err)
	}

	short := table[:15]
	if err := short.Validate(); err == nil {
		t.Error("Expected error for table length not a multiple of the horizon")
	}

	mixed := append(validBlock("Казань", start), validBlock("Сочи", start)...)
	mixed[3].City = "Пермь"
	if err := mixed.Validate(); err == nil {
		t.Error("Expected error for a block mixing cities")
	}

	gapped := validBlock("Казань", start)
	gapped[5].Date = gapped[5].Date.AddDate(0, 0, 1)
	if err := gapped.Validate(); err == nil {
		t.Error("Expected error for a date gap inside a block")
	}
}

func TestCityBlocks(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	table := append(validBlock("Казань", start), validBlock("Сочи", start)...)

	blocks := table.CityBlocks()
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0][0].City != "Казань" || blocks[1][0].City != "Сочи" {
		t.Errorf("Blocks out of order: %q, %q", blocks[0][0].City, blocks[1][0].City)
	}
}

func TestTicketValidate(t *testing.T) {
	valid := Ticket{
		ID:         "run-1",
		City:       "Сочи",
		Origin:     "MOW",
		IATA:       "AER",
		DepartDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), // Saturday
		Price:      4200,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Valid ticket rejected: %v", err)
	}

	notSaturday := valid
	notSaturday.DepartDate = valid.DepartDate.AddDate(0, 0, 1)
	if err := notSaturday.Validate(); err == nil {
		t.Error("Expected error for non-Saturday departure")
	}

	freeTicket := valid
	freeTicket.Price = 0
	if err := freeTicket.Validate(); err == nil {
		t.Error("Expected error for non-positive price")
	}

	badCode := valid
	badCode.IATA = "AERO"
	if err := badCode.Validate(); err == nil {
		t.Error("Expected error for malformed airport code")
	}
}
