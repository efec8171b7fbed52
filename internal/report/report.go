// Package report formats the run's single-line result and optionally
// delivers it via Telegram.
package report

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"getaway/internal/models"
)

var titleCaser = cases.Title(language.Und)

// Line renders the human-readable result: the chosen city with its fare, or
// a no-tickets notice when ticket is nil.
func Line(city string, ticket *models.Ticket) string {
	name := titleCaser.String(city)
	if ticket == nil {
		return fmt.Sprintf("Best weekend getaway: %s, but no tickets found", name)
	}
	return fmt.Sprintf("Best weekend getaway: %s — %s to %s on %s for %.0f RUB",
		name, ticket.Origin, ticket.IATA, ticket.DepartDate.Format("2006-01-02"), ticket.Price)
}
