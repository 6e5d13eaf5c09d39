// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agrisaathi/saathi-tui/internal/model"
	"github.com/agrisaathi/saathi-tui/internal/ui/styles"
	"github.com/agrisaathi/saathi-tui/internal/util"
)

// =============================================================================
// HEADER CARDS
// =============================================================================

// Number of market rows shown in the header card.
const marketCardRows = 5

// WeatherCard renders a compact forecast card for the header, or empty when
// no weather has been fetched yet.
func WeatherCard(theme *styles.Theme, snap *model.WeatherSnapshot, width int) string {
	if snap == nil || len(snap.Days) == 0 {
		return ""
	}

	today := snap.Days[0].Day
	var b strings.Builder
	b.WriteString(theme.CardTitle.Render("Weather"))
	b.WriteString("\n")
	b.WriteString(theme.CardBody.Render(fmt.Sprintf(
		"%s  %s°C (%s–%s)",
		util.TruncateWidth(today.Condition.Text, width-18),
		util.FloatToStringPrec(today.AvgTempC, 0),
		util.FloatToStringPrec(today.MinTempC, 0),
		util.FloatToStringPrec(today.MaxTempC, 0),
	)))

	// One line of outlook for the next days that fit.
	if len(snap.Days) > 1 {
		var outlook []string
		for _, d := range snap.Days[1:] {
			if len(outlook) == 3 {
				break
			}
			outlook = append(outlook, fmt.Sprintf("%s %s°", shortDate(d.Date), util.FloatToStringPrec(d.Day.MaxTempC, 0)))
		}
		b.WriteString("\n")
		b.WriteString(theme.MessageMeta.Render(strings.Join(outlook, "  ")))
	}

	return theme.WeatherCard.Width(width).Render(b.String())
}

// MarketCard renders the top mandi prices for the header. A non-nil empty
// slice renders a "no prices" card; nil renders nothing.
func MarketCard(theme *styles.Theme, rows []model.MarketPrice, width int) string {
	if rows == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.CardTitle.Render("Mandi Prices"))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(theme.MessageMeta.Render("no prices for this area"))
		return theme.MarketCard.Width(width).Render(b.String())
	}

	shown := rows
	if len(shown) > marketCardRows {
		shown = shown[:marketCardRows]
	}
	for i, row := range shown {
		if i > 0 {
			b.WriteString("\n")
		}
		name := util.TruncateWidth(row.Commodity, width-16)
		b.WriteString(theme.CardBody.Render(fmt.Sprintf(
			"%-*s ₹%s/%s",
			width-16, name,
			util.FloatToString(row.ModalPrice),
			row.Unit,
		)))
	}

	return theme.MarketCard.Width(width).Render(b.String())
}

// LocationLine renders the header's place summary: "411001 · Pune, Maharashtra"
// or a set-your-pincode hint when the location is unresolved.
func LocationLine(theme *styles.Theme, pincode string, loc *model.LocationDetails) string {
	if loc == nil {
		return theme.StatusHint.Render("location unknown - press ctrl+p to set your pincode")
	}
	return theme.HeaderPincode.Render(fmt.Sprintf("%s · %s, %s", pincode, loc.District, loc.State))
}

// JoinCards lays cards out side by side, skipping empties.
func JoinCards(cards ...string) string {
	var present []string
	for _, c := range cards {
		if c != "" {
			present = append(present, c)
		}
	}
	if len(present) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, present...)
}

// shortDate trims "2026-08-30" to "30/08".
func shortDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1]
}
