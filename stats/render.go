package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
	"github.com/Tsuyoshi84/time-tracker/internal/ui"
)

const barChartChar = "▇"

// RenderDay writes a one-day summary.
func RenderDay(w io.Writer, day models.DayStats) {
	fmt.Fprintf(
		w,
		"%s: %s tracked across %s\n",
		ui.Blue(day.Date),
		ui.Green(timeutil.FormatDuration(day.TotalDuration)),
		pluralize(day.SessionCount, "session"),
	)
}

// RenderWeek writes a per-day breakdown of the week as a horizontal bar
// chart of minutes.
func RenderWeek(w io.Writer, week models.WeekStats) {
	var b strings.Builder

	b.WriteString(ui.Blue(fmt.Sprintf("Week of %s\n", week.Label)))
	b.WriteString(fmt.Sprintf(
		"Total: %s across %s\n",
		ui.Green(timeutil.FormatDuration(week.Total)),
		pluralize(week.Count, "session"),
	))

	var bars pterm.Bars

	for i := range week.Days {
		day := week.Days[i]

		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(day.TotalDuration.Minutes()),
			Label: time.Weekday(i).String(),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	b.WriteString(ui.Blue("\nDaily breakdown (minutes)"))
	b.WriteString(chart)

	fmt.Fprintln(w, b.String())
}

// RenderMonths writes a table of monthly totals.
func RenderMonths(w io.Writer, months []models.MonthStats) {
	tableBody := make([][]string, len(months))

	for i := range months {
		m := months[i]

		tableBody[i] = []string{
			m.Label,
			timeutil.FormatDuration(m.Total),
			fmt.Sprintf("%d", m.Count),
		}
	}

	tableBody = append([][]string{
		{"MONTH", "TOTAL", "SESSIONS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}
