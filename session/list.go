package session

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
	"github.com/Tsuyoshi84/time-tracker/internal/ui"
)

const noSessionsMsg = "No sessions found for the specified date"

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []models.Session, twentyFourHour bool) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		statusText := ui.Green("completed")
		endTime := timeutil.FormatTime(sess.EndTime, twentyFourHour)
		duration := timeutil.FormatDuration(sess.Duration)

		if sess.Active {
			statusText = ui.Cyan("running")
			endTime = ""
			duration = ""
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			timeutil.FormatTime(sess.StartTime, twentyFourHour),
			endTime,
			duration,
			statusText,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "START", "END", "DURATION", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// PrintOne prints a single session as a table row.
func PrintOne(w io.Writer, sess models.Session, twentyFourHour bool) {
	printSessionsTable(w, []models.Session{sess}, twentyFourHour)
}

// List prints out a table of all the sessions recorded on the selected date.
func List(sessions []models.Session, twentyFourHour bool) {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	printSessionsTable(os.Stdout, sessions, twentyFourHour)
}
