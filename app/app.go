// Package app defines the command-line interface for the tracker
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tracker app instance.
func Get() *cli.App {
	trackerApp := &cli.App{
		Name: "tracker",
		Usage: `
		Tracker is a personal time tracker for the command-line. Toggle a live
		timer, review the sessions of any day, and follow your weekly and
		monthly totals.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "toggle",
				Usage:  "Start the timer, or stop it if it is already running",
				Action: toggleAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
			{
				Name:   "list",
				Usage:  "List the sessions recorded on a date (default: today)",
				Action: listAction,
				Flags:  []cli.Flag{dateFlag, jsonFlag},
			},
			{
				Name: "add",
				Usage: `
				Add a completed session in the past. Provide --start and --end
				times, or accept the default block`,
				Action: addAction,
				Flags:  []cli.Flag{dateFlag, startFlag, endFlag},
			},
			{
				Name:      "edit",
				Usage:     "Change the start or end time of a session",
				UsageText: "edit <number> [OPTIONS]",
				Action:    editAction,
				Flags:     []cli.Flag{dateFlag, startFlag, endFlag},
			},
			{
				Name:      "delete",
				Usage:     "Delete a session permanently",
				UsageText: "delete <number> [OPTIONS]",
				Action:    deleteAction,
				Flags:     []cli.Flag{dateFlag, noConfirmFlag},
			},
			{
				Name:   "stats",
				Usage:  "Report daily, weekly, and monthly totals",
				Action: statsAction,
				Flags:  []cli.Flag{dateFlag, weekFlag, monthsFlag},
			},
			{
				Name:   "reset",
				Usage:  "Delete all recorded sessions",
				Action: resetAction,
				Flags:  []cli.Flag{noConfirmFlag},
			},
		},
		Flags: []cli.Flag{
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return trackerApp
}
