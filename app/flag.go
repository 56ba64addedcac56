package app

import "github.com/urfave/cli/v2"

var (
	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Operate on a specific date. Accepts natural language (e.g. 'yesterday', '2 days ago')",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Session start time in HH:MM",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "Session end time in HH:MM",
	}

	weekFlag = &cli.StringFlag{
		Name:    "week",
		Aliases: []string{"w"},
		Usage:   "Report the week containing the given date",
	}

	monthsFlag = &cli.IntFlag{
		Name:    "months",
		Aliases: []string{"m"},
		Usage:   "Report totals for the trailing number of months",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the sessions in JSON format",
	}

	noConfirmFlag = &cli.BoolFlag{
		Name:  "no-confirm",
		Usage: "Skip the confirmation prompt",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"dn"},
		Usage:   "Disable the system notification that appears when the timer starts or stops",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed session",
	}
)
