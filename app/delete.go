package app

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/Tsuyoshi84/time-tracker/config"
	"github.com/Tsuyoshi84/time-tracker/session"
)

// confirmPrompt asks for a yes/no confirmation before a destructive
// operation.
func confirmPrompt(title string) (bool, error) {
	var ok bool

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).Run()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// delSession deletes the session named by the positional argument. It
// requests confirmation before proceeding with the operation.
func delSession(
	ctx *cli.Context,
	mgr *session.Manager,
	cfg *config.Config,
) error {
	sess, err := sessionAt(mgr, ctx.Args().First())
	if err != nil {
		return err
	}

	if !ctx.Bool("no-confirm") {
		session.PrintOne(os.Stdout, *sess, cfg.TwentyFourHourClock)

		ok, err := confirmPrompt(
			"The above session will be deleted permanently. Proceed?",
		)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}
	}

	if err := mgr.Delete(sess); err != nil {
		return err
	}

	pterm.Success.Println("Session deleted")

	return nil
}
