package timer

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
)

// fireTransition reports a state transition to the outside world: a desktop
// notification and the user's session command hook. Both run to completion
// before the transition returns so a short-lived process cannot drop them;
// their failures are logged, never surfaced, so a broken collaborator can
// not fail a timer operation.
func (e *Engine) fireTransition(title, msg string) {
	if e.opts.Notify {
		if err := beeep.Notify(title, msg, ""); err != nil {
			slog.Warn("desktop notification failed", slog.Any("error", err))
		}
	}

	if e.opts.SessionCmd != "" {
		e.runSessionCmd()
	}
}

// runSessionCmd executes the user-configured hook command.
func (e *Engine) runSessionCmd() {
	cmdSlice, err := shellquote.Split(e.opts.SessionCmd)
	if err != nil {
		slog.Warn("unable to parse session_cmd option", slog.Any("error", err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	if err := exec.Command(name, args...).Run(); err != nil {
		slog.Warn("session_cmd failed", slog.Any("error", err))
	}
}
