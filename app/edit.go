package app

import (
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
	"github.com/Tsuyoshi84/time-tracker/session"
)

// sessionAt resolves a positional number from the printed session list to
// the underlying session.
func sessionAt(mgr *session.Manager, arg string) (*models.Session, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(mgr.Sessions()) {
		return nil, errInvalidSessionNumber.Fmt(arg)
	}

	sess := mgr.Sessions()[n-1]

	return &sess, nil
}

// timeOnSelectedDate parses an HH:MM value on the manager's selected date.
func timeOnSelectedDate(
	mgr *session.Manager,
	value string,
) (time.Time, error) {
	day, err := timeutil.FromDateString(mgr.SelectedDate())
	if err != nil {
		return time.Time{}, err
	}

	return timeutil.ParseTimeInput(value, day)
}

// addSession records a completed session from the --start/--end flags, or
// the default block when neither is given.
func addSession(
	ctx *cli.Context,
	mgr *session.Manager,
) (*models.Session, error) {
	startArg := ctx.String("start")
	endArg := ctx.String("end")

	if startArg == "" && endArg == "" {
		return mgr.AddManual(mgr.SelectedDate())
	}

	if startArg == "" || endArg == "" {
		return nil, errIncompleteRange
	}

	start, err := timeOnSelectedDate(mgr, startArg)
	if err != nil {
		return nil, err
	}

	end, err := timeOnSelectedDate(mgr, endArg)
	if err != nil {
		return nil, err
	}

	if err := timeutil.ValidateTimeRange(start, end); err != nil {
		return nil, err
	}

	return mgr.AddCompleted(start, end)
}

// editSession applies the --start/--end flags to the session named by the
// positional argument.
func editSession(ctx *cli.Context, mgr *session.Manager) error {
	sess, err := sessionAt(mgr, ctx.Args().First())
	if err != nil {
		return err
	}

	var upd session.Updates

	if v := ctx.String("start"); v != "" {
		start, err := timeOnSelectedDate(mgr, v)
		if err != nil {
			return err
		}

		upd.StartTime = &start
	}

	if v := ctx.String("end"); v != "" {
		end, err := timeOnSelectedDate(mgr, v)
		if err != nil {
			return err
		}

		upd.EndTime = &end
	}

	if upd.StartTime == nil && upd.EndTime == nil {
		return errNothingToEdit
	}

	start := sess.StartTime
	end := sess.EndTime

	if upd.StartTime != nil {
		start = *upd.StartTime
	}

	if upd.EndTime != nil {
		end = *upd.EndTime
	}

	if !end.IsZero() {
		if err := timeutil.ValidateTimeRange(start, end); err != nil {
			return err
		}
	}

	return mgr.Update(sess, upd)
}
