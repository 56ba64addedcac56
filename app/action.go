package app

import (
	"log/slog"
	"os"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/Tsuyoshi84/time-tracker/config"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
	"github.com/Tsuyoshi84/time-tracker/internal/ui"
	"github.com/Tsuyoshi84/time-tracker/session"
	"github.com/Tsuyoshi84/time-tracker/stats"
	"github.com/Tsuyoshi84/time-tracker/store"
	"github.com/Tsuyoshi84/time-tracker/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envTrackerNoColor = "TRACKER_NO_COLOR"
)

// parseDateArg resolves a natural-language date argument to a date string,
// defaulting to today when the argument is empty.
func parseDateArg(arg string) (string, error) {
	if arg == "" {
		return timeutil.ToDateString(time.Now()), nil
	}

	dt, err := dateparser.Parse(nil, arg)
	if err != nil {
		return "", errInvalidDate.Fmt(arg).Wrap(err)
	}

	return timeutil.ToDateString(dt.Time), nil
}

// managerHelper opens the session store and returns a manager loaded with
// the sessions of the date named by the --date flag.
func managerHelper(
	ctx *cli.Context,
) (*session.Manager, *config.Config, error) {
	cfg := config.Get(ctx)

	date, err := parseDateArg(ctx.String("date"))
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return nil, nil, err
	}

	mgr := session.NewManager(db)
	mgr.ManualDuration = cfg.ManualSessionDuration

	if err := mgr.LoadForDate(date); err != nil {
		return nil, nil, err
	}

	return mgr, cfg, nil
}

// engineHelper opens the session store and returns a timer engine
// rehydrated from any active session left behind by a previous run.
func engineHelper(ctx *cli.Context) (*timer.Engine, *config.Config, error) {
	cfg := config.Get(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return nil, nil, err
	}

	engine := timer.New(db, timer.Opts{
		SessionCmd:     cfg.SessionCmd,
		Notify:         cfg.Notify,
		TwentyFourHour: cfg.TwentyFourHourClock,
	})

	if err := engine.Rehydrate(); err != nil {
		return nil, nil, err
	}

	return engine, cfg, nil
}

// defaultAction attaches the live timer view to the terminal.
func defaultAction(ctx *cli.Context) error {
	engine, cfg, err := engineHelper(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.DarkTheme

	return timer.Run(engine)
}

// toggleAction flips the timer without attaching a UI.
func toggleAction(ctx *cli.Context) error {
	engine, cfg, err := engineHelper(ctx)
	if err != nil {
		return err
	}

	wasRunning := engine.Running()
	elapsed := engine.Elapsed()

	if err := engine.Toggle(); err != nil {
		return err
	}

	if wasRunning {
		pterm.Info.Printfln("Timer stopped. Tracked %s", timeutil.FormatDuration(elapsed))
		return nil
	}

	pterm.Info.Printfln(
		"Timer started at %s",
		timeutil.FormatTime(engine.Current().StartTime, cfg.TwentyFourHourClock),
	)

	return nil
}

// statusAction prints the state of the timer without attaching a UI.
func statusAction(ctx *cli.Context) error {
	engine, cfg, err := engineHelper(ctx)
	if err != nil {
		return err
	}

	if !engine.Running() {
		pterm.Info.Println("The timer is idle")
		return nil
	}

	pterm.Info.Printfln(
		"Tracking for %s (since %s)",
		timeutil.FormatDuration(engine.Elapsed()),
		timeutil.FormatTime(engine.Current().StartTime, cfg.TwentyFourHourClock),
	)

	return nil
}

// listAction prints a table of the sessions recorded on a date.
func listAction(ctx *cli.Context) error {
	mgr, cfg, err := managerHelper(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return listJSON(os.Stdout, mgr.Sessions())
	}

	session.List(mgr.Sessions(), cfg.TwentyFourHourClock)

	return nil
}

// addAction records a completed session in the past.
func addAction(ctx *cli.Context) error {
	mgr, cfg, err := managerHelper(ctx)
	if err != nil {
		return err
	}

	sess, err := addSession(ctx, mgr)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Session added: %s — %s (%s)",
		timeutil.FormatTime(sess.StartTime, cfg.TwentyFourHourClock),
		timeutil.FormatTime(sess.EndTime, cfg.TwentyFourHourClock),
		timeutil.FormatDuration(sess.Duration),
	)

	return nil
}

// editAction changes the time range of a recorded session.
func editAction(ctx *cli.Context) error {
	mgr, cfg, err := managerHelper(ctx)
	if err != nil {
		return err
	}

	if err := editSession(ctx, mgr); err != nil {
		return err
	}

	session.List(mgr.Sessions(), cfg.TwentyFourHourClock)

	return nil
}

// deleteAction deletes a session after confirmation.
func deleteAction(ctx *cli.Context) error {
	mgr, cfg, err := managerHelper(ctx)
	if err != nil {
		return err
	}

	return delSession(ctx, mgr, cfg)
}

// statsAction reports daily, weekly, or monthly totals. Without flags it
// covers today and the current week.
func statsAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	agg := stats.New(db)

	if ctx.Int("months") > 0 {
		months, err := agg.Months(ctx.Int("months"))
		if err != nil {
			return err
		}

		stats.RenderMonths(os.Stdout, months)

		return nil
	}

	if ctx.String("week") != "" {
		date, err := parseDateArg(ctx.String("week"))
		if err != nil {
			return err
		}

		anchor, err := timeutil.FromDateString(date)
		if err != nil {
			return err
		}

		week, err := agg.Week(anchor)
		if err != nil {
			return err
		}

		stats.RenderWeek(os.Stdout, week)

		return nil
	}

	date, err := parseDateArg(ctx.String("date"))
	if err != nil {
		return err
	}

	anchor, err := timeutil.FromDateString(date)
	if err != nil {
		return err
	}

	day, err := agg.Day(date)
	if err != nil {
		return err
	}

	stats.RenderDay(os.Stdout, day)

	week, err := agg.Week(anchor)
	if err != nil {
		return err
	}

	stats.RenderWeek(os.Stdout, week)

	return nil
}

// resetAction deletes every recorded session after confirmation.
func resetAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	if !ctx.Bool("no-confirm") {
		ok, err := confirmPrompt(
			"All recorded sessions will be deleted permanently. Proceed?",
		)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}
	}

	if err := db.ClearSessions(); err != nil {
		return err
	}

	pterm.Success.Println("All sessions deleted")

	return nil
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()
	config.InitLogging()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TRACKER_NO_COLOR is set
	if _, exists := os.LookupEnv(envTrackerNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tracker")

	return nil
}
