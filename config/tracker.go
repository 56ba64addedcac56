package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/Tsuyoshi84/time-tracker/internal/apperr"
)

var trackerCfg *Config

var once sync.Once

var errInitFailed = &apperr.Error{
	Message: "unable to initialise the tracker settings from the configuration file",
}

const defaultManualSessionDuration = time.Hour

const (
	keyDarkTheme             = "display.dark_theme"
	keyTwentyFourHourClock   = "display.24hr_clock"
	keyNotify                = "notifications.enabled"
	keySessionCmd            = "settings.session_cmd"
	keyManualSessionDuration = "settings.manual_session_duration"
)

// Config represents the program configuration derived from the config
// file and command-line arguments.
type Config struct {
	Stderr                io.Writer     `json:"-"`
	Stdout                io.Writer     `json:"-"`
	Stdin                 io.Reader     `json:"-"`
	PathToConfig          string        `json:"path_to_config"`
	PathToDB              string        `json:"path_to_db"`
	PathToLog             string        `json:"path_to_log"`
	SessionCmd            string        `json:"session_cmd"`
	ManualSessionDuration time.Duration `json:"manual_session_duration"`
	Notify                bool          `json:"notify"`
	DarkTheme             bool          `json:"dark_theme"`
	TwentyFourHourClock   bool          `json:"twenty_four_hour_clock"`
}

// initConfig reads the configuration file, creating it with default
// values on first run.
func initConfig() error {
	viper.SetConfigName(configFileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Dir(configFilePath))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return createConfig()
		}

		return err
	}

	return nil
}

// createConfig saves the default settings to the user's config
// directory.
func createConfig() error {
	err := viper.WriteConfigAs(configFilePath)
	if err != nil {
		return err
	}

	if os.Getenv("TRACKER_ENV") != "testing" {
		pterm.Info.Printfln("Default settings saved to: %s", configFilePath)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault(keyDarkTheme, true)
	viper.SetDefault(keyTwentyFourHourClock, true)
	viper.SetDefault(keyNotify, true)
	viper.SetDefault(keySessionCmd, "")
	viper.SetDefault(keyManualSessionDuration, "1h")
}

func setConfig(ctx *cli.Context) {
	trackerCfg.Stderr = os.Stderr
	trackerCfg.Stdout = os.Stdout
	trackerCfg.Stdin = os.Stdin

	trackerCfg.PathToConfig = configFilePath
	trackerCfg.PathToDB = dbFilePath
	trackerCfg.PathToLog = logFilePath

	// set from the config file
	trackerCfg.DarkTheme = viper.GetBool(keyDarkTheme)
	trackerCfg.TwentyFourHourClock = viper.GetBool(keyTwentyFourHourClock)
	trackerCfg.Notify = viper.GetBool(keyNotify)
	trackerCfg.SessionCmd = viper.GetString(keySessionCmd)

	trackerCfg.ManualSessionDuration = viper.GetDuration(keyManualSessionDuration)
	if trackerCfg.ManualSessionDuration <= 0 {
		trackerCfg.ManualSessionDuration = defaultManualSessionDuration
	}

	// set from command-line arguments
	if ctx.Bool("disable-notification") {
		trackerCfg.Notify = false
	}

	if ctx.String("session-cmd") != "" {
		trackerCfg.SessionCmd = ctx.String("session-cmd")
	}
}

// Get initializes and returns the program configuration. This
// initialization is done just once no matter how many times it is
// called.
func Get(ctx *cli.Context) *Config {
	once.Do(func() {
		trackerCfg = &Config{}

		err := initConfig()
		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}

		setConfig(ctx)
	})

	return trackerCfg
}
