// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

var (
	configDir      = "tracker"
	configFileName = "config.yml"
	dbFileName     = "tracker.db"
	logFileName    = "tracker.log"
	configFilePath string
	dbFilePath     string
	logFilePath    string
)

// InitializePaths resolves the config, database, and log file locations
// from the XDG base directories. A TRACKER_ENV value suffixes the file
// names so that development and testing runs never touch real data.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("TRACKER_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("tracker_%s.db", env)
		logFileName = fmt.Sprintf("tracker_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, logFileName)
}
