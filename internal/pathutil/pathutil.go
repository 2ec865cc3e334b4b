// Package pathutil resolves where pointage keeps its config file, snapshot
// database, and log file
package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	appDir  = "pointage"
	logDir  = "log"
	envName = "POINTAGE_ENV"
)

var errNotInitialized = errors.New("pathutil: Initialize was not called")

// Layout lists the absolute paths of the files pointage owns.
type Layout struct {
	Config string
	DB     string
	Log    string
}

type fileNames struct {
	config string
	db     string
	log    string
}

var (
	layout  *Layout
	initErr error
	once    sync.Once
)

// Initialize resolves the layout once for the process. POINTAGE_ENV, when
// set, is appended to every file name so that environments never share
// state.
func Initialize() error {
	once.Do(func() {
		layout, initErr = resolve(namesFor(os.Getenv(envName)))
	})

	return initErr
}

// Current returns the layout resolved by Initialize.
func Current() (*Layout, error) {
	if layout == nil {
		return nil, errNotInitialized
	}

	return layout, nil
}

func ConfigFilePath() string {
	return mustCurrent().Config
}

func DBFilePath() string {
	return mustCurrent().DB
}

func LogFilePath() string {
	return mustCurrent().Log
}

func mustCurrent() *Layout {
	l, err := Current()
	if err != nil {
		panic(err)
	}

	return l
}

func namesFor(env string) fileNames {
	env = strings.TrimSpace(env)
	if env == "" {
		return fileNames{
			config: "config.yml",
			db:     "pointage.db",
			log:    "pointage.log",
		}
	}

	return fileNames{
		config: "config_" + env + ".yml",
		db:     "pointage_" + env + ".db",
		log:    "pointage_" + env + ".log",
	}
}

// resolve places the config file under the XDG config home and the
// database and logs under the XDG data home.
func resolve(names fileNames) (*Layout, error) {
	configPath, err := xdg.ConfigFile(filepath.Join(appDir, names.config))
	if err != nil {
		return nil, err
	}

	dataDir, err := xdg.DataFile(appDir)
	if err != nil {
		return nil, err
	}

	return &Layout{
		Config: configPath,
		DB:     filepath.Join(dataDir, names.db),
		Log:    filepath.Join(dataDir, logDir, names.log),
	}, nil
}
