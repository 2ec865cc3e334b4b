package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗  ██████╗ ██╗███╗   ██╗████████╗ █████╗  ██████╗ ███████╗
██╔══██╗██╔═══██╗██║████╗  ██║╚══██╔══╝██╔══██╗██╔════╝ ██╔════╝
██████╔╝██║   ██║██║██╔██╗ ██║   ██║   ███████║██║  ███╗█████╗
██╔═══╝ ██║   ██║██║██║╚██╗██║   ██║   ██╔══██║██║   ██║██╔══╝
██║     ╚██████╔╝██║██║ ╚████║   ██║   ██║  ██║╚██████╔╝███████╗
╚═╝      ╚═════╝ ╚═╝╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	View                string
	RefreshSeconds      int
	RotationSeconds     int
	NotificationSeconds int
}

// WithPromptConfig returns an Option that asks for the board timings when
// no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, &opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure pointage for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'pointage edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		secondsGroup(
			"Refresh the attendance every",
			[]int{5, 10, 30, 60},
			10,
			&opts.RefreshSeconds,
		),
		secondsGroup(
			"Show each page of absentees for",
			[]int{10, 15, 30},
			15,
			&opts.RotationSeconds,
		),
		secondsGroup(
			"Show each notification for",
			[]int{3, 5, 10},
			5,
			&opts.NotificationSeconds,
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("List on the board").
				Options(
					huh.NewOption("Absent students", "absent").Selected(true),
					huh.NewOption("Absent and late students", "all"),
				).
				Value(&opts.View),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// secondsGroup asks for a number of seconds among choices, with def
// preselected.
func secondsGroup(title string, choices []int, def int, dst *int) *huh.Group {
	options := make([]huh.Option[int], 0, len(choices))

	for _, n := range choices {
		label := (time.Duration(n) * time.Second).String()
		options = append(options, huh.NewOption(label, n).Selected(n == def))
	}

	return huh.NewGroup(
		huh.NewSelect[int]().
			Title(title).
			Options(options...).
			Value(dst),
	)
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts *PromptOptions) {
	c.Refresh.Interval = time.Duration(opts.RefreshSeconds) * time.Second
	c.Display.RotationInterval = time.Duration(opts.RotationSeconds) * time.Second
	c.Notifications.Duration = time.Duration(opts.NotificationSeconds) * time.Second
	c.Display.View = opts.View
}
