package app

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pointage/internal/config"
	"github.com/ayoisaiah/pointage/internal/osutil"
	"github.com/ayoisaiah/pointage/internal/pathutil"
)

// resolveEditor picks $VISUAL, then $EDITOR, then a platform default.
func resolveEditor(getenv func(string) string, goos string) string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v := getenv(key); v != "" {
			return v
		}
	}

	if goos == osutil.Windows {
		return `C:\Windows\system32\notepad.exe`
	}

	return "nano"
}

// editorCommand splits the configured editor into a program and its
// arguments, followed by path.
func editorCommand(editor, path string) ([]string, error) {
	args, err := shellquote.Split(editor)
	if err != nil {
		return nil, err
	}

	return append(args, path), nil
}

// editConfigAction handles the edit-config command which opens the pointage
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	configPath := pathutil.ConfigFilePath()

	// write the default file on first use
	if _, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	); err != nil {
		return err
	}

	args, err := editorCommand(resolveEditor(os.Getenv, runtime.GOOS), configPath)
	if err != nil {
		return err
	}

	//nolint:gosec // the editor comes from the user's own environment
	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
