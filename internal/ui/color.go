// Package ui holds the terminal colours and tables used by the non
// interactive commands
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pointage/internal/models"
)

// DarkTheme selects the light variants of each colour, which read better on
// dark terminals.
var DarkTheme bool

type colorFunc func(a ...any) string

// paint colours a with onLight, or with onDark when DarkTheme is set.
func paint(onLight, onDark colorFunc, a any) string {
	if DarkTheme {
		return onDark(a)
	}

	return onLight(a)
}

func Green(a any) string {
	return paint(pterm.Green, pterm.LightGreen, a)
}

func Yellow(a any) string {
	return paint(pterm.Yellow, pterm.LightYellow, a)
}

func Red(a any) string {
	return paint(pterm.Red, pterm.LightRed, a)
}

func Blue(a any) string {
	return paint(pterm.Blue, pterm.LightBlue, a)
}

func Highlight(a any) string {
	return paint(pterm.Black, pterm.LightWhite, a)
}

var statusColors = map[models.Status]func(any) string{
	models.StatusPresent: Green,
	models.StatusLate:    Yellow,
	models.StatusAbsent:  Red,
	models.StatusExcused: Blue,
}

// Status returns the coloured label of s.
func Status(s models.Status) string {
	if color, ok := statusColors[s]; ok {
		return color(s)
	}

	return string(s)
}
