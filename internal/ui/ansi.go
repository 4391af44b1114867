package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func colorEnabled() bool {
	if disableColor {
		return false
	}
	if forceColor {
		return true
	}
	// termenv honors NO_COLOR / CLICOLOR / CLICOLOR_FORCE.
	if termenv.EnvNoColor() {
		return false
	}
	return IsTTY()
}

func C(color, s string) string {
	if color == "" || !colorEnabled() {
		return s
	}
	return color + s + reset
}

func OK(msg string)   { OKTo(os.Stdout, msg) }
func Fail(msg string) { FailTo(os.Stderr, msg) }

func OKTo(w io.Writer, msg string) {
	fmt.Fprintln(w, C(Current().Success, Current().SymDone+" "+msg))
}

func FailTo(w io.Writer, msg string) {
	fmt.Fprintln(w, C(Current().Error, symCross+" "+msg))
}

// Hint prints a muted follow-up line.
func Hint(w io.Writer, msg string) {
	fmt.Fprintln(w, C(Current().Muted, strings.TrimSpace(msg)))
}
