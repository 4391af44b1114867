package ui

import (
	"io"

	"github.com/idilsaglam/packlist/internal/notify"
)

// ConsoleSink prints notifications as OK/Fail lines. Actions such as Undo
// can't be offered on a one-shot command line, so they are only mentioned.
type ConsoleSink struct {
	Out, Err io.Writer
}

func (s ConsoleSink) Notify(n notify.Notification) {
	msg := n.Title
	if n.Description != "" {
		msg += ": " + n.Description
	}
	if n.Kind == notify.Error {
		FailTo(s.Err, msg)
		return
	}
	OKTo(s.Out, msg)
	if n.Action != nil {
		Hint(s.Out, "("+n.Action.Label+" is available in the interactive view)")
	}
}
