package main

import (
	"github.com/logrusorgru/aurora/v4"

	"github.com/govalues/radix"
)

// painter colors REPL output unless colors are disabled.
type painter struct {
	enabled bool
}

func (p painter) result(d radix.Number) string {
	s := d.String()
	if !p.enabled {
		return s
	}
	return aurora.Colorize(s, aurora.YellowFg|aurora.BrightFg).String()
}

func (p painter) failure(message string) string {
	if !p.enabled {
		return message
	}
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}
