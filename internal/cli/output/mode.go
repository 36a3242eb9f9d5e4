// Package output renders command results for terminals, pipes and machines.
//
// A Renderer picks one of four modes. ModeAuto resolves to ModeText when
// stdout is a terminal and to ModeMarkdown otherwise, so piped output stays
// free of escape codes.
package output

import (
	"fmt"
	"strings"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Modes lists every accepted mode, in help order.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}

// ParseMode converts a flag or config value to a Mode. The empty string is auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeText, ModeMarkdown, ModeJSON:
		return m, nil
	case "md":
		return ModeMarkdown, nil
	default:
		return ModeAuto, fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(Modes(), ", "))
	}
}
