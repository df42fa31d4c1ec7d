// Package command parses the colon command line.
//
// The accepted grammar is:
//
//	command        := set_cmd | quit_cmd | save_cmd
//	set_cmd        := ("set"|"se") WS (history_assign | bool_toggle)
//	history_assign := "history_size" ("="|WS) DIGITS
//	bool_toggle    := ["no"] bool_name ["!"]
//	bool_name      := "number" | "nu" | "relativenumber" | "rnu"
//	quit_cmd       := "qa" | "quitall" | "q" | "quit"
//	save_cmd       := "s" | "save"
//
// The whole line must match; trailing input is an error.
package command

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Command is one parsed command line.
type Command interface {
	command()
}

// Quit closes the focused pane, or every pane when All is set.
type Quit struct {
	All bool
}

// Save persists the configuration.
type Save struct{}

// Option names a boolean display option.
type Option int

const (
	Number Option = iota
	RelativeNumber
)

// String returns the option's long name.
func (o Option) String() string {
	switch o {
	case Number:
		return "number"
	case RelativeNumber:
		return "relativenumber"
	default:
		return "unknown"
	}
}

// Action is what a set command does to a boolean option.
type Action int

const (
	Enable Action = iota
	Disable
	Toggle
)

// SetBool enables, disables or toggles a boolean option.
type SetBool struct {
	Action Action
	Option Option
}

// SetHistorySize changes the command history capacity.
type SetHistorySize struct {
	Size int
}

func (Quit) command()           {}
func (Save) command()           {}
func (SetBool) command()        {}
func (SetHistorySize) command() {}

// ParseError reports a command line that does not match the grammar.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse command %q: %s", e.Input, e.Reason)
}

// Parse parses a command line without the leading colon.
func Parse(input string) (Command, error) {
	s := &scanner{input: strings.TrimSpace(input)}

	cmd, reason := s.command()
	if cmd == nil {
		return nil, &ParseError{Input: input, Reason: reason}
	}
	if !s.done() {
		return nil, &ParseError{Input: input, Reason: fmt.Sprintf("unexpected %q", s.rest())}
	}
	return cmd, nil
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) rest() string {
	return s.input[s.pos:]
}

func (s *scanner) done() bool {
	return s.pos == len(s.input)
}

// tag consumes the first alternative that prefixes the remaining input.
// Longer alternatives must come first.
func (s *scanner) tag(alternatives ...string) bool {
	for _, alt := range alternatives {
		if strings.HasPrefix(s.rest(), alt) {
			s.pos += len(alt)
			return true
		}
	}
	return false
}

func (s *scanner) space() bool {
	start := s.pos
	for s.pos < len(s.input) && unicode.IsSpace(rune(s.input[s.pos])) {
		s.pos++
	}
	return s.pos > start
}

func (s *scanner) digits() (string, bool) {
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
		s.pos++
	}
	return s.input[start:s.pos], s.pos > start
}

func (s *scanner) command() (Command, string) {
	start := s.pos
	if cmd, reason, matched := s.set(); matched {
		return cmd, reason
	}
	s.pos = start

	switch {
	case s.tag("quitall", "qa"):
		return Quit{All: true}, ""
	case s.tag("quit", "q"):
		return Quit{}, ""
	case s.tag("save", "s"):
		return Save{}, ""
	}
	if s.done() {
		return nil, "empty command"
	}
	return nil, "unknown command"
}

// set reports matched once the set keyword and its separator are consumed,
// so errors in the argument are not retried as other commands.
func (s *scanner) set() (Command, string, bool) {
	if !s.tag("set", "se") || !s.space() {
		return nil, "", false
	}

	if s.tag("history_size") {
		if !s.tag("=") && !s.space() {
			return nil, "expected '=' or whitespace after history_size", true
		}
		raw, ok := s.digits()
		if !ok {
			return nil, "expected a number", true
		}
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err.Error(), true
		}
		return SetHistorySize{Size: size}, "", true
	}

	negated := false
	at := s.pos
	if s.tag("no") {
		negated = true
	}
	option, ok := s.option()
	if !ok && negated {
		// "no" may have been the start of an unknown word
		s.pos = at
		negated = false
		option, ok = s.option()
	}
	if !ok {
		return nil, fmt.Sprintf("unknown option %q", s.rest()), true
	}
	toggled := s.tag("!")

	switch {
	case negated && toggled:
		return nil, "cannot negate and toggle an option at once", true
	case negated:
		return SetBool{Action: Disable, Option: option}, "", true
	case toggled:
		return SetBool{Action: Toggle, Option: option}, "", true
	default:
		return SetBool{Action: Enable, Option: option}, "", true
	}
}

func (s *scanner) option() (Option, bool) {
	switch {
	case s.tag("relativenumber", "rnu"):
		return RelativeNumber, true
	case s.tag("number", "nu"):
		return Number, true
	}
	return 0, false
}
