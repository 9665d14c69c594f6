package cryptors

import "fmt"

// ConfigurationError reports bad construction parameters: positions out of
// range, a degenerate role assignment, a malformed alphabet or wiring table.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "purple: invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("purple: invalid %s: %s", e.Field, e.Reason)
}

// InvalidCharacterError reports a symbol that is neither a letter of the
// machine's alphabet nor a pass-through symbol.  Offset is the rune index of
// the symbol in the text being processed, or -1 for a single character.
type InvalidCharacterError struct {
	Char   rune
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("purple: invalid character %q", e.Char)
	}
	return fmt.Sprintf("purple: invalid character %q at offset %d", e.Char, e.Offset)
}

// InvalidChannelError reports a channel outside the switch's channel set.
type InvalidChannelError struct {
	Switch   string
	Channel  int
	Channels int
}

func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("purple: %s switch: channel %d out of range [0, %d)", e.Switch, e.Channel, e.Channels)
}

// RoutingError reports that no input channel of a switch routes to the given
// output channel at the current position.  It cannot happen with the
// historical wiring.
type RoutingError struct {
	Switch   string
	Channel  int
	Position int
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("purple: %s switch: no route to channel %d at position %d", e.Switch, e.Channel, e.Position)
}
