package purple

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bgallie/purple/cryptors/plugboard"
)

const (
	// DefaultAlphabet is the straight-through plugboard wiring.
	DefaultAlphabet = plugboard.Straight
	// DefaultPassThrough holds the symbols copied to the output unchanged.
	// The historical record uses them for illegible or word-separating
	// characters; the switches still step over them.
	DefaultPassThrough = " -/"
)

// Settings is the key of a machine.  Positions are 0-based; Fast and Middle
// name twenties switches 1-3, the remaining one is the slow switch.  An empty
// Alphabet selects DefaultAlphabet.  An empty PassThrough means no symbol
// passes through; DefaultSettings carries DefaultPassThrough.
type Settings struct {
	Sixes       int    `validate:"gte=0,lt=25"`
	Twenties    [3]int `validate:"dive,gte=0,lt=25"`
	Fast        int    `validate:"gte=1,lte=3,nefield=Middle"`
	Middle      int    `validate:"gte=1,lte=3"`
	Alphabet    string `validate:"omitempty,alphabet"`
	PassThrough string `validate:"passthrough"`
}

// DefaultSettings returns every switch at position 0, switch 1 fast, switch 2
// middle and the default alphabet.
func DefaultSettings() Settings {
	return Settings{
		Fast:        1,
		Middle:      2,
		Alphabet:    DefaultAlphabet,
		PassThrough: DefaultPassThrough,
	}
}

// Slow returns the number of the slow switch.
func (s Settings) Slow() int {
	return 6 - s.Fast - s.Middle
}

// Validate reports the first problem with s as a *ConfigurationError.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ConfigurationError{Reason: err.Error()}
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "nefield":
		return &ConfigurationError{Field: "switch roles", Reason: "fast and middle switches cannot be the same"}
	case "alphabet":
		// Report the plugboard's own reason.
		return plugboard.Validate(s.Alphabet)
	case "passthrough":
		return &ConfigurationError{Field: "pass-through", Reason: fmt.Sprintf("%q contains a letter", s.PassThrough)}
	case "gte", "lt", "lte":
		return &ConfigurationError{
			Field:  strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Settings.")),
			Reason: fmt.Sprintf("%v is out of range (%s %s)", fe.Value(), fe.Tag(), fe.Param()),
		}
	}
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf("failed %q check", fe.Tag())}
}

// withDefaults fills in the alphabet.
func (s Settings) withDefaults() Settings {
	if s.Alphabet == "" {
		s.Alphabet = DefaultAlphabet
	}
	s.Alphabet = strings.ToUpper(s.Alphabet)
	return s
}
