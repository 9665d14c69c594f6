// plugboard project plugboard.go
package plugboard

import (
	"fmt"
	"strings"

	"github.com/bgallie/purple/cryptors"
	"github.com/bgallie/purple/cryptors/bitops"
)

// Straight is the plugboard wiring used when no daily alphabet is given: the
// six vowels (and Y) on the sixes, the consonants in order on the twenties.
const Straight = "AEIOUYBCDFGHJKLMNPQRSTVWXZ"

// Plugboard connects the typewriter keys to the switch channels.  The first
// six letters of the alphabet feed the sixes switch and the remaining twenty
// the twenties.
type Plugboard struct {
	letters  [cryptors.AlphabetSize]byte // channel to letter
	channels [cryptors.AlphabetSize]int  // letter - 'A' to channel
}

// New creates a plugboard from a 26 letter alphabet.  Case is ignored.
func New(alphabet string) (*Plugboard, error) {
	alphabet = strings.ToUpper(alphabet)
	if err := Validate(alphabet); err != nil {
		return nil, err
	}

	var p Plugboard
	for i := 0; i < len(alphabet); i++ {
		p.letters[i] = alphabet[i]
		p.channels[alphabet[i]-'A'] = i
	}

	return &p, nil
}

// Validate checks that alphabet holds every letter A-Z exactly once.  Case is
// ignored.
func Validate(alphabet string) error {
	if len(alphabet) != cryptors.AlphabetSize {
		return &cryptors.ConfigurationError{
			Field:  "alphabet",
			Reason: fmt.Sprintf("has %d letters, want %d", len(alphabet), cryptors.AlphabetSize),
		}
	}

	seen := bitops.New(cryptors.AlphabetSize)
	for _, r := range strings.ToUpper(alphabet) {
		if r < 'A' || r > 'Z' {
			return &cryptors.ConfigurationError{Field: "alphabet", Reason: fmt.Sprintf("%q is not a letter", r)}
		}
		if !seen.Add(int(r - 'A')) {
			return &cryptors.ConfigurationError{Field: "alphabet", Reason: fmt.Sprintf("duplicate letter %q", r)}
		}
	}

	return nil
}

// Channel returns the channel a letter is plugged into.  ok is false when r is
// not an upper case letter.
func (p *Plugboard) Channel(r rune) (channel int, ok bool) {
	if r < 'A' || r > 'Z' {
		return -1, false
	}
	return p.channels[r-'A'], true
}

// Letter returns the letter plugged into channel.
func (p *Plugboard) Letter(channel int) rune {
	return rune(p.letters[channel])
}

func (p *Plugboard) String() string {
	return string(p.letters[:])
}
