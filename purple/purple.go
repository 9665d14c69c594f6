// Package purple simulates the Type-B cipher machine ("PURPLE", Angooki Taipu
// B) used for Japanese diplomatic traffic from 1939 to 1945.
//
// The machine splits the alphabet in two.  Six letters are enciphered by a
// single stepping switch, the sixes.  The other twenty pass through a chain of
// three twenties switches.  After every character the sixes switch steps and
// exactly one of the twenties switches steps: normally the fast switch, the
// middle switch when the sixes is at its last position, and the slow switch
// when the sixes is at its second to last position while the middle switch is
// at its last.
//
// A Machine is not safe for concurrent use.
package purple

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bgallie/purple/cryptors"
	"github.com/bgallie/purple/cryptors/plugboard"
	"github.com/bgallie/purple/cryptors/stepper"
	"github.com/bgallie/purple/cryptors/wiring"
)

type (
	ConfigurationError    = cryptors.ConfigurationError
	InvalidCharacterError = cryptors.InvalidCharacterError
	InvalidChannelError   = cryptors.InvalidChannelError
	RoutingError          = cryptors.RoutingError
)

// Direction selects which way a character is fed through the switches.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Encrypt {
		return "encrypt"
	}
	return "decrypt"
}

// Role is the stepping role of a twenties switch.
type Role int

const (
	Fast Role = iota
	Middle
	Slow
)

func (r Role) String() string {
	switch r {
	case Fast:
		return "fast"
	case Middle:
		return "middle"
	case Slow:
		return "slow"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Latch positions that divert the step away from the fast switch.
const (
	lastPosition       = cryptors.SwitchPositions - 1
	secondLastPosition = cryptors.SwitchPositions - 2
)

// Positions holds the 0-based wiper positions of the four switches.
type Positions struct {
	Sixes    int
	Twenties [cryptors.NumberTwenties]int
}

// Stats counts the work done since the machine was created or reset.
type Stats struct {
	Characters int
	Sixes      int
	Twenties   [cryptors.NumberTwenties]int
}

type Machine struct {
	settings    Settings
	sixes       *stepper.Switch
	twenties    [cryptors.NumberTwenties]*stepper.Switch
	roles       [3]*stepper.Switch // indexed by Role
	plugboard   *plugboard.Plugboard
	passThrough string
	stats       Stats
	logger      zerolog.Logger
}

type Option func(*Machine)

// WithLogger makes the machine log every step at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// New builds a machine from settings.  An empty alphabet selects the default.
func New(settings Settings, opts ...Option) (*Machine, error) {
	settings = settings.withDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		settings:    settings,
		passThrough: settings.PassThrough,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	var err error
	if m.sixes, err = stepper.New("sixes", wiring.Sixes(), settings.Sixes); err != nil {
		return nil, err
	}
	for i := range m.twenties {
		name := fmt.Sprintf("twenties #%d", i+1)
		if m.twenties[i], err = stepper.New(name, wiring.Twenties(i+1), settings.Twenties[i]); err != nil {
			return nil, err
		}
	}
	m.roles[Fast] = m.twenties[settings.Fast-1]
	m.roles[Middle] = m.twenties[settings.Middle-1]
	m.roles[Slow] = m.twenties[settings.Slow()-1]

	if m.plugboard, err = plugboard.New(settings.Alphabet); err != nil {
		return nil, err
	}

	return m, nil
}

// Encrypt enciphers plaintext.  It stops at the first character that can not
// be enciphered, returning the text produced so far and an
// *InvalidCharacterError.
func (m *Machine) Encrypt(plaintext string) (string, error) {
	return m.transform(plaintext, Encrypt)
}

// Decrypt deciphers ciphertext, stopping like Encrypt on a bad character.
func (m *Machine) Decrypt(ciphertext string) (string, error) {
	return m.transform(ciphertext, Decrypt)
}

func (m *Machine) transform(text string, dir Direction) (string, error) {
	var out strings.Builder
	out.Grow(len(text))
	offset := 0
	for _, c := range text {
		x, err := m.Encode(c, dir)
		if err != nil {
			var ice *InvalidCharacterError
			if errors.As(err, &ice) {
				ice.Offset = offset
			}
			return out.String(), err
		}
		out.WriteRune(x)
		offset++
	}
	return out.String(), nil
}

// Encode feeds a single character through the machine and steps it.  A
// character that is neither an upper case letter nor a pass-through symbol is
// rejected without stepping.
func (m *Machine) Encode(c rune, dir Direction) (rune, error) {
	if strings.ContainsRune(m.passThrough, c) {
		m.Step()
		return c, nil
	}

	n, ok := m.plugboard.Channel(c)
	if !ok {
		return 0, &InvalidCharacterError{Char: c, Offset: -1}
	}

	x, err := m.route(n, dir)
	if err != nil {
		return 0, err
	}

	m.Step()
	return m.plugboard.Letter(x), nil
}

func (m *Machine) route(n int, dir Direction) (int, error) {
	if n < cryptors.SixesChannels {
		if dir == Encrypt {
			return cryptors.Encrypt(m.sixes, n)
		}
		return cryptors.Decrypt(m.sixes, n)
	}

	var x int
	var err error
	t := m.twenties
	if dir == Encrypt {
		x, err = cryptors.EncryptChain(n-cryptors.SixesChannels, t[0], t[1], t[2])
	} else {
		x, err = cryptors.DecryptChain(n-cryptors.SixesChannels, t[0], t[1], t[2])
	}
	if err != nil {
		return -1, err
	}
	return x + cryptors.SixesChannels, nil
}

// Step advances the switches as the machine does after every character and
// returns the role of the twenties switch that moved.
func (m *Machine) Step() Role {
	sixes, middle := m.sixes.Position(), m.roles[Middle].Position()

	role := Fast
	switch {
	case sixes == secondLastPosition && middle == lastPosition:
		role = Slow
	case sixes == lastPosition:
		role = Middle
	}

	sw := m.roles[role]
	sw.Step()
	m.sixes.Step()

	m.stats.Characters++
	m.stats.Sixes++
	for i := range m.twenties {
		if m.twenties[i] == sw {
			m.stats.Twenties[i]++
		}
	}

	m.logger.Trace().
		Int("sixes", sixes).
		Int("middle", middle).
		Str("role", role.String()).
		Str("switch", sw.Name()).
		Msg("Stepped")

	return role
}

// Positions returns the current switch positions.
func (m *Machine) Positions() Positions {
	p := Positions{Sixes: m.sixes.Position()}
	for i, sw := range m.twenties {
		p.Twenties[i] = sw.Position()
	}
	return p
}

// Reset returns the switches to the starting positions and clears the stats.
func (m *Machine) Reset() {
	m.sixes.Reset()
	for _, sw := range m.twenties {
		sw.Reset()
	}
	m.stats = Stats{}
}

// Roles returns the numbers of the fast, middle and slow switches.
func (m *Machine) Roles() (fast, middle, slow int) {
	return m.settings.Fast, m.settings.Middle, m.settings.Slow()
}

func (m *Machine) Stats() Stats {
	return m.stats
}

// Settings returns the settings the machine was built with, defaults filled in.
func (m *Machine) Settings() Settings {
	return m.settings
}

// PassThrough returns the symbols the machine copies unchanged.
func (m *Machine) PassThrough() string {
	return m.passThrough
}

func (m *Machine) String() string {
	p := m.Positions()
	return fmt.Sprintf("purple: sixes %d, twenties %d,%d,%d, fast #%d, middle #%d, alphabet %s",
		p.Sixes, p.Twenties[0], p.Twenties[1], p.Twenties[2],
		m.settings.Fast, m.settings.Middle, m.plugboard)
}
