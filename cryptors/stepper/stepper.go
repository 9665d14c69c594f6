// Package stepper implements a multi-level stepping switch.
//
// A stepping switch routes a signal entering on one of its input channels to
// an output channel chosen by the position of its wiper arm.  Each position
// therefore defines a substitution over the channels, and stepping the arm
// changes the substitution.
package stepper

import (
	"bytes"
	"fmt"

	"github.com/bgallie/purple/cryptors"
	"github.com/bgallie/purple/cryptors/bitops"
)

const noRoute = -1

type Switch struct {
	name     string
	start    int
	size     int
	current  int
	channels int
	logic    [][]int // logic[channel][position]
	inverse  [][]int // inverse[position][output]
}

var _ cryptors.Crypter = (*Switch)(nil)

// New creates a switch with the given logic and wiper position.  logic is
// indexed by input channel, then by position; every row must have the same
// length, which becomes the number of positions.  The table is copied.
func New(name string, logic [][]int, position int) (*Switch, error) {
	if len(logic) == 0 || len(logic[0]) == 0 {
		return nil, &cryptors.ConfigurationError{Field: name + " logic", Reason: "empty logic table"}
	}

	var s Switch
	s.name = name
	s.channels = len(logic)
	s.size = len(logic[0])
	s.logic = make([][]int, s.channels)
	for ch, row := range logic {
		if len(row) != s.size {
			return nil, &cryptors.ConfigurationError{
				Field:  name + " logic",
				Reason: fmt.Sprintf("channel %d has %d positions, want %d", ch, len(row), s.size),
			}
		}
		for pos, out := range row {
			if out < 0 || out >= s.channels {
				return nil, &cryptors.ConfigurationError{
					Field:  name + " logic",
					Reason: fmt.Sprintf("channel %d routes to unknown channel %d at position %d", ch, out, pos),
				}
			}
		}
		s.logic[ch] = append([]int(nil), row...)
	}

	if position < 0 || position >= s.size {
		return nil, &cryptors.ConfigurationError{
			Field:  name + " position",
			Reason: fmt.Sprintf("%d is outside [0, %d)", position, s.size),
		}
	}
	s.start, s.current = position, position

	// Later channels win when a column is not a permutation.
	s.inverse = make([][]int, s.size)
	for pos := range s.inverse {
		col := make([]int, s.channels)
		for i := range col {
			col[i] = noRoute
		}
		for ch := range s.logic {
			col[s.logic[ch][pos]] = ch
		}
		s.inverse[pos] = col
	}

	return &s, nil
}

// Step moves the wiper arm one position forwards, wrapping to zero.
func (s *Switch) Step() {
	s.current = (s.current + 1) % s.size
}

// Forward feeds channel forwards through the switch.
func (s *Switch) Forward(channel int) (int, error) {
	if channel < 0 || channel >= s.channels {
		return -1, &cryptors.InvalidChannelError{Switch: s.name, Channel: channel, Channels: s.channels}
	}
	return s.logic[channel][s.current], nil
}

// Inverse feeds channel backwards through the switch, returning the input
// channel that is routed to it at the current position.
func (s *Switch) Inverse(channel int) (int, error) {
	if channel < 0 || channel >= s.channels {
		return -1, &cryptors.InvalidChannelError{Switch: s.name, Channel: channel, Channels: s.channels}
	}
	in := s.inverse[s.current][channel]
	if in == noRoute {
		return -1, &cryptors.RoutingError{Switch: s.name, Channel: channel, Position: s.current}
	}
	return in, nil
}

func (s *Switch) Name() string {
	return s.name
}

func (s *Switch) Position() int {
	return s.current
}

// Reset returns the wiper arm to the position the switch was created with.
func (s *Switch) Reset() {
	s.current = s.start
}

func (s *Switch) Size() int {
	return s.size
}

func (s *Switch) Channels() int {
	return s.channels
}

// Bijective reports whether every position routes the channels onto
// themselves one-to-one.
func (s *Switch) Bijective() bool {
	seen := bitops.New(s.channels)
	for pos := 0; pos < s.size; pos++ {
		seen.Reset()
		for ch := range s.logic {
			seen.Add(s.logic[ch][pos])
		}
		if !seen.Full() {
			return false
		}
	}
	return true
}

func (s *Switch) String() string {
	var output bytes.Buffer
	output.WriteString(fmt.Sprintf("stepper.New(%q, [][]int{\n", s.name))
	for _, row := range s.logic {
		output.WriteString("\t{")
		for i, k := range row {
			if i > 0 {
				output.WriteString(", ")
			}
			output.WriteString(fmt.Sprintf("%d", k))
		}
		output.WriteString("},\n")
	}
	output.WriteString(fmt.Sprintf("}, %d)", s.current))
	return output.String()
}
