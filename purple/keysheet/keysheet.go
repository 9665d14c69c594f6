// Package keysheet reads the shorthand US codebreakers used to record a
// day's Type-B key: "a-b,c,d-ef", for example "9-1,24,6-23".
//
//	a      starting position of the sixes switch (1-25)
//	b,c,d  starting positions of twenties switches 1, 2 and 3 (1-25)
//	e      the fast switch (1-3)
//	f      the middle switch (1-3)
//
// Positions on the key sheet are 1-based; purple.Settings are 0-based.
package keysheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bgallie/purple/cryptors"
	"github.com/bgallie/purple/purple"
)

func malformed(format string, args ...interface{}) error {
	return &cryptors.ConfigurationError{Field: "key sheet", Reason: fmt.Sprintf(format, args...)}
}

// Parse converts a key sheet string into validated settings.  The alphabet and
// pass-through set are those of purple.DefaultSettings.
func Parse(key string) (purple.Settings, error) {
	settings := purple.DefaultSettings()

	fields := strings.Split(strings.TrimSpace(key), "-")
	if len(fields) != 3 {
		return settings, malformed("%q must have the form a-b,c,d-ef", key)
	}
	sixes, twenties, speeds := fields[0], strings.Split(fields[1], ","), fields[2]
	if len(twenties) != cryptors.NumberTwenties {
		return settings, malformed("%q must name %d twenties positions", fields[1], cryptors.NumberTwenties)
	}

	pos, err := position("sixes", sixes)
	if err != nil {
		return settings, err
	}
	settings.Sixes = pos
	for i, tw := range twenties {
		if settings.Twenties[i], err = position(fmt.Sprintf("twenties #%d", i+1), tw); err != nil {
			return settings, err
		}
	}

	if len(speeds) != 2 {
		return settings, malformed("switch speeds %q must be two digits", speeds)
	}
	if settings.Fast, err = strconv.Atoi(speeds[:1]); err != nil {
		return settings, malformed("switch speeds %q must be numeric", speeds)
	}
	if settings.Middle, err = strconv.Atoi(speeds[1:]); err != nil {
		return settings, malformed("switch speeds %q must be numeric", speeds)
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// position converts a 1-based key sheet position to a 0-based one.
func position(name, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return -1, malformed("switch position %q must be numeric", field)
	}
	if n < 1 || n > cryptors.SwitchPositions {
		return -1, &cryptors.ConfigurationError{
			Field:  name + " position",
			Reason: fmt.Sprintf("%d is outside 1-%d", n, cryptors.SwitchPositions),
		}
	}
	return n - 1, nil
}

// Format writes settings in key sheet notation.
func Format(s purple.Settings) string {
	return fmt.Sprintf("%d-%d,%d,%d-%d%d",
		s.Sixes+1, s.Twenties[0]+1, s.Twenties[1]+1, s.Twenties[2]+1, s.Fast, s.Middle)
}
