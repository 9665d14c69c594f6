// Package wiring holds the wiring of the four stepping switches of the Type-B
// cipher machine, as published in
//
//	Freeman, W., Sullivan, G., & Weierud, F. (2003). "Purple Revealed:
//	Simulation And Computer-Aided Cryptanalysis Of Angooki Taipu B."
//	Cryptologia, 27(1), 1-43.
//
// The tables are package data; the accessors return copies so callers can
// never alter them.
package wiring

import (
	"fmt"

	"github.com/bgallie/purple/cryptors"
)

const (
	Positions        = cryptors.SwitchPositions
	SixesChannels    = cryptors.SixesChannels
	TwentiesChannels = cryptors.TwentiesChannels
)

// Sixes returns the logic of the sixes switch.
func Sixes() [][]int {
	return copyTable(sixes[:])
}

// Twenties returns the logic of twenties switch n (1, 2 or 3).
func Twenties(n int) [][]int {
	switch n {
	case 1:
		return copyTable(twentiesI[:])
	case 2:
		return copyTable(twentiesII[:])
	case 3:
		return copyTable(twentiesIII[:])
	}
	panic(fmt.Sprintf("wiring: no twenties switch %d", n))
}

func copyTable(rows [][Positions]int) [][]int {
	table := make([][]int, len(rows))
	for i := range rows {
		table[i] = append([]int(nil), rows[i][:]...)
	}
	return table
}
