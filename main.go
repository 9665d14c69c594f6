// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package main - purple is a simulation of the Japanese Type-B cipher machine
// (Angooki Taipu B), known to US codebreakers as PURPLE, as described in
// "Purple Revealed: Simulation And Computer-Aided Cryptanalysis Of Angooki
// Taipu B" by Wes Freeman, Geoff Sullivan and Frode Weierud, Cryptologia
// Volume 27, Number 1, 2003.
package main

import "github.com/bgallie/purple/cmd"

func main() {
	cmd.Execute()
}
