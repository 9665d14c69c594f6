/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bgallie/purple/purple"
)

var traceEncrypt bool

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace [text...]",
	Short: "Show the switch positions after every character",
	Long: `Feed text through the machine one character at a time, printing the
character produced, the positions of the four switches afterwards and the
twenties switch that stepped.  Positions are printed 1-based.`,
	Run: func(cmd *cobra.Command, args []string) {
		fin := os.Stdin
		if len(args) == 0 && inputFileName != "" && inputFileName != "-" {
			var err error
			fin, err = os.Open(inputFileName)
			cobra.CheckErr(err)
			defer fin.Close()
		}
		text, _, _ := readInput(args, fin)
		machine := initEngine(cmd, messageKey{})
		dir := purple.Decrypt
		if traceEncrypt {
			dir = purple.Encrypt
		}
		cobra.CheckErr(trace(cmd.OutOrStdout(), machine, text, dir))
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().BoolVarP(&traceEncrypt, "encrypt", "e", false, "encrypt the text instead of decrypting it")
}

func trace(w io.Writer, machine *purple.Machine, text string, dir purple.Direction) error {
	settings := machine.Settings()
	fmt.Fprintf(w, "#     in out  sixes  #1  #2  #3  stepped (fast #%d, middle #%d, slow #%d)\n",
		settings.Fast, settings.Middle, settings.Slow())

	n := 0
	for _, c := range text {
		before := machine.Stats().Twenties
		x, err := machine.Encode(c, dir)
		if err != nil {
			return fmt.Errorf("character %d: %w", n+1, err)
		}
		n++

		stepped := 0
		for i, cnt := range machine.Stats().Twenties {
			if cnt != before[i] {
				stepped = i + 1
			}
		}
		p := machine.Positions()
		fmt.Fprintf(w, "%-5d %c  %c   %5d  %2d  %2d  %2d  #%d\n",
			n, c, x, p.Sixes+1, p.Twenties[0]+1, p.Twenties[1]+1, p.Twenties[2]+1, stepped)
	}
	return nil
}
