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
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [ciphertext...]",
	Short: "Decrypt ciphertext using the Type-B machine",
	Long: `Decrypt ciphertext produced by the Type-B (PURPLE) cipher machine.

An armoured message (see encrypt --usePem) carries its key; flags given on the
command line still take precedence over it.`,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().BoolVarP(&useFilter, "filter", "f", false, "upper case the ciphertext and drop characters the machine cannot decrypt")
	decryptCmd.Flags().BoolVarP(&splitOutput, "split", "s", false, "split the plaintext into lines")
	decryptCmd.Flags().IntVarP(&groupSize, "group", "g", 0, "the ciphertext was written in groups; drop the white space between them")
}

func decrypt(cmd *cobra.Command, args []string) {
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()
	ciphertext, blck, armoured := readInput(args, fin)

	var mk messageKey
	if armoured {
		mk = armourSettings(blck)
	}
	if mk.grouped || groupSetting(cmd) > 0 {
		ciphertext = stripSpace(ciphertext)
	}
	machine := initEngine(cmd, mk)
	if useFilter {
		ciphertext = filterText(ciphertext, machine.PassThrough())
	}

	decOut := cipherHelper(ciphertext, machine.Decrypt, 0, !splitOutput)
	checkError(writeOutput(fout, decOut, nil))
	wg.Wait() // Wait for the decryption machine to finish it's clean up.

	stats := machine.Stats()
	log.Info().
		Int("characters", stats.Characters).
		Ints("twenties", stats.Twenties[:]).
		Msg("Decrypted")
}
