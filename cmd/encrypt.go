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
	"strconv"

	"github.com/bgallie/filters/pem"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bgallie/purple/purple/keysheet"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [plaintext...]",
	Short: "Encrypt plaintext using the Type-B machine",
	Long: `Encrypt plaintext using the Type-B (PURPLE) cipher machine.

The plaintext is taken from the arguments, the input file or stdin.  Only the
letters A-Z and the pass-through symbols may appear in it; use --filter to
upper case the text and drop everything else.`,
	Run: func(cmd *cobra.Command, args []string) {
		encrypt(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&usePem, "usePem", "p", false, "armour the ciphertext in a PEM block recording the key")
	encryptCmd.Flags().BoolVarP(&useFilter, "filter", "f", false, "upper case the plaintext and drop characters the machine cannot encrypt")
	encryptCmd.Flags().IntVarP(&groupSize, "group", "g", 0, "write the ciphertext in groups of this many letters (white space is dropped from the plaintext)")
	encryptCmd.Flags().BoolVarP(&splitOutput, "split", "s", false, "split the ciphertext into lines")
}

func encrypt(cmd *cobra.Command, args []string) {
	machine := initEngine(cmd, messageKey{})
	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()
	plaintext, _, _ := readInput(args, fin)
	if useFilter {
		plaintext = filterText(plaintext, machine.PassThrough())
	}
	group := groupSetting(cmd)
	if group > 0 {
		plaintext = stripSpace(plaintext)
	}

	var blck *pem.Block
	if usePem {
		settings := machine.Settings()
		blck = new(pem.Block)
		blck.Type = pemType
		blck.Headers = make(map[string]string)
		blck.Headers[headerKey] = keysheet.Format(settings)
		blck.Headers[headerAlphabet] = settings.Alphabet
		blck.Headers[headerPassThrough] = strconv.Quote(settings.PassThrough)
		blck.Headers[headerGroup] = strconv.Itoa(group)
	}

	encIn := cipherHelper(plaintext, machine.Encrypt, group, !(usePem || splitOutput))
	checkError(writeOutput(fout, encIn, blck))
	wg.Wait()

	stats := machine.Stats()
	log.Info().
		Int("characters", stats.Characters).
		Ints("twenties", stats.Twenties[:]).
		Msg("Encrypted")
}
