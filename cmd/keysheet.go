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

	"github.com/spf13/cobra"

	"github.com/bgallie/purple/purple/keysheet"
)

// keysheetCmd represents the keysheet command
var keysheetCmd = &cobra.Command{
	Use:   "keysheet KEY",
	Short: "Check a key given in key sheet notation",
	Long: `Check a key given in key sheet notation (a-b,c,d-ef) and print it in normal
form together with the switch settings it selects.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := keysheet.Parse(args[0])
		cobra.CheckErr(err)
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, keysheet.Format(settings))
		fmt.Fprintf(w, "sixes:    %d\n", settings.Sixes+1)
		for i, pos := range settings.Twenties {
			fmt.Fprintf(w, "twenties #%d: %d\n", i+1, pos+1)
		}
		fmt.Fprintf(w, "fast: #%d  middle: #%d  slow: #%d\n", settings.Fast, settings.Middle, settings.Slow())
	},
}

func init() {
	rootCmd.AddCommand(keysheetCmd)
}
