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
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/bgallie/purple/purple"
	"github.com/bgallie/purple/purple/keysheet"
)

var (
	cfgFile        string
	keySheet       string
	alphabet       string
	passThrough    string
	sixesPos       int
	twentiesPos    string
	fastSwitch     int
	middleSwitch   int
	inputFileName  string
	outputFileName string
	GitCommit      string = "not set"
	GitBranch      string = "not set"
	GitState       string = "not set"
	GitSummary     string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

const (
	purpleSuffix = ".purple"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "purple",
	Short: "A Type-B (PURPLE) cipher machine simulator",
	Long: `purple encrypts and decrypts text with a simulation of the Japanese Type-B
cipher machine (Angooki Taipu B), known to US codebreakers as PURPLE.

The key may be given in key sheet notation (--key 9-1,24,6-23) or switch by
switch (--sixes 9 --twenties 1,24,6 --fast 2 --middle 3).  Positions are
1-based, as on the key sheets.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.purple.yaml)")
	pf.StringVarP(&keySheet, "key", "k", "", "the key in key sheet notation a-b,c,d-ef")
	pf.StringVarP(&alphabet, "alphabet", "a", "", "the 26 letter plugboard alphabet (default "+purple.DefaultAlphabet+")")
	pf.StringVar(&passThrough, "passthrough", purple.DefaultPassThrough, "symbols copied to the output without enciphering")
	pf.IntVar(&sixesPos, "sixes", 1, "starting position of the sixes switch (1-25)")
	pf.StringVar(&twentiesPos, "twenties", "1,1,1", "starting positions of the twenties switches (1-25 each)")
	pf.IntVar(&fastSwitch, "fast", 1, "the twenties switch (1-3) that is the fast switch")
	pf.IntVar(&middleSwitch, "middle", 2, "the twenties switch (1-3) that is the middle switch")
	pf.StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file to encrypt/decrypt.")
	pf.StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file containing the encrypted/decrypted text.")
	pf.StringVar(&logLevel, "log-level", "warn", "only log messages with the given severity or above")
	pf.StringVar(&logOutput, "log-output", "console", "format of log messages: console, json")

	cobra.CheckErr(viper.BindPFlag("key", pf.Lookup("key")))
	cobra.CheckErr(viper.BindPFlag("alphabet", pf.Lookup("alphabet")))
	cobra.CheckErr(viper.BindPFlag("passthrough", pf.Lookup("passthrough")))
	cobra.CheckErr(viper.BindPFlag("log.level", pf.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.output", pf.Lookup("log-output")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".purple" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".purple")
	}

	viper.SetEnvPrefix("purple")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// switchFlagsSet reports whether any switch was set by flag.
func switchFlagsSet(cmd *cobra.Command) bool {
	for _, name := range []string{"sixes", "twenties", "fast", "middle"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// settingsFromFlags builds settings from the per-switch flags.
func settingsFromFlags() (purple.Settings, error) {
	var settings purple.Settings
	fields := strings.Split(twentiesPos, ",")
	if len(fields) != len(settings.Twenties) {
		return settings, fmt.Errorf("--twenties %q must name 3 positions", twentiesPos)
	}
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return settings, fmt.Errorf("--twenties %q must be numeric", twentiesPos)
		}
		settings.Twenties[i] = n - 1
	}
	settings.Sixes = sixesPos - 1
	settings.Fast, settings.Middle = fastSwitch, middleSwitch
	return settings, nil
}

// setting returns the value of a persistent flag bound to viper.  A flag
// given on the command line wins over fallback, which wins over the
// environment and the config file.  A nil fallback is skipped.
func setting(cmd *cobra.Command, name string, fallback *string) string {
	if cmd.Flags().Changed(name) || fallback == nil {
		return viper.GetString(name)
	}
	return *fallback
}

// readKey obtains the key sheet from either:
// 1. The --key flag
// 2. fallback, the header of an armoured message
// 3. The 'PURPLE_KEY' environment variable or the config file
// 4. User input from the terminal
func readKey(cmd *cobra.Command, fallback *string) string {
	if key := setting(cmd, "key", fallback); key != "" {
		return key
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Enter the key: ")
		byteKey, err := term.ReadPassword(int(os.Stdin.Fd()))
		cobra.CheckErr(err)
		fmt.Fprintln(os.Stderr, "")
		return strings.TrimSpace(string(byteKey))
	}
	return ""
}

// initEngine builds the cipher machine.  The key of an armoured message is
// used for settings not given on the command line, see setting.
func initEngine(cmd *cobra.Command, mk messageKey) *purple.Machine {
	var settings purple.Settings
	var err error

	if switchFlagsSet(cmd) && !cmd.Flags().Changed("key") {
		settings, err = settingsFromFlags()
		cobra.CheckErr(err)
	} else {
		key := readKey(cmd, mk.key)
		if len(key) == 0 {
			cobra.CheckErr("You must supply a key.")
		}
		settings, err = keysheet.Parse(key)
		cobra.CheckErr(err)
	}
	settings.Alphabet = setting(cmd, "alphabet", mk.alphabet)
	settings.PassThrough = setting(cmd, "passthrough", mk.passThrough)

	machine, err := purple.New(settings, purple.WithLogger(log.Logger))
	cobra.CheckErr(err)
	log.Debug().
		Str("key", keysheet.Format(machine.Settings())).
		Str("alphabet", machine.Settings().Alphabet).
		Msg("Built cipher machine")
	return machine
}

/*
	getInputAndOutputFiles will return the input and output files to use while
	encrypting/decrypting data.  If input and/or output files names were given,
	then those files will be opened.  Otherwise stdin and stdout are used.
*/
func getInputAndOutputFiles(encrypt bool) (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 && inputFileName != "-" {
		fin, err = os.Open(inputFileName)
		cobra.CheckErr(err)
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if inputFileName == "-" || inputFileName == "" {
		fout = os.Stdout
	} else if encrypt {
		outputFileName = inputFileName + purpleSuffix
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		if strings.HasSuffix(inputFileName, purpleSuffix) {
			outputFileName = strings.TrimSuffix(inputFileName, purpleSuffix)
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		} else {
			fout = os.Stdout
		}
	}
	log.Debug().Str("input", fin.Name()).Str("output", fout.Name()).Msg("Opened files")
	return fin, fout
}
