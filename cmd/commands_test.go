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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/purple/purple"
	"github.com/bgallie/purple/purple/keysheet"
)

const (
	messageKeySheet = "9-1,24,6-23"
	messageAlphabet = "NOKTYUXEQLHBRMPDICJASVWGZF"
)

// resetFlags puts every flag of c and its sub commands back to its default.
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

// cleanEnv hides any config file and PURPLE_ variables of the user running
// the tests.  Empty variables are ignored by viper.
func cleanEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{"PURPLE_KEY", "PURPLE_ALPHABET", "PURPLE_PASSTHROUGH", "PURPLE_GROUP"} {
		t.Setenv(name, "")
	}
}

// runCommand executes the root command with args and returns what it wrote
// to its output.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(t, rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		resetFlags(t, rootCmd)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func readText(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return strings.TrimSpace(string(data))
}

func TestEncryptDecrypt_Armoured(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	armoured := filepath.Join(dir, "orders.purple")

	runCommand(t, "encrypt", "-k", messageKeySheet, "-p", "-o", armoured, "ATTACK AT DAWN")
	body := readText(t, armoured)
	assert.True(t, strings.HasPrefix(body, "-----"))
	assert.Contains(t, body, pemType)
	assert.Contains(t, body, messageKeySheet)

	// No key given: it comes from the armour, the output name from the suffix.
	runCommand(t, "decrypt", "-i", armoured)
	assert.Equal(t, "ATTACK AT DAWN", readText(t, filepath.Join(dir, "orders")))
}

func TestEncryptDecrypt_ArmouredGrouped(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	armoured := filepath.Join(dir, "grouped.purple")
	plain := filepath.Join(dir, "plain.txt")

	runCommand(t, "encrypt", "-k", messageKeySheet, "-p", "-g", "5", "-o", armoured, "HELLOWORLDTHISISATEST")
	runCommand(t, "decrypt", "-i", armoured, "-o", plain)
	assert.Equal(t, "HELLOWORLDTHISISATEST", readText(t, plain))
}

func TestDecrypt_KeyPrecedence(t *testing.T) {
	cleanEnv(t)
	const (
		plaintext = "ATTACKATDAWN"
		otherKey  = "3-17,2,11-31"
	)
	dir := t.TempDir()
	armoured := filepath.Join(dir, "orders.purple")
	plain := filepath.Join(dir, "plain.txt")
	runCommand(t, "encrypt", "-k", messageKeySheet, "-p", "-o", armoured, plaintext)

	// The armour wins over the environment.
	t.Setenv("PURPLE_KEY", otherKey)
	runCommand(t, "decrypt", "-i", armoured, "-o", plain)
	assert.Equal(t, plaintext, readText(t, plain))

	// A --key flag wins over the armour.
	runCommand(t, "decrypt", "-k", otherKey, "-i", armoured, "-o", plain)

	settings, err := keysheet.Parse(messageKeySheet)
	require.NoError(t, err)
	enc, err := purple.New(settings)
	require.NoError(t, err)
	ciphertext, err := enc.Encrypt(plaintext)
	require.NoError(t, err)

	settings, err = keysheet.Parse(otherKey)
	require.NoError(t, err)
	dec, err := purple.New(settings)
	require.NoError(t, err)
	want, err := dec.Decrypt(ciphertext)
	require.NoError(t, err)

	assert.Equal(t, want, readText(t, plain))
	assert.NotEqual(t, plaintext, want)
}

func TestEncryptDecrypt_SwitchFlags(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	cipherFile := filepath.Join("..", "purple", "testdata", "message.cipher")
	plainFile := filepath.Join("..", "purple", "testdata", "message.plain")
	key := []string{"--sixes", "9", "--twenties", "1,24,6", "--fast", "2", "--middle", "3", "-a", messageAlphabet}

	runCommand(t, append([]string{"decrypt", "-i", cipherFile, "-o", out}, key...)...)
	assert.Equal(t, readText(t, plainFile), readText(t, out))

	runCommand(t, append([]string{"encrypt", "-i", plainFile, "-o", out}, key...)...)
	assert.Equal(t, readText(t, cipherFile), readText(t, out))
}

func TestEncryptDecrypt_Grouped(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	grouped := filepath.Join(dir, "grouped.txt")
	plain := filepath.Join(dir, "plain.txt")

	runCommand(t, "encrypt", "-k", messageKeySheet, "-g", "5", "-o", grouped, "HELLOWORLDTHISISATEST")
	assert.Equal(t, "GOCTU DYLSB NKYHU KYQOT H", readText(t, grouped))

	runCommand(t, "decrypt", "-k", messageKeySheet, "-g", "5", "-i", grouped, "-o", plain)
	assert.Equal(t, "HELLOWORLDTHISISATEST", readText(t, plain))

	// The configured group size drives decrypt too.
	t.Setenv("PURPLE_GROUP", "5")
	require.NoError(t, os.Remove(plain))
	runCommand(t, "decrypt", "-k", messageKeySheet, "-i", grouped, "-o", plain)
	assert.Equal(t, "HELLOWORLDTHISISATEST", readText(t, plain))
}

func TestEncryptDecrypt_FileSuffix(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	note := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(note, []byte("MEETATNOON\n"), 0o600))

	runCommand(t, "encrypt", "-k", messageKeySheet, "-i", note)
	encrypted := note + purpleSuffix
	assert.FileExists(t, encrypted)
	assert.NotEqual(t, "MEETATNOON", readText(t, encrypted))

	require.NoError(t, os.Remove(note))
	runCommand(t, "decrypt", "-k", messageKeySheet, "-i", encrypted)
	assert.Equal(t, "MEETATNOON", readText(t, note))
}

func TestSettingsFromFlags(t *testing.T) {
	t.Cleanup(func() { resetFlags(t, rootCmd) })

	sixesPos, twentiesPos, fastSwitch, middleSwitch = 9, "1, 24,6", 2, 3
	settings, err := settingsFromFlags()
	require.NoError(t, err)
	assert.Equal(t, 8, settings.Sixes)
	assert.Equal(t, [3]int{0, 23, 5}, settings.Twenties)
	assert.Equal(t, 2, settings.Fast)
	assert.Equal(t, 3, settings.Middle)

	for _, bad := range []string{"1,24", "1,24,6,7", "1,x,6", ""} {
		twentiesPos = bad
		_, err := settingsFromFlags()
		assert.Error(t, err, "--twenties %q", bad)
	}
}
