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
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	usePem      bool
	useFilter   bool
	splitOutput bool
	groupSize   int
	wg          sync.WaitGroup
)

// groupSetting returns the --group flag when given, else the group size from
// the environment or the config file.  Both encrypt and decrypt use it so one
// setting drives both directions.
func groupSetting(cmd *cobra.Command) int {
	if cmd.Flags().Changed("group") {
		return groupSize
	}
	return viper.GetInt("group")
}

// groupText writes text in groups of size characters separated by a space,
// the way traffic was sent.  A size of zero leaves text alone.
func groupText(text string, size int) string {
	if size <= 0 {
		return text
	}

	var output strings.Builder
	n := 0
	for _, r := range text {
		if n > 0 && n%size == 0 {
			output.WriteByte(' ')
		}
		output.WriteRune(r)
		n++
	}
	return output.String()
}

// cipherHelper runs text through transform in its own goroutine and provides
// the result through the returned PipeReader.  If transform fails the reader
// returns the error after the text produced so far.
func cipherHelper(text string, transform func(string) (string, error), group int, newline bool) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	wg.Add(1)

	go func() {
		defer wg.Done()
		out, err := transform(text)
		out = groupText(out, group)
		if newline {
			out += "\n"
		}
		if _, werr := io.WriteString(rWrtr, out); werr != nil {
			rWrtr.CloseWithError(werr)
			return
		}
		rWrtr.CloseWithError(err)
	}()

	return rRdr
}

// writeOutput copies the processed text to fout, split into lines or
// armoured as requested.
func writeOutput(fout *os.File, rdr *io.PipeReader, blck *pem.Block) error {
	var err error
	switch {
	case blck != nil:
		_, err = io.Copy(fout, pem.ToPem(bufio.NewReader(rdr), *blck))
	case splitOutput:
		_, err = io.Copy(fout, lines.SplitToLines(rdr))
	default:
		_, err = io.Copy(fout, rdr)
	}
	return err
}
