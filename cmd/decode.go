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
	"strconv"
	"strings"
	"unicode"

	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	pemType           = "PURPLE Encrypted Message"
	headerKey         = "Key"
	headerAlphabet    = "Alphabet"
	headerPassThrough = "PassThrough"
	headerGroup       = "Group"
)

// checkError checks for error that are not io.EOF and io.ErrUnexpectedEOF.
func checkError(e error) {
	if e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}

// readInput returns the text to process.  Text given as arguments is joined
// with spaces.  Otherwise it is read from fin, joining wrapped lines; an
// armoured message is unwrapped and its PEM block returned with armoured set.
func readInput(args []string, fin io.Reader) (text string, blck pem.Block, armoured bool) {
	if len(args) > 0 {
		return strings.Join(args, " "), blck, false
	}

	bRdr := bufio.NewReader(fin)
	b, err := bRdr.Peek(5)
	checkError(err)
	var rdr io.Reader
	if string(b) == "-----" {
		var pRdr *io.PipeReader
		pRdr, blck = pem.FromPem(bRdr)
		rdr, armoured = pRdr, true
		log.Debug().Interface("headers", blck.Headers).Msg("Read armoured message")
	} else {
		rdr = lines.CombineLines(bRdr)
	}

	data, err := io.ReadAll(rdr)
	checkError(err)
	return string(data), blck, armoured
}

// messageKey is the key recorded in the headers of an armoured message.  A
// nil field was not recorded.
type messageKey struct {
	key         *string
	alphabet    *string
	passThrough *string
	grouped     bool
}

// armourSettings reads the key sheet, alphabet and pass-through symbols from
// the headers of an armoured message.
func armourSettings(blck pem.Block) messageKey {
	var mk messageKey
	if key, ok := blck.Headers[headerKey]; ok {
		mk.key = &key
	}
	if alphabet, ok := blck.Headers[headerAlphabet]; ok {
		mk.alphabet = &alphabet
	}
	if quoted, ok := blck.Headers[headerPassThrough]; ok {
		passThrough, err := strconv.Unquote(quoted)
		checkError(err)
		mk.passThrough = &passThrough
	}
	if group, ok := blck.Headers[headerGroup]; ok {
		n, err := strconv.Atoi(group)
		checkError(err)
		mk.grouped = n > 0
	}
	return mk
}

// foldAccents turns accented letters into their bare form, É into E.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// filterText upper cases text and drops everything that is neither a letter
// nor one of the pass-through symbols.  White space is always dropped.
func filterText(text, passThrough string) string {
	if folded, _, err := transform.String(foldAccents, text); err == nil {
		text = folded
	}
	return strings.Map(func(r rune) rune {
		r = unicode.ToUpper(r)
		switch {
		case r >= 'A' && r <= 'Z':
			return r
		case unicode.IsSpace(r):
			return -1
		case strings.ContainsRune(passThrough, r):
			return r
		}
		return -1
	}, text)
}

// stripSpace removes the white space used to group letters.
func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}
