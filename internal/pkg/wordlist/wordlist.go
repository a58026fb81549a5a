// Package wordlist loads passphrase word lists.
//
// Two line formats are accepted, and may be mixed:
//
//	Diceware:   16655 staple
//	UNIX words: staple
//
// Blank lines are skipped. A usable list is non-empty and contains no duplicated words.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/soapiestwaffles/pwgen/internal/pkg/assets"
	"github.com/soapiestwaffles/pwgen/internal/pkg/pwerr"
)

// Load reads and validates the word list at path
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, pwerr.Configurationf("cannot open word list: %v", err)
	}
	defer file.Close()

	words, err := Parse(file)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	log.Debug().Str("path", path).Int("words", len(words)).Msg("word list loaded")

	return words, nil
}

// Default returns the embedded word list
func Default() ([]string, error) {
	words, err := Parse(strings.NewReader(assets.DefaultWordList))
	if err != nil {
		return nil, errors.Wrap(err, assets.DefaultWordListName)
	}

	return words, nil
}

// Parse reads one word per line from r and validates the result
func Parse(r io.Reader) ([]string, error) {
	words := []string{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())

		switch {
		case len(tokens) == 0:
			continue
		case len(tokens) == 1:
			words = append(words, tokens[0])
		case len(tokens) == 2 && isDiceRoll(tokens[0]):
			words = append(words, tokens[1])
		default:
			return nil, pwerr.Configurationf("malformed word list entry on line %d: %q", lineNum, scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, pwerr.Configurationf("reading word list: %v", err)
	}

	if err := Validate(words); err != nil {
		return nil, err
	}

	return words, nil
}

// Validate checks that words is non-empty and free of duplicates
func Validate(words []string) error {
	if len(words) == 0 {
		return pwerr.Configurationf("word list is empty")
	}

	seen := make(map[string]int, len(words))
	duped := []string{}
	for _, word := range words {
		seen[word]++
		if seen[word] == 2 {
			duped = append(duped, word)
		}
	}

	if len(duped) > 0 {
		return pwerr.Configurationf("duped word detected: %s", strings.Join(duped, ", "))
	}

	return nil
}

func isDiceRoll(token string) bool {
	for _, c := range token {
		if c < '1' || c > '6' {
			return false
		}
	}
	return true
}
