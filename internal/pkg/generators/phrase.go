package generators

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/soapiestwaffles/pwgen/internal/pkg/pwerr"
	"github.com/soapiestwaffles/pwgen/internal/pkg/wordlist"
)

// GeneratePhrase creates a phrase `numWords` long, consisting of words picked uniformly at random from `words`.
//
// Words are picked with replacement unless WithUnique(true) is given. The letter case is applied to the
// whole list before picking, see CaseWords.
func GeneratePhrase(words []string, numWords int, opts ...Option) (string, error) {
	if numWords < 1 {
		return "", pwerr.InvalidArgumentf("number of words must be a positive integer, got %d", numWords)
	}
	if len(words) == 0 {
		return "", pwerr.Configurationf("word list is empty")
	}

	o := newOptions(opts)
	words, err := CaseWords(words, o.letterCase)
	if err != nil {
		return "", err
	}

	var picked []string
	if o.unique {
		picked, err = pickUnique(o.source, words, numWords)
	} else {
		picked, err = pick(o.source, words, numWords)
	}
	if err != nil {
		return "", err
	}

	return strings.Join(picked, o.separator), nil
}

// CaseWords returns a copy of words with the letter case applied to each of them.
// A list that folds into duplicates (Polish and polish under CaseLower) is a configuration error.
func CaseWords(words []string, c Case) ([]string, error) {
	transform, err := c.transformer()
	if err != nil {
		return nil, err
	}

	cased := make([]string, len(words))
	for i, word := range words {
		cased[i] = transform(word)
	}

	if err := wordlist.Validate(cased); err != nil {
		return nil, errors.Wrapf(err, "word list with %s case", c)
	}

	return cased, nil
}

func pick(src Source, words []string, n int) ([]string, error) {
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx, err := src.IntN(len(words))
		if err != nil {
			return nil, err
		}
		picked = append(picked, words[idx])
	}
	return picked, nil
}

// pickUnique runs n steps of a Fisher-Yates shuffle over a copy of words
func pickUnique(src Source, words []string, n int) ([]string, error) {
	if n > len(words) {
		return nil, pwerr.InvalidArgumentf("cannot pick %d distinct words from a list of %d", n, len(words))
	}

	pool := make([]string, len(words))
	copy(pool, words)
	for i := 0; i < n; i++ {
		j, err := src.IntN(len(pool) - i)
		if err != nil {
			return nil, err
		}
		j += i
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n], nil
}
