package generators

import (
	"strings"

	"github.com/soapiestwaffles/pwgen/internal/pkg/pwerr"
)

// CharsPerWord is the group size of a post-it password, four groups of four fit a post-it note
const CharsPerWord = 4

// GeneratePostIt creates a password of exactly `length` symbols picked uniformly at random from `alphabet`.
//
// With WithGroupSize(n), the separator is inserted every n symbols. Separators do not count toward `length`.
func GeneratePostIt(alphabet string, length int, opts ...Option) (string, error) {
	if length < 1 {
		return "", pwerr.InvalidArgumentf("password length must be a positive integer, got %d", length)
	}

	symbols, err := ParseAlphabet(alphabet)
	if err != nil {
		return "", err
	}

	o := newOptions(opts)
	if o.groupSize < 0 {
		return "", pwerr.InvalidArgumentf("group size must not be negative, got %d", o.groupSize)
	}

	var sb strings.Builder
	for i := 0; i < length; i++ {
		if o.groupSize > 0 && i > 0 && i%o.groupSize == 0 {
			sb.WriteString(o.separator)
		}

		idx, err := o.source.IntN(len(symbols))
		if err != nil {
			return "", err
		}
		sb.WriteRune(symbols[idx])
	}

	return sb.String(), nil
}
