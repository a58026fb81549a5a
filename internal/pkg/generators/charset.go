package generators

import (
	"strings"
	"unicode/utf8"

	"github.com/soapiestwaffles/pwgen/internal/pkg/pwerr"
)

// Charset is a named alphabet for post-it passwords
type Charset struct {
	Name    string
	Symbols string
}

// Size returns the number of symbols in the charset
func (c Charset) Size() int {
	return utf8.RuneCountInString(c.Symbols)
}

const (
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits = "0123456789"
)

// DefaultCharset is the Snake's Revenge password alphabet, trimmed to 32 symbols
// that are hard to confuse when hand-written.
var DefaultCharset = Charset{Name: "default", Symbols: "?.*#%0123456789CDFHJKLMNPQRTVWXY"}

// Charsets lists the built-in alphabets, in display order
var Charsets = []Charset{
	DefaultCharset,
	{Name: "symlow", Symbols: "./-+=0123456789abcdefgikrsuvwxyz"},
	{Name: "alpha", Symbols: lower},
	{Name: "ALPHA", Symbols: upper},
	{Name: "digit", Symbols: digits},
	{Name: "alphanum", Symbols: lower + digits},
	{Name: "xdigit", Symbols: digits + "abcdef"},
	{Name: "Alpha", Symbols: upper + lower},
	{Name: "AlphaNum", Symbols: upper + lower + digits},
	// https://datatracker.ietf.org/doc/html/rfc4648#page-10
	{Name: "base32", Symbols: lower + "234567"},
	{Name: "base58", Symbols: without(upper+lower+digits, "O0Il")},
	// https://philzimmermann.com/docs/human-oriented-base-32-encoding.txt
	{Name: "zbase32", Symbols: without(lower+digits, "0lv2")},
	// https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki#bech32
	{Name: "bech32", Symbols: without(lower+digits, "1bi0")},
	{Name: "dpad", Symbols: "UDLR"},
}

// LookupCharset finds a built-in charset by name. Names are case sensitive (alpha != ALPHA).
func LookupCharset(name string) (Charset, error) {
	for _, c := range Charsets {
		if c.Name == name {
			return c, nil
		}
	}
	return Charset{}, pwerr.InvalidArgumentf("unknown charset %q (choose from: %s)", name, strings.Join(CharsetNames(), ", "))
}

// CharsetNames returns the names of the built-in charsets
func CharsetNames() []string {
	names := make([]string, 0, len(Charsets))
	for _, c := range Charsets {
		names = append(names, c.Name)
	}
	return names
}

// ParseAlphabet splits symbols into runes, rejecting empty alphabets, duplicates and whitespace
func ParseAlphabet(symbols string) ([]rune, error) {
	if !utf8.ValidString(symbols) {
		return nil, pwerr.InvalidArgumentf("alphabet is not valid UTF-8")
	}

	alphabet := []rune(symbols)
	if len(alphabet) == 0 {
		return nil, pwerr.InvalidArgumentf("alphabet is empty")
	}

	seen := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		if strings.ContainsRune(" \t\r\n", r) {
			return nil, pwerr.InvalidArgumentf("alphabet contains whitespace")
		}
		if seen[r] {
			return nil, pwerr.InvalidArgumentf("alphabet contains duplicated symbol %q", r)
		}
		seen[r] = true
	}

	return alphabet, nil
}

func without(s string, drop string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(drop, r) {
			return -1
		}
		return r
	}, s)
}
