package generators

import (
	"github.com/soapiestwaffles/pwgen/internal/pkg/pwerr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSeparator joins words of a phrase and groups of a post-it password
const DefaultSeparator = " "

// Case is a letter case transformation applied to each word of a phrase
type Case string

const (
	CaseKeep  Case = "keep"
	CaseLower Case = "lower"
	CaseUpper Case = "upper"
	CaseTitle Case = "title"
)

// Cases lists the accepted Case values
var Cases = []Case{CaseKeep, CaseLower, CaseUpper, CaseTitle}

func (c Case) transformer() (func(string) string, error) {
	switch c {
	case CaseKeep, "":
		return func(s string) string { return s }, nil
	case CaseLower:
		return cases.Lower(language.English).String, nil
	case CaseUpper:
		return cases.Upper(language.English).String, nil
	case CaseTitle:
		return cases.Title(language.English).String, nil
	}
	return nil, pwerr.InvalidArgumentf("unknown case %q", string(c))
}

// Option configures GeneratePhrase and GeneratePostIt
type Option func(o *options)

type options struct {
	source     Source
	separator  string
	letterCase Case
	unique     bool
	groupSize  int
}

func newOptions(opts []Option) *options {
	o := &options{
		separator:  DefaultSeparator,
		letterCase: CaseKeep,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.source == nil {
		o.source = NewCryptoSource()
	}

	return o
}

// WithSource sets the random source. Defaults to NewCryptoSource().
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSeparator sets the string placed between words (phrase) or groups (post-it)
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// WithCase sets the letter case applied to each word of a phrase
func WithCase(c Case) Option {
	return func(o *options) {
		o.letterCase = c
	}
}

// WithUnique makes phrase words sampled without replacement
func WithUnique(unique bool) Option {
	return func(o *options) {
		o.unique = unique
	}
}

// WithGroupSize splits a post-it password into groups of n symbols. 0 disables grouping.
func WithGroupSize(n int) Option {
	return func(o *options) {
		o.groupSize = n
	}
}
