// Package report renders the password metrics printed by xkcd-pw and ultra-pw
package report

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/soapiestwaffles/pwgen/internal/pkg/generators"
)

var passwordColor = color.New(color.FgGreen, color.Bold)

// Passphrase describes a generated passphrase
type Passphrase struct {
	Dictionary string
	DictLen    int
	NumWords   int
	Unique     bool
	Password   string
}

// Entropy returns the strength of the passphrase in bits
func (p Passphrase) Entropy() float64 {
	return generators.Entropy(p.DictLen, p.NumWords, p.Unique)
}

// Render writes the passphrase report to w
func (p Passphrase) Render(w io.Writer) error {
	sampling := "with replacement"
	if p.Unique {
		sampling = "without replacement"
	}

	_, err := fmt.Fprintf(w, `
Dictionary  : %s
Dict Len    : %10s (word)
Sampling    : %s
Entropy     : %10.2f (bit/word)
Pw Len      : %10d (word)
            : %10d (char)
Pw Entropy  : %10.2f (bit)
Password    : %s

`,
		p.Dictionary,
		humanize.Comma(int64(p.DictLen)),
		sampling,
		generators.BitsPerSymbol(p.DictLen),
		p.NumWords,
		utf8.RuneCountInString(p.Password),
		p.Entropy(),
		passwordColor.Sprint(p.Password))

	return err
}

// PostIt describes a generated post-it password
type PostIt struct {
	Charset   generators.Charset
	Length    int
	GroupSize int
	Password  string
}

// Groups returns the number of symbol groups written on the note
func (p PostIt) Groups() int {
	if p.GroupSize < 1 {
		return 1
	}
	return (p.Length + p.GroupSize - 1) / p.GroupSize
}

// Entropy returns the strength of the password in bits
func (p PostIt) Entropy() float64 {
	return generators.Entropy(p.Charset.Size(), p.Length, false)
}

// Render writes the post-it password report to w
func (p PostIt) Render(w io.Writer) error {
	perChar := generators.BitsPerSymbol(p.Charset.Size())
	perWord := perChar * float64(p.GroupSize)
	if p.GroupSize < 1 {
		perWord = perChar * float64(p.Length)
	}

	_, err := fmt.Fprintf(w, `
Charset     : %s [%s]
            : %10d (char)
Entropy     : %10.2f (bit/char)
            : %10.2f (bit/word)
Pw Len      : %10d (word)
            : %10d (char)
Pw Entropy  : %10.2f (bit)
Password    : %s

`,
		p.Charset.Name, p.Charset.Symbols,
		p.Charset.Size(),
		perChar,
		perWord,
		p.Groups(),
		utf8.RuneCountInString(p.Password),
		p.Entropy(),
		passwordColor.Sprint(p.Password))

	return err
}

// Charsets writes a table of the given charsets to w
func Charsets(w io.Writer, charsets []generators.Charset) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"name", "size", "bit/char", "symbols"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, c := range charsets {
		table.Append([]string{
			c.Name,
			fmt.Sprint(c.Size()),
			fmt.Sprintf("%.2f", generators.BitsPerSymbol(c.Size())),
			c.Symbols,
		})
	}
	table.Render()
}
