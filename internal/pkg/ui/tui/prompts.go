package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/soapiestwaffles/pwgen/internal/pkg/generators"
)

type charsetItem struct {
	Name    string
	Symbols string
	Size    int
	Bits    float64
}

func newCharsetItems(charsets []generators.Charset) []charsetItem {
	items := make([]charsetItem, 0, len(charsets))
	for _, c := range charsets {
		items = append(items, charsetItem{
			Name:    c.Name,
			Symbols: c.Symbols,
			Size:    c.Size(),
			Bits:    generators.BitsPerSymbol(c.Size()),
		})
	}
	return items
}

func charsetSearcher(items []charsetItem) func(input string, index int) bool {
	return func(input string, index int) bool {
		name := strings.ToLower(items[index].Name)
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")

		return strings.Contains(name, input)
	}
}

// SelectCharsetPrompt will create the UI select element for the user to select a charset from a list
func SelectCharsetPrompt(charsets []generators.Charset) (generators.Charset, error) {
	items := newCharsetItems(charsets)

	templates := &promptui.SelectTemplates{
		Label:    "{{ \"---\" | faint }} {{ . | blue | bold }} {{ \"---\" | faint }}",
		Active:   "▸ {{ .Name | cyan }}",
		Inactive: "  {{ .Name | cyan }}",
		Selected: "▸ {{ .Name | bold | green }}",
		Details: `
------ Charset Info ------
{{ "Name............:" | faint }} {{ .Name }}
{{ "Symbols.........:" | faint }} {{ .Symbols }}
{{ "Size............:" | faint }} {{ .Size }}
{{ "Entropy.........:" | faint }} {{ printf "%.2f" .Bits }} bit/char`,
	}

	prompt := promptui.Select{
		Label:     "Select a charset:",
		Items:     items,
		Templates: templates,
		Size:      5,
		Searcher:  charsetSearcher(items),
		Stdout:    &bellSkipper{out: os.Stderr},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return generators.Charset{}, err
	}

	return charsets[i], nil
}

// TypeMatchingPassword asks the user to retype the password they just wrote down.
// Runs of whitespace are compared as a single space.
func TypeMatchingPassword(password string) bool {
	fmt.Fprintln(os.Stderr, "Write the password down, then retype it to continue")
	prompt := promptui.Prompt{
		Label:  "Retype password",
		Stdout: &bellSkipper{out: os.Stderr},
	}

	result, err := prompt.Run()
	if err != nil {
		return false
	}

	return matches(password, result)
}

func matches(want string, got string) bool {
	return strings.Join(strings.Fields(want), " ") == strings.Join(strings.Fields(got), " ")
}

// bellSkipper drops the terminal bell readline emits on every keystroke
type bellSkipper struct {
	out io.Writer
}

func (bs *bellSkipper) Write(b []byte) (int, error) {
	const charBell = 7
	if len(b) == 1 && b[0] == charBell {
		return 0, nil
	}
	return bs.out.Write(b)
}

func (bs *bellSkipper) Close() error {
	return nil
}
