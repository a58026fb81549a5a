package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/soapiestwaffles/pwgen/internal/pkg/pwerr"
)

func init() {
	color.NoColor = true
}

func parse(t *testing.T, args ...string) options {
	t.Helper()

	var opts options
	parser, err := kong.New(&opts, append(parserOptions(), kong.Exit(func(int) { t.Fatalf("parser exited") }))...)
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return opts
}

func writeWordList(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing word list: %v", err)
	}
	return path
}

func TestCLIDefaults(t *testing.T) {
	t.Setenv("XKCD_PW_WORDLIST", "")
	opts := parse(t)

	if opts.NumWords != 4 {
		t.Errorf("NumWords = %d, want 4", opts.NumWords)
	}
	if opts.Separator != " " {
		t.Errorf("Separator = %q, want single space", opts.Separator)
	}
	if opts.Case != "keep" {
		t.Errorf("Case = %q, want keep", opts.Case)
	}
	if opts.WordList != "" || opts.Unique || opts.Brief || opts.Confirm {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestCLIFlags(t *testing.T) {
	opts := parse(t, "6", "--separator=-", "--case", "title", "-u", "-b", "--wordlist", "words.txt")

	if opts.NumWords != 6 || opts.Separator != "-" || opts.Case != "title" || !opts.Unique || !opts.Brief || opts.WordList != "words.txt" {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestCLIEnv(t *testing.T) {
	t.Setenv("XKCD_PW_WORDLIST", "/usr/share/dict/words")
	opts := parse(t)

	if opts.WordList != "/usr/share/dict/words" {
		t.Errorf("WordList = %q, want value from XKCD_PW_WORDLIST", opts.WordList)
	}
}

func TestRun(t *testing.T) {
	path := writeWordList(t, "correct\nhorse\nbattery\nstaple\n")
	valid := map[string]bool{"correct": true, "horse": true, "battery": true, "staple": true}

	var stdout bytes.Buffer
	password, err := run(options{NumWords: 4, WordList: path, Separator: "-", Case: "keep", Brief: true}, &stdout)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if stdout.String() != password+"\n" {
		t.Errorf("run() printed %q, want %q", stdout.String(), password+"\n")
	}
	words := strings.Split(password, "-")
	if len(words) != 4 {
		t.Fatalf("run() = %q, want 4 words", password)
	}
	for _, w := range words {
		if !valid[w] {
			t.Errorf("run() word %q is not in the word list", w)
		}
	}
}

func TestRun_Report(t *testing.T) {
	var stdout bytes.Buffer
	password, err := run(options{NumWords: 5, Separator: " ", Case: "upper"}, &stdout)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		"Dictionary  : embedded:bip39-english\n",
		"Pw Len      :          5 (word)\n",
		"Pw Entropy  :      55.00 (bit)\n",
		"Password    : " + password + "\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("run() report missing %q:\n%s", want, out)
		}
	}
	if password != strings.ToUpper(password) {
		t.Errorf("run() = %q, want upper case", password)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		opts     options
		wantErr  error
		wantExit int
	}{
		{
			name:     "zero words",
			opts:     options{NumWords: 0, Separator: " ", Case: "keep"},
			wantErr:  pwerr.ErrInvalidArgument,
			wantExit: 2,
		},
		{
			name:     "negative words",
			opts:     options{NumWords: -1, Separator: " ", Case: "keep"},
			wantErr:  pwerr.ErrInvalidArgument,
			wantExit: 2,
		},
		{
			name:     "unknown case",
			opts:     options{NumWords: 4, Separator: " ", Case: "sarcastic"},
			wantErr:  pwerr.ErrInvalidArgument,
			wantExit: 2,
		},
		{
			name:     "missing word list",
			opts:     options{NumWords: 4, Separator: " ", Case: "keep", Brief: true, WordList: filepath.Join(os.TempDir(), uuid.NewString())},
			wantErr:  pwerr.ErrConfiguration,
			wantExit: 1,
		},
		{
			name:     "duped word list",
			opts:     options{NumWords: 4, Separator: " ", Case: "keep", Brief: true, WordList: writeWordList(t, "horse\nhorse\n")},
			wantErr:  pwerr.ErrConfiguration,
			wantExit: 1,
		},
		{
			name:     "case folds word list into duplicates",
			opts:     options{NumWords: 2, Separator: " ", Case: "lower", Brief: true, Unique: true, WordList: writeWordList(t, "Polish\npolish\n")},
			wantErr:  pwerr.ErrConfiguration,
			wantExit: 1,
		},
		{
			name:     "unique exceeds word list",
			opts:     options{NumWords: 3, Separator: " ", Case: "keep", Brief: true, Unique: true, WordList: writeWordList(t, "correct\nhorse\n")},
			wantErr:  pwerr.ErrInvalidArgument,
			wantExit: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			_, err := run(tt.opts, &stdout)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
			if code := pwerr.ExitCode(err); code != tt.wantExit {
				t.Errorf("exit code = %d, want %d", code, tt.wantExit)
			}
			if stdout.Len() != 0 {
				t.Errorf("run() printed %q on failure", stdout.String())
			}
		})
	}
}

func TestParseExit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "help", args: []string{"--help"}, want: 0},
		{name: "non-numeric count", args: []string{"abc"}, want: 2},
		{name: "overflowing count", args: []string{"99999999999999999999"}, want: 2},
		{name: "unknown case", args: []string{"--case", "camel"}, want: 2},
		{name: "unknown flag", args: []string{"--colour"}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := -1
			osExit = func(code int) { got = code }
			t.Cleanup(func() { osExit = os.Exit })

			var opts options
			parser, err := kong.New(&opts, append(parserOptions(), kong.Writers(io.Discard, io.Discard))...)
			if err != nil {
				t.Fatalf("kong.New() error = %v", err)
			}
			_, err = parser.Parse(tt.args)
			parser.FatalIfErrorf(err)

			if got != tt.want {
				t.Errorf("exit code = %d, want %d", got, tt.want)
			}
		})
	}
}
