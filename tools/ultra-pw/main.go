package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/soapiestwaffles/pwgen/internal/pkg/generators"
	"github.com/soapiestwaffles/pwgen/internal/pkg/pwerr"
	"github.com/soapiestwaffles/pwgen/internal/pkg/ui/report"
	"github.com/soapiestwaffles/pwgen/internal/pkg/ui/tui"
)

type options struct {
	NumWords     int    `arg:"" optional:"" default:"4" name:"num-words" help:"number of symbol groups to generate"`
	Charset      string `help:"charset to use: ${enum}" short:"c" enum:"${charsets}" default:"default" env:"ULTRA_PW_CHARSET"`
	Alphabet     string `help:"custom symbols to use instead of a named charset" short:"a" optional:""`
	GroupSize    int    `help:"symbols per group" short:"g" default:"${group_size}"`
	Separator    string `help:"string placed between groups" short:"s" default:" "`
	ListCharsets bool   `help:"list available charsets and exit" optional:""`
	Pick         bool   `help:"pick the charset interactively" short:"p" optional:""`
	Brief        bool   `help:"do not output password metrics" short:"b" optional:""`
	Confirm      bool   `help:"retype the password after it is displayed" optional:""`
	Version      bool   `help:"display version information" optional:""`
	Debug        bool   `help:"enable debugging output" optional:""`
	Warn         bool   `help:"enable warning output" optional:""`
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	cli options

	osExit = os.Exit
)

func main() {
	kongCtx := kong.Parse(&cli, parserOptions()...)

	if cli.Version {
		fmt.Println("version....:", version)
		fmt.Println("commit.....:", commit)
		fmt.Println("date.......:", date)
		os.Exit(0)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false})
	switch {
	case cli.Debug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Info().Msg("debug logging output enabled")
	case cli.Warn:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}

	password, err := run(cli, os.Stdout)
	if err != nil {
		kongCtx.Errorf("%s", err)
		os.Exit(pwerr.ExitCode(err))
	}

	if cli.Confirm && password != "" && !tui.TypeMatchingPassword(password) {
		fmt.Fprintln(os.Stderr, "Password did not match. Exiting!")
		os.Exit(1)
	}
}

func parserOptions() []kong.Option {
	return []kong.Option{
		kong.Name("ultra-pw"),
		kong.Description("ultra-pw: a password generator inspired by the NES Snake's Revenge password screen, short enough for a post-it note."),
		kong.Vars{
			"charsets":   strings.Join(generators.CharsetNames(), ","),
			"group_size": strconv.Itoa(generators.CharsPerWord),
		},
		kong.Exit(parseExit),
	}
}

// parseExit reports command line errors with the invalid argument status
func parseExit(code int) {
	if code != 0 {
		code = pwerr.ExitCode(pwerr.ErrInvalidArgument)
	}
	osExit(code)
}

// run generates one post-it password and writes it (or its report) to stdout.
// It returns an empty password when only the charset list was requested.
func run(opts options, stdout io.Writer) (string, error) {
	if e := log.Debug(); e.Enabled() {
		e.Msg(spew.Sdump(opts))
	}

	if opts.ListCharsets {
		report.Charsets(stdout, generators.Charsets)
		return "", nil
	}

	if opts.NumWords < 1 {
		return "", pwerr.InvalidArgumentf("invalid strict positive int value: '%d'", opts.NumWords)
	}
	if opts.GroupSize < 1 {
		return "", pwerr.InvalidArgumentf("group size must be a positive integer, got %d", opts.GroupSize)
	}
	if opts.NumWords > math.MaxInt/opts.GroupSize {
		return "", pwerr.InvalidArgumentf("too many groups: %d groups of %d symbols", opts.NumWords, opts.GroupSize)
	}

	charset, err := resolveCharset(opts)
	if err != nil {
		return "", err
	}
	log.Debug().Str("charset", charset.Name).Int("size", charset.Size()).Msg("charset selected")

	length := opts.NumWords * opts.GroupSize
	password, err := generators.GeneratePostIt(charset.Symbols, length,
		generators.WithGroupSize(opts.GroupSize),
		generators.WithSeparator(opts.Separator))
	if err != nil {
		return "", err
	}

	result := report.PostIt{
		Charset:   charset,
		Length:    length,
		GroupSize: opts.GroupSize,
		Password:  password,
	}
	if bits := result.Entropy(); bits < generators.WeakEntropyBits {
		log.Warn().Float64("bits", bits).Float64("recommended", generators.WeakEntropyBits).Msg("password entropy is low, use more groups or a larger charset")
	}

	if opts.Brief {
		_, err = fmt.Fprintln(stdout, password)
	} else {
		err = result.Render(stdout)
	}
	if err != nil {
		return "", err
	}

	return password, nil
}

func resolveCharset(opts options) (generators.Charset, error) {
	switch {
	case opts.Alphabet != "":
		return generators.Charset{Name: "custom", Symbols: opts.Alphabet}, nil
	case opts.Pick:
		fmt.Fprintln(os.Stderr, "")
		return tui.SelectCharsetPrompt(generators.Charsets)
	default:
		return generators.LookupCharset(opts.Charset)
	}
}
