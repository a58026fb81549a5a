package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/soapiestwaffles/pwgen/internal/pkg/assets"
	"github.com/soapiestwaffles/pwgen/internal/pkg/generators"
	"github.com/soapiestwaffles/pwgen/internal/pkg/pwerr"
	"github.com/soapiestwaffles/pwgen/internal/pkg/ui/report"
	"github.com/soapiestwaffles/pwgen/internal/pkg/ui/tui"
	"github.com/soapiestwaffles/pwgen/internal/pkg/wordlist"
)

const releaseURL = "https://github.com/soapiestwaffles/pwgen/releases"

type options struct {
	NumWords  int    `arg:"" optional:"" default:"4" name:"num-words" help:"number of words to generate"`
	WordList  string `help:"Diceware or UNIX word list to use (default: embedded BIP39 English list)" name:"wordlist" short:"f" optional:"" env:"XKCD_PW_WORDLIST"`
	Separator string `help:"string placed between words" short:"s" default:" "`
	Case      string `help:"letter case applied to each word (${enum})" enum:"${cases}" default:"keep"`
	Unique    bool   `help:"never repeat a word within the passphrase" short:"u" optional:""`
	Brief     bool   `help:"do not output password metrics" short:"b" optional:""`
	Confirm   bool   `help:"retype the passphrase after it is displayed" optional:""`
	Version   bool   `help:"display version information" optional:""`
	Debug     bool   `help:"enable debugging output" optional:""`
	Warn      bool   `help:"enable warning output" optional:""`
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	// builtBy = "unknown"

	cli options

	osExit = os.Exit
)

func main() {
	kongCtx := kong.Parse(&cli, parserOptions()...)

	//  Show version information and exit
	if cli.Version {
		fmt.Println("Find new releases at", releaseURL)
		fmt.Println("")
		fmt.Println("version....:", version)
		fmt.Println("commit.....:", commit)
		fmt.Println("date.......:", date)
		os.Exit(0)
	}

	setupLogging(cli.Debug, cli.Warn)

	password, err := run(cli, os.Stdout)
	if err != nil {
		kongCtx.Errorf("%s", err)
		os.Exit(pwerr.ExitCode(err))
	}

	if cli.Confirm && !tui.TypeMatchingPassword(password) {
		fmt.Fprintln(os.Stderr, "Passphrase did not match. Exiting!")
		os.Exit(1)
	}
}

func parserOptions() []kong.Option {
	cases := make([]string, 0, len(generators.Cases))
	for _, c := range generators.Cases {
		cases = append(cases, string(c))
	}

	return []kong.Option{
		kong.Name("xkcd-pw"),
		kong.Description("A password generator inspired by XKCD #936 and the EFF Diceware word lists."),
		kong.Vars{"cases": strings.Join(cases, ",")},
		kong.Exit(parseExit),
	}
}

// parseExit reports command line errors (bad count, unknown case...) with the invalid argument status
func parseExit(code int) {
	if code != 0 {
		code = pwerr.ExitCode(pwerr.ErrInvalidArgument)
	}
	osExit(code)
}

func setupLogging(debug bool, warn bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false})
	switch {
	case debug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Info().Msg("debug logging output enabled")
	case warn:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
}

// run generates one passphrase and writes it (or its report) to stdout
func run(opts options, stdout io.Writer) (string, error) {
	if e := log.Debug(); e.Enabled() {
		e.Msg(spew.Sdump(opts))
	}

	if opts.NumWords < 1 {
		return "", pwerr.InvalidArgumentf("invalid strict positive int value: '%d'", opts.NumWords)
	}

	words, dictionary, err := loadWords(opts)
	if err != nil {
		return "", err
	}

	// entropy is measured on the cased list, where Polish and polish may be the same word
	words, err = generators.CaseWords(words, generators.Case(opts.Case))
	if err != nil {
		return "", err
	}

	password, err := generators.GeneratePhrase(words, opts.NumWords,
		generators.WithSeparator(opts.Separator),
		generators.WithUnique(opts.Unique))
	if err != nil {
		return "", err
	}

	result := report.Passphrase{
		Dictionary: dictionary,
		DictLen:    len(words),
		NumWords:   opts.NumWords,
		Unique:     opts.Unique,
		Password:   password,
	}
	if bits := result.Entropy(); bits < generators.WeakEntropyBits {
		log.Warn().Float64("bits", bits).Float64("recommended", generators.WeakEntropyBits).Msg("passphrase entropy is low, use more words or a larger word list")
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

// loadWords returns the word list and the name it is reported under
func loadWords(opts options) ([]string, string, error) {
	if opts.WordList == "" {
		log.Debug().Msg("using embedded word list")
		words, err := wordlist.Default()
		return words, assets.DefaultWordListName, err
	}

	loadingSpinner := spinner.New(spinner.CharSets[13], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	loadingSpinner.Suffix = " loading word list..."
	if !opts.Brief && !opts.Debug {
		loadingSpinner.Start()
	}
	log.Debug().Str("path", opts.WordList).Msg("loading word list")
	words, err := wordlist.Load(opts.WordList)
	loadingSpinner.Stop()

	return words, opts.WordList, err
}
