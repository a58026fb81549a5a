package assets

import "embed"

//go:embed bip39_english.txt
var f embed.FS

// DefaultWordListName identifies the embedded word list in reports
const DefaultWordListName = "embedded:bip39-english"

var (
	// DefaultWordList contains the BIP39 English word list (2048 words, one per line)
	// https://github.com/bitcoin/bips/blob/master/bip-0039/english.txt
	DefaultWordList string
)

func init() {
	rawWordList, _ := f.ReadFile("bip39_english.txt")
	DefaultWordList = string(rawWordList)
}
