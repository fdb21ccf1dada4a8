// assets/embed.go
//
// Embedded default word list, used when no HANGMAN_WORDS_FILE is configured.

package assets

import (
	"embed"
	"io/fs"
)

// WordsFile is the name of the embedded word list.
const WordsFile = "words.txt"

//go:embed words.txt
var FS embed.FS

// OpenWords opens the embedded word list for reading.
func OpenWords() (fs.File, error) {
	return FS.Open(WordsFile)
}
