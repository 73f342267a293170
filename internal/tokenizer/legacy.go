package tokenizer

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeSource returns data as a string, transcoding it from Windows-1252
// first if it is not already valid UTF-8. Song sheets collected from
// older desktop chorddown tools are frequently saved in the host
// platform's legacy codepage rather than UTF-8.
func DecodeSource(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
