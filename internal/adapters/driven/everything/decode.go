package everything

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Byte-order marks the engine may emit depending on its output settings.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

const replacementChar = "�"

// decodeOutput converts raw engine output to a string. UTF-16 output is
// detected by its byte-order mark and transcoded; anything else is
// treated as UTF-8 with its BOM stripped. Undecodable sequences are
// replaced with U+FFFD rather than failing, so a result row whose name
// holds bytes outside the expected encoding still reaches the caller.
// The second return reports whether any replacement happened.
func decodeOutput(raw []byte) (string, bool) {
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE):
		return transcodeUTF16(raw, unicode.LittleEndian)
	case bytes.HasPrefix(raw, bomUTF16BE):
		return transcodeUTF16(raw, unicode.BigEndian)
	}

	raw = bytes.TrimPrefix(raw, bomUTF8)
	if utf8.Valid(raw) {
		return string(raw), false
	}
	return string(bytes.ToValidUTF8(raw, []byte(replacementChar))), true
}

// transcodeUTF16 decodes BOM-prefixed UTF-16 text. The decoder substitutes
// malformed units with U+FFFD on its own; an error leaves whatever was
// decoded usable.
func transcodeUTF16(raw []byte, endianness unicode.Endianness) (string, bool) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	decoded, err := decoder.Bytes(raw)
	replaced := err != nil || bytes.Contains(decoded, []byte(replacementChar))
	return string(decoded), replaced
}
