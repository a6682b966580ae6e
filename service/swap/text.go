package swap

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// checkText reports whether every string in the json document can be echoed
// back unchanged: the bytes must be valid utf-8 and every \u escape of a
// utf-16 surrogate must be part of a high/low pair. Call it on well formed json only.
func checkText(raw string) bool {
	if !utf8.ValidString(raw) {
		return false
	}

	inString := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !inString {
			inString = c == '"'
			continue
		}

		switch c {
		case '"':
			inString = false
		case '\\':
			if i+1 >= len(raw) || raw[i+1] != 'u' {
				i++
				continue
			}

			switch r := hex4(raw, i+2); {
			case r >= 0xd800 && r < 0xdc00:
				if !strings.HasPrefix(raw[i+6:], `\u`) {
					return false
				}

				if lo := hex4(raw, i+8); lo < 0xdc00 || lo >= 0xe000 {
					return false
				}

				i += 11
			case r >= 0xdc00 && r < 0xe000:
				return false
			default:
				i += 5
			}
		}
	}

	return true
}

// hex4 value of the four hex digits at raw[i:], -1 if there are none
func hex4(raw string, i int) int {
	if i+4 > len(raw) {
		return -1
	}

	v, err := strconv.ParseUint(raw[i:i+4], 16, 16)
	if err != nil {
		return -1
	}

	return int(v)
}
