package render

import (
	"bytes"
	"fmt"
	"unicode/utf16"

	"solanaswap/core"
	"solanaswap/pkg/number"
)

const hexDigits = "0123456789abcdef"

// Field object member
type Field struct {
	Key   string
	Value interface{}
}

// Object json object with ordered members
type Object []Field

// encode writes v using ", " and ": " separators and ascii only strings
func encode(buf *bytes.Buffer, v interface{}) error {
	switch x := v.(type) {
	case Object:
		buf.WriteByte('{')
		for i, f := range x {
			if i > 0 {
				buf.WriteString(", ")
			}

			quote(buf, f.Key)
			buf.WriteString(": ")
			if err := encode(buf, f.Value); err != nil {
				return fmt.Errorf("%s: %w", f.Key, err)
			}
		}
		buf.WriteByte('}')
	case string:
		quote(buf, x)
	case float64:
		buf.WriteString(number.Repr(x))
	case core.Amount:
		if x.Quoted {
			quote(buf, x.Value)
			return nil
		}

		lit, err := number.Literal(x.String())
		if err != nil {
			return err
		}

		buf.WriteString(lit)
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}

	return nil
}

func quote(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				buf.WriteRune(r)
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				escape(buf, r1)
				escape(buf, r2)
			default:
				escape(buf, r)
			}
		}
	}
	buf.WriteByte('"')
}

func escape(buf *bytes.Buffer, r rune) {
	buf.WriteString(`\u`)
	buf.WriteByte(hexDigits[r>>12&0xf])
	buf.WriteByte(hexDigits[r>>8&0xf])
	buf.WriteByte(hexDigits[r>>4&0xf])
	buf.WriteByte(hexDigits[r&0xf])
}
