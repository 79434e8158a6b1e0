package docxrender

import "strings"

// mojibake maps UTF-8 text that was decoded as Latin-1/Windows-1252 back to
// the intended characters. Longer sequences come first.
var mojibake = strings.NewReplacer(
	"â€œ", "“",
	"â€\u009d", "”",
	"â€˜", "‘",
	"â€™", "’",
	"â€“", "–",
	"â€”", "—",
	"â€¢", "•",
	"Ã¡", "á",
	"Ã©", "é",
	"Ã­", "í",
	"Ã³", "ó",
	"Ãº", "ú",
	"Ã±", "ñ",
	"Ã\u0081", "Á",
	"Ã‰", "É",
	"Ã\u008d", "Í",
	"Ã“", "Ó",
	"Ãš", "Ú",
	"Ã‘", "Ñ",
	"Ã¼", "ü",
	"Â¿", "¿",
	"Â¡", "¡",
	"\r\n", "\n",
	"\x00", "",
	"\ufeff", "",
	"\u200b", "",
)

// Sanitize returns a deep copy of ctx with every string value cleaned up:
// mojibake repaired, CRLF turned into LF, NUL, BOM and zero-width spaces
// dropped, surrounding whitespace trimmed. Keys are left untouched.
func Sanitize(ctx Context) Context {
	if ctx == nil {
		return nil
	}
	out := make(Context, len(ctx))
	for k, v := range ctx {
		out[k] = sanitizeValue(v)
	}
	return out
}

func sanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(mojibake.Replace(val))
	case map[string]interface{}:
		return map[string]interface{}(Sanitize(Context(val)))
	case Context:
		return Sanitize(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = sanitizeValue(item)
		}
		return out
	default:
		return v
	}
}
