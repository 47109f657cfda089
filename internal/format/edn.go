package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes an EDN rendering of v, covering the subset our payloads
// use: maps, vectors, strings, numbers, booleans, nil. Structs are routed
// through JSON first so json tags decide field names; camelCase keys become
// kebab-case keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var buf bytes.Buffer
	writeEDNValue(&buf, x, 0, pretty)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

const ednIndent = 2

func writeEDNValue(buf *bytes.Buffer, v any, level int, pretty bool) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		// Decoded JSON numbers are float64; print integral ones as ints.
		if float64(int64(t)) == t {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		writeEDNSeq(buf, t, level, pretty)
	case map[string]any:
		writeEDNMap(buf, t, level, pretty)
	default:
		// Unreachable after the JSON round-trip, but stay total.
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

func writeEDNSeq(buf *bytes.Buffer, xs []any, level int, pretty bool) {
	buf.WriteByte('[')
	for i, it := range xs {
		if pretty {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(" ", (level+1)*ednIndent))
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		writeEDNValue(buf, it, level+1, pretty)
	}
	if pretty && len(xs) > 0 {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*ednIndent))
	}
	buf.WriteByte(']')
}

func writeEDNMap(buf *bytes.Buffer, m map[string]any, level int, pretty bool) {
	buf.WriteByte('{')
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if pretty {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(" ", (level+1)*ednIndent))
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteByte(':')
		buf.WriteString(ednKeyword(k))
		buf.WriteByte(' ')
		writeEDNValue(buf, m[k], level+1, pretty)
	}
	if pretty && len(keys) > 0 {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*ednIndent))
	}
	buf.WriteByte('}')
}

// ednKeyword turns a JSON field name into an EDN keyword body:
// notebookId -> notebook-id.
func ednKeyword(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, " ", "-"))
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
