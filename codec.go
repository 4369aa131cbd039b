package envfile

import "strings"

// DefaultDelimiter separates keys from values in the file format.
const DefaultDelimiter = '='

// Parse decodes env-file contents into a store.
//
// One entry per line; a line whose first character is '#' is a full-line
// comment and is skipped. Every other line must split on the delimiter into
// exactly two non-empty segments after whitespace trimming, otherwise
// parsing fails with MalformedLineError. That includes blank interior
// lines: they are not silently skipped. The single empty segment produced
// by the trailing newline of a well-formed file is not a line and is
// dropped before parsing.
//
// The last occurrence of a duplicate key wins, keeping the key's first
// position. No partial store is returned on error.
func Parse(contents string, delimiter rune) (*Store, error) {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	lines := strings.Split(contents, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	store := NewStore()
	for i, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}

		segments := strings.Split(line, string(delimiter))
		if len(segments) != 2 {
			return nil, &MalformedLineError{Line: i + 1, Text: line}
		}
		key := strings.TrimSpace(segments[0])
		raw := strings.TrimSpace(segments[1])
		if key == "" || raw == "" {
			return nil, &MalformedLineError{Line: i + 1, Text: line}
		}

		value := Infer(raw)
		if value.isEmpty() {
			return nil, &EmptyPairError{Key: key, Value: raw}
		}
		store.Set(key, &value, true)
	}
	return store, nil
}

// Serialize renders the store in insertion order, one key<delimiter>value
// line per entry with a trailing newline. Only store entries are written;
// values resolvable only through the process fallback are never persisted.
func Serialize(store *Store, delimiter rune) string {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	var b strings.Builder
	for _, key := range store.keys {
		b.WriteString(key)
		b.WriteRune(delimiter)
		b.WriteString(store.values[key].String())
		b.WriteByte('\n')
	}
	return b.String()
}
