package envfile

import "fmt"

// MalformedLineError reports a line that did not split into exactly one key
// and one value around the delimiter: the delimiter is missing, appears more
// than once, or one side is empty after trimming.
type MalformedLineError struct {
	Line int    // 1-based line number within the parsed contents
	Text string // the offending line, verbatim
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("envfile: malformed key-value pair on line %d: %q", e.Line, e.Text)
}

// EmptyPairError reports a pair with an empty key or an empty string value,
// which the store never accepts.
type EmptyPairError struct {
	Key   string
	Value string
}

func (e *EmptyPairError) Error() string {
	return fmt.Sprintf("envfile: empty key-value pair (key=%q, value=%q)", e.Key, e.Value)
}
