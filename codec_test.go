package envfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EndToEnd(t *testing.T) {
	contents := "API_KEY=some-value\nBUILD_NUMBER=5\n# comment\nIDENTIFIER=com.app.example\n"

	store, err := Parse(contents, 0)
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())
	assert.Equal(t, []string{"API_KEY", "BUILD_NUMBER", "IDENTIFIER"}, store.Keys())

	v, _ := store.Get("API_KEY")
	assert.Equal(t, KindString, v.Kind())
	v, _ = store.Get("BUILD_NUMBER")
	assert.True(t, v.Equal(IntValue(5)))
	v, _ = store.Get("IDENTIFIER")
	assert.True(t, v.Equal(StringValue("com.app.example")))

	// Serializing reproduces the entries in key order, comment dropped.
	assert.Equal(t, "API_KEY=some-value\nBUILD_NUMBER=5\nIDENTIFIER=com.app.example\n", Serialize(store, 0))
}

func TestParse_TrimsWhitespaceAroundSegments(t *testing.T) {
	store, err := Parse("  HOST =  localhost \n", 0)
	require.NoError(t, err)

	v, ok := store.Get("HOST")
	require.True(t, ok)
	assert.True(t, v.Equal(StringValue("localhost")))
}

func TestParse_QuotedString(t *testing.T) {
	store, err := Parse(`GREETING="hello \"world\""`+"\n", 0)
	require.NoError(t, err)

	v, ok := store.Get("GREETING")
	require.True(t, ok)
	assert.True(t, v.Equal(StringValue(`hello "world"`)))
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	store, err := Parse("A=1\nB=2\nA=3\n", 0)
	require.NoError(t, err)

	v, _ := store.Get("A")
	assert.True(t, v.Equal(IntValue(3)))
	// The duplicate keeps its first position.
	assert.Equal(t, []string{"A", "B"}, store.Keys())
}

func TestParse_MalformedLines(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		line     int
		text     string
	}{
		{
			name:     "delimiter appears twice",
			contents: "A=B=C\n",
			line:     1,
			text:     "A=B=C",
		},
		{
			name:     "delimiter missing",
			contents: "onlykey\n",
			line:     1,
			text:     "onlykey",
		},
		{
			name:     "empty key",
			contents: "=value\n",
			line:     1,
			text:     "=value",
		},
		{
			name:     "empty value after trim",
			contents: "key=   \n",
			line:     1,
			text:     "key=   ",
		},
		{
			name:     "blank interior line",
			contents: "A=1\n\nB=2\n",
			line:     2,
			text:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.contents, 0)
			require.Error(t, err)

			var lineErr *MalformedLineError
			require.True(t, errors.As(err, &lineErr))
			assert.Equal(t, tt.line, lineErr.Line)
			assert.Equal(t, tt.text, lineErr.Text)
		})
	}
}

func TestParse_TrailingNewlineIsNotABlankLine(t *testing.T) {
	// Exactly one trailing empty segment comes from the final newline and
	// is dropped; a second one is a real blank line and fails.
	_, err := Parse("A=1\n", 0)
	assert.NoError(t, err)

	_, err = Parse("A=1", 0)
	assert.NoError(t, err)

	_, err = Parse("A=1\n\n", 0)
	var lineErr *MalformedLineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
}

func TestParse_EmptyQuotedValueRejected(t *testing.T) {
	// "" is two characters of text but infers to an empty string payload,
	// which the store never accepts.
	_, err := Parse(`K=""`+"\n", 0)
	var pairErr *EmptyPairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, "K", pairErr.Key)
}

func TestParse_CustomDelimiter(t *testing.T) {
	store, err := Parse("HOST:localhost\nPORT:8080\n", ':')
	require.NoError(t, err)

	v, _ := store.Get("PORT")
	assert.True(t, v.Equal(IntValue(8080)))

	// '=' is an ordinary character under a custom delimiter.
	store, err = Parse("EXPR:a=b\n", ':')
	require.NoError(t, err)
	v, _ = store.Get("EXPR")
	assert.True(t, v.Equal(StringValue("a=b")))

	assert.Equal(t, "EXPR:a=b\n", Serialize(store, ':'))
}

func TestSerialize_Scenario(t *testing.T) {
	store, err := FromPairs([]Pair{
		{Key: "apiKey", Value: "some-secret"},
		{Key: "onboardingEnabled", Value: "true"},
		{Key: "networkRetries", Value: "3"},
		{Key: "networkTimeout", Value: "10.5"},
	})
	require.NoError(t, err)

	expected := "apiKey=some-secret\nonboardingEnabled=true\nnetworkRetries=3\nnetworkTimeout=10.5\n"
	assert.Equal(t, expected, Serialize(store, 0))
}

func TestSerialize_Empty(t *testing.T) {
	assert.Equal(t, "", Serialize(NewStore(), 0))
}

func TestParseSerialize_RoundTrip(t *testing.T) {
	store, err := FromPairs([]Pair{
		{Key: "NAME", Value: "demo"},
		{Key: "DEBUG", Value: "false"},
		{Key: "WORKERS", Value: "8"},
		{Key: "RATIO", Value: "0.75"},
		{Key: "SCALE", Value: "1e3"},
	})
	require.NoError(t, err)

	parsed, err := Parse(Serialize(store, 0), 0)
	require.NoError(t, err)
	assert.True(t, store.Equal(parsed), "round trip must preserve keys, types, values and order")
}
