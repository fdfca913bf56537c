package encoder

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonfmt/internal/errors"
	"github.com/mcncl/jsonfmt/internal/parser"
	"github.com/mcncl/jsonfmt/internal/value"
)

func TestEncode_NestedObject(t *testing.T) {
	v := value.Object{
		"a": value.Number(1),
		"b": value.Array{value.Bool(true), value.Bool(false), value.Null{}},
	}

	result, err := Format(v, DefaultIndent)
	require.NoError(t, err)

	expected := `{
  "a": 1,
  "b": [
    true,
    false,
    null
  ]
}`
	assert.Equal(t, expected, result)
}

func TestEncode_EmptyCollections(t *testing.T) {
	tests := []struct {
		name     string
		val      value.Value
		expected string
	}{
		{"empty object", value.Object{}, "{\n\n}"},
		{"empty array", value.Array{}, "[\n\n]"},
		{
			name:     "nested empties keep the open-close shape",
			val:      value.Object{"o": value.Object{}, "z": value.Array{}},
			expected: "{\n  \"o\": {\n\n  },\n  \"z\": [\n\n  ]\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.val, DefaultIndent)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEncode_SortedKeys(t *testing.T) {
	v := value.Object{
		"zeta":  value.Number(1),
		"alpha": value.Number(2),
		"Mid":   value.Number(3),
	}

	result, err := Format(v, DefaultIndent)
	require.NoError(t, err)

	expected := `{
  "Mid": 3,
  "alpha": 2,
  "zeta": 1
}`
	assert.Equal(t, expected, result)
}

func TestEncode_StringEscapes(t *testing.T) {
	v := value.String("\" \\ / \b \f \n \r \t")

	result, err := Format(v, DefaultIndent)
	require.NoError(t, err)
	assert.Equal(t, `"\" \\ \/ \b \f \n \r \t"`, result)
}

func TestEncode_StringPassThrough(t *testing.T) {
	// Characters outside the escape table are written verbatim.
	v := value.String("héllo wörld")

	result, err := Format(v, DefaultIndent)
	require.NoError(t, err)
	assert.Equal(t, `"héllo wörld"`, result)
}

func TestEncode_Numbers(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected string
	}{
		{"zero", 0, "0"},
		{"integer", 42, "42"},
		{"negative fraction", -0.5, "-0.5"},
		{"fraction", 3.14, "3.14"},
		{"ten billion stays decimal", 1e10, "10000000000"},
		{"exponent twenty stays decimal", 1e20, "100000000000000000000"},
		{"exponent twenty one goes scientific", 1e21, "1e+21"},
		{"avogadro", 6.02e23, "6.02e+23"},
		{"small fraction stays decimal", 0.0001, "0.0001"},
		{"tiny fraction goes scientific", 1e-5, "1e-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(value.Number(tt.val), DefaultIndent)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEncode_ScalarRoots(t *testing.T) {
	tests := []struct {
		name     string
		val      value.Value
		expected string
	}{
		{"true", value.Bool(true), "true"},
		{"false", value.Bool(false), "false"},
		{"null", value.Null{}, "null"},
		{"string", value.String("hi"), `"hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.val, DefaultIndent)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEncode_NoTrailingNewline(t *testing.T) {
	result, err := Format(value.Object{"a": value.Number(1)}, DefaultIndent)
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(result, "\n"), "top-level value should not end with a newline")
}

func TestEncode_CustomIndent(t *testing.T) {
	v := value.Object{"a": value.Array{value.Number(1)}}

	fourSpace, err := Format(v, "    ")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": [\n        1\n    ]\n}", fourSpace)

	tabbed, err := Format(v, "\t")
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": [\n\t\t1\n\t]\n}", tabbed)
}

func TestEncode_NilValue(t *testing.T) {
	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(nil)

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &errors.AppError{Type: errors.ErrorTypeEncode}))
	assert.Contains(t, err.Error(), "cannot encode a nil value")
}

func TestEncode_RoundTrip(t *testing.T) {
	trees := []value.Value{
		value.Object{},
		value.Array{},
		value.Null{},
		value.Bool(true),
		value.Number(-1234.5),
		value.String("with \"escapes\" \\ / \b\f\n\r\t inside"),
		value.Object{
			"a": value.Number(1),
			"b": value.Array{value.Bool(true), value.Bool(false), value.Null{}},
		},
		value.Object{
			"nested": value.Object{
				"deep": value.Array{value.Object{"leaf": value.String("x")}, value.Array{}},
			},
		},
	}

	for _, tree := range trees {
		serialized, err := Format(tree, DefaultIndent)
		require.NoError(t, err)

		reparsed, err := parser.ParseString(serialized)
		require.NoError(t, err, "re-parsing %q", serialized)
		assert.True(t, value.Equal(tree, reparsed), "round-trip changed the tree for %q", serialized)
	}
}

func TestEncode_IdempotentReserialization(t *testing.T) {
	inputs := []string{
		`{"b":2,"a":1}`,
		`[ 1 , 2 ,   3 ]`,
		`{"x":{"y":[true,null]},"z":"s"}`,
		"1e10",
	}

	for _, input := range inputs {
		first, err := parser.ParseString(input)
		require.NoError(t, err)
		once, err := Format(first, DefaultIndent)
		require.NoError(t, err)

		second, err := parser.ParseString(once)
		require.NoError(t, err)
		twice, err := Format(second, DefaultIndent)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "re-serializing %q changed the bytes", input)
	}
}

func TestEncode_OutputAcceptedByReferenceDecoder(t *testing.T) {
	v := value.Object{
		"text":    value.String("quote \" slash / backslash \\"),
		"numbers": value.Array{value.Number(1), value.Number(2.5), value.Number(1e10)},
		"flags":   value.Array{value.Bool(true), value.Bool(false), value.Null{}},
	}

	result, err := Format(v, DefaultIndent)
	require.NoError(t, err)

	var ref interface{}
	require.NoError(t, gojson.Unmarshal([]byte(result), &ref), "reference decoder rejected %q", result)

	m, ok := ref.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "quote \" slash / backslash \\", m["text"])
}

func TestEncode_Color(t *testing.T) {
	keyColor := color.New(color.FgBlue)
	keyColor.EnableColor()
	numColor := color.New(color.FgCyan)
	numColor.EnableColor()

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.SetPalette(&Palette{Key: keyColor, Number: numColor})
	require.NoError(t, enc.Encode(value.Object{"a": value.Number(1)}))

	out := buf.String()
	assert.Contains(t, out, "\x1b[34m\"a\"\x1b[0m", "key should be painted blue")
	assert.Contains(t, out, "\x1b[36m1\x1b[0m", "number should be painted cyan")

	// Brackets have no palette entry and stay plain.
	assert.True(t, strings.HasPrefix(out, "{\n"))
}

func TestEncode_NilPaletteMatchesPlainOutput(t *testing.T) {
	v := value.Object{"a": value.Array{value.String("s"), value.Number(2)}}

	plain, err := Format(v, DefaultIndent)
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.SetPalette(nil)
	require.NoError(t, enc.Encode(v))

	assert.Equal(t, plain, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, stderrors.New("disk full")
}

func TestEncode_WriterFailure(t *testing.T) {
	t.Run("small output fails at flush", func(t *testing.T) {
		err := NewEncoder(failingWriter{}).Encode(value.Object{"a": value.Number(1)})
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, &errors.AppError{Type: errors.ErrorTypeEncode}))
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("large output fails mid walk", func(t *testing.T) {
		// Enough elements to overflow the write buffer before the walk ends.
		big := make(value.Array, 4096)
		for i := range big {
			big[i] = value.Number(1234567890)
		}
		err := NewEncoder(failingWriter{}).Encode(big)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
