// Package parser turns JSON text into a value tree. It is a
// recursive-descent parser with single-byte lookahead; every failure is
// reported as a positioned syntax error, never a panic.
package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mcncl/jsonfmt/internal/errors"
	"github.com/mcncl/jsonfmt/internal/value"
)

type parser struct {
	s *scanner
}

// syntaxErr builds a positioned syntax error for the given offset.
func (p *parser) syntaxErr(sentinel error, detail string, off int) *errors.SyntaxError {
	line, col := p.s.position(off)
	return errors.NewSyntaxError(sentinel, detail, off, line, col)
}

// parseValue dispatches on the next significant character.
func (p *parser) parseValue() (value.Value, error) {
	p.s.skipSpace()
	c, ok := p.s.peek()
	if !ok {
		return nil, p.syntaxErr(errors.ErrUnexpectedEndOfInput, "expected a value", p.s.off)
	}
	switch {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return value.String(s), nil
	case c == 't':
		return p.parseLiteral("true", value.Bool(true))
	case c == 'f':
		return p.parseLiteral("false", value.Bool(false))
	case c == 'n':
		return p.parseLiteral("null", value.Null{})
	case c == '-' || c >= '0' && c <= '9':
		return p.parseNumber()
	default:
		return nil, p.syntaxErr(errors.ErrUnexpectedToken, fmt.Sprintf("got %q, expected a value", c), p.s.off)
	}
}

// parseObject consumes '{' members '}'. The loop ends only on an
// explicit '}'; a trailing comma before it is tolerated. The first
// occurrence of a duplicate key wins.
func (p *parser) parseObject() (value.Value, error) {
	open := p.s.off
	p.s.next() // '{'
	obj := make(value.Object)
	for {
		p.s.skipSpace()
		c, ok := p.s.peek()
		if !ok {
			return nil, p.syntaxErr(errors.ErrUnterminatedObject, "object opened here", open)
		}
		if c == '}' {
			p.s.next()
			return obj, nil
		}
		if c != '"' {
			return nil, p.syntaxErr(errors.ErrUnexpectedToken, fmt.Sprintf("got %q, expected an object key or '}'", c), p.s.off)
		}
		key, v, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		obj.Insert(key, v)

		p.s.skipSpace()
		c, ok = p.s.peek()
		if !ok {
			return nil, p.syntaxErr(errors.ErrUnterminatedObject, "object opened here", open)
		}
		switch c {
		case ',':
			p.s.next()
		case '}':
			p.s.next()
			return obj, nil
		default:
			return nil, p.syntaxErr(errors.ErrUnterminatedObject, fmt.Sprintf("got %q, expected ',' or '}'", c), p.s.off)
		}
	}
}

// parseMember consumes one `"key": value` pair. The caller has already
// verified that the cursor sits on the opening quote.
func (p *parser) parseMember() (string, value.Value, error) {
	key, err := p.parseString()
	if err != nil {
		return "", nil, err
	}
	p.s.skipSpace()
	c, ok := p.s.peek()
	if !ok {
		return "", nil, p.syntaxErr(errors.ErrUnexpectedEndOfInput, "expected ':' after object key", p.s.off)
	}
	if c != ':' {
		return "", nil, p.syntaxErr(errors.ErrUnexpectedToken, fmt.Sprintf("got %q, expected ':' after object key", c), p.s.off)
	}
	p.s.next()
	v, err := p.parseValue()
	if err != nil {
		return "", nil, err
	}
	return key, v, nil
}

// parseArray consumes '[' values ']' with the same loop shape as
// parseObject.
func (p *parser) parseArray() (value.Value, error) {
	open := p.s.off
	p.s.next() // '['
	arr := make(value.Array, 0)
	for {
		p.s.skipSpace()
		c, ok := p.s.peek()
		if !ok {
			return nil, p.syntaxErr(errors.ErrUnterminatedArray, "array opened here", open)
		}
		if c == ']' {
			p.s.next()
			return arr, nil
		}
		el, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, el)

		p.s.skipSpace()
		c, ok = p.s.peek()
		if !ok {
			return nil, p.syntaxErr(errors.ErrUnterminatedArray, "array opened here", open)
		}
		switch c {
		case ',':
			p.s.next()
		case ']':
			p.s.next()
			return arr, nil
		default:
			return nil, p.syntaxErr(errors.ErrUnterminatedArray, fmt.Sprintf("got %q, expected ',' or ']'", c), p.s.off)
		}
	}
}

// parseString consumes a quoted string and decodes single-character
// escapes. Whitespace is read verbatim inside the quotes. An
// unrecognized escape passes the escaped character through unchanged,
// which also covers \", \\ and \/.
func (p *parser) parseString() (string, error) {
	open := p.s.off
	p.s.next() // opening quote
	var sb strings.Builder
	for {
		c, ok := p.s.next()
		if !ok {
			return "", p.syntaxErr(errors.ErrUnterminatedString, "string opened here", open)
		}
		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			e, ok := p.s.next()
			if !ok {
				return "", p.syntaxErr(errors.ErrUnterminatedString, "string opened here", open)
			}
			sb.WriteByte(unescape(e))
		default:
			sb.WriteByte(c)
		}
	}
}

func unescape(c byte) byte {
	switch c {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return c
	}
}

// parseLiteral matches one of the fixed spellings true, false or null
// byte by byte.
func (p *parser) parseLiteral(want string, v value.Value) (value.Value, error) {
	start := p.s.off
	for i := 0; i < len(want); i++ {
		c, ok := p.s.peek()
		if !ok {
			return nil, p.syntaxErr(errors.ErrUnexpectedEndOfInput, fmt.Sprintf("in literal %q", want), p.s.off)
		}
		if c != want[i] {
			return nil, p.syntaxErr(errors.ErrInvalidLiteral, fmt.Sprintf("expected %q", want), start)
		}
		p.s.next()
	}
	// A longer word that merely starts with the spelling is not the
	// literal, e.g. "nullx".
	if c, ok := p.s.peek(); ok && isWordChar(c) {
		return nil, p.syntaxErr(errors.ErrInvalidLiteral, fmt.Sprintf("expected %q", want), start)
	}
	return v, nil
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// parseNumber scans the maximal run of number characters and hands it
// to strconv. Range errors count as invalid, matching a strict
// floating-point scan.
func (p *parser) parseNumber() (value.Value, error) {
	start := p.s.off
	for {
		c, ok := p.s.peek()
		if !ok || !isNumberChar(c) {
			break
		}
		p.s.next()
	}
	tok := string(p.s.data[start:p.s.off])
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, p.syntaxErr(errors.ErrInvalidNumber, fmt.Sprintf("%q", tok), start)
	}
	return value.Number(f), nil
}

func isNumberChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E'
}

// ParseBytes parses a single JSON value from data. Anything other than
// whitespace after the value is an error.
func ParseBytes(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParseError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}
	p := &parser{s: newScanner(data)}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.s.skipSpace()
	if c, ok := p.s.peek(); ok {
		return nil, p.syntaxErr(errors.ErrUnexpectedToken, fmt.Sprintf("got %q after the top-level value", c), p.s.off)
	}
	return v, nil
}

// Parse reads all of reader and parses it as one JSON value. Gzip and
// zstd compressed input is detected by its magic bytes and decompressed
// first.
func Parse(reader io.Reader) (value.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	data, err = maybeDecompress(data)
	if err != nil {
		return nil, errors.NewInputError("failed to decompress input", err)
	}
	return ParseBytes(data)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (value.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		// Provide a specific error for truly empty or whitespace-only strings
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return ParseBytes([]byte(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (value.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		// Check if the file doesn't exist
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
