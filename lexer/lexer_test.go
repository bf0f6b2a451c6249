package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, toks []Token) []TokenType {
	t.Helper()
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestTokenizeKeywordsAndIdents(t *testing.T) {
	toks, err := Tokenize("fn main() { let mut x = 1; }")
	require.NoError(t, err)
	require.Equal(t, []TokenType{
		FN, IDENT, LPAREN, RPAREN, LBRACE,
		LET, MUT, IDENT, ASSIGN, INT, SEMICOLON,
		RBRACE, EOF,
	}, tokenTypes(t, toks))
}

func TestTokenizeIntAndFloat(t *testing.T) {
	toks, err := Tokenize("1 3.5 0x1F")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	require.Equal(t, INT, toks[0].Type)
	require.EqualValues(t, 1, toks[0].IntVal)
	require.Equal(t, FLOAT, toks[1].Type)
	require.EqualValues(t, 3.5, toks[1].FloatVal)
	require.Equal(t, INT, toks[2].Type)
	require.EqualValues(t, 31, toks[2].IntVal)
}

func TestTokenizeRangeDoesNotSwallowDot(t *testing.T) {
	toks, err := Tokenize("0..10")
	require.NoError(t, err)
	require.Equal(t, []TokenType{INT, DOTDOT, INT, EOF}, tokenTypes(t, toks))
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb\tc\\d\"e"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	require.Equal(t, STRING, toks[0].Type)
	require.Equal(t, "a\nb\tc\\d\"e", toks[0].Literal)
}

func TestTokenizeUnknownEscapeIsDropped(t *testing.T) {
	toks, err := Tokenize(`"a\qb"`)
	require.NoError(t, err)
	require.Equal(t, "ab", toks[0].Literal)
}

func TestTokenizeChar(t *testing.T) {
	toks, err := Tokenize(`'x' '\n'`)
	require.NoError(t, err)
	require.Equal(t, CHAR, toks[0].Type)
	require.Equal(t, 'x', toks[0].CharVal)
	require.Equal(t, '\n', toks[1].CharVal)
}

func TestTokenizeOperatorsMaximalMunch(t *testing.T) {
	toks, err := Tokenize("<= >= == != && || << >> :: -> =>")
	require.NoError(t, err)
	require.Equal(t, []TokenType{
		LE, GE, EQEQ, NE, ANDAND, OROR, SHL, SHR, COLONCOLON, ARROW, FATARROW, EOF,
	}, tokenTypes(t, toks))
}

func TestTokenizeSingleCharOperatorsNotGreedy(t *testing.T) {
	toks, err := Tokenize("< > = : - & |")
	require.NoError(t, err)
	require.Equal(t, []TokenType{
		LT, GT, ASSIGN, COLON, MINUS, AMP, PIPE, EOF,
	}, tokenTypes(t, toks))
}

func TestTokenizeComment(t *testing.T) {
	toks, err := Tokenize("let x = 1; // a trailing comment\nlet y = 2;")
	require.NoError(t, err)
	require.Equal(t, []TokenType{
		LET, IDENT, ASSIGN, INT, SEMICOLON,
		LET, IDENT, ASSIGN, INT, SEMICOLON, EOF,
	}, tokenTypes(t, toks))
}

func TestTokenizeBoolAndUnderscore(t *testing.T) {
	toks, err := Tokenize("true false _")
	require.NoError(t, err)
	require.Equal(t, BOOL, toks[0].Type)
	require.True(t, toks[0].BoolVal)
	require.Equal(t, BOOL, toks[1].Type)
	require.False(t, toks[1].BoolVal)
	require.Equal(t, UNDERSCORE, toks[2].Type)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, ErrUnterminatedString, lexErr.Kind)
}

func TestTokenizeUnexpectedChar(t *testing.T) {
	_, err := Tokenize("@")
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, ErrUnexpectedChar, lexErr.Kind)
	require.Equal(t, '@', lexErr.Ch)
}

func TestTokenizeInvalidHexNumber(t *testing.T) {
	_, err := Tokenize("0x")
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, ErrInvalidNumber, lexErr.Kind)
}

func TestTokenizePathSeparator(t *testing.T) {
	toks, err := Tokenize("crate::super::foo")
	require.NoError(t, err)
	require.Equal(t, []TokenType{
		CRATE, COLONCOLON, SUPER, COLONCOLON, IDENT, EOF,
	}, tokenTypes(t, toks))
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	toks, err := Tokenize("let x = 1;\nlet y = 2;")
	require.NoError(t, err)
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 1, toks[0].Column)
	require.Equal(t, 1, toks[1].Line)
	require.Equal(t, 5, toks[1].Column)
	let2 := toks[5]
	require.Equal(t, LET, let2.Type)
	require.Equal(t, 2, let2.Line)
	require.Equal(t, 1, let2.Column)
}

func TestTokenizeUnexpectedCharReportsLineAndColumn(t *testing.T) {
	_, err := Tokenize("let x = 1;\n@")
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 2, lexErr.Line)
	require.Equal(t, 1, lexErr.Column)
}
