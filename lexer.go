package moveargs

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// TokenKind classifies a type tag token.
type TokenKind int

// Token kinds.
const (
	TokenEOF TokenKind = iota
	TokenU8
	TokenU16
	TokenU32
	TokenU64
	TokenU128
	TokenU256
	TokenBool
	TokenAddress
	TokenSigner
	TokenVector
	// TokenStruct is a hex-address-led path such as 0x1::coin::Coin.
	TokenStruct
	// TokenGeneric is a generic placeholder such as T0.
	TokenGeneric
	// TokenIdent is any other identifier; the parser rejects it.
	TokenIdent
	TokenLT
	TokenGT
	TokenComma
)

var tokenKindNames = [...]string{
	TokenEOF:     "EOF",
	TokenU8:      "U8_TY",
	TokenU16:     "U16_TY",
	TokenU32:     "U32_TY",
	TokenU64:     "U64_TY",
	TokenU128:    "U128_TY",
	TokenU256:    "U256_TY",
	TokenBool:    "BOOL_TY",
	TokenAddress: "ADDRESS_TY",
	TokenSigner:  "SIGNER_TY",
	TokenVector:  "VECTOR_TY",
	TokenStruct:  "STRUCT_TY",
	TokenGeneric: "GENERIC_TY",
	TokenIdent:   "IDENT",
	TokenLT:      "LT",
	TokenGT:      "GT",
	TokenComma:   "COMMA",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// Token is a lexical unit of a type tag string.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   int // byte offset of the token start
}

var keywords = map[string]TokenKind{
	"u8":      TokenU8,
	"u16":     TokenU16,
	"u32":     TokenU32,
	"u64":     TokenU64,
	"u128":    TokenU128,
	"u256":    TokenU256,
	"bool":    TokenBool,
	"address": TokenAddress,
	"signer":  TokenSigner,
	"vector":  TokenVector,
}

var typeTagLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Struct", Pattern: `0[xX][0-9a-fA-F]+(?:::[a-zA-Z_][a-zA-Z0-9_]*)*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[<>,]`},
})

var (
	whitespaceSymbol = typeTagLexer.Symbols()["Whitespace"]
	structSymbol     = typeTagLexer.Symbols()["Struct"]
	identSymbol      = typeTagLexer.Symbols()["Ident"]
)

// Tokenize splits a type tag string into tokens, skipping whitespace. The
// returned slice always ends with a TokenEOF. Text that matches no token
// returns a *ParseError wrapping ErrUnrecognizedToken.
func Tokenize(input string) ([]Token, error) {
	lex, err := typeTagLexer.LexString("", input)
	if err != nil {
		return nil, &ParseError{Input: input, Err: ErrUnrecognizedToken}
	}

	tokens := make([]Token, 0, 8)
	end := 0
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, &ParseError{Input: input, Pos: end, Err: ErrUnrecognizedToken}
		}
		if t.EOF() {
			tokens = append(tokens, Token{Kind: TokenEOF, Pos: len(input)})
			return tokens, nil
		}
		end = t.Pos.Offset + len(t.Value)
		if t.Type == whitespaceSymbol {
			continue
		}
		tokens = append(tokens, classify(t))
	}
}

func classify(t lexer.Token) Token {
	tok := Token{Value: t.Value, Pos: t.Pos.Offset}
	switch t.Type {
	case structSymbol:
		tok.Kind = TokenStruct
	case identSymbol:
		if kind, ok := keywords[t.Value]; ok {
			tok.Kind = kind
		} else if isGenericName(t.Value) {
			tok.Kind = TokenGeneric
		} else {
			tok.Kind = TokenIdent
		}
	default:
		switch t.Value {
		case "<":
			tok.Kind = TokenLT
		case ">":
			tok.Kind = TokenGT
		case ",":
			tok.Kind = TokenComma
		}
	}
	return tok
}

// isGenericName matches T0, T1, ...
func isGenericName(s string) bool {
	if len(s) < 2 || s[0] != 'T' {
		return false
	}
	return strings.Trim(s[1:], "0123456789") == ""
}

// tokenStream is a cursor over tokens with one-token lookahead.
type tokenStream struct {
	input  string
	tokens []Token
	pos    int
}

func newTokenStream(input string) (*tokenStream, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return &tokenStream{input: input, tokens: tokens}, nil
}

// peek returns the next token without consuming it.
func (ts *tokenStream) peek() Token {
	return ts.tokens[ts.pos]
}

// next consumes and returns the next token. EOF is never consumed.
func (ts *tokenStream) next() Token {
	tok := ts.tokens[ts.pos]
	if tok.Kind != TokenEOF {
		ts.pos++
	}
	return tok
}

// expect consumes the next token, failing if it isn't of the given kind.
func (ts *tokenStream) expect(kind TokenKind) (Token, error) {
	tok := ts.next()
	if tok.Kind != kind {
		return tok, ts.errorAt(tok, ErrInvalidTypeTag)
	}
	return tok, nil
}

func (ts *tokenStream) errorAt(tok Token, err error) error {
	return &ParseError{Input: ts.input, Pos: tok.Pos, Err: err}
}
