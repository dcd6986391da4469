package moveargs

import (
	"strconv"
	"strings"
)

// ParseTypeTag parses a Move type tag string such as "u64",
// "vector<address>" or "0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>".
//
// Whitespace between tokens is ignored and a single trailing comma is allowed
// in a type argument list. Malformed structure returns an error matching
// ErrInvalidTypeTag; text that cannot be tokenized returns an error matching
// ErrUnrecognizedToken. Both are reported as *ParseError.
func ParseTypeTag(input string, opts ...ParseOption) (TypeTag, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	ts, err := newTokenStream(input)
	if err != nil {
		return nil, err
	}

	p := &parser{ts: ts, cfg: cfg}
	tag, err := p.parseTypeTag(0)
	if err != nil {
		return nil, err
	}

	// The whole input must be consumed.
	if tok := ts.peek(); tok.Kind != TokenEOF {
		return nil, ts.errorAt(tok, ErrInvalidTypeTag)
	}
	return tag, nil
}

// MustParseTypeTag is like ParseTypeTag but panics on error.
// Use only with constant input.
func MustParseTypeTag(input string, opts ...ParseOption) TypeTag {
	tag, err := ParseTypeTag(input, opts...)
	if err != nil {
		panic(err)
	}
	return tag
}

// ParseStructTag parses input and requires the result to be a struct tag.
func ParseStructTag(input string, opts ...ParseOption) (*StructTag, error) {
	tag, err := ParseTypeTag(input, opts...)
	if err != nil {
		return nil, err
	}
	st, ok := tag.(*StructTag)
	if !ok {
		return nil, &ParseError{Input: input, Err: ErrInvalidTypeTag}
	}
	return st, nil
}

var primitiveTokens = map[TokenKind]Primitive{
	TokenBool:    TypeBool,
	TokenU8:      TypeU8,
	TokenU16:     TypeU16,
	TokenU32:     TypeU32,
	TokenU64:     TypeU64,
	TokenU128:    TypeU128,
	TokenU256:    TypeU256,
	TokenAddress: TypeAddress,
	TokenSigner:  TypeSigner,
}

type parser struct {
	ts  *tokenStream
	cfg *parseConfig
}

func (p *parser) parseTypeTag(depth int) (TypeTag, error) {
	tok := p.ts.next()
	if depth >= p.cfg.maxDepth {
		return nil, p.ts.errorAt(tok, ErrInvalidTypeTag)
	}

	if prim, ok := primitiveTokens[tok.Kind]; ok {
		return prim, nil
	}

	switch tok.Kind {
	case TokenVector:
		if _, err := p.ts.expect(TokenLT); err != nil {
			return nil, err
		}
		elem, err := p.parseTypeTag(depth + 1)
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.expect(TokenGT); err != nil {
			return nil, err
		}
		return &VectorTag{Elem: elem}, nil

	case TokenStruct:
		return p.parseStruct(tok, depth)

	case TokenGeneric:
		return p.resolveGeneric(tok)

	default:
		// EOF, stray punctuation and unknown identifiers such as "u3".
		return nil, p.ts.errorAt(tok, ErrInvalidTypeTag)
	}
}

// parseStruct parses ADDRESS::MODULE::NAME with optional type arguments.
// The path has already been lexed as one token.
func (p *parser) parseStruct(tok Token, depth int) (TypeTag, error) {
	parts := strings.Split(tok.Value, "::")
	if len(parts) != 3 {
		return nil, p.ts.errorAt(tok, ErrInvalidTypeTag)
	}

	addr, err := ParseAccountAddress(parts[0])
	if err != nil {
		return nil, p.ts.errorAt(tok, ErrUnrecognizedToken)
	}

	st := &StructTag{
		Address: addr,
		Module:  parts[1],
		Name:    parts[2],
	}

	if p.ts.peek().Kind != TokenLT {
		return st, nil
	}
	p.ts.next()

	for {
		arg, err := p.parseTypeTag(depth + 1)
		if err != nil {
			return nil, err
		}
		st.TypeArgs = append(st.TypeArgs, arg)

		sep := p.ts.next()
		switch sep.Kind {
		case TokenGT:
			return st, nil
		case TokenComma:
			// A trailing comma is allowed before the closing bracket.
			if p.ts.peek().Kind == TokenGT {
				p.ts.next()
				return st, nil
			}
		default:
			return nil, p.ts.errorAt(sep, ErrInvalidTypeTag)
		}
	}
}

func (p *parser) resolveGeneric(tok Token) (TypeTag, error) {
	idx, err := strconv.Atoi(tok.Value[1:])
	if err != nil || idx >= len(p.cfg.typeArgs) || p.cfg.typeArgs[idx] == nil {
		return nil, p.ts.errorAt(tok, ErrInvalidTypeTag)
	}
	return p.cfg.typeArgs[idx], nil
}
