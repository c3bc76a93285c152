package php

import (
	"errors"
	"fmt"

	"github.com/chuhta/php-ide-serenata/php/parser"
)

// ErrInvalidOffset is returned when a cursor offset falls outside the source.
var ErrInvalidOffset = errors.New("cursor offset out of range")

// Tokenizer supplies the ordered token stream the boundary scanner consumes.
// The stream must cover the source in full, in source order, with byte-level
// span offsets.
type Tokenizer interface {
	Tokenize(src []byte) []parser.Token
}

// TokenizerFunc adapts a plain function to the Tokenizer interface.
type TokenizerFunc func(src []byte) []parser.Token

func (f TokenizerFunc) Tokenize(src []byte) []parser.Token { return f(src) }

// Scanner locates the start of the expression that ends at a cursor offset.
// It is configured with a tokenizer and the set of token kinds that can never
// appear inside a member-access expression, so it is agnostic to which lexer
// supplies its tokens.
type Scanner struct {
	tokenizer Tokenizer
	boundary  map[parser.TokenKind]bool
}

type ScannerOption func(*Scanner)

func WithTokenizer(t Tokenizer) ScannerOption {
	return func(s *Scanner) { s.tokenizer = t }
}

func WithBoundaryKinds(kinds ...parser.TokenKind) ScannerOption {
	return func(s *Scanner) {
		s.boundary = make(map[parser.TokenKind]bool, len(kinds))
		for _, k := range kinds {
			s.boundary[k] = true
		}
	}
}

func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{
		tokenizer: TokenizerFunc(parser.Tokenize),
		boundary:  DefaultBoundaryKinds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultBoundaryKinds returns the PHP token kinds that terminate a backward
// expression scan: statement and control-flow keywords, visibility modifiers,
// and the operators that cannot occur inside an access chain.
func DefaultBoundaryKinds() map[parser.TokenKind]bool {
	kinds := []parser.TokenKind{
		parser.TokenOpenTag,
		parser.TokenOpenTagEcho,
		parser.TokenCloseTag,
		parser.TokenInlineHTML,

		parser.TokenAbstract,
		parser.TokenAs,
		parser.TokenBreak,
		parser.TokenCallable,
		parser.TokenCase,
		parser.TokenCatch,
		parser.TokenClass,
		parser.TokenClone,
		parser.TokenConst,
		parser.TokenContinue,
		parser.TokenDeclare,
		parser.TokenDefault,
		parser.TokenDo,
		parser.TokenEcho,
		parser.TokenElse,
		parser.TokenElseif,
		parser.TokenEmpty,
		parser.TokenEnddeclare,
		parser.TokenEndfor,
		parser.TokenEndforeach,
		parser.TokenEndif,
		parser.TokenEndswitch,
		parser.TokenEndwhile,
		parser.TokenEnum,
		parser.TokenEval,
		parser.TokenExit,
		parser.TokenExtends,
		parser.TokenFinal,
		parser.TokenFinally,
		parser.TokenFn,
		parser.TokenFor,
		parser.TokenForeach,
		parser.TokenFunction,
		parser.TokenGlobal,
		parser.TokenGoto,
		parser.TokenIf,
		parser.TokenImplements,
		parser.TokenInclude,
		parser.TokenIncludeOnce,
		parser.TokenInstanceof,
		parser.TokenInsteadof,
		parser.TokenInterface,
		parser.TokenLogicalAnd,
		parser.TokenLogicalOr,
		parser.TokenLogicalXor,
		parser.TokenMatch,
		parser.TokenNamespace,
		parser.TokenNew,
		parser.TokenPrint,
		parser.TokenPrivate,
		parser.TokenProtected,
		parser.TokenPublic,
		parser.TokenReadonly,
		parser.TokenRequire,
		parser.TokenRequireOnce,
		parser.TokenReturn,
		parser.TokenStatic,
		parser.TokenSwitch,
		parser.TokenThrow,
		parser.TokenTrait,
		parser.TokenTry,
		parser.TokenUse,
		parser.TokenVar,
		parser.TokenWhile,
		parser.TokenYield,

		parser.TokenDoubleArrow,
		parser.TokenAssign,
		parser.TokenEQ,
		parser.TokenIdentical,
		parser.TokenNE,
		parser.TokenNotIdentical,
		parser.TokenLE,
		parser.TokenGE,
		parser.TokenSpaceship,
		parser.TokenAnd,
		parser.TokenOr,
		parser.TokenShl,
		parser.TokenShr,
		parser.TokenPow,
		parser.TokenIncrement,
		parser.TokenDecrement,
		parser.TokenEllipsis,
		parser.TokenCoalesce,
		parser.TokenPlusAssign,
		parser.TokenMinusAssign,
		parser.TokenStarAssign,
		parser.TokenSlashAssign,
		parser.TokenDotAssign,
		parser.TokenPercentAssign,
		parser.TokenPowAssign,
		parser.TokenAndAssign,
		parser.TokenOrAssign,
		parser.TokenXorAssign,
		parser.TokenShlAssign,
		parser.TokenShrAssign,
		parser.TokenCoalesceAssign,
	}

	set := make(map[parser.TokenKind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}

var defaultScanner = NewScanner()

// FindExpressionStart returns the byte offset where the expression ending at
// cursorByteOffset begins, using the default PHP tokenizer and boundary set.
func FindExpressionStart(source string, cursorByteOffset int) (int, error) {
	return defaultScanner.FindExpressionStart(source, cursorByteOffset)
}

type bracketCounter struct {
	opened int
	closed int
}

func (c bracketCounter) balanced() bool { return c.opened == c.closed }

// FindExpressionStart scans source backward from the cursor, tracking bracket
// balance at the outermost nesting level, until it hits a token or character
// that cannot belong to the expression. It needs no grammar: bracket balance
// plus a closed set of boundary markers is enough, which keeps the scan linear
// and robust to syntax errors elsewhere in the file.
func (s *Scanner) FindExpressionStart(source string, cursorByteOffset int) (int, error) {
	if cursorByteOffset < 0 || cursorByteOffset > len(source) {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOffset, cursorByteOffset, len(source))
	}
	if cursorByteOffset == 0 {
		return 0, nil
	}

	tokens := s.tokenizer.Tokenize([]byte(source))
	ti := len(tokens) - 1

	var parens, squares, braces bracketCounter
	startedInString := false
	expectingStatic := false

	for i := cursorByteOffset - 1; i >= 0; i-- {
		for ti >= 0 && i < tokens[ti].Span.Start.Offset {
			ti--
		}
		kind := parser.TokenEOF
		if ti >= 0 && i < tokens[ti].Span.End.Offset {
			kind = tokens[ti].Kind
		}
		if i == cursorByteOffset-1 {
			startedInString = kind == parser.TokenStringLiteral
		}

		ch := source[i]

		switch {
		case kind == parser.TokenComment || kind == parser.TokenLineComment || kind == parser.TokenDocComment:
			// Comments never open or close a structural boundary.

		case startedInString && kind == parser.TokenStringLiteral:
			// Literal arguments are part of the call stack when the scan
			// itself began inside a string.

		case ch == ')':
			parens.closed++

		case ch == ']':
			squares.closed++

		case ch == '}':
			braces.closed++
			// A close brace while everything up to here was balanced means
			// the scan crossed from a sibling statement into a block body,
			// unless the brace belongs to a closure value held in a variable.
			if parens.balanced() && squares.balanced() && braces.opened == braces.closed-1 {
				if ti+1 >= len(tokens) || tokens[ti+1].Kind != parser.TokenVariable {
					return i + 1, nil
				}
			}

		case ch == '(':
			parens.opened++
			if parens.opened > parens.closed {
				return i + 1, nil
			}

		case ch == '[':
			squares.opened++
			if squares.opened > squares.closed {
				return i + 1, nil
			}

		case ch == '{':
			braces.opened++
			if braces.opened > braces.closed {
				return i + 1, nil
			}

		case parens.balanced() && squares.balanced() && braces.balanced():
			if isExpressionDelimiter(ch, kind) || s.boundary[kind] {
				return i + 1, nil
			}
			if ch == ':' && kind != parser.TokenDoubleColon {
				return i + 1, nil
			}
			if kind == parser.TokenDoubleColon {
				// A static class reference or keyword always begins a call
				// stack; from here on only the class name may continue it.
				expectingStatic = true
			} else if expectingStatic &&
				kind != parser.TokenIdent && kind != parser.TokenNsSeparator {
				return i + 1, nil
			}
		}
	}

	return 0, nil
}

func isExpressionDelimiter(ch byte, kind parser.TokenKind) bool {
	switch ch {
	case '.', ',', ';':
		return true
	case '?':
		// "?" terminates unless it is the first byte of the nullsafe "?->".
		return kind != parser.TokenNullsafeOperator
	}
	return false
}
