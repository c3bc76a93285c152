package parser

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenInlineHTML
	TokenOpenTag
	TokenOpenTagEcho
	TokenCloseTag
	TokenComment
	TokenLineComment
	TokenDocComment

	// Literals
	TokenIdent
	TokenVariable
	TokenIntLiteral
	TokenFloatLiteral
	TokenStringLiteral
	TokenHeredoc

	// Keywords
	TokenAbstract
	TokenArray
	TokenAs
	TokenBreak
	TokenCallable
	TokenCase
	TokenCatch
	TokenClass
	TokenClone
	TokenConst
	TokenContinue
	TokenDeclare
	TokenDefault
	TokenDo
	TokenEcho
	TokenElse
	TokenElseif
	TokenEmpty
	TokenEnddeclare
	TokenEndfor
	TokenEndforeach
	TokenEndif
	TokenEndswitch
	TokenEndwhile
	TokenEnum
	TokenEval
	TokenExit
	TokenExtends
	TokenFinal
	TokenFinally
	TokenFn
	TokenFor
	TokenForeach
	TokenFunction
	TokenGlobal
	TokenGoto
	TokenIf
	TokenImplements
	TokenInclude
	TokenIncludeOnce
	TokenInstanceof
	TokenInsteadof
	TokenInterface
	TokenIsset
	TokenList
	TokenLogicalAnd
	TokenLogicalOr
	TokenLogicalXor
	TokenMatch
	TokenNamespace
	TokenNew
	TokenPrint
	TokenPrivate
	TokenProtected
	TokenPublic
	TokenReadonly
	TokenRequire
	TokenRequireOnce
	TokenReturn
	TokenStatic
	TokenSwitch
	TokenThrow
	TokenTrait
	TokenTry
	TokenUnset
	TokenUse
	TokenVar
	TokenWhile
	TokenYield

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenEllipsis
	TokenAt
	TokenDollar
	TokenBacktick
	TokenAttribute
	TokenObjectOperator
	TokenNullsafeOperator
	TokenDoubleColon
	TokenNsSeparator
	TokenDoubleArrow

	TokenAssign
	TokenEQ
	TokenIdentical
	TokenNE
	TokenNotIdentical
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenSpaceship
	TokenAnd
	TokenOr
	TokenNot
	TokenBitAnd
	TokenBitOr
	TokenBitXor
	TokenBitNot
	TokenShl
	TokenShr
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenPow
	TokenIncrement
	TokenDecrement
	TokenQuestion
	TokenColon
	TokenCoalesce
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenDotAssign
	TokenPercentAssign
	TokenPowAssign
	TokenAndAssign
	TokenOrAssign
	TokenXorAssign
	TokenShlAssign
	TokenShrAssign
	TokenCoalesceAssign
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:              "EOF",
	TokenError:            "Error",
	TokenWhitespace:       "Whitespace",
	TokenInlineHTML:       "InlineHTML",
	TokenOpenTag:          "<?php",
	TokenOpenTagEcho:      "<?=",
	TokenCloseTag:         "?>",
	TokenComment:          "Comment",
	TokenLineComment:      "LineComment",
	TokenDocComment:       "DocComment",
	TokenIdent:            "Identifier",
	TokenVariable:         "Variable",
	TokenIntLiteral:       "IntLiteral",
	TokenFloatLiteral:     "FloatLiteral",
	TokenStringLiteral:    "StringLiteral",
	TokenHeredoc:          "Heredoc",
	TokenAbstract:         "abstract",
	TokenArray:            "array",
	TokenAs:               "as",
	TokenBreak:            "break",
	TokenCallable:         "callable",
	TokenCase:             "case",
	TokenCatch:            "catch",
	TokenClass:            "class",
	TokenClone:            "clone",
	TokenConst:            "const",
	TokenContinue:         "continue",
	TokenDeclare:          "declare",
	TokenDefault:          "default",
	TokenDo:               "do",
	TokenEcho:             "echo",
	TokenElse:             "else",
	TokenElseif:           "elseif",
	TokenEmpty:            "empty",
	TokenEnddeclare:       "enddeclare",
	TokenEndfor:           "endfor",
	TokenEndforeach:       "endforeach",
	TokenEndif:            "endif",
	TokenEndswitch:        "endswitch",
	TokenEndwhile:         "endwhile",
	TokenEnum:             "enum",
	TokenEval:             "eval",
	TokenExit:             "exit",
	TokenExtends:          "extends",
	TokenFinal:            "final",
	TokenFinally:          "finally",
	TokenFn:               "fn",
	TokenFor:              "for",
	TokenForeach:          "foreach",
	TokenFunction:         "function",
	TokenGlobal:           "global",
	TokenGoto:             "goto",
	TokenIf:               "if",
	TokenImplements:       "implements",
	TokenInclude:          "include",
	TokenIncludeOnce:      "include_once",
	TokenInstanceof:       "instanceof",
	TokenInsteadof:        "insteadof",
	TokenInterface:        "interface",
	TokenIsset:            "isset",
	TokenList:             "list",
	TokenLogicalAnd:       "and",
	TokenLogicalOr:        "or",
	TokenLogicalXor:       "xor",
	TokenMatch:            "match",
	TokenNamespace:        "namespace",
	TokenNew:              "new",
	TokenPrint:            "print",
	TokenPrivate:          "private",
	TokenProtected:        "protected",
	TokenPublic:           "public",
	TokenReadonly:         "readonly",
	TokenRequire:          "require",
	TokenRequireOnce:      "require_once",
	TokenReturn:           "return",
	TokenStatic:           "static",
	TokenSwitch:           "switch",
	TokenThrow:            "throw",
	TokenTrait:            "trait",
	TokenTry:              "try",
	TokenUnset:            "unset",
	TokenUse:              "use",
	TokenVar:              "var",
	TokenWhile:            "while",
	TokenYield:            "yield",
	TokenLParen:           "(",
	TokenRParen:           ")",
	TokenLBrace:           "{",
	TokenRBrace:           "}",
	TokenLBracket:         "[",
	TokenRBracket:         "]",
	TokenSemicolon:        ";",
	TokenComma:            ",",
	TokenDot:              ".",
	TokenEllipsis:         "...",
	TokenAt:               "@",
	TokenDollar:           "$",
	TokenBacktick:         "`",
	TokenAttribute:        "#[",
	TokenObjectOperator:   "->",
	TokenNullsafeOperator: "?->",
	TokenDoubleColon:      "::",
	TokenNsSeparator:      "\\",
	TokenDoubleArrow:      "=>",
	TokenAssign:           "=",
	TokenEQ:               "==",
	TokenIdentical:        "===",
	TokenNE:               "!=",
	TokenNotIdentical:     "!==",
	TokenLT:               "<",
	TokenLE:               "<=",
	TokenGT:               ">",
	TokenGE:               ">=",
	TokenSpaceship:        "<=>",
	TokenAnd:              "&&",
	TokenOr:               "||",
	TokenNot:              "!",
	TokenBitAnd:           "&",
	TokenBitOr:            "|",
	TokenBitXor:           "^",
	TokenBitNot:           "~",
	TokenShl:              "<<",
	TokenShr:              ">>",
	TokenPlus:             "+",
	TokenMinus:            "-",
	TokenStar:             "*",
	TokenSlash:            "/",
	TokenPercent:          "%",
	TokenPow:              "**",
	TokenIncrement:        "++",
	TokenDecrement:        "--",
	TokenQuestion:         "?",
	TokenColon:            ":",
	TokenCoalesce:         "??",
	TokenPlusAssign:       "+=",
	TokenMinusAssign:      "-=",
	TokenStarAssign:       "*=",
	TokenSlashAssign:      "/=",
	TokenDotAssign:        ".=",
	TokenPercentAssign:    "%=",
	TokenPowAssign:        "**=",
	TokenAndAssign:        "&=",
	TokenOrAssign:         "|=",
	TokenXorAssign:        "^=",
	TokenShlAssign:        "<<=",
	TokenShrAssign:        ">>=",
	TokenCoalesceAssign:   "??=",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]TokenKind{
	"abstract":     TokenAbstract,
	"and":          TokenLogicalAnd,
	"array":        TokenArray,
	"as":           TokenAs,
	"break":        TokenBreak,
	"callable":     TokenCallable,
	"case":         TokenCase,
	"catch":        TokenCatch,
	"class":        TokenClass,
	"clone":        TokenClone,
	"const":        TokenConst,
	"continue":     TokenContinue,
	"declare":      TokenDeclare,
	"default":      TokenDefault,
	"die":          TokenExit,
	"do":           TokenDo,
	"echo":         TokenEcho,
	"else":         TokenElse,
	"elseif":       TokenElseif,
	"empty":        TokenEmpty,
	"enddeclare":   TokenEnddeclare,
	"endfor":       TokenEndfor,
	"endforeach":   TokenEndforeach,
	"endif":        TokenEndif,
	"endswitch":    TokenEndswitch,
	"endwhile":     TokenEndwhile,
	"enum":         TokenEnum,
	"eval":         TokenEval,
	"exit":         TokenExit,
	"extends":      TokenExtends,
	"final":        TokenFinal,
	"finally":      TokenFinally,
	"fn":           TokenFn,
	"for":          TokenFor,
	"foreach":      TokenForeach,
	"function":     TokenFunction,
	"global":       TokenGlobal,
	"goto":         TokenGoto,
	"if":           TokenIf,
	"implements":   TokenImplements,
	"include":      TokenInclude,
	"include_once": TokenIncludeOnce,
	"instanceof":   TokenInstanceof,
	"insteadof":    TokenInsteadof,
	"interface":    TokenInterface,
	"isset":        TokenIsset,
	"list":         TokenList,
	"match":        TokenMatch,
	"namespace":    TokenNamespace,
	"new":          TokenNew,
	"or":           TokenLogicalOr,
	"print":        TokenPrint,
	"private":      TokenPrivate,
	"protected":    TokenProtected,
	"public":       TokenPublic,
	"readonly":     TokenReadonly,
	"require":      TokenRequire,
	"require_once": TokenRequireOnce,
	"return":       TokenReturn,
	"static":       TokenStatic,
	"switch":       TokenSwitch,
	"throw":        TokenThrow,
	"trait":        TokenTrait,
	"try":          TokenTry,
	"unset":        TokenUnset,
	"use":          TokenUse,
	"var":          TokenVar,
	"while":        TokenWhile,
	"xor":          TokenLogicalXor,
	"yield":        TokenYield,
}

// LookupKeyword maps an identifier to its keyword kind. PHP keywords are
// case-insensitive, so the lookup lowercases its input first.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[lowerASCII(ident)]; ok {
		return kind
	}
	return TokenIdent
}

func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
