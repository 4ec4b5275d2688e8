// Package token defines the lexical vocabulary shared by the scanner,
// parser and resolver.
package token

import "fmt"

// Type identifies the lexical class of a Token.
type Type int

// Token type constants, grouped the way the grammar groups them.
const (
	// Single-character tokens.
	LeftParen Type = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// EOF is the sentinel token that always terminates the stream.
	EOF
)

var names = map[Type]string{
	LeftParen: "LeftParen", RightParen: "RightParen",
	LeftBrace: "LeftBrace", RightBrace: "RightBrace",
	Comma: "Comma", Dot: "Dot", Minus: "Minus", Plus: "Plus",
	Semicolon: "Semicolon", Slash: "Slash", Star: "Star",
	Bang: "Bang", BangEqual: "BangEqual",
	Equal: "Equal", EqualEqual: "EqualEqual",
	Greater: "Greater", GreaterEqual: "GreaterEqual",
	Less: "Less", LessEqual: "LessEqual",
	Identifier: "Identifier", String: "String", Number: "Number",
	And: "And", Class: "Class", Else: "Else", False: "False",
	Fun: "Fun", For: "For", If: "If", Nil: "Nil", Or: "Or",
	Print: "Print", Return: "Return", Super: "Super", This: "This",
	True: "True", Var: "Var", While: "While", EOF: "EOF",
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Keywords maps reserved identifiers to their keyword token type.
var Keywords = map[string]Type{
	"and": And, "class": Class, "else": Else, "false": False,
	"for": For, "fun": Fun, "if": If, "nil": Nil, "or": Or,
	"print": Print, "return": Return, "super": Super, "this": This,
	"true": True, "var": Var, "while": While,
}

// Lookup returns the keyword token type for lexeme, or Identifier if lexeme
// is not a reserved word.
func Lookup(lexeme string) Type {
	if typ, ok := Keywords[lexeme]; ok {
		return typ
	}
	return Identifier
}

// Literal holds the scanned value carried by Number and String tokens.
// Other token kinds never set a Literal.
type Literal struct {
	Number float64
	Str    string
	IsNum  bool
	IsStr  bool
}

// Position locates a token in the original source text.
type Position struct {
	Line int
}

// Token is an immutable lexical unit produced by the scanner.
type Token struct {
	Type    Type
	Lexeme  string
	Literal Literal
	Pos     Position
}

// Line is a convenience accessor used throughout the parser and resolver.
func (t Token) Line() int { return t.Pos.Line }

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}
