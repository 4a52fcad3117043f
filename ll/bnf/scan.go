package bnf

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/predict"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the grammar notation.
const (
	EOF predict.TokType = iota - 1
	_
	Ident
	Quoted
	Punct
	Arrow
	Bar
	Semicolon
	Epsilon
	Directive
)

var tokenNames = map[predict.TokType]string{
	EOF:       "<eof>",
	Ident:     "identifier",
	Quoted:    "quoted string",
	Punct:     "punctuation",
	Arrow:     "arrow",
	Bar:       "'|'",
	Semicolon: "';'",
	Epsilon:   "ε",
	Directive: "directive",
}

// punctuation characters usable as terminals
const punctuation = "!$&()*+,-./:<=>?@[]^{}~"

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

// compiledLexer returns the lexer for the grammar notation, compiling the DFA
// on first use.
func compiledLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`#[^\n]*\n?`), skip) // comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`\-\>|→|\:\:\=`), makeToken(Arrow))
		lexer.Add([]byte(`\|`), makeToken(Bar))
		lexer.Add([]byte(`;`), makeToken(Semicolon))
		lexer.Add([]byte(`ε|%empty`), makeToken(Epsilon))
		lexer.Add([]byte(`%([a-z]|[A-Z])+`), makeToken(Directive))
		lexer.Add([]byte(`([a-z]|[A-Z]|[0-9]|_)([a-z]|[A-Z]|[0-9]|_|\')*`), makeToken(Ident))
		lexer.Add([]byte(`\"[^"]*\"`), makeToken(Quoted))
		lexer.Add([]byte(`'[^']*'`), makeToken(Quoted))
		r := "\\" + strings.Join(strings.Split(punctuation, ""), "|\\")
		lexer.Add([]byte(r), makeToken(Punct))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(tt predict.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tt), string(m.Bytes), m), nil
	}
}

// token is a token of the grammar notation.
type token struct {
	toktype predict.TokType
	lexeme  string
	span    predict.Span
	pos     predict.Position
}

var _ predict.Token = token{}

func (t token) TokType() predict.TokType {
	return t.toktype
}

func (t token) Lexeme() string {
	return t.lexeme
}

// Value returns the unquoted text for quoted strings, and the lexeme otherwise.
func (t token) Value() interface{} {
	if t.toktype == Quoted {
		return t.lexeme[1 : len(t.lexeme)-1]
	}
	return t.lexeme
}

func (t token) Span() predict.Span {
	return t.span
}

func (t token) String() string {
	if t.toktype == EOF {
		return tokenNames[EOF]
	}
	return fmt.Sprintf("%s %q", tokenNames[t.toktype], t.lexeme)
}

// scanner produces tokens from an input, ending with an EOF token.
type scanner struct {
	lms    *lexmachine.Scanner
	source string
	last   predict.Position
}

func newScanner(source string, input []byte) (*scanner, error) {
	lx, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	lms, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &scanner{lms: lms, source: source, last: predict.Position{Line: 1, Column: 1}}, nil
}

// next returns the next token. Input which cannot be scanned is reported as a
// *SyntaxError.
func (sc *scanner) next() (token, error) {
	tok, err, eof := sc.lms.Next()
	if err != nil {
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			return token{}, &SyntaxError{
				Source: sc.source,
				Line:   ui.StartLine,
				Column: ui.StartColumn,
				Msg:    fmt.Sprintf("unexpected character %q", firstChar(ui.Text[ui.StartTC:])),
			}
		}
		return token{}, err
	}
	if eof {
		return token{toktype: EOF, pos: sc.last}, nil
	}
	t := tok.(*lexmachine.Token)
	sc.last = predict.Position{Line: t.StartLine, Column: t.StartColumn + len(t.Lexeme)} // EOF is reported behind the last token
	tracer().Debugf("%d:%d %s %q", t.StartLine, t.StartColumn, tokenNames[predict.TokType(t.Type)], t.Lexeme)
	return token{
		toktype: predict.TokType(t.Type),
		lexeme:  string(t.Lexeme),
		span:    predict.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
		pos:     predict.Position{Line: t.StartLine, Column: t.StartColumn},
	}, nil
}

func firstChar(b []byte) string {
	for _, r := range string(b) {
		return string(r)
	}
	return ""
}
