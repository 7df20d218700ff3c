// Package scanner tokenizes lumen source text for the parser to consume,
// turning raw bytes into a stream of positioned tokens.
package scanner

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mna/lumen/lang/token"
)

// Error is a single scan or parse failure at a resolved source position,
// shaped after the standard library's go/scanner.Error (same Pos/Msg
// fields and "pos: msg" rendering), but keyed on lumen's own
// token.Position rather than go/token.Position since lumen's Pos is a
// compact custom encoding, not go/token's.
type Error struct {
	Pos token.Position
	Msg string
}

func (e Error) Error() string {
	if e.Pos.Filename != "" || e.Pos.Line != 0 {
		return e.Pos.String() + ": " + e.Msg
	}
	return e.Msg
}

// ErrorList collects errors in the order they are reported; Sort puts them
// back in source-position order once scanning is done, so diagnostics
// print top-to-bottom regardless of recovery order.
type ErrorList []*Error

// Add appends an error at pos to the list. It satisfies the errHandler
// signature Scanner.Init and the parser expect.
func (p *ErrorList) Add(pos token.Position, msg string) {
	*p = append(*p, &Error{Pos: pos, Msg: msg})
}

func (p ErrorList) Len() int      { return len(p) }
func (p ErrorList) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p ErrorList) Less(i, j int) bool {
	a, b := p[i].Pos, p[j].Pos
	if a.Filename != b.Filename {
		return a.Filename < b.Filename
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// Sort orders the list by source position, stabilizing output across
// recovered-from errors that may have been appended out of order.
func (p ErrorList) Sort() { sort.Sort(p) }

func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", p[0], len(p)-1)
}

// Err returns nil if the list is empty, the single *Error if it holds
// exactly one, or the list itself (as an error) otherwise.
func (p ErrorList) Err() error {
	switch len(p) {
	case 0:
		return nil
	case 1:
		return p[0]
	default:
		return p
	}
}

// PrintError prints the errors in err (an ErrorList, a single *Error, or any
// other error) to w, one per line.
func PrintError(w io.Writer, err error) {
	if list, ok := err.(ErrorList); ok {
		for _, e := range list {
			fmt.Fprintln(w, e)
		}
		return
	}
	fmt.Fprintln(w, err)
}

// Scanner tokenizes a single source file.
type Scanner struct {
	file *token.File
	src  []byte
	err  func(pos token.Position, msg string)

	sb strings.Builder

	cur  rune // current rune, -1 at EOF
	off  int  // byte offset of cur
	roff int  // byte offset just past cur

	// canEndExpr records whether the most recently scanned token could be the
	// last token of a complete expression (an operand, or a closing bracket).
	// It resolves the only lexical ambiguity in the token set: "//" is the
	// floor-division operator when the previous token could end an expression
	// and no newline separates them; otherwise it opens a line comment.
	canEndExpr bool
}

// Init initializes the scanner to tokenize src, whose size must match
// file.Size(). Scan errors are reported through errHandler, which may be
// nil.
func (s *Scanner) Init(file *token.File, src []byte, errHandler func(token.Position, string)) {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	s.file = file
	s.src = src
	s.err = errHandler
	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.canEndExpr = false
	s.advance()
}

func (s *Scanner) peekByte() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		if s.cur == '\n' {
			s.file.AddLine(s.off)
		}
		s.cur = -1
		return
	}

	s.off = s.roff
	if s.cur == '\n' {
		s.file.AddLine(s.off)
	}

	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.off, "illegal UTF-8 encoding")
		}
	}
	s.roff += w
	s.cur = r
}

func (s *Scanner) advanceIf(match rune) bool {
	if s.cur == match {
		s.advance()
		return true
	}
	return false
}

func (s *Scanner) error(off int, msg string) {
	if s.err != nil {
		s.err(s.file.Position(s.file.Pos(off)), msg)
	}
}

func (s *Scanner) skipWhitespace() {
	for s.cur == ' ' || s.cur == '\t' || s.cur == '\n' || s.cur == '\r' {
		s.advance()
	}
}

// skipBlockComment consumes a nested "/* ... */" comment; the opening "/*"
// has already been consumed.
func (s *Scanner) skipBlockComment() {
	depth := 1
	for depth > 0 {
		switch {
		case s.cur < 0:
			s.error(s.off, "comment not terminated")
			return
		case s.cur == '/' && s.peekByte() == '*':
			s.advance()
			s.advance()
			depth++
		case s.cur == '*' && s.peekByte() == '/':
			s.advance()
			s.advance()
			depth--
		default:
			s.advance()
		}
	}
}

func (s *Scanner) skipLineComment() {
	for s.cur != '\n' && s.cur >= 0 {
		s.advance()
	}
}

// Scan returns the next token, filling tokVal with its position and, for
// IDENT/INT/FLOAT/STRING, its literal value.
func (s *Scanner) Scan(tokVal *token.Value) token.Token {
	for {
		wsStart := s.off
		s.skipWhitespace()
		atLineStart := strings.IndexByte(string(s.src[wsStart:s.off]), '\n') >= 0
		if s.cur == '/' {
			if s.peekByte() == '/' && (!s.canEndExpr || atLineStart) {
				s.advance()
				s.advance()
				s.skipLineComment()
				continue
			}
			if s.peekByte() == '*' {
				s.advance()
				s.advance()
				s.skipBlockComment()
				continue
			}
		}
		break
	}

	pos := s.file.Pos(s.off)
	start := s.off
	tok := token.ILLEGAL

	switch cur := s.cur; {
	case isLetter(cur):
		lit := s.ident()
		tok = token.Lookup(lit)
		*tokVal = token.Value{Pos: pos, Raw: lit, String: lit}

	case isDigit(cur):
		var lit string
		tok, lit = s.number()
		*tokVal = token.Value{Pos: pos, Raw: lit, String: lit}
		if tok == token.INT {
			tokVal.Int = parseIntLiteral(lit, s, start)
		} else {
			tokVal.Float = parseFloatLiteral(lit, s, start)
		}

	case cur == '"' || cur == '\'':
		s.advance()
		lit, val := s.shortString(cur)
		tok = token.STRING
		*tokVal = token.Value{Pos: pos, Raw: lit, String: val}

	default:
		s.advance()
		switch cur {
		case -1:
			tok = token.EOF
		case '=':
			tok = token.ASSIGN
			if s.advanceIf('=') {
				tok = token.EQ
			}
		case '+':
			tok = token.PLUS
			if s.advanceIf('=') {
				tok = token.PLUS_ASSIGN
			}
		case '-':
			tok = token.MINUS
			if s.advanceIf('=') {
				tok = token.MINUS_ASSIGN
			}
		case '!':
			tok = token.BANG
			if s.advanceIf('=') {
				tok = token.NOT_EQ
			}
		case '*':
			tok = token.STAR
			if s.advanceIf('=') {
				tok = token.STAR_ASSIGN
			}
		case '/':
			tok = token.SLASH
			if s.advanceIf('/') {
				tok = token.SLASHSLASH
			} else if s.advanceIf('=') {
				tok = token.SLASH_ASSIGN
			}
		case '%':
			tok = token.PERCENT
			if s.advanceIf('=') {
				tok = token.PERCENT_ASSIGN
			}
		case '<':
			tok = token.LT
			if s.advanceIf('=') {
				tok = token.LE
			} else if s.advanceIf('<') {
				tok = token.SHL
			}
		case '>':
			tok = token.GT
			if s.advanceIf('=') {
				tok = token.GE
			} else if s.advanceIf('>') {
				tok = token.SHR
			}
		case '&':
			tok = token.AMP
			if s.advanceIf('&') {
				tok = token.AND
			}
		case '|':
			tok = token.PIPE
			if s.advanceIf('|') {
				tok = token.OR
			}
		case '^':
			tok = token.CARET
		case '~':
			tok = token.TILDE
		case ',':
			tok = token.COMMA
		case ';':
			tok = token.SEMICOLON
		case ':':
			tok = token.COLON
		case '.':
			tok = token.DOT
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		default:
			tok = token.ILLEGAL
			s.error(start, fmt.Sprintf("illegal character %#U", cur))
		}
		if tokVal.Pos != pos {
			*tokVal = token.Value{Pos: pos, Raw: string(s.src[start:s.off])}
		}
	}

	s.canEndExpr = tokenEndsExpr(tok)
	return tok
}

// tokenEndsExpr reports whether tok could be the final token of a complete
// expression, used to disambiguate "//" between floor-division and a line
// comment (see canEndExpr).
func tokenEndsExpr(tok token.Token) bool {
	switch tok {
	case token.IDENT, token.INT, token.FLOAT, token.STRING,
		token.TRUE, token.FALSE, token.NULL, token.THIS,
		token.RPAREN, token.RBRACK, token.RBRACE:
		return true
	default:
		return false
	}
}

func isLetter(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r >= utf8.RuneSelf
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func (s *Scanner) ident() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}
