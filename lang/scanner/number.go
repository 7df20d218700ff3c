package scanner

import (
	"strconv"

	"github.com/mna/lumen/lang/token"
)

// number scans an integer or floating-point literal starting at s.cur, which
// must be a decimal digit.
func (s *Scanner) number() (tok token.Token, lit string) {
	start := s.off
	tok = token.INT

	for isDigit(s.cur) {
		s.advance()
	}

	if s.cur == '.' && isDigit(rune(s.peekByte())) {
		tok = token.FLOAT
		s.advance() // consume '.'
		for isDigit(s.cur) {
			s.advance()
		}
	}

	if s.cur == 'e' || s.cur == 'E' {
		tok = token.FLOAT
		save := s.off
		s.advance()
		if s.cur == '+' || s.cur == '-' {
			s.advance()
		}
		if !isDigit(s.cur) {
			s.error(save, "exponent has no digits")
		}
		for isDigit(s.cur) {
			s.advance()
		}
	}

	return tok, string(s.src[start:s.off])
}

func parseIntLiteral(lit string, s *Scanner, off int) int64 {
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		s.error(off, "integer literal out of range: "+lit)
	}
	return v
}

func parseFloatLiteral(lit string, s *Scanner, off int) float64 {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.error(off, "invalid float literal: "+lit)
	}
	return v
}
