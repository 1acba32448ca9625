package rpn

import (
	"strings"
	"unicode"
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// Tokenize splits input on runs of whitespace. Empty tokens are never produced.
func Tokenize(input string) []string {
	return strings.FieldsFunc(input, isSpace)
}

// IsNumber reports whether s is a numeric literal: an optional sign as the first
// character, digits, and at most one decimal point that follows a digit.
func IsNumber(s string) bool {
	var digit, decimal bool
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '+' || ch == '-':
			if i > 0 {
				return false
			}
		case ch == '.':
			if !digit || decimal {
				return false
			}
			decimal = true
		case ch >= '0' && ch <= '9':
			digit = true
		default:
			return false
		}
	}
	return digit
}

// isVariable splits a $name token. A bare sigil is not a variable reference.
func isVariable(tok string) (string, bool) {
	if len(tok) < 2 || tok[0] != VariableSigil {
		return "", false
	}
	return tok[1:], true
}
