package report

import (
	"strings"
)

// ExtraPredicate is raw SQL appended to the compiled filter. It is the
// escape hatch for users who know the observation source: the text is
// passed to the database verbatim once it passes Check. Text that does not
// start with "and" or "or" gets an "and" connective.
type ExtraPredicate string

// Check rejects text able to leave the boolean expression it is appended
// to: statement terminators and comments outside quotes, unbalanced
// parentheses and unterminated quotes. Backslashes in string literals and
// dollar signs outside quotes are refused as well, so that E'' escapes and
// dollar quoting cannot end a literal where the scan does not.
func (ep ExtraPredicate) Check() error {
	s := string(ep)
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if quote == '\'' && c == '\\' {
				return ExtraPredicateError(s, "backslash in a string literal")
			}
			if c == quote {
				if i+1 < len(s) && s[i+1] == quote {
					i++
					continue
				}
				quote = 0
			}
			continue
		}

		switch c {
		case '\'', '"':
			quote = c
		case ';':
			return ExtraPredicateError(s, "statement terminator ';'")
		case '$':
			return ExtraPredicateError(s, "dollar sign outside a literal")
		case '-':
			if i+1 < len(s) && s[i+1] == '-' {
				return ExtraPredicateError(s, "comment '--'")
			}
		case '/':
			if i+1 < len(s) && s[i+1] == '*' {
				return ExtraPredicateError(s, "comment '/*'")
			}
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return ExtraPredicateError(s, "unbalanced ')'")
			}
		}
	}

	if quote != 0 {
		return ExtraPredicateError(s, "unterminated quote")
	}
	if depth != 0 {
		return ExtraPredicateError(s, "unbalanced '('")
	}
	return nil
}

// Clause returns the text ready to be appended after a predicate, or an
// empty string.
func (ep ExtraPredicate) Clause() string {
	s := strings.TrimSpace(string(ep))
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	for _, conn := range []string{"and", "or"} {
		if lower == conn {
			return ""
		}
		if strings.HasPrefix(lower, conn) {
			next := lower[len(conn)]
			if next == ' ' || next == '(' || next == '\t' || next == '\n' {
				return s
			}
		}
	}
	return "and " + s
}
