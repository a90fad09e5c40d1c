package calc

import "strings"

// Operators that may be glued directly after a number or identifier, as in
// "2 3*". Longest spelling is tried first so "4**" peels "**", not "*".
var gluedOperators = []string{"**", "||", "//", "+", "-", "*", "/", "%", "!"}

// Split breaks one input line into tokens.
//
// A double-quoted span is one token (units for x). A back-quoted span is one
// token (print directive). A parenthesized span immediately followed by an
// identifier is one token (macro definition). '#' starts a comment running to
// the end of the line. Everything else splits on whitespace, except that a
// single glued operator is peeled off the end of a word when it directly
// follows an alphanumeric. The longest leading number or identifier always
// wins: "2pi" is one token, "5*" is two.
func Split(line string) ([]string, error) {
	tokens := make([]string, 0)
	i, n := 0, len(line)
	for i < n {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '#':
			return tokens, nil
		case c == '"' || c == '`':
			j := strings.IndexByte(line[i+1:], c)
			if j < 0 {
				return nil, newError(ErrSyntax, "%s: unterminated string", line[i:])
			}
			tokens = append(tokens, line[i:i+j+2])
			i += j + 2
		case c == '(':
			tok, next, err := scanMacroDef(line, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		default:
			j := i
			for j < n && !isTokenBreak(line[j]) {
				j++
			}
			word := line[i:j]
			if prefix, op, peeled := peelOperator(word); peeled {
				tokens = append(tokens, prefix, op)
			} else {
				tokens = append(tokens, word)
			}
			i = j
		}
	}
	return tokens, nil
}

// scanMacroDef consumes a balanced parenthesized span plus the identifier
// that names the macro: "(2pi * \"rads/s\")to_omega" is one token.
func scanMacroDef(line string, start int) (string, int, error) {
	depth := 0
	i := start
	for ; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			break
		}
	}
	if depth != 0 {
		return "", 0, newError(ErrSyntax, "%s: unterminated parenthesis", line[start:])
	}
	j := i + 1
	for j < len(line) && isIdentByte(line[j]) {
		j++
	}
	if j == i+1 {
		return "", 0, newError(ErrSyntax, "%s: macro definition requires a name", line[start:i+1])
	}
	return line[start:j], j, nil
}

// peelOperator splits a single trailing operator off a word when the operator
// abuts an alphanumeric, as in "5*" or "4**". Anything else is left whole so
// that names like "2pi" are not broken apart.
func peelOperator(word string) (prefix, op string, ok bool) {
	for _, cand := range gluedOperators {
		if len(word) > len(cand) && strings.HasSuffix(word, cand) {
			head := word[:len(word)-len(cand)]
			if isAlnumByte(head[len(head)-1]) {
				return head, cand, true
			}
		}
	}
	return "", "", false
}

func isTokenBreak(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '"', '`', '(', '#':
		return true
	}
	return false
}

func isAlnumByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isIdentByte(c byte) bool {
	return isAlnumByte(c) || c == '_'
}
