package tag

import "strings"

// SanitizeID rewrites name into a safe HTML id. The first character must be
// an ASCII letter and is replaced with 'z' otherwise. Every later character
// is kept when it is an ASCII letter, an ASCII digit, or one of '-', '_',
// ':'; anything else is substituted with replacement, which may span several
// characters. An empty name yields an empty string.
//
// '.' is treated as invalid even though HTML4 allows it: dotted ids collide
// with CSS and jQuery selector syntax.
func SanitizeID(name, replacement string) string {
	if name == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(name))

	for i, ch := range name {
		if i == 0 {
			if isIDLetter(ch) {
				out.WriteRune(ch)
			} else {
				out.WriteByte('z')
			}
			continue
		}
		if isIDChar(ch) {
			out.WriteRune(ch)
		} else {
			out.WriteString(replacement)
		}
	}
	return out.String()
}

func isIDLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIDChar(ch rune) bool {
	if isIDLetter(ch) {
		return true
	}
	if ch >= '0' && ch <= '9' {
		return true
	}
	switch ch {
	case '-', '_', ':':
		return true
	}
	return false
}
