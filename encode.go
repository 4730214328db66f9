package uritemplate

import "strings"

const upperhex = "0123456789ABCDEF"

// encodeComponent percent-encodes every byte outside the RFC 3986
// unreserved set (A-Z a-z 0-9 - . _ ~).
func encodeComponent(s string) string {
	return encode(s, false)
}

// encodeReserved additionally leaves the RFC 3986 reserved set and
// well-formed %XX triplets intact; used by the + # . / ; operators.
func encodeReserved(s string) string {
	return encode(s, true)
}

func encode(s string, keepReserved bool) string {
	sb := &strings.Builder{}
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreservedByte(c):
			sb.WriteByte(c)
		case keepReserved && isReservedByte(c):
			sb.WriteByte(c)
		case keepReserved && c == '%' && i+2 < len(s) && isHexByte(s[i+1]) && isHexByte(s[i+2]):
			sb.WriteString(s[i : i+3])
			i += 2
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0xf])
		}
	}

	return sb.String()
}

func isUnreservedByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func isReservedByte(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}

	return false
}

func isHexByte(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
