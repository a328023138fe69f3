package util

import (
	"strings"
)

const (
	// SvgExtension is the recognized vector-graphic file extension.
	SvgExtension = ".svg"

	// IdentToken is affixed to every derived identifier so that component
	// names read as icon components and never collide with bare keywords.
	IdentToken = "Icon"
)

// DeriveIdentifier maps a raw SVG filename to a component identifier. The
// function is total: any input, including an empty string, yields a
// non-empty identifier starting with an ASCII letter.
func DeriveIdentifier(fileName string) string {
	// * strip the .svg extension case-insensitively
	base := fileName
	if len(base) >= len(SvgExtension) && strings.EqualFold(base[len(base)-len(SvgExtension):], SvgExtension) {
		base = base[:len(base)-len(SvgExtension)]
	}

	// * split on runs of non-alphanumeric characters and capitalize each segment
	var builder strings.Builder
	for _, segment := range splitAlphanumeric(base) {
		builder.WriteString(strings.ToUpper(segment[:1]))
		builder.WriteString(segment[1:])
	}
	raw := builder.String()

	// * empty derivation falls back to the bare token
	if raw == "" {
		return IdentToken
	}

	// * suffix when the name already starts with a letter, prefix otherwise
	if isAsciiLetter(raw[0]) {
		return raw + IdentToken
	}
	return IdentToken + raw
}

// splitAlphanumeric cuts a string on every maximal run of characters that
// are not ASCII letters or digits, discarding empty segments.
func splitAlphanumeric(s string) []string {
	var segments []string
	var current strings.Builder

	for i := 0; i < len(s); i++ {
		if isAsciiLetter(s[i]) || isAsciiDigit(s[i]) {
			current.WriteByte(s[i])
			continue
		}
		if current.Len() > 0 {
			segments = append(segments, current.String())
			current.Reset()
		}
	}

	// * add last segment
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments
}

func isAsciiLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAsciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
