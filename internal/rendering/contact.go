package rendering

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// ContactFields is the order in which contact details appear in the header
var ContactFields = []string{"location", "phone", "email", "linkedin", "github"}

const contactSeparator = " | "

// ContactLine joins the present contact fields as "Key: value" in ContactFields order
func ContactLine(info types.PersonalInfo) string {
	parts := make([]string, 0, len(ContactFields))
	for _, key := range ContactFields {
		if value, ok := info.Lookup(key); ok {
			parts = append(parts, capitalize(key)+": "+value)
		}
	}
	return strings.Join(parts, contactSeparator)
}

// capitalize upper-cases the first rune and lower-cases the rest
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
