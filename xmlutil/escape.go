// Package xmlutil renders small XML fragments by hand.
//
// The jabber:x:roster wire format is byte-exact: fixed attribute
// order, no indentation between children, explicit close tags.
// Serializers build their output through these helpers so escaping
// happens on a single, shared path.
package xmlutil

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five predefined XML entities in s.
func Escape(s string) string {
	return escaper.Replace(s)
}

// WriteAttr appends ` name="value"` to b with the value escaped.
func WriteAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(Escape(value))
	b.WriteString(`"`)
}

// WriteTextElement appends <name>text</name> to b with the text
// escaped.
func WriteTextElement(b *strings.Builder, name, text string) {
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(Escape(text))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}
