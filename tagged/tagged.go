/*
Package tagged reads and writes the tagged intermediate text passed from
classification to verbalization.

A tagged sentence is a sequence of tokens separated by single spaces:

   tokens { measure { prefix: "ל" cardinal { integer: "4" } spaced_units: "ס״מ" } }

Every token carries a category and an ordered list of fields. Fields have
either a quoted value or, for numbers nested in a measure, fields of their
own. Quoted values never contain double quotes; spaces within values are
written as non-breaking spaces in the text form.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tagged

import (
	"strings"
)

const nbsp = "\u00A0"

// Field is a named field of a token. Leaf fields have a Value, fields
// holding a nested token have Fields.
type Field struct {
	Name   string  `json:"name"`
	Value  string  `json:"value,omitempty"`
	Fields []Field `json:"fields,omitempty"`
}

// Nested is true for a field holding a nested token.
func (f Field) Nested() bool {
	return len(f.Fields) > 0
}

// Token is a tagged token of a sentence.
type Token struct {
	Category string  `json:"category"`
	Fields   []Field `json:"fields"`
}

// Get returns the value of the first field of t with the given name.
func (t Token) Get(name string) (string, bool) {
	for _, f := range t.Fields {
		if f.Name == name && !f.Nested() {
			return f.Value, true
		}
	}
	return "", false
}

// String returns the text form of t, including the tokens envelope.
func (t Token) String() string {
	var b strings.Builder
	b.WriteString("tokens { ")
	writeGroup(&b, t.Category, t.Fields)
	b.WriteString(" }")
	return b.String()
}

func writeGroup(b *strings.Builder, name string, fields []Field) {
	b.WriteString(name)
	b.WriteString(" {")
	for _, f := range fields {
		b.WriteByte(' ')
		if f.Nested() {
			writeGroup(b, f.Name, f.Fields)
			continue
		}
		b.WriteString(f.Name)
		b.WriteString(`: "`)
		b.WriteString(strings.ReplaceAll(f.Value, " ", nbsp))
		b.WriteByte('"')
	}
	b.WriteString(" }")
}

// Format returns the text form of a tagged sentence.
func Format(tokens []Token) string {
	s := make([]string, len(tokens))
	for i, t := range tokens {
		s[i] = t.String()
	}
	return strings.Join(s, " ")
}
