// Package naming derives Go identifiers, file names and table names from
// schema names.
package naming

import (
	"go/token"
	"strings"
	"unicode"
)

// initialisms are rendered fully upper-cased in Go names.
var initialisms = map[string]bool{
	"api": true, "db": true, "html": true, "http": true, "https": true,
	"id": true, "ip": true, "json": true, "sql": true, "ui": true,
	"url": true, "uuid": true, "xml": true,
}

// keywordAliases replace Go keywords used as field names.
var keywordAliases = map[string]string{
	"type":      "typ",
	"func":      "fn",
	"default":   "def",
	"package":   "pkg",
	"range":     "rng",
	"select":    "sel",
	"interface": "iface",
}

// ToPascalCase converts a string to PascalCase.
func ToPascalCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = capitalize(strings.ToLower(word))
	}
	return strings.Join(words, "")
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if len(pascal) == 0 {
		return pascal
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// Humanize turns a schema name into a sentence-case phrase:
// "displayName" -> "Display name".
func Humanize(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return capitalize(strings.Join(words, " "))
}

// GoName returns the exported Go form of a schema name, applying the usual
// initialisms: "id" -> "ID", "websiteUrl" -> "WebsiteURL".
func GoName(s string) string {
	words := splitWords(s)
	for i, word := range words {
		lower := strings.ToLower(word)
		if initialisms[lower] {
			words[i] = strings.ToUpper(lower)
			continue
		}
		words[i] = capitalize(lower)
	}
	return strings.Join(words, "")
}

// GoIdent returns the unexported Go form of a schema name. Go keywords are
// replaced so the result is always a legal identifier.
func GoIdent(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	ident := strings.ToLower(words[0]) + GoName(strings.Join(words[1:], " "))
	if token.IsKeyword(ident) {
		if alias, ok := keywordAliases[ident]; ok {
			return alias
		}
		return ident + "Value"
	}
	return ident
}

// Receiver picks a short method receiver name for a type name.
func Receiver(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}
	return "x"
}

// Table returns the default table name for an entity: the lower-cased name
// with an "s" appended.
func Table(entityName string) string {
	return strings.ToLower(entityName + "s")
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, kebab-case).
func splitWords(s string) []string {
	// Replace common separators with space
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	// Insert space before uppercase letters in camelCase/PascalCase
	var result strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			prev := rune(s[i-1])
			if !unicode.IsSpace(prev) && !unicode.IsUpper(prev) {
				result.WriteRune(' ')
			}
		}
		result.WriteRune(r)
	}

	return strings.Fields(result.String())
}

// Pluralize returns a simple pluralized form of a word.
func Pluralize(s string) string {
	if s == "" {
		return s
	}

	if strings.HasSuffix(s, "s") || strings.HasSuffix(s, "x") ||
		strings.HasSuffix(s, "ch") || strings.HasSuffix(s, "sh") {
		return s + "es"
	}
	if strings.HasSuffix(s, "y") && len(s) > 1 {
		lastChar := s[len(s)-2]
		if lastChar != 'a' && lastChar != 'e' && lastChar != 'i' && lastChar != 'o' && lastChar != 'u' {
			return s[:len(s)-1] + "ies"
		}
	}
	return s + "s"
}
