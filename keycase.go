package confinit

import (
	"fmt"
	"strings"
	"unicode"
)

// A KeyCase is a naming convention for map keys.
type KeyCase string

// Key casing conventions.
const (
	KeyCaseCamel KeyCase = "camel"
	KeyCaseKebab KeyCase = "kebab"
	KeyCaseSnake KeyCase = "snake"
)

// ParseKeyCase returns the KeyCase with the given name.
func ParseKeyCase(s string) (KeyCase, error) {
	switch keyCase := KeyCase(strings.ToLower(s)); keyCase {
	case KeyCaseCamel, KeyCaseKebab, KeyCaseSnake:
		return keyCase, nil
	default:
		return "", fmt.Errorf("%s: unknown key case", s)
	}
}

// convert converts a single key to k.
func (k KeyCase) convert(key string) string {
	words := splitWords(key)
	switch k {
	case KeyCaseCamel:
		for i, word := range words {
			if i == 0 {
				words[i] = strings.ToLower(word)
			} else {
				words[i] = strings.Title(strings.ToLower(word))
			}
		}
		return strings.Join(words, "")
	case KeyCaseKebab:
		for i, word := range words {
			words[i] = strings.ToLower(word)
		}
		return strings.Join(words, "-")
	case KeyCaseSnake:
		for i, word := range words {
			words[i] = strings.ToLower(word)
		}
		return strings.Join(words, "_")
	default:
		return key
	}
}

// apply returns a copy of data with all map keys converted to k. Values and
// non-map data are returned unchanged.
func (k KeyCase) apply(data interface{}) interface{} {
	switch data := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(data))
		for key, value := range data {
			result[k.convert(key)] = k.apply(value)
		}
		return result
	case map[interface{}]interface{}:
		result := make(map[interface{}]interface{}, len(data))
		for key, value := range data {
			if s, ok := key.(string); ok {
				result[k.convert(s)] = k.apply(value)
			} else {
				result[key] = k.apply(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(data))
		for i, value := range data {
			result[i] = k.apply(value)
		}
		return result
	default:
		return data
	}
}

// splitWords splits a key into its words, breaking at separators and at
// lower-to-upper case boundaries. Acronym runs like URL stay together.
func splitWords(key string) []string {
	var words []string
	var word []rune
	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = nil
		}
	}
	runes := []rune(key)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
			word = append(word, r)
		case unicode.IsUpper(r) && i > 0 && unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// last letter of an acronym run followed by a regular word, e.g.
			// the S in "HTTPServer"
			flush()
			word = append(word, r)
		default:
			word = append(word, r)
		}
	}
	flush()
	return words
}
