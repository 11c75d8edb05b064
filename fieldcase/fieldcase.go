// Package fieldcase converts JSON field naming between the camelCase used at
// the API edge and the snake_case used internally (Mongo documents, LLM
// structured output). Struct-to-struct mapping lives in the gateway services;
// this package covers dynamic payloads where keys are not known ahead of time.
package fieldcase

import (
	"strings"
	"unicode"
)

// ToSnake converts a camelCase key to snake_case.
// Consecutive upper-case runs are kept together: "imageURL" -> "image_url".
func ToSnake(key string) string {
	if key == "" {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	runes := []rune(key)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// 단어 경계: 소문자 뒤의 대문자, 또는 대문자 런의 마지막 글자
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || (unicode.IsUpper(runes[i-1]) && nextLower)) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamel converts a snake_case key to camelCase.
// Leading underscores are preserved so Mongo-style keys like "_id" survive.
func ToCamel(key string) string {
	if key == "" {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))
	i := 0
	for i < len(key) && key[i] == '_' {
		b.WriteByte('_')
		i++
	}
	upperNext := false
	for ; i < len(key); i++ {
		c := key[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(rune(c)))
			upperNext = false
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// MapToCamel returns a copy of m with all keys converted to camelCase,
// recursing into nested maps and slices. The input map is not modified.
func MapToCamel(m map[string]any) map[string]any {
	return convertMap(m, ToCamel)
}

// MapToSnake returns a copy of m with all keys converted to snake_case,
// recursing into nested maps and slices. The input map is not modified.
func MapToSnake(m map[string]any) map[string]any {
	return convertMap(m, ToSnake)
}

func convertMap(m map[string]any, convert func(string) string) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[convert(k)] = convertValue(v, convert)
	}
	return out
}

func convertValue(v any, convert func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		return convertMap(t, convert)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = convertValue(e, convert)
		}
		return out
	default:
		return v
	}
}
