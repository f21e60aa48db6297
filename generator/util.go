package generator

import (
	"go/token"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m4gshm/gollections/predicate/is"
	"github.com/m4gshm/gollections/slice"
)

func badSymbol(ch rune) bool {
	return !('a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' ||
		ch == '_' || ch >= utf8.RuneSelf && (unicode.IsLetter(ch)))
}

func packagePathToName(importPath string) string {
	base := path.Base(importPath)
	pathName := string(slice.Filter([]rune(base), is.Not(badSymbol)))
	return pathName
}

// TypeReceiverVar returns a short receiver name, the lowercased first letter of the type.
func TypeReceiverVar(typeName string) string {
	if parts := strings.Split(typeName, "."); len(parts) > 1 {
		if converted := slice.Convert(parts, TypeReceiverVar); len(converted[1]) > 0 && converted[1] != "r" {
			return converted[1]
		}
	} else if f, ok := slice.First([]rune(typeName), unicode.IsLetter); ok {
		return string(unicode.ToLower(f))
	}
	return "r"
}

// ArgName lowercases the leading upper case run of the name: AuthorID -> authorID, URLPath -> urlPath.
func ArgName(name string) string {
	runes := []rune(name)
	for i := 0; i < len(runes) && unicode.IsUpper(runes[i]); i++ {
		if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// IdentName exports or unexports the name by the case of its first letter.
func IdentName(name string, export bool) string {
	if len(name) == 0 {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	if export {
		return string(unicode.ToUpper(first)) + name[size:]
	}
	return string(unicode.ToLower(first)) + name[size:]
}

// LegalIdentName suffixes Go keywords.
func LegalIdentName(name string) string {
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}

func NoLint(nolint bool) string {
	if nolint {
		return "//nolint"
	}
	return ""
}
