package namereserver

// reservedWords are the target language's (TypeScript/JavaScript)
// lexically reserved identifiers. A proposed name matching one of these
// gets a trailing underscore appended (spec.md §4.3 step 2).
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "as": true, "implements": true,
	"interface": true, "let": true, "package": true, "private": true,
	"protected": true, "public": true, "static": true, "yield": true,
	"any": true, "boolean": true, "declare": true, "get": true, "module": true,
	"require": true, "number": true, "set": true, "string": true,
	"symbol": true, "type": true, "from": true, "of": true, "namespace": true,
	"never": true, "readonly": true, "unknown": true, "object": true,
	"asserts": true, "is": true, "keyof": true, "infer": true,
	"undefined": true, "await": true, "async": true, "global": true,
	"abstract": true, "constructor": true,
}

func isReservedWord(s string) bool {
	return reservedWords[s]
}
