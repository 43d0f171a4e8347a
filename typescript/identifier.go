package typescript

import "unicode"

// Statement and expression keywords plus contextually unsafe identifiers.
// Taken from the TypeScript language reference; `type`, `declare` and
// friends are not hard keywords but break as bare declaration names.
var reservedWords = map[string]bool{
	"break":       true,
	"case":        true,
	"catch":       true,
	"class":       true,
	"const":       true,
	"continue":    true,
	"debugger":    true,
	"default":     true,
	"delete":      true,
	"do":          true,
	"else":        true,
	"enum":        true,
	"export":      true,
	"extends":     true,
	"false":       true,
	"finally":     true,
	"for":         true,
	"function":    true,
	"if":          true,
	"import":      true,
	"in":          true,
	"instanceof":  true,
	"new":         true,
	"null":        true,
	"return":      true,
	"super":       true,
	"switch":      true,
	"this":        true,
	"throw":       true,
	"true":        true,
	"try":         true,
	"typeof":      true,
	"var":         true,
	"void":        true,
	"while":       true,
	"with":        true,
	"as":          true,
	"implements":  true,
	"interface":   true,
	"let":         true,
	"package":     true,
	"private":     true,
	"protected":   true,
	"public":      true,
	"static":      true,
	"yield":       true,
	"any":         true,
	"boolean":     true,
	"constructor": true,
	"declare":     true,
	"get":         true,
	"module":      true,
	"require":     true,
	"number":      true,
	"set":         true,
	"string":      true,
	"symbol":      true,
	"type":        true,
	"from":        true,
	"of":          true,
	"namespace":   true,
	"async":       true,
	"await":       true,
}

// SanitiseName makes a field or variant name safe to embed as an object
// key. A reserved word fails with ForbiddenFieldNameError carrying the
// owning type's name. A name that is not a valid bare identifier
// (alphanumeric, underscore or $, not starting with a digit) is returned
// wrapped in quotes as a string-literal key; a valid one is returned
// unchanged.
func SanitiseName(typeName, fieldName string) (string, error) {
	if reservedWords[fieldName] {
		return "", &ForbiddenFieldNameError{TypeName: typeName, Name: fieldName}
	}

	if !validIdentifier(fieldName) {
		return `"` + fieldName + `"`, nil
	}
	return fieldName, nil
}

// validIdentifier reports whether name is a valid bare TypeScript
// identifier, reserved words aside.
func validIdentifier(name string) bool {
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return false
		}
	}
	return true
}

// checkTypeName validates a declaration-level name. Unlike field keys, a
// declaration needs a real identifier, so nothing is auto-quoted: a
// reserved word is a hard failure.
func checkTypeName(name string) error {
	if reservedWords[name] {
		return &ForbiddenTypeNameError{Name: name}
	}
	return nil
}
