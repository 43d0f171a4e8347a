package typescript

import (
	"errors"
	"testing"
)

func TestSanitiseName(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{name: "plain identifier", field: "id", want: "id"},
		{name: "underscore", field: "_internal", want: "_internal"},
		{name: "dollar", field: "$ref", want: "$ref"},
		{name: "digits after first", field: "v2", want: "v2"},
		{name: "leading digit quoted", field: "2fast", want: `"2fast"`},
		{name: "hyphen quoted", field: "content-type", want: `"content-type"`},
		{name: "space quoted", field: "full name", want: `"full name"`},
		{name: "dot quoted", field: "a.b", want: `"a.b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitiseName("T", tt.field)
			if err != nil {
				t.Fatalf("SanitiseName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SanitiseName(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestSanitiseNameReserved(t *testing.T) {
	// A sample across the keyword classes: statement keywords, strict-mode
	// words and contextual identifiers.
	for _, word := range []string{"class", "typeof", "let", "interface", "namespace", "async", "await", "type", "constructor", "from"} {
		_, err := SanitiseName("Widget", word)
		var forbidden *ForbiddenFieldNameError
		if !errors.As(err, &forbidden) {
			t.Errorf("SanitiseName(%q): got %v, want ForbiddenFieldNameError", word, err)
			continue
		}
		if forbidden.TypeName != "Widget" || forbidden.Name != word {
			t.Errorf("SanitiseName(%q): error carries %q on %q", word, forbidden.Name, forbidden.TypeName)
		}
	}
}

func TestSanitiseNameReservedNeverQuoted(t *testing.T) {
	// Every reserved word must fail rather than slip through as a quoted
	// key: quoting would silently change the declared API shape.
	for word := range reservedWords {
		if got, err := SanitiseName("T", word); err == nil {
			t.Errorf("SanitiseName(%q) = %q, want failure", word, got)
		}
	}
}

func TestCheckTypeName(t *testing.T) {
	if err := checkTypeName("User"); err != nil {
		t.Errorf("checkTypeName(User) = %v", err)
	}

	for _, word := range []string{"interface", "enum", "string", "declare"} {
		err := checkTypeName(word)
		var forbidden *ForbiddenTypeNameError
		if !errors.As(err, &forbidden) {
			t.Errorf("checkTypeName(%q): got %v, want ForbiddenTypeNameError", word, err)
		}
	}
}
