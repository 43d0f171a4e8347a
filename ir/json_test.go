package ir

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestMarshalDatatypes(t *testing.T) {
	tests := []struct {
		name string
		typ  DataType
		want string
	}{
		{name: "any", typ: Any(), want: `{"kind":"any"}`},
		{name: "string", typ: String(), want: `{"kind":"primitive","primitiveKind":"String"}`},
		{name: "i64", typ: I64(), want: `{"kind":"primitive","primitiveKind":"Int","bitSize":64}`},
		{name: "literal", typ: LitString("on"), want: `{"kind":"literal","value":"on"}`},
		{name: "nullable", typ: NullableOf(Bool()), want: `{"kind":"nullable","inner":{"kind":"primitive","primitiveKind":"Bool"}}`},
		{name: "list", typ: List(String()), want: `{"kind":"list","element":{"kind":"primitive","primitiveKind":"String"}}`},
		{name: "reference", typ: Ref("User"), want: `{"kind":"reference","name":"User"}`},
		{name: "generic", typ: Generic("T"), want: `{"kind":"generic","ident":"T"}`},
		{name: "placeholder", typ: Placeholder(), want: `{"kind":"placeholder"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.typ)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestMarshalRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Def("User", Object("User",
		Field("id", I32()),
		OptionalField("email", String()),
	), "A registered account."))
	reg.Add(Def("Status", Enum("Status", Untagged(),
		Unnamed("Active", LitString("active")),
	)))

	data, err := json.Marshal(reg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out := string(data)
	if !strings.HasPrefix(out, "[") {
		t.Errorf("registry does not marshal as an array: %s", out)
	}
	// Insertion order is part of the format.
	if strings.Index(out, `"User"`) > strings.Index(out, `"Status"`) {
		t.Errorf("definitions out of order: %s", out)
	}
	for _, want := range []string{
		`"comments":["A registered account."]`,
		`"optional":true`,
		`"repr":"Untagged"`,
		`"shape":"unnamed"`,
		`"value":"active"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("marshaled registry missing %s: %s", want, out)
		}
	}
}
