package ir

import "testing"

func TestPrimitiveWide(t *testing.T) {
	tests := []struct {
		name string
		typ  *PrimitiveType
		want bool
	}{
		{name: "i8", typ: Int(8), want: false},
		{name: "i32", typ: Int(32), want: false},
		{name: "i64", typ: Int(64), want: true},
		{name: "i128", typ: Int(128), want: true},
		{name: "isize", typ: Int(0), want: true},
		{name: "u32", typ: Uint(32), want: false},
		{name: "u64", typ: Uint(64), want: true},
		{name: "usize", typ: Uint(0), want: true},
		{name: "f64 is exact by definition", typ: Float(64), want: false},
		{name: "bool", typ: Bool(), want: false},
		{name: "string", typ: String(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Wide(); got != tt.want {
				t.Errorf("Wide() = %v, want %v", got, tt.want)
			}
		})
	}
}
