package typescript

import "testing"

func TestNewExportConfigDefaults(t *testing.T) {
	conf := NewExportConfig()
	if conf.BigInt != BigIntFail {
		t.Errorf("default BigInt = %v, want BigIntFail", conf.BigInt)
	}
	if conf.CommentExporter == nil {
		t.Error("default CommentExporter is nil, want JSDoc")
	}
	if conf.ExportByDefault != nil {
		t.Errorf("default ExportByDefault = %v, want unset", *conf.ExportByDefault)
	}
}

func TestConfigChaining(t *testing.T) {
	conf := NewExportConfig().
		Bigint(BigIntNumber).
		CommentStyle(nil).
		SetExportByDefault(false)

	if conf.BigInt != BigIntNumber {
		t.Errorf("BigInt = %v, want BigIntNumber", conf.BigInt)
	}
	if conf.CommentExporter != nil {
		t.Error("CommentExporter survived CommentStyle(nil)")
	}
	if conf.ExportByDefault == nil || *conf.ExportByDefault {
		t.Error("ExportByDefault not set to false")
	}
}

func TestBigintFailWithReason(t *testing.T) {
	conf := NewExportConfig().Bigint(BigIntNumber).BigintFailWithReason("use string ids")
	if conf.BigInt != BigIntFail {
		t.Error("BigintFailWithReason did not reset the policy to fail")
	}
	if conf.BigIntFailReason != "use string ids" {
		t.Errorf("BigIntFailReason = %q", conf.BigIntFailReason)
	}
}

func TestJSDoc(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "empty", lines: nil, want: ""},
		{name: "single line", lines: []string{"A user."}, want: "/**\n * A user.\n */\n"},
		{
			name:  "multi line",
			lines: []string{"A user.", "@deprecated use Account"},
			want:  "/**\n * A user.\n * @deprecated use Account\n */\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JSDoc(tt.lines); got != tt.want {
				t.Errorf("JSDoc() = %q, want %q", got, tt.want)
			}
		})
	}
}
