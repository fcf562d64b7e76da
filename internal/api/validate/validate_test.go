package validate

import (
	"strings"
	"testing"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"filled", "hello", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Required("field", tt.value)
			if (got != nil) != tt.wantErr {
				t.Errorf("Required(%q) = %v, wantErr %v", tt.value, got, tt.wantErr)
			}
		})
	}
}

func TestMaxLen(t *testing.T) {
	if e := MaxLen("title", strings.Repeat("x", 10), 10); e != nil {
		t.Errorf("MaxLen at limit = %v, want nil", e)
	}
	if e := MaxLen("title", strings.Repeat("x", 11), 10); e == nil {
		t.Error("MaxLen over limit = nil, want error")
	}
}

func TestErrsError(t *testing.T) {
	errs := Errs{
		{Field: "username", Msg: "required"},
		{Field: "password", Msg: "required"},
	}
	got := errs.Error()
	want := "username: required; password: required"
	if got != want {
		t.Errorf("Errs.Error() = %q, want %q", got, want)
	}
}
