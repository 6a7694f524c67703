package table

import "testing"

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   string
		wantOK bool
	}{
		{"number", Number(42), "42", true},
		{"numeric text", String("42"), "42", true},
		{"numeric text with decimals", String("42.0"), "42", true},
		{"padded numeric text", String("  7 "), "7", true},
		{"plain text", String("alice"), "alice", true},
		{"padded text", String("  alice "), "alice", true},
		{"bool", Bool(true), "true", true},
		{"missing", Missing(), "", false},
		{"empty string", String(""), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalKey(tt.value)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("CanonicalKey(%v) = (%q, %v), want (%q, %v)", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCanonicalKeyCoercionPairs(t *testing.T) {
	pairs := []struct {
		name string
		a, b Value
	}{
		{"text 42 vs number 42", String("42"), Number(42)},
		{"number 7 vs padded text", Number(7), String(" 7 ")},
		{"scientific text vs number", String("1e2"), Number(100)},
		{"large integer text vs number", String("123456789012"), Number(123456789012)},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			ka, _ := CanonicalKey(p.a)
			kb, _ := CanonicalKey(p.b)
			if ka != kb {
				t.Errorf("keys differ: %q vs %q", ka, kb)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Missing(), ""},
		{String("x "), "x "},
		{Number(1.5), "1.5"},
		{Number(3), "3"},
		{Number(1000000), "1000000"},
		{Number(123456789012), "123456789012"},
		{Number(0.00001), "0.00001"},
		{Bool(false), "false"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("Value.String() = %q, want %q", got, tt.want)
		}
	}
}
