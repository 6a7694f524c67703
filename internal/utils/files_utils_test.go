package utils

import (
	"reflect"
	"testing"
)

func TestGetDefaultOutputFilePath(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"people.csv", "people_lookup.csv"},
		{"people.xlsx", "people_lookup.csv"},
		{"/data/dir/people.xls", "people_lookup.csv"},
		{"noext", "noext_lookup.csv"},
	}
	for _, tt := range tests {
		if got := GetDefaultOutputFilePath(tt.base); got != tt.want {
			t.Errorf("GetDefaultOutputFilePath(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestParseColumnsFlag(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    []string
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "dept", []string{"dept"}, false},
		{"multiple", "dept,location", []string{"dept", "location"}, false},
		{"spaces trimmed", " dept , location ", []string{"dept", "location"}, false},
		{"quoted comma", `dept,"last, first"`, []string{"dept", "last, first"}, false},
		{"trailing comma", "dept,", []string{"dept"}, false},
		{"unterminated quote", `dept,"oops`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumnsFlag(tt.flag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColumnsFlag(%q) error = %v, wantErr %v", tt.flag, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseColumnsFlag(%q) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}
