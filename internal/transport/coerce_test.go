package transport

import (
	"encoding/json"
	"reflect"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFlexInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"number", `15`, 15, false},
		{"numeric string", `"15"`, 15, false},
		{"float truncates", `15.9`, 15, false},
		{"float string truncates", `"15.9"`, 15, false},
		{"negative", `-5`, -5, false},
		{"empty string", `""`, 0, false},
		{"null", `null`, 0, false},
		{"word", `"lots"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Int() != tt.want {
				t.Errorf("expected %d, got %d", tt.want, f.Int())
			}
		})
	}
}

func TestFlexTags_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"array", `["metal", "small"]`, []string{"metal", "small"}, false},
		{"comma string", `"metal, small"`, []string{"metal", "small"}, false},
		{"trims and drops empties", `"  metal ,, small , "`, []string{"metal", "small"}, false},
		{"empty string", `""`, []string{}, false},
		{"empty array", `[]`, []string{}, false},
		{"number", `42`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tags FlexTags
			err := json.Unmarshal([]byte(tt.input), &tags)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual([]string(tags), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, tags)
			}
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		input string
		def   int
		want  int
	}{
		{"", 10, 10},
		{"3", 10, 3},
		{"0", 10, 10},
		{"-2", 10, 10},
		{"abc", 10, 10},
	}

	for _, tt := range tests {
		if got := parsePositiveInt(tt.input, tt.def); got != tt.want {
			t.Errorf("parsePositiveInt(%q, %d) = %d, want %d", tt.input, tt.def, got, tt.want)
		}
	}
}

func TestProperty_FlexIntQuotedAndBareAgree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("a number and its quoted form coerce identically", prop.ForAll(
		func(v int) bool {
			var bare, quoted FlexInt
			if err := json.Unmarshal([]byte(strconv.Itoa(v)), &bare); err != nil {
				return false
			}
			if err := json.Unmarshal([]byte(`"`+strconv.Itoa(v)+`"`), &quoted); err != nil {
				return false
			}
			return bare.Int() == v && quoted.Int() == v
		},
		gen.IntRange(-1_000_000, 1_000_000),
	))

	properties.TestingRun(t)
}
