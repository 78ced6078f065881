package transport

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string and truncates
// fractions, matching how clients of the original API submitted
// quantities ("15", 15 and 15.0 are all the same value).
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("value %q is not numeric", s)
	}

	*f = FlexInt(int(v))
	return nil
}

// Int returns the coerced value.
func (f FlexInt) Int() int {
	return int(f)
}

// FlexTags accepts either a JSON array of strings or a single
// comma-joined string and normalizes both into an ordered list with
// surrounding whitespace trimmed and empty entries dropped.
type FlexTags []string

func (t *FlexTags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = normalizeTags(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("tags must be a list or a comma-separated string")
	}

	*t = normalizeTags(strings.Split(joined, ","))
	return nil
}

// parsePositiveInt parses query-string pagination values, falling back
// to the default on anything missing, malformed or non-positive.
func parsePositiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func normalizeTags(in []string) []string {
	out := []string{}
	for _, tag := range in {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
