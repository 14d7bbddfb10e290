package utils

import (
	"encoding/json"
	"testing"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"markdown fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", "Here is the itinerary:\n{\"a\":1}", `{"a":1}`},
		{"trailing prose", `{"a":1} hope this helps`, `{"a":1}`},
		{"array", "```\n[1,2,3]\n```", `[1,2,3]`},
		{"braces inside strings", `{"title":"Day 1: {arrival}"}`, `{"title":"Day 1: {arrival}"}`},
		{"escaped quotes", `{"t":"he said \"go\" {now}"}`, `{"t":"he said \"go\" {now}"}`},
		{"object before array", `{"a":[1,2]} [3]`, `{"a":[1,2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanJSONResponse(tt.input)
			if got != tt.want {
				t.Fatalf("CleanJSONResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !json.Valid([]byte(got)) {
				t.Fatalf("result is not valid JSON: %q", got)
			}
		})
	}
}

func TestTextToVectorDeterministic(t *testing.T) {
	a := textToVector("Kyoto Japan")
	b := textToVector("kyoto  japan") // case and spacing must not matter
	if a.String() != b.String() {
		t.Fatal("vector should be stable under case/spacing changes")
	}

	c := textToVector("Lisbon Portugal")
	if a.String() == c.String() {
		t.Fatal("different texts should not collide")
	}

	// Normalized output: unit magnitude within float tolerance.
	var sum float64
	for _, v := range a.Slice() {
		sum += float64(v) * float64(v)
	}
	if sum < 0.99 || sum > 1.01 {
		t.Fatalf("vector magnitude^2 = %f, want ~1", sum)
	}
}
