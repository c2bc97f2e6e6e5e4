package util

import "testing"

func TestIndentJSON_KeepsKeyOrder(t *testing.T) {
	t.Parallel()

	got, err := IndentJSON(` {"z":1,"a":{"k":[1,2]}} `)
	if err != nil {
		t.Fatalf("IndentJSON() error = %v", err)
	}
	want := "{\n  \"z\": 1,\n  \"a\": {\n    \"k\": [\n      1,\n      2\n    ]\n  }\n}"
	if got != want {
		t.Fatalf("IndentJSON() =\n%s\nwant\n%s", got, want)
	}

	if _, err := IndentJSON("{oops"); err == nil {
		t.Fatal("IndentJSON() should reject malformed JSON")
	}
}

func TestValidJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		`{"a":"b"}`: true,
		`[]`:        true,
		`"s"`:       true,
		``:          false,
		`   `:       false,
		`{a:b}`:     false,
		`{"a":`:     false,
	}
	for in, want := range tests {
		if got := ValidJSON(in); got != want {
			t.Errorf("ValidJSON(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONEqual(t *testing.T) {
	t.Parallel()

	if !JSONEqual(`{"a":1,"b":[1,2]}`, "{\n  \"b\": [1, 2],\n  \"a\": 1\n}") {
		t.Fatal("formatting and key order should not matter")
	}
	if JSONEqual(`{"a":1}`, `{"a":2}`) || JSONEqual(`{"a":1}`, `nope`) {
		t.Fatal("different values must not compare equal")
	}
}
