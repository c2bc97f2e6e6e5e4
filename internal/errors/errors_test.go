package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestUserMessage(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", stderrors.New("boom"), "boom"},
		{"validation", ValidationError("name", "please fill in the channel name"), "please fill in the channel name"},
		{"rejected_verbatim", RegistryRejected("create_channel", "name already exists"), "name already exists"},
		{"transport_keeps_cause", HTTPRequestError("http://r/api/channel/", "POST", cause), "POST request to http://r/api/channel/ failed: connection refused"},
		{"wrapped", fmt.Errorf("outer: %w", StaleDraftError("models")), "submission failed, please do not submit twice"},
		{"invalid_json_headers", InvalidJSONError("headers", cause), "headers must be valid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Fatalf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_ChainAndCode(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("disk full")
	err := fmt.Errorf("record: %w", DBInsertError("submissions", cause))

	if !stderrors.Is(err, cause) {
		t.Fatal("errors.Is should reach the underlying cause")
	}
	if !HasErrorCode(err, ErrCodeDBInsert) || GetErrorCode(cause) != "" {
		t.Fatalf("code lookup wrong: %q", GetErrorCode(err))
	}

	e := ExpansionError(3, "").WithContext("text_lines", 4)
	if e.Message != "invalid proxy address format (line 3)" || e.Context["text_lines"] != 4 {
		t.Fatalf("expansion error = %+v", e)
	}
	if e.Error() != "[EXPANSION] invalid proxy address format (line 3)" {
		t.Fatalf("Error() = %q", e.Error())
	}
}
