package advice

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "validate-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"level": map[string]any{
					"type": "string",
					"enum": []any{"E", "D", "C"},
				},
				"months": map[string]any{"type": "number"},
			},
			"required": []any{"level"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"level":"D","months":12}`, false},
		{"missing required", `{"months":12}`, true},
		{"bad enum value", `{"level":"A"}`, true},
		{"wrong type", `{"level":"D","months":"twelve"}`, true},
		{"not json", `level: D`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should skip validation: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error: anthropic selected without key")
	}

	cfg.Anthropic.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock needs no key: %v", err)
	}

	cfg.Provider = "nonsense"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
