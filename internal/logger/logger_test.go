package logger

import "testing"

func TestSanitizePayloadMasksPINs(t *testing.T) {
	payload := map[string]any{
		"accountNumber": "4000001111111111",
		"pin":           "123456",
		"nested": map[string]any{
			"PIN":    "654321",
			"amount": "50",
		},
	}

	sanitized, ok := SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("sanitized payload has unexpected shape: %#v", SanitizePayload(payload))
	}

	if sanitized["pin"] != "******" {
		t.Fatalf("pin = %v, want masked", sanitized["pin"])
	}
	if sanitized["accountNumber"] != "4000001111111111" {
		t.Fatalf("accountNumber should pass through, got %v", sanitized["accountNumber"])
	}

	nested := sanitized["nested"].(map[string]any)
	if nested["PIN"] != "******" {
		t.Fatalf("nested PIN = %v, want masked", nested["PIN"])
	}
	if nested["amount"] != "50" {
		t.Fatalf("nested amount should pass through, got %v", nested["amount"])
	}
}

func TestSanitizePayloadMasksUnderscoredKeys(t *testing.T) {
	sanitized := SanitizePayload(map[string]any{"card_pin": "111111"}).(map[string]any)
	if sanitized["card_pin"] != "******" {
		t.Fatalf("card_pin = %v, want masked", sanitized["card_pin"])
	}
}
