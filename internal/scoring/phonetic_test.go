package scoring

import "testing"

func TestPhoneticHints(t *testing.T) {
	hints := PhoneticHints("I have a little kitten", "I have a litle kiten")
	if len(hints) != 5 {
		t.Fatalf("expected 5 hints, got %d", len(hints))
	}
	if hints[3].Word != "little" || hints[3].Heard != "litle" {
		t.Fatalf("unexpected hint: %+v", hints[3])
	}
	if !hints[3].SoundsLike {
		t.Fatalf("expected litle to sound like little: %+v", hints[3])
	}
	if hints[1].Similarity != 1 || hints[1].Heard != "have" {
		t.Fatalf("expected exact match for have: %+v", hints[1])
	}
}

func TestPhoneticHintsEmptyTranscript(t *testing.T) {
	hints := PhoneticHints("Traveling helps", "")
	if len(hints) != 2 {
		t.Fatalf("expected 2 hints, got %d", len(hints))
	}
	for _, h := range hints {
		if h.Heard != "" || h.Similarity != 0 || h.SoundsLike {
			t.Fatalf("expected empty hint, got %+v", h)
		}
	}
}
