package scoring

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"I have a little kitten.", "i have a little kitten"},
		{"  Every   morning\tI wake\nup  ", "every morning i wake up"},
		{"At 7 o’clock", "at 7 oclock"},
		{"work-life balance!", "worklife balance"},
		{"Résumé", "rsum"},
		{"?!", ""},
		{"a ! b", "a b"},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"A black cat is sitting in a box",
		"  Remote work improves productivity and work-life balance. ",
		"John: Working from home has made my life easier. Anna: Really?",
		"\t\n",
		"ÄÖÜ 123 abc",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeValue(t *testing.T) {
	if got := NormalizeValue(nil); got != "" {
		t.Fatalf("expected empty string for nil, got %q", got)
	}
	if got := NormalizeValue(42); got != "42" {
		t.Fatalf("expected 42, got %q", got)
	}
	if got := NormalizeValue("Hi There"); got != "hi there" {
		t.Fatalf("expected hi there, got %q", got)
	}
}

func TestTokens(t *testing.T) {
	if toks := Tokens("   "); len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", toks)
	}
	toks := Tokens("A black cat is sitting in a box")
	if len(toks) != 8 {
		t.Fatalf("expected 8 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0] != "a" || toks[7] != "box" {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}
