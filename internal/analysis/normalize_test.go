package analysis

import (
	"strings"
	"testing"
	"unicode"
)

// #region normalize-tests

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); len(got) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", got)
	}
}

func TestNormalize_DropsStopwordsAndPreservesOrder(t *testing.T) {
	got := Normalize("The Quick Brown Fox")
	want := []string{"quick", "brown", "fox"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNormalize_StripsPunctuation(t *testing.T) {
	got := Normalize(`"Stop!" cried Alice; (loudly) -- stop...`)
	want := []string{"stop", "cried", "alice", "loudly", "stop"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNormalize_DropsShortAndNonAlphabetic(t *testing.T) {
	got := Normalize("x 42 abc123 chapter ii iv")
	// "x" too short, "42" and "abc123" contain digits; "ii" and "iv" survive.
	want := []string{"chapter", "ii", "iv"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNormalize_StopwordCheckAfterLowercasing(t *testing.T) {
	for _, tok := range Normalize("THE The tHe WHALE") {
		if tok != "whale" {
			t.Errorf("stopword survived case folding: %q", tok)
		}
	}
}

func TestNormalize_KeepsDuplicates(t *testing.T) {
	got := Normalize("whale whale whale")
	if len(got) != 3 {
		t.Errorf("expected 3 tokens, got %d", len(got))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	first := Normalize("Call me Ishmael. Some years ago — never mind how long precisely...")
	second := Normalize(strings.Join(first, " "))
	if len(first) != len(second) {
		t.Fatalf("expected fixed point, got %v then %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d changed on re-run: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestNormalize_OutputInvariants(t *testing.T) {
	for _, tok := range Normalize("It was the best of times, it was the worst of times (1859).") {
		assertValidToken(t, tok)
	}
}

func assertValidToken(t *testing.T, tok string) {
	t.Helper()
	letters := 0
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			t.Errorf("token %q contains non-letter", tok)
		}
		letters++
	}
	if letters < 2 {
		t.Errorf("token %q shorter than 2 letters", tok)
	}
	if tok != strings.ToLower(tok) {
		t.Errorf("token %q not lowercase", tok)
	}
	if IsStopword(tok) {
		t.Errorf("stopword %q survived filtering", tok)
	}
}

// #endregion normalize-tests

// #region stopword-tests

func TestIsStopword(t *testing.T) {
	for _, w := range []string{"the", "and", "because", "must", "three"} {
		if !IsStopword(w) {
			t.Errorf("expected %q to be a stopword", w)
		}
	}
	for _, w := range []string{"whale", "ahab", "ocean"} {
		if IsStopword(w) {
			t.Errorf("did not expect %q to be a stopword", w)
		}
	}
}

// #endregion stopword-tests
