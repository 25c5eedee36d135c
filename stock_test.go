package scrub

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestSquish(t *testing.T) {
	s := Squish()

	tests := []struct {
		input    any
		expected any
	}{
		{" a   b ", "a b"},
		{"Steve\t\nRichert", "Steve Richert"},
		{"   ", nil},
		{42, 42},
	}
	for _, tt := range tests {
		got, err := s.Scrub(tt.input)
		if err != nil {
			t.Fatalf("Scrub(%v) error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("Scrub(%q) = %#v, want %#v", tt.input, got, tt.expected)
		}
	}
}

func TestCaseScrubbers(t *testing.T) {
	tests := []struct {
		name     string
		s        Scrubber
		input    string
		expected string
	}{
		{"downcase", Downcase(), "Steve@Example.COM", "steve@example.com"},
		{"upcase", Upcase(), "steve", "STEVE"},
		{"titleize", Titleize(), "steve richert", "Steve Richert"},
		{"titleize mixed", Titleize(), "sTEVE", "Steve"},
		{"titleize blank", Titleize(), "  ", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.Scrub(tt.input)
			if err != nil {
				t.Fatalf("Scrub() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Scrub(%q) = %v, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStrings_NonString(t *testing.T) {
	s := Strings(strings.ToUpper)
	if got, _ := s.Scrub(7); got != 7 {
		t.Errorf("Scrub(7) = %v, want 7", got)
	}
}

func TestNormalize(t *testing.T) {
	s := Normalize()

	got, err := s.Scrub(" e\u0301 ")
	if err != nil {
		t.Fatalf("Scrub() error: %v", err)
	}
	if got != "\u00e9" {
		t.Errorf("Scrub() = %q, want composed form", got)
	}
	if got, _ := s.Scrub("  "); got != nil {
		t.Errorf("Scrub(blank) = %#v, want nil", got)
	}
}

func TestNullify(t *testing.T) {
	got, err := Nullify().Scrub("anything")
	if err != nil || got != nil {
		t.Errorf("Scrub() = %v, %v; want nil, nil", got, err)
	}
}

func TestChain(t *testing.T) {
	s := Chain(Squish(), Upcase())
	if got, _ := s.Scrub(" a  b "); got != "A B" {
		t.Errorf("Scrub() = %v, want %q", got, "A B")
	}

	boom := errors.New("boom")
	called := false
	s = Chain(
		Func(func(any) (any, error) { return nil, boom }),
		Func(func(v any) (any, error) { called = true; return v, nil }),
	)
	if _, err := s.Scrub("x"); !errors.Is(err, boom) {
		t.Errorf("Scrub() error = %v, want boom", err)
	}
	if called {
		t.Error("Chain should stop at the first error")
	}
}

func TestBcrypt(t *testing.T) {
	s := Bcrypt(bcrypt.MinCost)

	got, err := s.Scrub("secret")
	if err != nil {
		t.Fatalf("Scrub() error: %v", err)
	}
	digest, ok := got.(string)
	if !ok {
		t.Fatalf("Scrub() = %T, want string", got)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte("secret")); err != nil {
		t.Errorf("digest does not match password: %v", err)
	}

	if got, _ := s.Scrub("  "); got != nil {
		t.Errorf("Scrub(blank) = %#v, want nil", got)
	}
	if got, _ := s.Scrub(12); got != 12 {
		t.Errorf("Scrub(12) = %v, want unchanged", got)
	}
}

func TestBcrypt_InvalidCost(t *testing.T) {
	_, err := Bcrypt(bcrypt.MaxCost + 1).Scrub("secret")
	if err == nil {
		t.Fatal("expected error for cost above MaxCost")
	}
	var costErr bcrypt.InvalidCostError
	if !errors.As(err, &costErr) {
		t.Errorf("error = %v, want bcrypt.InvalidCostError", err)
	}
}

func TestSHA256(t *testing.T) {
	got, err := SHA256().Scrub("abc")
	if err != nil {
		t.Fatalf("Scrub() error: %v", err)
	}
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("Scrub() = %v, want %s", got, want)
	}
}

func TestNamed(t *testing.T) {
	for _, name := range []ScrubberName{
		ScrubDefault, ScrubSquish, ScrubDowncase, ScrubUpcase, ScrubTitleize,
		ScrubNormalize, ScrubNullify, ScrubBcrypt, ScrubSHA256,
	} {
		if !IsValidScrubberName(name) {
			t.Errorf("IsValidScrubberName(%q) = false", name)
		}
		if s, ok := Named(name); !ok || s == nil {
			t.Errorf("Named(%q) missing", name)
		}
	}

	if IsValidScrubberName("shout") {
		t.Error("IsValidScrubberName(shout) = true")
	}
	if _, ok := Named("shout"); ok {
		t.Error("Named(shout) should not resolve")
	}
}
