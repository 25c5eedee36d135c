package scrub

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ScrubberName identifies a built-in scrubber.
// Use these constants in struct tags: `scrub:"squish"`
type ScrubberName string

const (
	ScrubDefault   ScrubberName = "default"   // " Steve " -> "Steve", " " -> nil
	ScrubSquish    ScrubberName = "squish"    // " a   b " -> "a b"
	ScrubDowncase  ScrubberName = "downcase"  // "Steve" -> "steve"
	ScrubUpcase    ScrubberName = "upcase"    // "Steve" -> "STEVE"
	ScrubTitleize  ScrubberName = "titleize"  // "steve richert" -> "Steve Richert"
	ScrubNormalize ScrubberName = "normalize" // NFC form, trimmed, blank -> nil
	ScrubNullify   ScrubberName = "nullify"   // anything -> nil
	ScrubBcrypt    ScrubberName = "bcrypt"    // "secret" -> "$2a$10$..."
	ScrubSHA256    ScrubberName = "sha256"    // "secret" -> hex digest
)

// builtinScrubbers returns the scrubbers addressable by name.
func builtinScrubbers() map[ScrubberName]Scrubber {
	return map[ScrubberName]Scrubber{
		ScrubDefault:   DefaultScrubber(),
		ScrubSquish:    Squish(),
		ScrubDowncase:  Downcase(),
		ScrubUpcase:    Upcase(),
		ScrubTitleize:  Titleize(),
		ScrubNormalize: Normalize(),
		ScrubNullify:   Nullify(),
		ScrubBcrypt:    Bcrypt(bcrypt.DefaultCost),
		ScrubSHA256:    SHA256(),
	}
}

// IsValidScrubberName returns true if name is a known built-in scrubber.
func IsValidScrubberName(name ScrubberName) bool {
	_, ok := builtinScrubbers()[name]
	return ok
}

// Named returns the built-in scrubber for name.
func Named(name ScrubberName) (Scrubber, bool) {
	s, ok := builtinScrubbers()[name]
	return s, ok
}

// Strings adapts a string function to Scrubber.
// Values that are not strings are returned unchanged.
func Strings(fn func(string) string) Scrubber {
	return Func(func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		return fn(s), nil
	})
}

// Chain runs scrubbers in order, feeding each the previous result.
// The first error stops the chain.
func Chain(scrubbers ...Scrubber) Scrubber {
	return Func(func(value any) (any, error) {
		var err error
		for _, s := range scrubbers {
			if value, err = s.Scrub(value); err != nil {
				return nil, err
			}
		}
		return value, nil
	})
}

// Squish trims, collapses runs of inner whitespace to a single space, and
// turns blank strings into nil.
func Squish() Scrubber {
	return Func(func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return DefaultScrubber().Scrub(value)
		}
		if IsBlank(s) {
			return nil, nil
		}
		return strings.Join(strings.Fields(s), " "), nil
	})
}

// Downcase lowercases strings.
func Downcase() Scrubber {
	return Strings(strings.ToLower)
}

// Upcase uppercases strings.
func Upcase() Scrubber {
	return Strings(strings.ToUpper)
}

// Titleize capitalizes the first letter of each word.
// Blank strings are kept as they are.
func Titleize() Scrubber {
	return Strings(func(s string) string {
		// Casers are stateful; one per call.
		return cases.Title(language.Und).String(s)
	})
}

// Normalize converts strings to Unicode NFC, then applies the default scrubber.
func Normalize() Scrubber {
	return Chain(Strings(norm.NFC.String), DefaultScrubber())
}

// Nullify discards every value.
func Nullify() Scrubber {
	return Const(func() (any, error) { return nil, nil })
}

// bcryptScrubber digests passwords as they are assigned.
type bcryptScrubber struct {
	cost int
}

// Bcrypt returns a scrubber that replaces non-blank strings with their bcrypt
// digest. Blank strings become nil so an empty password is never digested.
func Bcrypt(cost int) Scrubber {
	return &bcryptScrubber{cost: cost}
}

func (b *bcryptScrubber) Scrub(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}
	if IsBlank(s) {
		return nil, nil
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(s), b.cost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt: %w", err)
	}
	return string(digest), nil
}

// SHA256 replaces strings with their hex-encoded SHA-256 digest.
// Use for fingerprints, NOT for passwords.
func SHA256() Scrubber {
	return Strings(func(s string) string {
		sum := sha256.Sum256([]byte(s))
		return hex.EncodeToString(sum[:])
	})
}
