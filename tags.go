package scrub

import "strings"

// DeclareTags declares scrubbers on c from the `scrub` struct tags of T.
//
//	type User struct {
//	    FirstName string `db:"first_name" scrub:""`
//	    Email     string `db:"email" scrub:"downcase"`
//	    Password  string `db:"password_digest" scrub:"bcrypt"`
//	}
//
// An empty tag declares the class default. Any other value must name a
// built-in scrubber; an unknown name returns a *ConfigError wrapping
// ErrInvalidTag and declares nothing.
func DeclareTags[T any](c *Class) error {
	type declaration struct {
		column string
		s      Scrubber
	}

	var decls []declaration
	for _, f := range modelFields[T]() {
		if !f.tagged {
			continue
		}
		name := strings.TrimSpace(f.scrub)
		if name == "" {
			decls = append(decls, declaration{column: f.column})
			continue
		}
		s, ok := Named(ScrubberName(name))
		if !ok {
			return newConfigError(ErrInvalidTag, c.name, f.name, name)
		}
		if ScrubberName(name) == ScrubDefault {
			s = nil
		}
		decls = append(decls, declaration{column: f.column, s: s})
	}

	for _, d := range decls {
		c.ScrubWith(d.s, d.column)
	}
	return nil
}
