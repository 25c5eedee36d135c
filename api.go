// Package scrub cleans incoming model attribute values before they are written.
//
// A host persistence layer exposes a generic write primitive (Writer) and,
// optionally, setters for virtual attributes the storage layer does not know
// about. scrub sits in front of both: every write resolves a Scrubber for the
// attribute on the model's runtime class, transforms the value, and hands the
// result to the original write path.
//
// # Declaring scrubbers
//
//	var Users = scrub.NewClass("User", scrub.WithColumns("first_name", "last_name"))
//
//	func init() {
//	    Users.Scrub("first_name", "last_name")
//	    Users.ScrubWith(scrub.Titleize(), "nickname")
//	    Users.ScrubWith(scrub.Const(func() (any, error) { return nil, nil }), "token")
//	}
//
// The default scrubber trims strings and turns blank strings into nil:
//
//	scrub.Set(user, "first_name", " Steve ")  // stored as "Steve"
//	scrub.Set(user, "first_name", "   ")      // stored as nil
//
// A custom scrubber replaces the default entirely.
//
// # Inheritance
//
// Extend creates a subclass. A subclass sees its parent's scrubbers until
// its first own declaration, which snapshots them; after that, changes on
// either class stay on that class:
//
//	Admins := Users.Extend("Admin")
//	Admins.ScrubWith(scrub.Upcase(), "first_name") // Users keeps the default
//
// Writes resolve scrubbers on the runtime class of the model, so an Admin
// instance uses the Admin declaration even for attributes first declared on
// User.
//
// # Models
//
// A model implements Writer and reports its class either by implementing
// Classed or by registering its type:
//
//	type User struct{ attrs map[string]any }
//
//	func (u *User) WriteAttribute(name string, v any) error { u.attrs[name] = v; return nil }
//	func (u *User) ScrubClass() *scrub.Class               { return Users }
//
// For builds a class straight from struct metadata: columns from `db` tags
// and declarations from `scrub` tags.
//
//	type Account struct {
//	    Email    string `db:"email" scrub:"downcase"`
//	    Password string `db:"password_digest" scrub:"bcrypt"`
//	}
//
//	Accounts, err := scrub.For[Account]("Account")
//
// # Virtual attributes
//
// Attributes outside storage are registered with Virtual. Declaring such an
// attribute installs a scrubbing wrapper in front of its setter once per
// class hierarchy:
//
//	scrub.Virtual(Users, "middle_name", func(u *User, v any) error {
//	    u.middleName = v
//	    return nil
//	})
//	Users.Scrub("middle_name")
//
// # Mass assignment
//
// Assign sets a whole attribute map; Receive decodes a payload with a Codec
// first. Codecs live in the json, yaml, msgpack and bson subpackages.
//
// # Built-in scrubbers
//
//   - DefaultScrubber: trim, blank -> nil
//   - Squish: trim, collapse inner whitespace, blank -> nil
//   - Downcase, Upcase, Titleize
//   - Normalize: Unicode NFC, then default
//   - Nullify: always nil
//   - Bcrypt(cost): password digest, blank -> nil
//   - SHA256: hex digest
//
// # Signals
//
// Declarations, wrapper installation, scrubbed writes and mass assignment
// emit capitan signals (see signals.go).
package scrub
