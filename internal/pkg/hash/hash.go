package hash

// Hash abstracts a one-way hash used for secrets such as passwords and
// one-time codes.
type Hash interface {
	// Hash takes a plaintext string and returns its hashed representation.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
