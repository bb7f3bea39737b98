package ptr

// Ptr returns a pointer to v. Shorthand for passing literals to optional fields.
func Ptr[T any](v T) *T {
	return &v
}
