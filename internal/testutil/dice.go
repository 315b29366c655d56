// Package testutil provides shared test helpers: forced dice, in-memory save
// slots and observed loggers.
package testutil

// FixedSource forces die faces. Each value is the 1-based face to return;
// the sequence repeats once exhausted.
//
// Precondition: Faces must be non-empty.
type FixedSource struct {
	Faces []int
	i     int
}

// NewFixedSource returns a FixedSource cycling through faces.
func NewFixedSource(faces ...int) *FixedSource {
	return &FixedSource{Faces: faces}
}

// Intn returns the next forced face, zero-based and reduced modulo n.
func (f *FixedSource) Intn(n int) int {
	face := f.Faces[f.i%len(f.Faces)]
	f.i++
	return (face - 1) % n
}

// Rolled reports how many dice have been drawn.
func (f *FixedSource) Rolled() int {
	return f.i
}
