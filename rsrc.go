package rsrcengine

// Source is a container backend capable of answering containment and
// raw-byte queries for resource ids.
//
// A source reports absence through a not-found error from LoadBytes (and
// false from Contains); it reports a hard error only for genuine read
// failures such as truncation or permission problems. Each source must be
// independently queryable: a failure in one source never prevents the next
// source in a chain from being probed.
type Source interface {
	// Name identifies the source for error attribution, typically the
	// path of the backing file.
	Name() string

	// Contains reports whether the source holds the given resource.
	Contains(id ResourceId) bool

	// LoadBytes returns the raw bytes and declared size for a resource.
	// The declared size is the length the container claims for the
	// resource and is used as a decode precondition.
	LoadBytes(id ResourceId) ([]byte, uint32, error)
}

// Counter is implemented by sources that can report how many resources of a
// given type they hold.
type Counter interface {
	Count(kind OsType) int
}

// Lister is implemented by sources that can enumerate their resource ids.
type Lister interface {
	IDs() []ResourceId
}
