package cache

// Keyer derives cache keys.
type Keyer interface {
	// DecompositionKey identifies the subgraphs of one resource.
	DecompositionKey(factsHash, configHash, resource string) string
	// ArtifactKey identifies one rendered subgraph.
	ArtifactKey(factsHash, configHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render inputs that distinguish artifacts.
type ArtifactKeyOpts struct {
	Resource string `json:"resource"`
	Root     string `json:"root"`
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// DefaultKeyer hashes every input into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DecompositionKey implements [Keyer].
func (DefaultKeyer) DecompositionKey(factsHash, configHash, resource string) string {
	return hashKey("decompose", factsHash, configHash, resource)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(factsHash, configHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", factsHash, configHash, opts)
}

// ScopedKeyer prefixes every key of an inner Keyer, e.g. with the program
// version so a new release does not read entries written by an older one.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or a DefaultKeyer if inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DecompositionKey implements [Keyer].
func (k *ScopedKeyer) DecompositionKey(factsHash, configHash, resource string) string {
	return k.prefix + k.inner.DecompositionKey(factsHash, configHash, resource)
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(factsHash, configHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(factsHash, configHash, opts)
}
