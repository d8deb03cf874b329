package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by release
// so a shared Redis never serves artifacts drawn by another version.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "dialoguewheel/v0.3.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer prepends prefix to every key of inner. A nil inner uses
// the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sourceHash, opts)
}

// DiagramKey implements Keyer.
func (k *ScopedKeyer) DiagramKey(sourceHash string, opts DiagramKeyOpts) string {
	return k.prefix + k.inner.DiagramKey(sourceHash, opts)
}
