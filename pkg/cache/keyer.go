package cache

// Keyer produces cache keys for each pipeline stage.
//
// Keys are derived from a content hash of the stage's input plus the options
// that shaped the output, so equivalent requests share entries and any
// changed knob misses cleanly.
type Keyer interface {
	// TreeKey keys a parsed tree by the hash of its Newick source.
	TreeKey(newickHash string) string

	// LayoutKey keys a computed layout by tree hash and layout options.
	LayoutKey(treeHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact by layout hash and format.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the layout options that participate in layout keys.
type LayoutKeyOpts struct {
	Direction string
	Width     float64
	Height    float64
}

// ArtifactKeyOpts are the render options that participate in artifact keys.
type ArtifactKeyOpts struct {
	Format string
}

// DefaultKeyer is the standard key scheme: stage prefix plus SHA-256 of the
// serialized parts.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TreeKey generates a key for parsed tree caching.
func (k *DefaultKeyer) TreeKey(newickHash string) string {
	return hashKey("tree", newickHash)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", treeHash, opts)
}

// ArtifactKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
