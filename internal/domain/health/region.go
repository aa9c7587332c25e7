package health

// BodyRegion is a node in a character's body tree
type BodyRegion struct {
	ID        string        `json:"id" yaml:"id"`
	Label     string        `json:"label" yaml:"label"`
	HitPoints float64       `json:"hit_points" yaml:"hitPoints"`
	Children  []*BodyRegion `json:"children,omitempty" yaml:"children,omitempty"`

	// Parent is a traversal link only, the tree is owned by its root
	Parent *BodyRegion `json:"-" yaml:"-"`
}

// AddChild appends child and points it back at r
func (r *BodyRegion) AddChild(child *BodyRegion) *BodyRegion {
	child.Parent = r
	r.Children = append(r.Children, child)
	return child
}

// LinkParents sets Parent on every descendant. Trees decoded from JSON or YAML
// arrive without parent links.
func (r *BodyRegion) LinkParents() {
	for _, child := range r.Children {
		child.Parent = r
		child.LinkParents()
	}
}

// Walk visits r and its descendants depth first, stopping early when fn
// returns false
func (r *BodyRegion) Walk(fn func(*BodyRegion) bool) bool {
	if r == nil {
		return true
	}
	if !fn(r) {
		return false
	}
	for _, child := range r.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the region with the given ID in r's subtree
func (r *BodyRegion) Find(id string) *BodyRegion {
	var found *BodyRegion
	r.Walk(func(region *BodyRegion) bool {
		if region.ID == id {
			found = region
			return false
		}
		return true
	})
	return found
}

// Clone deep-copies the subtree rooted at r. The copy's root has no parent.
func (r *BodyRegion) Clone() *BodyRegion {
	if r == nil {
		return nil
	}
	clone := &BodyRegion{
		ID:        r.ID,
		Label:     r.Label,
		HitPoints: r.HitPoints,
	}
	for _, child := range r.Children {
		clone.AddChild(child.Clone())
	}
	return clone
}
