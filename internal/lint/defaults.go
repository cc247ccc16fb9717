package lint

// DefaultRegistry returns a registry with every built-in rule, configured
// with its defaults. Header lines come from configuration; an empty header
// rule is a no-op.
func DefaultRegistry(headerLines, todoMarkers []string) *Registry {
	reg := NewRegistry()
	reg.Register(&HeaderRule{Lines: headerLines})
	reg.Register(&TodoRule{Markers: todoMarkers})
	reg.Register(&TrailingRule{})
	return reg
}
