package doctor

// Report summarizes a layout check.
type Report struct {
	Areas    int      // number of areas in the spec
	Required int      // total required paths, children included
	Roots    []string // resolved area roots, in spec order
	Missing  []string // declared paths that do not exist
}

// Ok reports whether every declared path exists.
func (r *Report) Ok() bool {
	return len(r.Missing) == 0
}
