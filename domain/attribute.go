package domain

// Attribute is one readable (and possibly writable) value of the management surface.
// Value holds JSON-like data: nil, bool, float64/int kinds, string, []any or map[string]any.
type Attribute struct {
	Name        string
	Description string
	Value       any
	Writable    bool
}

// Operation is an invocable management action.
type Operation struct {
	Name        string
	Description string
}
