package viewmodel

// DetailView is a titled list of labelled values.
type DetailView struct {
	Title    string
	Subtitle string
	Fields   []Field
	Hints    []string
}

// Field is one labelled value of a detail screen.
type Field struct {
	Label string
	Value string
	// Swatch is a hex colour drawn next to the value, if set.
	Swatch string
}

// Value returns the value of the field with the given label.
func (v DetailView) Value(label string) (string, bool) {
	for _, f := range v.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}
