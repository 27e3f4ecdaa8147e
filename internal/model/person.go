package model

// Person is someone transactions can be shared with or attributed to.
type Person struct {
	ID    string
	Name  string
	Email string
	Notes string
}
