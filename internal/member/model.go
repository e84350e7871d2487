package member

// Member is the stored identity tuple, keyed by phone number.
type Member struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Summary is the projection echoed by registration, login and profile.
// The password is never part of it.
type Summary struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// Patch carries the optional fields of a partial update. Empty fields
// are left untouched.
type Patch struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// IsEmpty reports whether the patch contains nothing to apply.
func (p Patch) IsEmpty() bool {
	return p.Name == "" && p.Phone == "" && p.Password == ""
}

// Summary projects the member to its public shape.
func (m Member) Summary() Summary {
	return Summary{Phone: m.Phone, Name: m.Name}
}
