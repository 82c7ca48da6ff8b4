package management

// Type places a member in the plant hierarchy. Exactly one member should be
// the director for the dashboard header, by convention not constraint.
type Type string

const (
	TypeDirector    Type = "director"
	TypeCoordinator Type = "coordinator"
	TypeShiftChief  Type = "shift_chief"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDirector, TypeCoordinator, TypeShiftChief:
		return true
	}
	return false
}

// Member is an entry in the management directory.
type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	ImageURL string `json:"imageUrl"`
	Motto    string `json:"motto"`
	Type     Type   `json:"type"`
}
