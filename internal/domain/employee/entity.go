package employee

// Employee is one floor worker. The id is external (badge number), assigned at
// registration. SupervisorID is a weak reference to a team leader; it may
// dangle after a leader is removed and callers must degrade gracefully.
type Employee struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	Role         *string `json:"role,omitempty"`
	SupervisorID *string `json:"supervisorId,omitempty"`
}
