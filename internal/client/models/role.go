package models

import (
	"encoding/json"
)

// Role is the sole axis of authorization in the portal.
type Role string

const (
	RoleSubmitter Role = "submitter"
	RoleRecycler  Role = "recycler"
	RoleAdmin     Role = "admin"
)

// roleWireSubmitter is the value the backend uses for submitters.
const roleWireSubmitter = "user"

// Known reports whether the role is one of the defined values. Authorization
// checks must treat anything else as unprivileged.
func (r Role) Known() bool {
	switch r {
	case RoleSubmitter, RoleRecycler, RoleAdmin:
		return true
	}
	return false
}

// ParseRole maps a wire role value to a Role. Unknown values are returned
// as-is so that Known() fails for them.
func ParseRole(s string) Role {
	if s == roleWireSubmitter {
		return RoleSubmitter
	}
	return Role(s)
}

// WireValue returns the value the backend expects for this role.
func (r Role) WireValue() string {
	if r == RoleSubmitter {
		return roleWireSubmitter
	}
	return string(r)
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseRole(s)
	return nil
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.WireValue())
}
