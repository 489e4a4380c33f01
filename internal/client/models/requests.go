package models

import (
	"fmt"

	"github.com/ewasteportal/ewastecli/internal/common"
)

// Registration is the payload for account creation. Recycler accounts carry
// the metadata of the center created alongside them.
type Registration struct {
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Name            string   `json:"name,omitempty"`
	Role            Role     `json:"role"`
	CenterName      string   `json:"center_name,omitempty"`
	CenterLatitude  *float64 `json:"center_latitude,omitempty"`
	CenterLongitude *float64 `json:"center_longitude,omitempty"`
}

// Validate checks the payload before any network call is made. The server
// enforces the same rules; checking here keeps invalid input from ever
// leaving the client.
func (r Registration) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if len(r.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", common.ErrValidation)
	}
	if !r.Role.Known() {
		return fmt.Errorf("%w: unknown role %q", common.ErrValidation, string(r.Role))
	}
	if r.Role == RoleRecycler {
		if r.CenterName == "" || r.CenterLatitude == nil || r.CenterLongitude == nil {
			return fmt.Errorf("%w: recycler registration requires center name and coordinates", common.ErrValidation)
		}
	}
	return nil
}

// NewReport is the payload for submitting an e-waste item: the image bytes
// and an optional target center.
type NewReport struct {
	FileName string
	Data     []byte
	CenterID *int64
}

// Validate blocks submissions with no image selected.
func (n NewReport) Validate() error {
	if n.FileName == "" || len(n.Data) == 0 {
		return fmt.Errorf("%w: please select an image", common.ErrValidation)
	}
	return nil
}
