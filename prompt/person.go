package prompt

import (
	"errors"

	"github.com/kbukum/vllm/validation"
)

// PersonInfo is the profile a prompt is rendered from.
type PersonInfo struct {
	// Name of the person. Required.
	Name string `json:"name" validate:"required"`
	// Age in years. Range [0, 150].
	Age int `json:"age" validate:"gte=0,lte=150"`
	// Occupation is the current role. Required.
	Occupation string `json:"occupation" validate:"required"`
	// Skills lists notable skills. Optional.
	Skills []string `json:"skills"`
	// ExperienceYears is the total work experience. Must not be negative.
	ExperienceYears int `json:"experience_years" validate:"gte=0"`
	// Location is the city or region. Optional.
	Location string `json:"location"`
}

// Validate checks the profile against its declared constraints, listing
// every offending field.
func (p *PersonInfo) Validate() error {
	err := validation.Struct(p)
	if err == nil {
		return nil
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return verr
	}
	return err
}
