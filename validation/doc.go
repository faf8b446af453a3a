// Package validation provides fail-fast input validation.
//
// It supports struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report every
// offending field in a single *Error so callers can fix a whole
// configuration in one pass.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Model       string   `json:"model" validate:"required"`
//	    Temperature *float64 `json:"temperature" validate:"omitempty,gte=0,lte=2"`
//	}
//	err := validation.Struct(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("model", cfg.Model)
//	v.Range("top_k", topK, 1, 100)
//	err := v.Err()
package validation
