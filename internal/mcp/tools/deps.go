package tools

import (
	"github.com/usestring/typebridge-mcp/internal/cache"
	"github.com/usestring/typebridge-mcp/internal/config"
	"github.com/usestring/typebridge-mcp/internal/validate"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config     *config.Config
	Validators *cache.ValidatorCache
}

// CompileValidator returns a compiled validator for an annotation, checking
// the cache first.
func (d *Deps) CompileValidator(typeStr string) (*validate.Validator, error) {
	if v, ok := d.Validators.Get(typeStr); ok {
		return v, nil
	}
	v, err := validate.NewValidator(typeStr)
	if err != nil {
		return nil, err
	}
	d.Validators.Put(typeStr, v)
	return v, nil
}
