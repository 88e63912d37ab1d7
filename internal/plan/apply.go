package plan

import (
	"fmt"

	"github.com/aem-labs/aemx/internal/scaffold"
)

// Apply validates and runs every entry in order: components first, then
// client libraries. It stops at the first failure and leaves whatever was
// already generated in place.
func Apply(s *scaffold.Scaffolder, b scaffold.Backend, p *Plan) error {
	for i, c := range p.Components {
		req := c.Request()
		if err := scaffold.ValidateComponent(b, req); err != nil {
			return fmt.Errorf("components[%d] %q: %w", i, c.Title, err)
		}
		if err := s.Component(req); err != nil {
			return fmt.Errorf("components[%d] %q: %w", i, c.Title, err)
		}
	}
	for i, l := range p.ClientLibs {
		req := l.Request()
		if err := scaffold.ValidateClientLibrary(b, req); err != nil {
			return fmt.Errorf("clientlibs[%d] %q: %w", i, l.Categories, err)
		}
		if err := s.ClientLibrary(req); err != nil {
			return fmt.Errorf("clientlibs[%d] %q: %w", i, l.Categories, err)
		}
	}
	return nil
}
