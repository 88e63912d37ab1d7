package plan

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version string of builds made without release ldflags.
const DevVersion = "dev"

// CheckRequires verifies that version satisfies the plan's requires
// constraint. Plans without a constraint and development builds always pass.
func (p *Plan) CheckRequires(version string) error {
	if p.Requires == "" || version == DevVersion {
		return nil
	}

	constraint, err := semver.NewConstraint(p.Requires)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", p.Requires, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}
	if ok, errs := constraint.Validate(v); !ok {
		reasons := make([]string, 0, len(errs))
		for _, e := range errs {
			reasons = append(reasons, e.Error())
		}
		return fmt.Errorf("plan requires aemx %s: %s", p.Requires, strings.Join(reasons, "; "))
	}
	return nil
}
