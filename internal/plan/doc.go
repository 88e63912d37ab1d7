// Package plan handles scaffold plans: YAML files listing the components and
// client libraries to generate in one run. Plans are validated against an
// embedded JSON Schema, checked against the CLI version they require, and
// applied in order through a scaffold.Backend.
package plan
