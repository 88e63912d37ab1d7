package plan

import "github.com/aem-labs/aemx/internal/scaffold"

// Plan is a batch of scaffolds. Components are generated before client
// libraries so a library can target a component created by the same plan.
type Plan struct {
	Requires   string      `yaml:"requires,omitempty" json:"requires,omitempty"`
	Components []Component `yaml:"components,omitempty" json:"components,omitempty"`
	ClientLibs []ClientLib `yaml:"clientlibs,omitempty" json:"clientlibs,omitempty"`
}

// Component is one component entry of a plan.
type Component struct {
	Parent       string `yaml:"parent,omitempty" json:"parent,omitempty"`
	Title        string `yaml:"title" json:"title"`
	Group        string `yaml:"group" json:"group"`
	Dialog       bool   `yaml:"dialog,omitempty" json:"dialog,omitempty"`
	CqDialog     bool   `yaml:"cqDialog,omitempty" json:"cqDialog,omitempty"`
	CqEditConfig bool   `yaml:"cqEditConfig,omitempty" json:"cqEditConfig,omitempty"`
	CqTemplate   bool   `yaml:"cqTemplate,omitempty" json:"cqTemplate,omitempty"`
}

// ClientLib is one client-library entry of a plan.
type ClientLib struct {
	Parent     string `yaml:"parent,omitempty" json:"parent,omitempty"`
	Categories string `yaml:"categories" json:"categories"`
	CSS        bool   `yaml:"css,omitempty" json:"css,omitempty"`
	Less       bool   `yaml:"less,omitempty" json:"less,omitempty"`
	JS         bool   `yaml:"js,omitempty" json:"js,omitempty"`
}

// Request converts the entry into a scaffold request.
func (c Component) Request() scaffold.ComponentRequest {
	return scaffold.ComponentRequest{
		Parent:       c.Parent,
		Title:        c.Title,
		Group:        c.Group,
		Dialog:       c.Dialog,
		CqDialog:     c.CqDialog,
		CqEditConfig: c.CqEditConfig,
		CqTemplate:   c.CqTemplate,
	}
}

// Request converts the entry into a scaffold request.
func (c ClientLib) Request() scaffold.ClientLibraryRequest {
	return scaffold.ClientLibraryRequest{
		Parent:     c.Parent,
		Categories: c.Categories,
		CSS:        c.CSS,
		Less:       c.Less,
		JS:         c.JS,
	}
}
