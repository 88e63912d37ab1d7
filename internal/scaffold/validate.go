package scaffold

import (
	"fmt"
	"strings"
)

// ValidationError reports an input that must be corrected before scaffolding.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateComponent checks that the title and group are set, that the title
// names a single directory, and that no sibling directory already uses it.
func ValidateComponent(b Backend, req ComponentRequest) error {
	if req.Title == "" {
		return &ValidationError{Field: "title", Message: "Component title can't be empty"}
	}
	if req.Group == "" {
		return &ValidationError{Field: "group", Message: "Group title can't be empty"}
	}
	if !isPlainName(req.Title) {
		return &ValidationError{Field: "title", Message: "Component title can't contain path separators or be . or .."}
	}
	_, found, err := b.FindSubdirectory(req.Parent, req.Title)
	if err != nil {
		return fmt.Errorf("checking for existing component %q: %w", req.Title, err)
	}
	if found {
		return &ValidationError{Field: "title", Message: "Component with such title already exists"}
	}
	return nil
}

// ValidateClientLibrary checks that categories are set and that the parent
// does not already hold a client library.
func ValidateClientLibrary(b Backend, req ClientLibraryRequest) error {
	if req.Categories == "" {
		return &ValidationError{Field: "categories", Message: "Client lib categories can't be empty"}
	}
	_, found, err := b.FindSubdirectory(req.Parent, ClientLibraryDir)
	if err != nil {
		return fmt.Errorf("checking for existing client library: %w", err)
	}
	if found {
		return &ValidationError{Field: "categories", Message: "Client library in current component already exists"}
	}
	return nil
}

// isPlainName reports whether name is usable as a single path element.
func isPlainName(name string) bool {
	return name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
