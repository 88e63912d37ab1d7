package scaffold

import (
	"fmt"
	"path"
	"strings"
)

// Scaffolder creates component and client-library trees through a Backend.
type Scaffolder struct {
	backend  Backend
	renderer Renderer
}

// New returns a Scaffolder writing through backend and reading templates
// from renderer.
func New(backend Backend, renderer Renderer) *Scaffolder {
	return &Scaffolder{backend: backend, renderer: renderer}
}

// optionalDir is a component subdirectory created only when enabled.
type optionalDir struct {
	name     string
	enabled  bool
	template string // empty means the .content.xml is left blank
}

// Component creates <Parent>/<Title> with the markup file, the component
// .content.xml and one directory per requested dialog/config flag.
// The first backend failure is returned; nothing already created is undone.
func (s *Scaffolder) Component(req ComponentRequest) error {
	dir, err := s.backend.CreateSubdirectory(req.Parent, req.Title)
	if err != nil {
		return fmt.Errorf("creating component directory %q: %w", req.Title, err)
	}

	if err := s.createFile(dir, req.Title+".html", HTML, ""); err != nil {
		return err
	}

	content := s.render(TemplateComponentContent,
		TokenComponentTitle, req.Title,
		TokenComponentGroupName, req.Group,
	)
	if err := s.createFile(dir, ContentXMLFile, XML, content); err != nil {
		return err
	}

	optional := []optionalDir{
		{name: DialogDir, enabled: req.Dialog},
		{name: CqDialogDir, enabled: req.CqDialog, template: TemplateCqDialog},
		{name: CqEditConfigDir, enabled: req.CqEditConfig},
		{name: CqTemplateDir, enabled: req.CqTemplate},
	}
	for _, od := range optional {
		if !od.enabled {
			continue
		}
		sub, err := s.backend.CreateSubdirectory(dir, od.name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path.Join(dir, od.name), err)
		}
		content := ""
		if od.template != "" {
			content = s.render(od.template, TokenComponentTitle, req.Title)
		}
		if err := s.createFile(sub, ContentXMLFile, XML, content); err != nil {
			return err
		}
	}

	return nil
}

// ClientLibrary creates <Parent>/clientLibrary with its .content.xml, the
// requested stylesheet/preprocessor/script files and the css.txt/js.txt
// index files that list them.
func (s *Scaffolder) ClientLibrary(req ClientLibraryRequest) error {
	lib, err := s.backend.CreateSubdirectory(req.Parent, ClientLibraryDir)
	if err != nil {
		return fmt.Errorf("creating client library directory: %w", err)
	}

	content := s.render(TemplateClientLibContent, TokenClientLibCategories, req.Categories)
	if err := s.createFile(lib, ContentXMLFile, XML, content); err != nil {
		return err
	}

	if req.CSS {
		cssDir, err := s.backend.CreateSubdirectory(lib, CSSDir)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path.Join(lib, CSSDir), err)
		}
		if err := s.createFile(cssDir, CSSFile, PlainText, ""); err != nil {
			return err
		}
	}

	// An existing css/ means the index must also list style.css, whoever
	// created the directory.
	merged := false
	if req.Less {
		cssDir, found, err := s.backend.FindSubdirectory(lib, CSSDir)
		if err != nil {
			return fmt.Errorf("looking up %s: %w", path.Join(lib, CSSDir), err)
		}
		if found {
			merged = true
		} else {
			cssDir, err = s.backend.CreateSubdirectory(lib, CSSDir)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path.Join(lib, CSSDir), err)
			}
		}
		if err := s.createFile(cssDir, LessFile, PlainText, ""); err != nil {
			return err
		}
	}

	writeCSSIndex := req.CSS || req.Less
	if merged && !req.CSS {
		// A foreign css/ only gets its index refreshed when it already has one.
		_, found, err := s.backend.FindFile(lib, CSSIndexFile)
		if err != nil {
			return fmt.Errorf("looking up %s: %w", path.Join(lib, CSSIndexFile), err)
		}
		writeCSSIndex = found
	}
	if writeCSSIndex {
		entries := CSSIndexEntries(req.CSS || merged, req.Less)
		if err := s.writeIndex(lib, CSSIndexFile, entries); err != nil {
			return err
		}
	}

	if req.JS {
		jsDir, err := s.backend.CreateSubdirectory(lib, JSDir)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path.Join(lib, JSDir), err)
		}
		if err := s.createFile(jsDir, JSFile, PlainText, ""); err != nil {
			return err
		}
		if err := s.writeIndex(lib, JSIndexFile, []string{JSDir + "/" + JSFile}); err != nil {
			return err
		}
	}

	return nil
}

// CSSIndexEntries returns the css.txt lines for a client library that holds
// style.css (hadCSS) and/or style.less (hadLess), .css first.
func CSSIndexEntries(hadCSS, hadLess bool) []string {
	var entries []string
	if hadCSS {
		entries = append(entries, CSSDir+"/"+CSSFile)
	}
	if hadLess {
		entries = append(entries, CSSDir+"/"+LessFile)
	}
	return entries
}

// writeIndex replaces dir/name with one relative path per line.
func (s *Scaffolder) writeIndex(dir, name string, entries []string) error {
	existing, found, err := s.backend.FindFile(dir, name)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", path.Join(dir, name), err)
	}
	if found {
		if err := s.backend.DeleteFile(existing); err != nil {
			return fmt.Errorf("removing stale %s: %w", existing, err)
		}
	}
	return s.createFile(dir, name, PlainText, strings.Join(entries, "\n"))
}

func (s *Scaffolder) createFile(dir, name string, lang Language, content string) error {
	if _, err := s.backend.CreateFile(dir, name, lang, content); err != nil {
		return fmt.Errorf("creating %s: %w", path.Join(dir, name), err)
	}
	return nil
}

// render loads a template and applies the token/value pairs.
func (s *Scaffolder) render(id string, pairs ...string) string {
	return substitute(s.renderer.Render(id), pairs...)
}

// substitute replaces each token with its value in a single pass, so a
// value that happens to contain another token is left alone, then strips
// carriage returns.
func substitute(text string, pairs ...string) string {
	if len(pairs) > 0 {
		text = strings.NewReplacer(pairs...).Replace(text)
	}
	return strings.ReplaceAll(text, "\r", "")
}
