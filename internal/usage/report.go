package usage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Finding kinds.
const (
	KindClass = "class" // the class is instantiated by the framework
	KindField = "field" // the field is written by the framework
)

// Finding is one implicitly used declaration.
type Finding struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Kind   string `json:"kind"`
	Class  string `json:"class"`
	Member string `json:"member,omitempty"`
}

func (f Finding) String() string {
	name := f.Class
	if f.Member != "" {
		name += "." + f.Member
	}
	return fmt.Sprintf("%s:%d: %s %s is used implicitly", f.File, f.Line, f.Kind, name)
}

// Report applies the rules to scanned classes from file.
func Report(file string, classes []Class) []Finding {
	var findings []Finding
	for _, c := range classes {
		if IsImplicitUsage(c) {
			findings = append(findings, Finding{File: file, Line: c.Line, Kind: KindClass, Class: c.Name})
		}
		for _, f := range c.Fields {
			if IsImplicitWrite(c, f) || IsImplicitRead(f) {
				findings = append(findings, Finding{File: file, Line: f.Line, Kind: KindField, Class: c.Name, Member: f.Name})
			}
		}
	}
	return findings
}

// ScanFS scans every .java file below the given roots (files are accepted
// directly) and returns the findings ordered by file and line.
func ScanFS(fsys afero.Fs, roots []string) ([]Finding, error) {
	var findings []Finding

	scanFile := func(path string) error {
		f, err := fsys.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		classes, err := Scan(f)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		findings = append(findings, Report(filepath.ToSlash(path), classes)...)
		return nil
	}

	for _, root := range roots {
		err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != root && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(path, ".java") {
				return nil
			}
			return scanFile(path)
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].File != findings[j].File {
			return findings[i].File < findings[j].File
		}
		return findings[i].Line < findings[j].Line
	})
	return findings, nil
}
