package vfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aem-labs/aemx/internal/scaffold"
	"github.com/spf13/afero"
)

var (
	// ErrExists is returned when a directory or file to create is already present.
	ErrExists = errors.New("already exists")
	// ErrNotFound is returned when a parent directory or file to delete is missing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidName is returned when a name to create is not a single path element.
	ErrInvalidName = errors.New("invalid name")
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Backend is a scaffold.Backend over an afero.Fs. Paths handed to it are
// slash-separated and interpreted relative to the file system root.
type Backend struct {
	fs   afero.Fs
	root string
}

var _ scaffold.Backend = (*Backend)(nil)

// New wraps an arbitrary afero file system. Backend paths resolve below
// root, which must be an absolute path in fsys.
func New(fsys afero.Fs, root string) *Backend {
	return &Backend{fs: fsys, root: root}
}

// NewOS returns a backend rooted at dir on the real file system.
func NewOS(dir string) *Backend {
	return New(afero.NewOsFs(), absRoot(dir))
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Backend {
	return New(afero.NewMemMapFs(), string(filepath.Separator))
}

// NewDryRun returns a backend that sees the real tree under dir but keeps
// all writes in memory.
func NewDryRun(dir string) *Backend {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	return New(afero.NewCopyOnWriteFs(base, afero.NewMemMapFs()), absRoot(dir))
}

func absRoot(dir string) string {
	if a, err := filepath.Abs(dir); err == nil {
		return a
	}
	return filepath.Clean(dir)
}

// abs maps a slash path onto the afero namespace below the root.
func (b *Backend) abs(p string) string {
	return filepath.Join(b.root, filepath.FromSlash(path.Clean("/"+p)))
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}

func (b *Backend) requireDir(dir string) error {
	ok, err := afero.DirExists(b.fs, b.abs(dir))
	if err != nil {
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !ok {
		return fmt.Errorf("directory %s: %w", displayPath(dir), ErrNotFound)
	}
	return nil
}

// MkdirAll creates dir and any missing parents. It is used to prepare
// parent directories before scaffolding, never by the scaffolders.
func (b *Backend) MkdirAll(dir string) error {
	if err := b.fs.MkdirAll(b.abs(dir), dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// CreateSubdirectory creates parent/name. The parent must exist and the
// name must be a free single path element.
func (b *Backend) CreateSubdirectory(parent, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if err := b.requireDir(parent); err != nil {
		return "", err
	}
	dir := path.Join(parent, name)
	exists, err := afero.Exists(b.fs, b.abs(dir))
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", dir, err)
	}
	if exists {
		return "", fmt.Errorf("directory %s: %w", dir, ErrExists)
	}
	if err := b.fs.Mkdir(b.abs(dir), dirPerm); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return dir, nil
}

// FindSubdirectory reports whether parent/name exists as a directory.
func (b *Backend) FindSubdirectory(parent, name string) (string, bool, error) {
	if err := b.requireDir(parent); err != nil {
		return "", false, err
	}
	dir := path.Join(parent, name)
	ok, err := afero.DirExists(b.fs, b.abs(dir))
	if err != nil {
		return "", false, fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !ok {
		return "", false, nil
	}
	return dir, true, nil
}

// FindFile reports whether dir/name exists as a regular file.
func (b *Backend) FindFile(dir, name string) (string, bool, error) {
	if err := b.requireDir(dir); err != nil {
		return "", false, err
	}
	file := path.Join(dir, name)
	info, err := b.fs.Stat(b.abs(file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("checking file %s: %w", file, err)
	}
	if info.IsDir() {
		return "", false, nil
	}
	return file, true, nil
}

// CreateFile writes content to dir/name. The file must not exist yet. The
// language tag carries no meaning on disk.
func (b *Backend) CreateFile(dir, name string, _ scaffold.Language, content string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if err := b.requireDir(dir); err != nil {
		return "", err
	}
	file := path.Join(dir, name)
	exists, err := afero.Exists(b.fs, b.abs(file))
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", file, err)
	}
	if exists {
		return "", fmt.Errorf("file %s: %w", file, ErrExists)
	}
	if err := afero.WriteFile(b.fs, b.abs(file), []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", file, err)
	}
	return file, nil
}

// DeleteFile removes a regular file.
func (b *Backend) DeleteFile(file string) error {
	info, err := b.fs.Stat(b.abs(file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file %s: %w", file, ErrNotFound)
		}
		return fmt.Errorf("checking file %s: %w", file, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", file)
	}
	if err := b.fs.Remove(b.abs(file)); err != nil {
		return fmt.Errorf("removing %s: %w", file, err)
	}
	return nil
}

// ReadFile returns the content of a file.
func (b *Backend) ReadFile(file string) (string, error) {
	data, err := afero.ReadFile(b.fs, b.abs(file))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return string(data), nil
}

// Tree lists every directory and file below root as sorted slash paths
// relative to root. Directories carry a trailing slash.
func (b *Backend) Tree(root string) ([]string, error) {
	base := b.abs(root)
	var entries []string
	err := afero.Walk(b.fs, base, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if info.IsDir() {
			rel += "/"
		}
		entries = append(entries, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(entries)
	return entries, nil
}

func displayPath(p string) string {
	if p == "" || p == "." {
		return "."
	}
	return strings.TrimPrefix(p, "/")
}
