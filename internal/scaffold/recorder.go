package scaffold

import "path"

// OpKind names a mutating backend call.
type OpKind string

const (
	OpMkdir  OpKind = "mkdir"
	OpCreate OpKind = "create"
	OpDelete OpKind = "delete"
)

// Op is one recorded mutation.
type Op struct {
	Kind     OpKind
	Path     string
	Language Language // set for OpCreate only
	Size     int      // content length in bytes, OpCreate only
}

// Recorder wraps a Backend and keeps the ordered list of successful
// mutations. Lookups are passed through unrecorded.
type Recorder struct {
	Backend
	ops []Op
}

// NewRecorder returns a Recorder around b.
func NewRecorder(b Backend) *Recorder {
	return &Recorder{Backend: b}
}

// Ops returns the mutations recorded so far.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Created returns the paths of created directories and files in order.
// Directories carry a trailing slash.
func (r *Recorder) Created() []string {
	var out []string
	for _, op := range r.ops {
		switch op.Kind {
		case OpMkdir:
			out = append(out, op.Path+"/")
		case OpCreate:
			out = append(out, op.Path)
		}
	}
	return out
}

func (r *Recorder) CreateSubdirectory(parent, name string) (string, error) {
	dir, err := r.Backend.CreateSubdirectory(parent, name)
	if err != nil {
		return "", err
	}
	r.ops = append(r.ops, Op{Kind: OpMkdir, Path: dir})
	return dir, nil
}

func (r *Recorder) CreateFile(dir, name string, lang Language, content string) (string, error) {
	file, err := r.Backend.CreateFile(dir, name, lang, content)
	if err != nil {
		return "", err
	}
	r.ops = append(r.ops, Op{Kind: OpCreate, Path: file, Language: lang, Size: len(content)})
	return file, nil
}

func (r *Recorder) DeleteFile(file string) error {
	if err := r.Backend.DeleteFile(file); err != nil {
		return err
	}
	r.ops = append(r.ops, Op{Kind: OpDelete, Path: path.Clean(file)})
	return nil
}
