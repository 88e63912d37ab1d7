package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/aem-labs/aemx/internal/config"
	"github.com/aem-labs/aemx/internal/scaffold"
	"github.com/aem-labs/aemx/internal/templates"
	"github.com/aem-labs/aemx/internal/vfs"
	"github.com/spf13/cobra"
)

// workspace bundles the backend and scaffolder for one command run. All
// mutations go through the recorder so they can be listed afterwards.
type workspace struct {
	dir       string
	dryRun    bool
	backend   *vfs.Backend
	recorder  *scaffold.Recorder
	scaffolds *scaffold.Scaffolder
}

// openWorkspace roots a backend at dir. With dryRun the real tree is read but
// every write stays in memory.
func openWorkspace(dir string, dryRun bool) *workspace {
	b := vfs.NewOS(dir)
	if dryRun {
		b = vfs.NewDryRun(dir)
	}
	rec := scaffold.NewRecorder(b)
	renderer := templates.New(
		templates.WithOverrideDir(config.Get(config.KeyTemplatesDir)),
		templates.WithLogger(logger),
	)
	logger.Debug("workspace opened", "dir", dir, "dry_run", dryRun)
	return &workspace{
		dir:       dir,
		dryRun:    dryRun,
		backend:   b,
		recorder:  rec,
		scaffolds: scaffold.New(rec, renderer),
	}
}

// printCreated lists what the run created, relative to the workspace dir.
func (w *workspace) printCreated(out io.Writer) {
	verb := "Created"
	if w.dryRun {
		verb = "Would create"
	}
	for _, op := range w.recorder.Ops() {
		p := filepath.Join(w.dir, filepath.FromSlash(op.Path))
		switch op.Kind {
		case scaffold.OpMkdir:
			fmt.Fprintf(out, "  %s %s%c\n", verb, p, filepath.Separator)
		case scaffold.OpCreate:
			fmt.Fprintf(out, "  %s %s\n", verb, p)
		case scaffold.OpDelete:
			fmt.Fprintf(out, "  Replaced %s\n", p)
		}
	}
}

// boolOption returns the flag value when the user set it, otherwise the
// config default for key.
func boolOption(cmd *cobra.Command, flag, key string, value bool) bool {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return config.GetBool(key)
}

// stringOption is boolOption for string flags.
func stringOption(cmd *cobra.Command, flag, key, value string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return config.Get(key)
}
