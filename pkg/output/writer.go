// Package output writes serialized chains to disk through synthfs.
package output

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/arthur-debert/actionq/pkg/internal/hashutil"
	"github.com/arthur-debert/actionq/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

// Planned operation kinds
const (
	OpCreateDir = "create_dir"
	OpRemove    = "remove"
	OpWriteFile = "write_file"
	OpUnchanged = "unchanged"
)

// Operation is one filesystem change a write performs
type Operation struct {
	Kind string
	Path string
	Mode os.FileMode
	Size int
}

func (o Operation) String() string {
	switch o.Kind {
	case OpWriteFile:
		return fmt.Sprintf("%s %s (%s, %d bytes)", o.Kind, o.Path, o.Mode, o.Size)
	case OpCreateDir:
		return fmt.Sprintf("%s %s (%s)", o.Kind, o.Path, o.Mode)
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.Path)
	}
}

// Writer writes files with synthfs operations on the OS filesystem
type Writer struct {
	logger     zerolog.Logger
	dryRun     bool
	force      bool
	filesystem synthfs.FileSystem
	fileMode   os.FileMode
	dirMode    os.FileMode
}

// NewWriter creates a writer. In dry-run mode operations are planned and
// logged but not executed.
func NewWriter(dryRun bool) *Writer {
	return &Writer{
		logger:     logging.GetLogger("output.writer"),
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"),
		fileMode:   0644,
		dirMode:    0755,
	}
}

// WithModes sets the permissions of created files and directories.
// Zero values keep the defaults.
func (w *Writer) WithModes(fileMode, dirMode os.FileMode) *Writer {
	if fileMode != 0 {
		w.fileMode = fileMode
	}
	if dirMode != 0 {
		w.dirMode = dirMode
	}
	return w
}

// EnableForce allows replacing an existing file
func (w *Writer) EnableForce(force bool) *Writer {
	w.force = force
	return w
}

// Plan returns the operations Write would perform for target. A target that
// already holds content plans a single unchanged operation.
func (w *Writer) Plan(target string, content []byte) ([]Operation, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid target path %s", target)
	}

	var ops []Operation

	dir := filepath.Dir(abs)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		ops = append(ops, Operation{Kind: OpCreateDir, Path: dir, Mode: w.dirMode})
	}

	if info, err := os.Lstat(abs); err == nil {
		if info.IsDir() {
			return nil, errors.Newf(errors.ErrFileWrite, "target %s is a directory", abs).
				WithDetail("path", abs)
		}
		if hashutil.SameContent(abs, content) {
			return []Operation{{Kind: OpUnchanged, Path: abs, Size: len(content)}}, nil
		}
		if !w.force {
			return nil, errors.Newf(errors.ErrFileWrite, "target %s already exists", abs).
				WithDetail("path", abs)
		}
		ops = append(ops, Operation{Kind: OpRemove, Path: abs})
	}

	ops = append(ops, Operation{Kind: OpWriteFile, Path: abs, Mode: w.fileMode, Size: len(content)})
	return ops, nil
}

// Write creates target with content, creating its directory when missing
func (w *Writer) Write(ctx context.Context, target string, content []byte) ([]Operation, error) {
	ops, err := w.Plan(target, content)
	if err != nil {
		return nil, err
	}

	if w.dryRun {
		w.logger.Info().Msg("Dry run mode - operations would be executed:")
		for _, op := range ops {
			w.logger.Info().Str("operation", op.String()).Msg("Would execute")
		}
		return ops, nil
	}

	if len(ops) == 1 && ops[0].Kind == OpUnchanged {
		w.logger.Debug().Str("target", ops[0].Path).Msg("Target already up to date")
		return ops, nil
	}

	// synthfs refuses to create over an existing file
	pipeline := synthfs.NewMemPipeline()
	for _, op := range ops {
		if op.Kind == OpRemove {
			w.logger.Debug().
				Str("target", op.Path).
				Msg("Removing existing file to allow overwrite in force mode")
			if err := os.Remove(op.Path); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to remove %s", op.Path).
					WithDetail("path", op.Path)
			}
			continue
		}

		synthOp, err := w.convert(op, content)
		if err != nil {
			return nil, err
		}
		if err := pipeline.Add(synthOp); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to add operation to pipeline")
		}
	}

	executor := synthfs.NewExecutor()
	w.logger.Debug().Int("operationCount", len(ops)).Msg("Executing operations")

	result := executor.Run(ctx, pipeline, w.filesystem)
	if result.GetError() != nil {
		w.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		return nil, errors.Wrapf(result.GetError(), errors.ErrFileWrite, "failed to write %s", target).
			WithDetail("path", target)
	}

	w.logger.Info().Str("target", target).Msg("File written")
	return ops, nil
}

// WriteEnvelope writes the envelope JSON followed by a newline
func (w *Writer) WriteEnvelope(ctx context.Context, target string, env actions.Envelope) ([]Operation, error) {
	b, err := env.JSON()
	if err != nil {
		return nil, err
	}
	return w.Write(ctx, target, append(b, '\n'))
}

// convert maps a planned operation to its synthfs operation. Paths are made
// relative to the filesystem root.
func (w *Writer) convert(op Operation, content []byte) (synthfs.Operation, error) {
	relPath, err := filepath.Rel("/", op.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", op.Path)
	}

	switch op.Kind {
	case OpCreateDir:
		createOp := operations.NewCreateDirectoryOperation(core.OperationID("create-dir-"+op.Path), relPath)
		createOp.SetItem(&directoryItem{path: relPath, mode: op.Mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil
	case OpWriteFile:
		createOp := operations.NewCreateFileOperation(core.OperationID("write-file-"+op.Path), relPath)
		createOp.SetItem(&fileItem{path: relPath, content: content, mode: op.Mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil
	default:
		return nil, errors.Newf(errors.ErrInternal, "unsupported operation kind: %s", op.Kind)
	}
}

type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
