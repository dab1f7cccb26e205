// Package task owns the on-disk model directory of one simulation run: every
// input file shares the task root and the task id, and the write policy
// (skip empty files, force trivial ones, copy or link external ones) is
// applied here, outside the serializer.
package task

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/ogs5/block"
)

var log = commonlog.GetLogger("ogs5.task")

// TopComment is the banner written as the first line of generated files,
// unless the dialect forbids one.
const TopComment = "|----------------- Written with ogs5 -----------------|"

// Task is one model directory.
type Task struct {
	// Root is the destination directory, created on demand.
	Root string
	// ID names the run; files are written as ID + dialect extension.
	ID string

	Files []*block.File
}

// New returns a task writing to root under the given id.
func New(root, id string) *Task {
	return &Task{Root: root, ID: id}
}

// Add registers a file with the task and applies the task-level defaults.
// It returns the file for chaining.
func (t *Task) Add(f *block.File) *block.File {
	if f.TopComment == "" && !f.Dialect.NoTopComment {
		f.TopComment = TopComment
	}
	t.Files = append(t.Files, f)
	return f
}

// Path reports where a file of this task ends up on disk.
func (t *Task) Path(f *block.File) string {
	return filepath.Join(t.Root, t.ID+f.Dialect.Ext)
}

// Write puts one file on disk, applying the write policy: a registered copy
// link wins over serialization; an empty tree is skipped unless the file is
// force-written, in which case a diagnostic is reported and the minimal
// top-comment + stop-keyword file is emitted anyway.
func (t *Task) Write(f *block.File) error {
	if err := os.MkdirAll(t.Root, 0o755); err != nil {
		return fmt.Errorf("task root: %w", err)
	}
	path := t.Path(f)
	if src, symlink := f.CopyLink(); src != "" {
		if symlink {
			os.Remove(path)
			if err := os.Symlink(src, path); err != nil {
				return fmt.Errorf("link %s: %w", path, err)
			}
			return nil
		}
		return copyFile(src, path)
	}
	if f.IsEmpty() {
		if !f.ForceWrite {
			log.Debugf("skipping empty %s file", f.Dialect.Name)
			return nil
		}
		log.Warningf("ogs5 %s: file is empty but force-written: %s", f.Dialect.Name, path)
	}
	return f.Save(path)
}

// WriteAll writes every registered file in registration order.
func (t *Task) WriteAll() error {
	for _, f := range t.Files {
		if err := t.Write(f); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("copy %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("copy %s: %w", dst, err)
	}
	return nil
}
