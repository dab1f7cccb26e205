package block

import (
	"os"
	"path/filepath"
)

// File is one block-file instance: a keyword tree bound to the dialect that
// governs it. A File exclusively owns its tree; trees are never shared
// between files.
type File struct {
	Dialect Dialect
	Tree    Tree
	Style   Style

	// TopComment and BottomComment are emitted verbatim around the blocks
	// when non-empty.
	TopComment    string
	BottomComment string

	// ForceWrite makes the write policy emit a minimal file even when the
	// tree is empty.
	ForceWrite bool

	copyPath    string
	copySymlink bool
}

// New returns an empty file for the given dialect.
func New(d Dialect) *File {
	return &File{
		Dialect:    d,
		Style:      DefaultStyle(),
		ForceWrite: d.ForceWrite,
	}
}

// IsEmpty reports whether the file holds no blocks.
func (f *File) IsEmpty() bool { return f.Tree.IsEmpty() }

// BlockCount reports the number of main-keyword blocks.
func (f *File) BlockCount() int { return f.Tree.Len() }

// Reset deletes every block.
func (f *File) Reset() { f.Tree.Blocks = nil }

// AddCopyLink registers an existing file to be copied (or symlinked) into
// the model directory instead of serializing the tree. An unreadable path is
// rejected with a diagnostic and the file keeps its previous state.
func (f *File) AddCopyLink(path string, symlink bool) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return f.diagf(DiagCopyLink, "copy link: not a readable file: %s", path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	f.copyPath = path
	f.copySymlink = symlink
	return nil
}

// DelCopyLink removes a previously registered copy link.
func (f *File) DelCopyLink() {
	f.copyPath = ""
	f.copySymlink = false
}

// CopyLink reports the registered source path, if any, and whether it should
// be symlinked rather than copied.
func (f *File) CopyLink() (path string, symlink bool) {
	return f.copyPath, f.copySymlink
}
