package block

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ogs5.block")

// DiagKind classifies the non-fatal conditions the engine can report.
type DiagKind int

const (
	// DiagSchema: an unknown main or sub keyword was supplied for the
	// file's dialect.
	DiagSchema DiagKind = iota
	// DiagStructure: an operation needs a main keyword that does not
	// exist yet.
	DiagStructure
	// DiagIndex: a positional index pointed outside the tree.
	DiagIndex
	// DiagMalformed: the input stream held no main keyword, or ended
	// before the stop keyword.
	DiagMalformed
	// DiagCopyLink: an externally linked file path is not readable.
	DiagCopyLink
)

func (k DiagKind) String() string {
	switch k {
	case DiagSchema:
		return "schema violation"
	case DiagStructure:
		return "structural precondition"
	case DiagIndex:
		return "index out of range"
	case DiagMalformed:
		return "malformed file"
	case DiagCopyLink:
		return "copy link"
	}
	return "unknown"
}

// Diag is a non-fatal engine diagnostic. By the time a Diag is returned the
// operation has already degraded to a no-op or a neutral result; callers may
// inspect it, or ignore it entirely.
type Diag struct {
	Kind DiagKind
	File string // dialect tag of the file that reported it, e.g. "BC"
	Msg  string
}

func (d *Diag) Error() string {
	if d.File == "" {
		return "ogs5: " + d.Msg
	}
	return "ogs5 " + d.File + ": " + d.Msg
}

// AsDiag unwraps err into a *Diag if one is anywhere in its chain.
func AsDiag(err error) (*Diag, bool) {
	var d *Diag
	ok := errors.As(err, &d)
	return d, ok
}

// diagf builds, logs and returns a diagnostic attributed to this file.
func (f *File) diagf(kind DiagKind, format string, args ...any) *Diag {
	d := &Diag{Kind: kind, File: f.Dialect.Name, Msg: fmt.Sprintf(format, args...)}
	log.Warning(d.Error())
	return d
}
