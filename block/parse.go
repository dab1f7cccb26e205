package block

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Read parses a block file from r into the tree, replacing any previous
// content. Parsing is fail-open: malformed input leaves the tree empty and
// returns a *Diag of kind DiagMalformed rather than a hard error. A stream
// whose first main keyword is already the stop keyword is a legal empty
// file. I/O errors from r propagate as-is.
//
// Keywords are canonicalized against the dialect by longest declared prefix;
// unknown keywords are kept verbatim, since the tree itself is schema-free.
func (f *File) Read(r io.Reader) error {
	f.Reset()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	// skip forward to the first main keyword
	first := ""
	found := false
	for sc.Scan() {
		sline := uncomment(sc.Text())
		if len(sline) == 0 {
			continue
		}
		if isMainKey(sline) {
			first = keyName(sline)
			found = true
			break
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if !found {
		return f.diagf(DiagMalformed, "read: no main keyword found")
	}
	if isStop(first) {
		log.Debugf("ogs5 %s: read: empty file, stop keyword comes first", f.Dialect.Name)
		return nil
	}

	curMain := f.Dialect.canonMain(first)
	f.AddMainKeyword(curMain, Last)
	subOpen := false
	for sc.Scan() {
		sline := uncomment(sc.Text())
		if len(sline) == 0 {
			continue
		}
		switch {
		case !isKey(sline) && !subOpen:
			// content before any sub keyword hangs directly off the
			// main keyword, under the blank sentinel
			f.AddSubKeyword("", Last, Last)
			subOpen = true
			f.AddContent(Row(sline), Last, Last, Last)
		case isMainKey(sline):
			key := keyName(sline)
			if isStop(key) {
				return nil // anything after the stop keyword is ignored
			}
			curMain = f.Dialect.canonMain(key)
			f.AddMainKeyword(curMain, Last)
			subOpen = false
		case isSubKey(sline):
			f.AddSubKeyword(f.Dialect.canonSub(curMain, keyName(sline)), Last, Last)
			subOpen = true
		default:
			f.AddContent(Row(sline), Last, Last, Last)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	// a partially parsed tree is worse than none
	f.Reset()
	return f.diagf(DiagMalformed, "read: stream ended before #%s", StopKeyword)
}

// ReadFile parses the block file at path. I/O errors propagate unmasked.
func (f *File) ReadFile(path string) error {
	fin, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	defer fin.Close()
	return f.Read(fin)
}
