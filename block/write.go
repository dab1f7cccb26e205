package block

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// KeyPair addresses one (main keyword, sub keyword) combination.
type KeyPair struct {
	Main string
	Sub  string
}

// Style configures the serializer. Indentation and the legacy format quirks
// are explicit values here instead of process-wide state, so a caller can
// switch them off or retarget them per file.
type Style struct {
	// SubIndent precedes "$SUB_KEYWORD" lines.
	SubIndent string
	// ContentIndent precedes content rows.
	ContentIndent string

	// CRLFMain switches the whole file to CRLF line endings when the
	// first block carries this main keyword. OGS5 refuses distributed
	// medium property files with plain LF.
	CRLFMain string
	// RawRows lists keyword pairs whose content rows are written
	// flush-left and LF-terminated regardless of CRLFMain, tokens
	// space-separated. The reader of those tables chokes on leading
	// indentation.
	RawRows []KeyPair
}

// DefaultStyle returns the canonical OGS5 layout, legacy quirks included.
func DefaultStyle() Style {
	return Style{
		SubIndent:     "  ",
		ContentIndent: "   ",
		CRLFMain:      "MEDIUM_PROPERTIES_DISTRIBUTED",
		RawRows:       []KeyPair{{Main: "MEDIUM_PROPERTIES_DISTRIBUTED", Sub: "DATA"}},
	}
}

func (st Style) raw(main, sub string) bool {
	for _, p := range st.RawRows {
		if p.Main == main && p.Sub == sub {
			return true
		}
	}
	return false
}

// Write serializes the tree to w: optional top comment, each block in tree
// order, a trailing stop-keyword line with no final newline (the optional
// bottom comment follows it when set). Blank-sentinel entries print their
// rows without a $-line.
func (f *File) Write(w io.Writer) error {
	st := f.Style
	lend := "\n"
	if st.CRLFMain != "" && !f.Tree.IsEmpty() && f.Tree.Blocks[0].Name == st.CRLFMain {
		lend = "\r\n"
	}
	bw := bufio.NewWriter(w)
	if f.TopComment != "" {
		bw.WriteString(f.TopComment)
		bw.WriteString(lend)
	}
	for _, b := range f.Tree.Blocks {
		bw.WriteString("#")
		bw.WriteString(b.Name)
		bw.WriteString(lend)
		for _, e := range b.Entries {
			if e.Name != "" {
				bw.WriteString(st.SubIndent)
				bw.WriteString("$")
				bw.WriteString(e.Name)
				bw.WriteString(lend)
			}
			raw := st.raw(b.Name, e.Name)
			for _, row := range e.Rows {
				if len(row) == 0 {
					continue
				}
				if raw {
					bw.WriteString(strings.Join(row, " "))
					bw.WriteString("\n")
					continue
				}
				bw.WriteString(st.ContentIndent)
				bw.WriteString(strings.Join(row, " "))
				bw.WriteString(lend)
			}
		}
	}
	bw.WriteString("#")
	bw.WriteString(StopKeyword)
	if f.BottomComment != "" {
		bw.WriteString(lend)
		bw.WriteString(f.BottomComment)
	}
	return bw.Flush()
}

// String renders the file the way Write does, for debugging and tests.
func (f *File) String() string {
	var sb strings.Builder
	f.Write(&sb)
	return sb.String()
}

// Save writes the serialized file to path, creating or truncating it. The
// skip-empty and force-write policy lives a layer up, in the task writer;
// Save itself is unconditional.
func (f *File) Save(path string) error {
	fout, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Write(fout); err != nil {
		fout.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := fout.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
