package block

// Fields carries the sub-keyword values of one block, keyed by sub keyword.
// Values may be scalars, strings (re-split on whitespace), flat slices (one
// row) or nested slices (one row per element). The reserved key "main_key"
// holds the block's main keyword in the views returned by GetBlock.
type Fields map[string]any

// MainKeyField is the reserved Fields key naming the main keyword.
const MainKeyField = "main_key"

// AddMainKeyword inserts a new empty main-keyword block at the given
// position (Last appends). No schema check happens at this level.
func (f *File) AddMainKeyword(key string, at int) {
	f.Tree.insertBlock(at, &Block{Name: key})
}

// AddSubKeyword inserts a new empty sub-keyword entry into the block at
// mainAt. At least one block must exist.
func (f *File) AddSubKeyword(key string, mainAt, at int) error {
	mi, ok := normIndex(mainAt, f.Tree.Len())
	if !ok {
		if f.Tree.IsEmpty() {
			return f.diagf(DiagStructure, "add_sub_keyword: add a main keyword first")
		}
		return f.diagf(DiagIndex, "add_sub_keyword: main index out of range: %d", mainAt)
	}
	f.Tree.Blocks[mi].insertEntry(at, &Entry{Name: key})
	return nil
}

// AddContent appends one line of content to the entry at (mainAt, subAt). If
// the target block has no entry yet, the blank-sentinel entry is created
// first and the content attaches directly to the main keyword. A line that
// normalizes to zero tokens is dropped silently.
func (f *File) AddContent(content any, mainAt, subAt, at int) error {
	mi, ok := normIndex(mainAt, f.Tree.Len())
	if !ok {
		if f.Tree.IsEmpty() {
			return f.diagf(DiagStructure, "add_content: add a main keyword first")
		}
		return f.diagf(DiagIndex, "add_content: main index out of range: %d", mainAt)
	}
	b := f.Tree.Blocks[mi]
	if subAt == Last && len(b.Entries) == 0 {
		b.insertEntry(Last, &Entry{})
	}
	si, ok := normIndex(subAt, len(b.Entries))
	if !ok {
		return f.diagf(DiagIndex, "add_content: sub index out of range: %d", subAt)
	}
	row := tokenize(content)
	if len(row) == 0 {
		return nil
	}
	b.Entries[si].insertRow(at, row)
	return nil
}

// AddMultiContent splits content into lines and adds them in order at the
// end of the entry at (mainAt, subAt).
func (f *File) AddMultiContent(content any, mainAt, subAt int) error {
	for _, row := range contentRows(content) {
		if err := f.AddContent(row, mainAt, subAt, Last); err != nil {
			return err
		}
	}
	return nil
}

// AddBlock appends a whole block. mainKey == "" selects the dialect default:
// if a field is itself named like a declared main keyword its value becomes
// direct content under that keyword (for flat file types whose content hangs
// straight off the main keyword); otherwise the dialect's first declared
// main keyword is used. With no fields at all the dialect's standard block
// is substituted.
//
// Sub keywords are emitted in the dialect's declared order, not the caller's
// map order, and fields unknown to the dialect are skipped: the simulator is
// order-sensitive for some file types.
func (f *File) AddBlock(mainKey string, fields Fields) error {
	return f.AddBlockAt(Last, mainKey, fields)
}

// AddBlockAt is AddBlock with an explicit insert position.
func (f *File) AddBlockAt(at int, mainKey string, fields Fields) error {
	if mainKey == "" {
		direct := false
		for _, mk := range f.Dialect.MainKeywords {
			v, ok := fields[mk]
			if !ok {
				continue
			}
			f.AddMainKeyword(mk, at)
			if err := f.AddMultiContent(v, at, Last); err != nil {
				return err
			}
			direct = true
		}
		if direct {
			return nil
		}
		if len(f.Dialect.MainKeywords) == 0 {
			return f.diagf(DiagSchema, "add_block: dialect declares no main keywords")
		}
		mainKey = f.Dialect.MainKeywords[0]
	}
	if !f.Dialect.HasMain(mainKey) {
		return f.diagf(DiagSchema, "add_block: unknown main keyword %q", mainKey)
	}
	if len(fields) == 0 {
		fields = f.Dialect.Std
	}
	if len(fields) == 0 {
		return nil
	}
	f.AddMainKeyword(mainKey, at)
	for _, skey := range f.Dialect.SubKeywords[mainKey] {
		v, ok := fields[skey]
		if !ok {
			continue
		}
		if skey != "" {
			if err := f.AddSubKeyword(skey, at, Last); err != nil {
				return err
			}
		}
		if err := f.AddMultiContent(v, at, Last); err != nil {
			return err
		}
	}
	return nil
}

// GetBlock returns the block at the given position as Fields, with the main
// keyword under MainKeyField and each entry's rows under its sub keyword.
// Row structure beyond "one value list per sub keyword" survives (values are
// []Row), but duplicate sub keywords within one block collapse. Out-of-range
// positions yield an empty map and a diagnostic.
func (f *File) GetBlock(at int) (Fields, error) {
	mi, ok := normIndex(at, f.Tree.Len())
	if !ok {
		return Fields{}, f.diagf(DiagIndex, "get_block: index out of range: %d", at)
	}
	b := f.Tree.Blocks[mi]
	out := Fields{MainKeyField: b.Name}
	for _, e := range b.Entries {
		out[e.Name] = e.Rows
	}
	return out, nil
}

// GetBlockRaw returns the block at the given position as the underlying
// node, preserving entry order and duplicates. The node stays owned by the
// tree.
func (f *File) GetBlockRaw(at int) (*Block, error) {
	mi, ok := normIndex(at, f.Tree.Len())
	if !ok {
		return nil, f.diagf(DiagIndex, "get_block: index out of range: %d", at)
	}
	return f.Tree.Blocks[mi], nil
}

// UpdateBlock merges fields into the block at the given position. This is
// remove-and-reinsert, not an in-place patch: the block is fetched as
// Fields, merged, deleted, and re-added through AddBlockAt, so dialect
// ordering applies to the result. mainKey == "" keeps the current keyword.
func (f *File) UpdateBlock(at int, mainKey string, fields Fields) error {
	cur, err := f.GetBlock(at)
	if err != nil {
		return err
	}
	if mainKey != "" {
		cur[MainKeyField] = mainKey
	}
	// direct content is re-addressed through its main keyword, so the
	// flat-dialect path of AddBlockAt picks it up again
	if direct, ok := cur[""]; ok {
		mk, _ := cur[MainKeyField].(string)
		cur = Fields{mk: direct}
	}
	for k, v := range fields {
		cur[k] = v
	}
	mk, _ := cur[MainKeyField].(string)
	delete(cur, MainKeyField)
	if err := f.DelMainKeyword(at, false); err != nil {
		return err
	}
	return f.AddBlockAt(at, mk, cur)
}

// DelBlock deletes the block at the given position; all deletes every block.
func (f *File) DelBlock(at int, all bool) error {
	return f.DelMainKeyword(at, all)
}

// DelMainKeyword deletes the block at the given position; all deletes every
// block.
func (f *File) DelMainKeyword(at int, all bool) error {
	if all {
		f.Tree.Blocks = nil
		return nil
	}
	mi, ok := normIndex(at, f.Tree.Len())
	if !ok {
		return f.diagf(DiagIndex, "del_main_keyword: index out of range: %d", at)
	}
	f.Tree.Blocks = append(f.Tree.Blocks[:mi], f.Tree.Blocks[mi+1:]...)
	return nil
}

// DelSubKeyword deletes the entry at (mainAt, subAt); all deletes every
// entry of the block.
func (f *File) DelSubKeyword(mainAt, subAt int, all bool) error {
	mi, ok := normIndex(mainAt, f.Tree.Len())
	if !ok {
		return f.diagf(DiagIndex, "del_sub_keyword: main index out of range: %d", mainAt)
	}
	b := f.Tree.Blocks[mi]
	if all {
		b.Entries = nil
		return nil
	}
	si, ok := normIndex(subAt, len(b.Entries))
	if !ok {
		return f.diagf(DiagIndex, "del_sub_keyword: sub index out of range: %d", subAt)
	}
	b.Entries = append(b.Entries[:si], b.Entries[si+1:]...)
	return nil
}

// DelContent deletes the row at (mainAt, subAt, rowAt); all clears the
// entry's rows. A blank-sentinel entry left without rows is removed with
// them: a lingering sentinel always owns at least one row.
func (f *File) DelContent(mainAt, subAt, rowAt int, all bool) error {
	mi, ok := normIndex(mainAt, f.Tree.Len())
	if !ok {
		return f.diagf(DiagIndex, "del_content: main index out of range: %d", mainAt)
	}
	b := f.Tree.Blocks[mi]
	si, ok := normIndex(subAt, len(b.Entries))
	if !ok {
		return f.diagf(DiagIndex, "del_content: sub index out of range: %d", subAt)
	}
	e := b.Entries[si]
	if all {
		if e.Name != "" {
			e.Rows = nil
			return nil
		}
		return f.DelSubKeyword(mainAt, si, false)
	}
	ri, ok := normIndex(rowAt, len(e.Rows))
	if !ok {
		return f.diagf(DiagIndex, "del_content: row index out of range: %d", rowAt)
	}
	e.Rows = append(e.Rows[:ri], e.Rows[ri+1:]...)
	if len(e.Rows) == 0 && e.Name == "" {
		return f.DelSubKeyword(mainAt, si, false)
	}
	return nil
}
