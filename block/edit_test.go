package block

import (
	"reflect"
	"testing"
)

// bcDialect is a trimmed boundary-condition schema used throughout the
// editor tests.
var bcDialect = Dialect{
	Name:         "BC",
	Ext:          ".bc",
	MainKeywords: []string{"BOUNDARY_CONDITION"},
	SubKeywords: map[string][]string{
		"BOUNDARY_CONDITION": {"PCS_TYPE", "PRIMARY_VARIABLE", "GEO_TYPE", "DIS_TYPE"},
	},
	Std: map[string]any{
		"PCS_TYPE":         "GROUNDWATER_FLOW",
		"PRIMARY_VARIABLE": "HEAD",
		"GEO_TYPE":         []any{"POLYLINE", "boundary"},
		"DIS_TYPE":         []any{"CONSTANT", 0.0},
	},
}

// outDialect exercises the flat main keyword carrying direct content.
var outDialect = Dialect{
	Name:         "OUT",
	Ext:          ".out",
	MainKeywords: []string{"OUTPUT", "VERSION"},
	SubKeywords: map[string][]string{
		"OUTPUT":  {"NOD_VALUES", "GEO_TYPE", "DAT_TYPE", "TIM_TYPE"},
		"VERSION": {""},
	},
}

func entryNames(b *Block) []string {
	names := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		names[i] = e.Name
	}
	return names
}

func TestAddBlockSchemaOrdering(t *testing.T) {
	f := New(bcDialect)
	// field order deliberately scrambled relative to the schema
	err := f.AddBlock("", Fields{
		"DIS_TYPE":         []any{"CONSTANT", 0.0},
		"GEO_TYPE":         []any{"POLYLINE", "boundary"},
		"PCS_TYPE":         "GROUNDWATER_FLOW",
		"PRIMARY_VARIABLE": "HEAD",
	})
	if err != nil {
		t.Fatalf("AddBlock() error = %v", err)
	}
	if f.BlockCount() != 1 {
		t.Fatalf("BlockCount() = %d, want 1", f.BlockCount())
	}
	want := []string{"PCS_TYPE", "PRIMARY_VARIABLE", "GEO_TYPE", "DIS_TYPE"}
	if got := entryNames(f.Tree.Blocks[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("entry order = %v, want %v", got, want)
	}
}

func TestAddBlockUnknownMainKeyword(t *testing.T) {
	f := New(bcDialect)
	err := f.AddBlock("NOT_A_KEY", Fields{"PCS_TYPE": "GROUNDWATER_FLOW"})
	if err == nil {
		t.Fatal("AddBlock(NOT_A_KEY) error = nil, want diagnostic")
	}
	d, ok := AsDiag(err)
	if !ok || d.Kind != DiagSchema {
		t.Errorf("diagnostic = %v, want kind %v", err, DiagSchema)
	}
	if f.BlockCount() != 0 {
		t.Errorf("BlockCount() = %d, want 0 (no-op)", f.BlockCount())
	}
}

func TestAddBlockUnknownSubKeywordSkipped(t *testing.T) {
	f := New(bcDialect)
	err := f.AddBlock("", Fields{
		"PCS_TYPE":  "GROUNDWATER_FLOW",
		"NOT_A_SUB": "whatever",
	})
	if err != nil {
		t.Fatalf("AddBlock() error = %v", err)
	}
	want := []string{"PCS_TYPE"}
	if got := entryNames(f.Tree.Blocks[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}
}

func TestAddBlockDefaults(t *testing.T) {
	f := New(bcDialect)
	if err := f.AddBlock("", nil); err != nil {
		t.Fatalf("AddBlock() error = %v", err)
	}
	want := []string{"PCS_TYPE", "PRIMARY_VARIABLE", "GEO_TYPE", "DIS_TYPE"}
	if got := entryNames(f.Tree.Blocks[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}
	if got := f.Tree.Blocks[0].Entries[3].Rows[0]; !reflect.DeepEqual(got, Row{"CONSTANT", "0.0"}) {
		t.Errorf("DIS_TYPE row = %v, want [CONSTANT 0.0]", got)
	}
}

func TestAddBlockDirectContent(t *testing.T) {
	f := New(outDialect)
	if err := f.AddBlock("", Fields{"VERSION": "OGS-5.7"}); err != nil {
		t.Fatalf("AddBlock() error = %v", err)
	}
	b := f.Tree.Blocks[0]
	if b.Name != "VERSION" {
		t.Fatalf("block name = %q, want VERSION", b.Name)
	}
	if len(b.Entries) != 1 || b.Entries[0].Name != "" {
		t.Fatalf("entries = %v, want one blank sentinel", entryNames(b))
	}
	if got := b.Entries[0].Rows[0]; !reflect.DeepEqual(got, Row{"OGS-5.7"}) {
		t.Errorf("direct content = %v, want [OGS-5.7]", got)
	}
}

func TestAddBlockNoMainKeywordsDeclared(t *testing.T) {
	f := New(Dialect{Name: "EMPTY"})
	err := f.AddBlock("", Fields{"ANY": 1})
	if d, ok := AsDiag(err); !ok || d.Kind != DiagSchema {
		t.Errorf("error = %v, want schema diagnostic", err)
	}
	if !f.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestBlankSentinelSingleton(t *testing.T) {
	f := New(bcDialect)
	f.AddMainKeyword("BOUNDARY_CONDITION", Last)
	if err := f.AddContent("1 2 3", Last, Last, Last); err != nil {
		t.Fatalf("AddContent() error = %v", err)
	}
	if err := f.AddContent("4 5 6", Last, Last, Last); err != nil {
		t.Fatalf("AddContent() error = %v", err)
	}
	b := f.Tree.Blocks[0]
	if len(b.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(b.Entries))
	}
	if b.Entries[0].Name != "" {
		t.Errorf("entry name = %q, want blank sentinel", b.Entries[0].Name)
	}
	if len(b.Entries[0].Rows) != 2 {
		t.Errorf("len(Rows) = %d, want 2", len(b.Entries[0].Rows))
	}
}

func TestAddContentDropsBlankRow(t *testing.T) {
	f := New(bcDialect)
	f.AddMainKeyword("BOUNDARY_CONDITION", Last)
	f.AddSubKeyword("PCS_TYPE", Last, Last)
	if err := f.AddContent("   ", Last, Last, Last); err != nil {
		t.Fatalf("AddContent() error = %v", err)
	}
	if n := len(f.Tree.Blocks[0].Entries[0].Rows); n != 0 {
		t.Errorf("len(Rows) = %d, want 0", n)
	}
}

func TestAddContentWithoutMainKeyword(t *testing.T) {
	f := New(bcDialect)
	err := f.AddContent("1 2 3", Last, Last, Last)
	if d, ok := AsDiag(err); !ok || d.Kind != DiagStructure {
		t.Errorf("error = %v, want structural diagnostic", err)
	}
	err = f.AddSubKeyword("PCS_TYPE", Last, Last)
	if d, ok := AsDiag(err); !ok || d.Kind != DiagStructure {
		t.Errorf("error = %v, want structural diagnostic", err)
	}
}

func TestDeletionCascade(t *testing.T) {
	f := New(bcDialect)
	f.AddMainKeyword("BOUNDARY_CONDITION", Last)
	f.AddContent("only row", Last, Last, Last)
	if err := f.DelContent(Last, Last, Last, false); err != nil {
		t.Fatalf("DelContent() error = %v", err)
	}
	if n := len(f.Tree.Blocks[0].Entries); n != 0 {
		t.Errorf("len(Entries) = %d, want 0 (sentinel removed with last row)", n)
	}
}

func TestDeletionCascadeKeepsNamedEntry(t *testing.T) {
	f := New(bcDialect)
	f.AddMainKeyword("BOUNDARY_CONDITION", Last)
	f.AddSubKeyword("PCS_TYPE", Last, Last)
	f.AddContent("GROUNDWATER_FLOW", Last, Last, Last)
	if err := f.DelContent(Last, Last, Last, false); err != nil {
		t.Fatalf("DelContent() error = %v", err)
	}
	if n := len(f.Tree.Blocks[0].Entries); n != 1 {
		t.Errorf("len(Entries) = %d, want 1 (named entry survives empty)", n)
	}
}

func TestDelContentAllOnSentinel(t *testing.T) {
	f := New(bcDialect)
	f.AddMainKeyword("BOUNDARY_CONDITION", Last)
	f.AddContent("1", Last, Last, Last)
	f.AddContent("2", Last, Last, Last)
	if err := f.DelContent(Last, Last, Last, true); err != nil {
		t.Fatalf("DelContent(all) error = %v", err)
	}
	if n := len(f.Tree.Blocks[0].Entries); n != 0 {
		t.Errorf("len(Entries) = %d, want 0", n)
	}
}

func TestNegativeIndices(t *testing.T) {
	f := New(bcDialect)
	f.AddBlock("", Fields{"PCS_TYPE": "FIRST"})
	f.AddBlock("", Fields{"PCS_TYPE": "SECOND"})

	got, err := f.GetBlock(-2)
	if err != nil {
		t.Fatalf("GetBlock(-2) error = %v", err)
	}
	rows, ok := got["PCS_TYPE"].([]Row)
	if !ok || !reflect.DeepEqual(rows[0], Row{"FIRST"}) {
		t.Errorf("GetBlock(-2)[PCS_TYPE] = %v, want [[FIRST]]", got["PCS_TYPE"])
	}

	if err := f.DelMainKeyword(-1, false); err != nil {
		t.Fatalf("DelMainKeyword(-1) error = %v", err)
	}
	if f.BlockCount() != 1 {
		t.Errorf("BlockCount() = %d, want 1", f.BlockCount())
	}
}

func TestIndexOutOfRange(t *testing.T) {
	f := New(bcDialect)
	f.AddBlock("", nil)

	got, err := f.GetBlock(5)
	if len(got) != 0 {
		t.Errorf("GetBlock(5) = %v, want empty Fields", got)
	}
	if d, ok := AsDiag(err); !ok || d.Kind != DiagIndex {
		t.Errorf("error = %v, want index diagnostic", err)
	}

	if err := f.DelMainKeyword(-5, false); err == nil {
		t.Error("DelMainKeyword(-5) error = nil, want diagnostic")
	}
	if f.BlockCount() != 1 {
		t.Errorf("BlockCount() = %d, want 1 (no-op)", f.BlockCount())
	}
}

func TestGetBlockFields(t *testing.T) {
	f := New(bcDialect)
	f.AddBlock("", Fields{"PCS_TYPE": "GROUNDWATER_FLOW", "DIS_TYPE": []any{"CONSTANT", 0.0}})
	got, err := f.GetBlock(Last)
	if err != nil {
		t.Fatalf("GetBlock() error = %v", err)
	}
	if got[MainKeyField] != "BOUNDARY_CONDITION" {
		t.Errorf("main_key = %v, want BOUNDARY_CONDITION", got[MainKeyField])
	}
	if _, ok := got["PCS_TYPE"]; !ok {
		t.Error("PCS_TYPE missing from block view")
	}
}

func TestUpdateBlock(t *testing.T) {
	f := New(bcDialect)
	f.AddBlock("", nil)
	if err := f.UpdateBlock(0, "", Fields{"PRIMARY_VARIABLE": "PRESSURE1"}); err != nil {
		t.Fatalf("UpdateBlock() error = %v", err)
	}
	if f.BlockCount() != 1 {
		t.Fatalf("BlockCount() = %d, want 1", f.BlockCount())
	}
	got, _ := f.GetBlock(0)
	rows, _ := got["PRIMARY_VARIABLE"].([]Row)
	if len(rows) != 1 || !reflect.DeepEqual(rows[0], Row{"PRESSURE1"}) {
		t.Errorf("PRIMARY_VARIABLE = %v, want [[PRESSURE1]]", got["PRIMARY_VARIABLE"])
	}
	// untouched fields survive the remove-and-reinsert
	if _, ok := got["GEO_TYPE"]; !ok {
		t.Error("GEO_TYPE missing after update")
	}
	// schema order is restored on reinsert
	want := []string{"PCS_TYPE", "PRIMARY_VARIABLE", "GEO_TYPE", "DIS_TYPE"}
	if gotNames := entryNames(f.Tree.Blocks[0]); !reflect.DeepEqual(gotNames, want) {
		t.Errorf("entry order = %v, want %v", gotNames, want)
	}
}

func TestUpdateBlockDirectContent(t *testing.T) {
	f := New(outDialect)
	f.AddBlock("", Fields{"VERSION": "OGS-5.7"})
	if err := f.UpdateBlock(0, "", nil); err != nil {
		t.Fatalf("UpdateBlock() error = %v", err)
	}
	b := f.Tree.Blocks[0]
	if b.Name != "VERSION" || len(b.Entries) != 1 || b.Entries[0].Name != "" {
		t.Errorf("block after update = %q %v, want VERSION with blank sentinel", b.Name, entryNames(b))
	}
}

func TestAddMultiContentPreservesOrder(t *testing.T) {
	f := New(bcDialect)
	f.AddMainKeyword("BOUNDARY_CONDITION", Last)
	f.AddSubKeyword("DIS_TYPE", Last, Last)
	err := f.AddMultiContent([]any{[]any{1, 10.0}, []any{2, 20.0}, []any{3, 30.0}}, Last, Last)
	if err != nil {
		t.Fatalf("AddMultiContent() error = %v", err)
	}
	rows := f.Tree.Blocks[0].Entries[0].Rows
	want := []Row{{"1", "10.0"}, {"2", "20.0"}, {"3", "30.0"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestReset(t *testing.T) {
	f := New(bcDialect)
	f.AddBlock("", nil)
	f.Reset()
	if !f.IsEmpty() {
		t.Error("IsEmpty() = false after Reset")
	}
}

func TestDelBlockAll(t *testing.T) {
	f := New(bcDialect)
	f.AddBlock("", nil)
	f.AddBlock("", nil)
	if err := f.DelBlock(0, true); err != nil {
		t.Fatalf("DelBlock(all) error = %v", err)
	}
	if f.BlockCount() != 0 {
		t.Errorf("BlockCount() = %d, want 0", f.BlockCount())
	}
}
