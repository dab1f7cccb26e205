package dialect

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/dhamidi/ogs5/block"
)

// Schema files declare further dialects as data, e.g.:
//
//	dialect "RFD" {
//	  ext = ".rfd"
//	  main "CURVES" {
//	    subs = [""]
//	  }
//	  std {
//	    CURVES = [[0, 1.0], [3600, 1.0]]
//	  }
//	}

type schemaFile struct {
	Dialects []dialectSpec `hcl:"dialect,block"`
}

type dialectSpec struct {
	Name         string     `hcl:"name,label"`
	Ext          string     `hcl:"ext"`
	ForceWrite   bool       `hcl:"force_write,optional"`
	NoTopComment bool       `hcl:"no_top_comment,optional"`
	Mains        []mainSpec `hcl:"main,block"`
	Std          *stdSpec   `hcl:"std,block"`
}

type mainSpec struct {
	Name string   `hcl:"name,label"`
	Subs []string `hcl:"subs,optional"`
}

// std blocks carry free-form attributes, one per sub keyword.
type stdSpec struct {
	Remain hcl.Body `hcl:",remain"`
}

// Load parses dialect declarations from HCL source. filename is used in
// error messages only.
func Load(filename string, src []byte) ([]block.Dialect, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse schema %s: %w", filename, diags)
	}
	var sf schemaFile
	if diags := gohcl.DecodeBody(file.Body, nil, &sf); diags.HasErrors() {
		return nil, fmt.Errorf("decode schema %s: %w", filename, diags)
	}

	out := make([]block.Dialect, 0, len(sf.Dialects))
	for _, spec := range sf.Dialects {
		d := block.Dialect{
			Name:         spec.Name,
			Ext:          spec.Ext,
			ForceWrite:   spec.ForceWrite,
			NoTopComment: spec.NoTopComment,
			SubKeywords:  make(map[string][]string, len(spec.Mains)),
		}
		for _, m := range spec.Mains {
			d.MainKeywords = append(d.MainKeywords, m.Name)
			d.SubKeywords[m.Name] = m.Subs
		}
		if spec.Std != nil {
			std, err := decodeStd(spec.Std.Remain)
			if err != nil {
				return nil, fmt.Errorf("schema %s: dialect %q: %w", filename, spec.Name, err)
			}
			d.Std = std
		}
		out = append(out, d)
	}
	return out, nil
}

// LoadFile loads dialect declarations from an HCL file on disk.
func LoadFile(path string) ([]block.Dialect, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Load(path, src)
}

func decodeStd(body hcl.Body) (map[string]any, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("std block: %w", diags)
	}
	std := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("std attribute %q: %w", name, diags)
		}
		native, err := ctyToNative(v)
		if err != nil {
			return nil, fmt.Errorf("std attribute %q: %w", name, err)
		}
		std[name] = native
	}
	return std, nil
}
