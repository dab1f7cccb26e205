package block

import "strings"

// Dialect is the immutable schema of one OGS5 file type: which main keywords
// are legal, which sub keywords each of them takes and in what canonical
// order, and the default block used when AddBlock is called without fields.
// The engine itself is dialect-agnostic; a Dialect is plain data consulted at
// the editor boundary and by the write policy.
type Dialect struct {
	Name string // short file-type tag, e.g. "BC"
	Ext  string // file extension with leading dot, e.g. ".bc"

	// MainKeywords lists the legal main keywords in declaration order.
	MainKeywords []string
	// SubKeywords maps each main keyword to its sub keywords in the order
	// the simulator expects them. A "" entry marks content attached
	// directly to the main keyword.
	SubKeywords map[string][]string
	// Std is the default block substituted when no fields are given.
	Std map[string]any

	// ForceWrite marks file types the simulator expects on disk even when
	// they carry no blocks.
	ForceWrite bool
	// NoTopComment marks file types that tolerate no leading comment line.
	NoTopComment bool
}

// HasMain reports whether key is a declared main keyword.
func (d Dialect) HasMain(key string) bool {
	for _, mk := range d.MainKeywords {
		if mk == key {
			return true
		}
	}
	return false
}

// canonMain resolves a main keyword as read from a file to its declared
// form. Raw keys matching no declared keyword are kept unchanged, so files
// with newer keyword sets still parse.
func (d Dialect) canonMain(raw string) string {
	if key, ok := findKey(raw, d.MainKeywords); ok {
		return key
	}
	return raw
}

// canonSub resolves a sub keyword under the given main keyword the same way.
func (d Dialect) canonSub(mainKey, raw string) string {
	if key, ok := findKey(raw, d.SubKeywords[mainKey]); ok {
		return key
	}
	return raw
}

// findKey picks the declared keyword a raw key stands for: the longest
// declared key the raw one starts with. Files in the wild carry trailing
// junk after keywords, so an exact match cannot be required.
func findKey(raw string, keys []string) (string, bool) {
	best := ""
	for _, key := range keys {
		if key != "" && strings.HasPrefix(raw, key) && len(key) > len(best) {
			best = key
		}
	}
	return best, best != ""
}
