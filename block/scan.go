package block

import "strings"

// StopKeyword is the reserved main keyword terminating every block file.
// Files in the wild carry trailing junk after it ("STOP_1997"), so it is
// matched by prefix.
const StopKeyword = "STOP"

// uncomment strips comments from a raw line and splits the rest into tokens.
// ";" and "//" both start a comment. A line yielding no tokens is blank and
// is never represented in the tree.
func uncomment(line string) []string {
	if i := strings.Index(line, ";"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}

// isKey reports whether a tokenized line is a key line of either kind.
func isKey(sline []string) bool {
	return sline[0][0] == '#' || sline[0][0] == '$'
}

// isMainKey reports whether a tokenized line opens a main-keyword block.
func isMainKey(sline []string) bool {
	return sline[0][0] == '#'
}

// isSubKey reports whether a tokenized line opens a sub-keyword entry.
func isSubKey(sline []string) bool {
	return sline[0][0] == '$'
}

// keyName extracts the keyword of a key line, absorbing the tolerated typos:
// whitespace between sigil and name ("# POINTS") and repeated sigils
// ("##POINTS"). Returns "" for non-key lines.
func keyName(sline []string) string {
	if !isKey(sline) {
		return ""
	}
	key := sline[0][1:]
	if key == "" && len(sline) > 1 {
		key = sline[1]
	}
	for len(key) > 0 && (key[0] == '#' || key[0] == '$') {
		key = key[1:]
	}
	return key
}

// isStop reports whether a main-key name terminates the file.
func isStop(key string) bool {
	return strings.HasPrefix(key, StopKeyword)
}
