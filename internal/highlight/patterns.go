package highlight

import "regexp"

// Pattern is one lexical category matcher. Patterns are evaluated
// independently over a full line; overlap resolution happens later in
// Line, so adding a category never touches the merge logic.
type Pattern struct {
	Category Category
	re       *regexp.Regexp
	group    int // submatch index to report; 0 means the whole match
}

// matches returns the (start, end) byte offsets of every occurrence of
// the pattern in line.
func (p Pattern) matches(line string) []match {
	var out []match
	for _, m := range p.re.FindAllStringSubmatchIndex(line, -1) {
		start, end := m[2*p.group], m[2*p.group+1]
		if start < 0 || start == end {
			continue
		}
		out = append(out, match{start: start, end: end, category: p.Category})
	}
	return out
}

// match is one candidate span before overlap resolution.
type match struct {
	start, end int
	category   Category
}

// defaultPatterns is the fixed pattern set, in declaration order.
// Declaration order is the tie-break when two matches start at the same
// position; position order decides everything else.
var defaultPatterns = []Pattern{
	{Category: CategoryComment, re: regexp.MustCompile(`//.*$|#.*$|/\*.*?\*/`)},
	{Category: CategoryString, re: regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'|` + "`[^`]*`")},
	{Category: CategoryKeyword, re: regexp.MustCompile(`\b(?:break|case|catch|chan|class|const|continue|def|default|defer|delete|elif|else|enum|export|extends|false|finally|fn|for|from|func|function|go|goto|if|impl|import|in|interface|let|map|match|mut|new|nil|none|null|of|package|pub|range|return|select|self|static|struct|switch|this|throw|true|try|type|typeof|undefined|use|var|void|while|yield|async|await)\b`)},
	{Category: CategoryNumber, re: regexp.MustCompile(`\b(?:0[xX][0-9a-fA-F]+|\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)\b`)},
	{Category: CategoryProperty, re: regexp.MustCompile(`\b([A-Za-z_]\w*)\s*:`), group: 1},
	{Category: CategoryFunction, re: regexp.MustCompile(`\b([A-Za-z_]\w*)\s*\(`), group: 1},
	{Category: CategoryOperator, re: regexp.MustCompile(`[+\-*/%=<>!&|^~]+|:=`)},
}
