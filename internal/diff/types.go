package diff

// LineKind indicates what a physical diff line represents
type LineKind int

const (
	LineContext LineKind = iota
	LineAddition
	LineDeletion
)

// Line is one physical line inside a block. Text excludes the leading
// +/-/space marker. OldLine is set (non-zero) for deletions and context,
// NewLine for additions and context.
type Line struct {
	Kind    LineKind
	Text    string
	OldLine int
	NewLine int
}

// BlockKind indicates the type of display block for rendering
type BlockKind int

const (
	// BlockHeader is a "diff --git" or "@@ ... @@" line, rendered verbatim
	BlockHeader BlockKind = iota
	// BlockHunk is a run of changed lines with up to 3 lines of
	// surrounding context
	BlockHunk
	// BlockCollapsed is a long run of unchanged lines hidden behind a toggle
	BlockCollapsed
)

// Block is one display block in a file's rendering sequence
type Block struct {
	Kind  BlockKind
	Text  string // header text (BlockHeader only)
	Lines []Line // BlockHunk and BlockCollapsed
	Index int    // hunk ordinal within the file (BlockHunk only)

	// Collapsed region bookkeeping (BlockCollapsed only)
	StartLine int    // old-side line number of the first hidden line
	EndLine   int    // old-side line number of the last hidden line
	Label     string // e.g. "12 unchanged lines"
}

// FileDiff is one file's change record from a multi-file unified diff
type FileDiff struct {
	Filename  string // target path (b/ side; renames use the target)
	Additions int
	Deletions int
	Content   string // raw diff body, from its "diff --git" line to the next
}

// Summary is the top-level parse result of a multi-file unified diff
type Summary struct {
	Files []FileDiff
}
