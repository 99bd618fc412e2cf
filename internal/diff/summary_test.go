package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoFileDiff = `diff --git a/alpha.go b/alpha.go
index 1111111..2222222 100644
--- a/alpha.go
+++ b/alpha.go
@@ -1,5 +1,6 @@
 package alpha

-func Old() {}
+func New() {}
+func Extra() {}

diff --git a/beta.go b/beta.go
index 3333333..4444444 100644
--- a/beta.go
+++ b/beta.go
@@ -4,5 +4,2 @@
 func keep() {}
-func a() {}
-func b() {}
-func c() {}
 var x = 1
`

func TestParseSummaryEmptyInput(t *testing.T) {
	assert.Empty(t, ParseSummary("").Files)
	assert.Empty(t, ParseSummary("just some text\nwith no diff markers\n").Files)
}

func TestParseSummaryTwoFiles(t *testing.T) {
	summary := ParseSummary(twoFileDiff)
	require.Len(t, summary.Files, 2)

	alpha := summary.Files[0]
	assert.Equal(t, "alpha.go", alpha.Filename)
	assert.Equal(t, 2, alpha.Additions)
	assert.Equal(t, 1, alpha.Deletions)

	beta := summary.Files[1]
	assert.Equal(t, "beta.go", beta.Filename)
	assert.Equal(t, 0, beta.Additions)
	assert.Equal(t, 3, beta.Deletions)
}

func TestParseSummarySegmentBoundaries(t *testing.T) {
	summary := ParseSummary(twoFileDiff)
	require.Len(t, summary.Files, 2)

	alpha := summary.Files[0]
	assert.True(t, strings.HasPrefix(alpha.Content, "diff --git a/alpha.go"))
	assert.NotContains(t, alpha.Content, "beta.go")

	beta := summary.Files[1]
	assert.True(t, strings.HasPrefix(beta.Content, "diff --git a/beta.go"))
	assert.NotContains(t, beta.Content, "alpha.go")
}

// Additions and Deletions must equal the count of +/- lines inside
// Content, excluding the +++/--- file markers.
func TestParseSummaryLineCountInvariant(t *testing.T) {
	summary := ParseSummary(twoFileDiff)
	require.NotEmpty(t, summary.Files)

	for _, f := range summary.Files {
		additions, deletions := 0, 0
		for _, line := range strings.Split(f.Content, "\n") {
			switch {
			case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			case strings.HasPrefix(line, "+"):
				additions++
			case strings.HasPrefix(line, "-"):
				deletions++
			}
		}
		assert.Equal(t, additions, f.Additions, "%s additions", f.Filename)
		assert.Equal(t, deletions, f.Deletions, "%s deletions", f.Filename)
	}
}

func TestParseSummarySkipsSegmentWithoutFilename(t *testing.T) {
	raw := "diff --git\n+orphan\n" + twoFileDiff
	summary := ParseSummary(raw)
	require.Len(t, summary.Files, 2)
	assert.Equal(t, "alpha.go", summary.Files[0].Filename)
}

func TestParseSummaryFilenameUsesTargetSide(t *testing.T) {
	raw := "diff --git a/old_name.go b/new_name.go\n@@ -1,1 +1,1 @@\n-a\n+b\n"
	summary := ParseSummary(raw)
	require.Len(t, summary.Files, 1)
	assert.Equal(t, "new_name.go", summary.Files[0].Filename)
}

func TestParseSummaryIdempotent(t *testing.T) {
	first := ParseSummary(twoFileDiff)
	second := ParseSummary(twoFileDiff)
	assert.Equal(t, first, second)
}
