package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedDiff(t *testing.T) {
	got := UnifiedDiff("page.html", "a\nb\nc\n", "a\nB\nc\n")
	want := "--- a/page.html\n+++ b/page.html\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n-b\n+B\n c\n"
	assert.Equal(t, want, got)
}

func TestUnifiedDiffSeparateHunks(t *testing.T) {
	before := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"
	after := "one\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\ntwelve\n"
	got := UnifiedDiff("f", before, after)
	want := "--- a/f\n+++ b/f\n" +
		"@@ -1,4 +1,4 @@\n-1\n+one\n 2\n 3\n 4\n" +
		"@@ -9,4 +9,4 @@\n 9\n 10\n 11\n-12\n+twelve\n"
	assert.Equal(t, want, got)
}

func TestUnifiedDiffNoNewline(t *testing.T) {
	got := UnifiedDiff("f", "x", "y")
	assert.Equal(t, "--- a/f\n+++ b/f\n@@ -1 +1 @@\n-x\n\\ No newline at end of file\n+y\n\\ No newline at end of file\n", got)
}

func TestUnifiedDiffEqual(t *testing.T) {
	assert.Empty(t, UnifiedDiff("f", "same\n", "same\n"))
}
