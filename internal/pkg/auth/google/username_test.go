package google

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateUsername_Simple(t *testing.T) {
	assert.Equal(t, "muskan", CandidateUsername("Muskan"))
}

func TestCandidateUsername_SpacesBecomeUnderscores(t *testing.T) {
	assert.Equal(t, "muskan_aryal", CandidateUsername("Muskan Aryal"))
}

func TestCandidateUsername_DropsSymbols(t *testing.T) {
	assert.Equal(t, "jo_smith99", CandidateUsername("Jo! Smith99"))
}

func TestCandidateUsername_Truncates(t *testing.T) {
	got := CandidateUsername("a very long display name that keeps going")
	assert.LessOrEqual(t, len(got), maxCandidateLength)
	assert.NotEmpty(t, got)
}

func TestCandidateUsername_NoTrailingUnderscore(t *testing.T) {
	got := CandidateUsername("  Ann  ")
	assert.Equal(t, "ann", got)
}

func TestCandidateUsername_ShortNamePadded(t *testing.T) {
	got := CandidateUsername("Bo")

	assert.True(t, strings.HasPrefix(got, "bo_"), "short names keep their stem, got %q", got)
	assert.GreaterOrEqual(t, len(got), minCandidateLength)
	assert.LessOrEqual(t, len(got), maxCandidateLength)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9_]+$`), got)
}

func TestCandidateUsername_EmptyFallsBack(t *testing.T) {
	got := CandidateUsername("")
	assert.True(t, strings.HasPrefix(got, "user"), "expected generated fallback, got %q", got)

	// The suggestion must survive the registration username rules unchanged.
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9_]+$`), got)
}

func TestCandidateUsername_UnusableFallsBack(t *testing.T) {
	got := CandidateUsername("混合文字!!")
	assert.True(t, strings.HasPrefix(got, "user"), "expected generated fallback, got %q", got)
}
