package history_test

import (
	"path/filepath"
	"testing"

	"github.com/openkraft/reportkraft/internal/adapters/outbound/history"
	"github.com/openkraft/reportkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		Timestamp:          "2026-10-19T10:00:00Z",
		CommitHash:         "abc1234",
		Output:             "comprehensive-analysis.json",
		TechnicalDebt:      2,
		RefactoringTargets: 1,
		LargeFiles:         3,
		FailedReports:      []string{domain.ReportLint},
	}

	err := h.Save(dir, entry)
	require.NoError(t, err)

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t1", TechnicalDebt: 4}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t2", TechnicalDebt: 2}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t3", LargeFiles: 1}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 4, entries[0].Total())
	assert.Equal(t, "t3", entries[2].Timestamp)
}

func TestHistory_LoadEmpty(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	nestedDir := filepath.Join(dir, "deep", "nested")
	h := history.New()

	err := h.Save(nestedDir, domain.RunEntry{Timestamp: "t1"})
	require.NoError(t, err)

	entries, err := h.Load(nestedDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
