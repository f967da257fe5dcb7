package record

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"leadagent/app/service/pending"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *pending.Store, string, string) {
	t.Helper()

	dir := t.TempDir()
	leadsPath := filepath.Join(dir, "leads.json")
	feedbackPath := filepath.Join(dir, "feedback.json")

	store := pending.NewStore()

	svc, err := NewService(leadsPath, feedbackPath, store)
	require.NoError(t, err)

	return svc, store, leadsPath, feedbackPath
}

func readLeads(t *testing.T, path string) []Lead {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var leads []Lead
	require.NoError(t, json.Unmarshal(data, &leads))

	return leads
}

func TestRecordLead_MissingEmailPromptsWithoutPersisting(t *testing.T) {
	svc, _, leadsPath, _ := newTestService(t)

	reply, err := svc.RecordLead("Alex", "", "", "s1")
	require.NoError(t, err)

	assert.Contains(t, reply, "email")
	assert.Equal(t, 0, svc.Stats().TotalLeads)

	_, statErr := os.Stat(leadsPath)
	assert.True(t, os.IsNotExist(statErr), "lead file must not be written")
}

func TestRecordLead_AppendsAndClearsPending(t *testing.T) {
	svc, store, leadsPath, _ := newTestService(t)

	store.Update("s1", "Alex", "alex@example.com", "interested in AR")

	reply, err := svc.RecordLead("", "", "", "s1")
	require.NoError(t, err)

	assert.Contains(t, reply, "Alex")
	assert.Contains(t, reply, "alex@example.com")

	leads := readLeads(t, leadsPath)
	require.Len(t, leads, 1)
	assert.Equal(t, "Alex", leads[0].Name)
	assert.Equal(t, "alex@example.com", leads[0].Email)
	assert.Equal(t, "interested in AR", leads[0].Message)
	assert.Equal(t, StatusNew, leads[0].Status)
	assert.Equal(t, "s1", leads[0].SessionID)
	assert.False(t, leads[0].Timestamp.IsZero())

	assert.True(t, store.Get("s1").Empty(), "pending entry must be cleared")
}

func TestRecordLead_ExplicitArgsWinOverPending(t *testing.T) {
	svc, store, leadsPath, _ := newTestService(t)

	store.Update("s1", "Old Name", "old@example.com", "old interest")

	_, err := svc.RecordLead("New Name", "new@example.com", "", "s1")
	require.NoError(t, err)

	leads := readLeads(t, leadsPath)
	require.Len(t, leads, 1)
	assert.Equal(t, "New Name", leads[0].Name)
	assert.Equal(t, "new@example.com", leads[0].Email)
	assert.Equal(t, "old interest", leads[0].Message)
}

func TestRecordLead_DefaultsFillRemainingGaps(t *testing.T) {
	svc, _, leadsPath, _ := newTestService(t)

	_, err := svc.RecordLead("", "solo@example.com", "", "s1")
	require.NoError(t, err)

	leads := readLeads(t, leadsPath)
	require.Len(t, leads, 1)
	assert.Equal(t, "Interested Client", leads[0].Name)
	assert.Equal(t, "General inquiry", leads[0].Message)
}

func TestRecordLead_FilePreservesEarlierRecords(t *testing.T) {
	svc, _, leadsPath, feedbackPath := newTestService(t)

	_, err := svc.RecordLead("Alex", "alex@example.com", "solar", "s1")
	require.NoError(t, err)

	// a fresh service reloads what the first one persisted
	svc2, err := NewService(leadsPath, feedbackPath, pending.NewStore())
	require.NoError(t, err)
	assert.Equal(t, 1, svc2.Stats().TotalLeads)

	_, err = svc2.RecordLead("Sam", "sam@example.com", "wind", "s2")
	require.NoError(t, err)

	leads := readLeads(t, leadsPath)
	require.Len(t, leads, 2)
	assert.Equal(t, "Alex", leads[0].Name)
	assert.Equal(t, "Sam", leads[1].Name)
}

func TestRecordFeedback(t *testing.T) {
	svc, _, _, feedbackPath := newTestService(t)

	reply, err := svc.RecordFeedback("do you ship to Norway?")
	require.NoError(t, err)

	assert.Contains(t, reply, "do you ship to Norway?")

	data, err := os.ReadFile(feedbackPath)
	require.NoError(t, err)

	var feedback []Feedback
	require.NoError(t, json.Unmarshal(data, &feedback))
	require.Len(t, feedback, 1)
	assert.Equal(t, "do you ship to Norway?", feedback[0].Question)
	assert.Equal(t, StatusUnanswered, feedback[0].Status)
}

func TestStats(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.RecordLead("Alex", "alex@example.com", "", "s1")
	require.NoError(t, err)
	_, err = svc.RecordFeedback("a question")
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.TotalLeads)
	assert.Equal(t, 1, stats.TotalFeedback)
	assert.Equal(t, 1, stats.NewLeadsToday)
}
