package audit_test

import (
	"testing"
	"time"

	"claims-processor/pkg/logger"
	"claims-processor/src/audit"
	"claims-processor/src/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessLogMessageStoresEntry(t *testing.T) {
	repo := audit.NewRepository(database.SetupTestDB(t))
	service := audit.NewService(repo)

	message := logger.LoggerMessage{
		Service:   "claims-processor",
		Level:     "warn",
		Message:   "[FRAUD-DETECTION] Fraud indicators detected for claim: CLM-AB12CD34",
		Timestamp: time.Now().UTC(),
	}
	payload, err := message.Serialize()
	require.NoError(t, err)

	require.NoError(t, service.ProcessLogMessage(payload))

	entries, err := service.EntriesByService("claims-processor")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0].Level)
	assert.Contains(t, entries[0].Message, "CLM-AB12CD34")
}

func TestProcessLogMessageRejectsMalformedPayload(t *testing.T) {
	service := audit.NewService(audit.NewRepository(database.SetupTestDB(t)))

	err := service.ProcessLogMessage([]byte(`{broken`))
	assert.Error(t, err)
}

func TestEntriesByLevelFiltersRows(t *testing.T) {
	repo := audit.NewRepository(database.SetupTestDB(t))
	service := audit.NewService(repo)

	require.NoError(t, repo.Create(&audit.LogAuditEntry{Service: "claims-processor", Level: "info", Message: "a"}))
	require.NoError(t, repo.Create(&audit.LogAuditEntry{Service: "claims-processor", Level: "error", Message: "b"}))

	errorEntries, err := service.EntriesByLevel("error")
	require.NoError(t, err)
	require.Len(t, errorEntries, 1)
	assert.Equal(t, "b", errorEntries[0].Message)
}

func TestRecentEntriesReturnsNewestFirst(t *testing.T) {
	repo := audit.NewRepository(database.SetupTestDB(t))
	service := audit.NewService(repo)

	require.NoError(t, repo.Create(&audit.LogAuditEntry{Service: "claims-processor", Level: "info", Message: "first"}))
	require.NoError(t, repo.Create(&audit.LogAuditEntry{Service: "claims-processor", Level: "info", Message: "second"}))
	require.NoError(t, repo.Create(&audit.LogAuditEntry{Service: "claims-processor", Level: "info", Message: "third"}))

	recent, err := service.RecentEntries(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Message)
	assert.Equal(t, "second", recent[1].Message)
}
