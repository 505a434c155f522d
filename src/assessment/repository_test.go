package assessment

import (
	"testing"

	"claims-processor/src/database"
	"claims-processor/src/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentsAreAppendOnly(t *testing.T) {
	repo := NewRepository(database.SetupTestDB(t))

	require.NoError(t, repo.Create(&model.ClaimAssessment{ClaimNumber: "CLM-00000001", RiskScore: 25}))
	require.NoError(t, repo.Create(&model.ClaimAssessment{ClaimNumber: "CLM-00000001", RiskScore: 60}))

	count, err := repo.CountByClaimNumber("CLM-00000001")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	all, err := repo.FindByClaimNumber("CLM-00000001")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindLatestByClaimNumber(t *testing.T) {
	repo := NewRepository(database.SetupTestDB(t))

	require.NoError(t, repo.Create(&model.ClaimAssessment{ClaimNumber: "CLM-00000002", RiskScore: 25}))
	require.NoError(t, repo.Create(&model.ClaimAssessment{ClaimNumber: "CLM-00000002", RiskScore: 80, FraudFlag: true}))

	latest, err := repo.FindLatestByClaimNumber("CLM-00000002")
	require.NoError(t, err)
	assert.Equal(t, 80, latest.RiskScore)
	assert.True(t, latest.FraudFlag)
}

func TestFindFraudulentClaims(t *testing.T) {
	repo := NewRepository(database.SetupTestDB(t))

	require.NoError(t, repo.Create(&model.ClaimAssessment{ClaimNumber: "CLM-00000003", FraudFlag: true}))
	require.NoError(t, repo.Create(&model.ClaimAssessment{ClaimNumber: "CLM-00000004", FraudFlag: false}))

	flagged, err := repo.FindFraudulentClaims()
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, "CLM-00000003", flagged[0].ClaimNumber)
}
