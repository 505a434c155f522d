package policy

import (
	"testing"
	"time"

	"claims-processor/src/database"
	"claims-processor/src/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedPolicy(policyNumber string, status model.PolicyStatus, endDate model.Date) *model.InsurancePolicy {
	return &model.InsurancePolicy{
		PolicyNumber:   policyNumber,
		PolicyholderID: "PH001",
		PolicyType:     model.PolicyTypeAuto,
		CoverageAmount: decimal.RequireFromString("45000.00"),
		PremiumAmount:  decimal.RequireFromString("120.50"),
		Currency:       "USD",
		StartDate:      model.NewDate(2025, 1, 1),
		EndDate:        endDate,
		Status:         status,
	}
}

func futureDate() model.Date {
	next := time.Now().UTC().AddDate(1, 0, 0)
	return model.NewDate(next.Year(), next.Month(), next.Day())
}

func TestExistsByPolicyNumberOnlyCountsActive(t *testing.T) {
	repo := NewRepository(database.SetupTestDB(t))

	require.NoError(t, repo.CreateOrUpdate(storedPolicy("POL001", model.PolicyStatusActive, futureDate())))
	require.NoError(t, repo.CreateOrUpdate(storedPolicy("POL002", model.PolicyStatusExpired, futureDate())))

	exists, err := repo.ExistsByPolicyNumber("POL001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByPolicyNumber("POL002")
	require.NoError(t, err)
	assert.False(t, exists, "expired policies must not pass the existence gate")

	exists, err = repo.ExistsByPolicyNumber("POL999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindExpiringPoliciesByCutoff(t *testing.T) {
	repo := NewRepository(database.SetupTestDB(t))

	lapsed := storedPolicy("POL010", model.PolicyStatusActive, model.NewDate(2025, 6, 30))
	require.NoError(t, repo.CreateOrUpdate(lapsed))
	require.NoError(t, repo.CreateOrUpdate(storedPolicy("POL011", model.PolicyStatusActive, futureDate())))

	expiring, err := repo.FindExpiringPolicies(0)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "POL010", expiring[0].PolicyNumber)
}

func TestUpdatePolicyStatusExpiresPolicy(t *testing.T) {
	repo := NewRepository(database.SetupTestDB(t))

	require.NoError(t, repo.CreateOrUpdate(storedPolicy("POL020", model.PolicyStatusActive, futureDate())))

	updated, err := repo.UpdatePolicyStatus("POL020", model.PolicyStatusExpired)
	require.NoError(t, err)
	assert.True(t, updated)

	exists, err := repo.ExistsByPolicyNumber("POL020")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateOrUpdateUpsertsByPolicyNumber(t *testing.T) {
	repo := NewRepository(database.SetupTestDB(t))

	require.NoError(t, repo.CreateOrUpdate(storedPolicy("POL030", model.PolicyStatusActive, futureDate())))
	require.NoError(t, repo.CreateOrUpdate(storedPolicy("POL030", model.PolicyStatusSuspended, futureDate())))

	count, err := repo.CountActivePolicies()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	found, err := repo.FindByPolicyNumber("POL030")
	require.NoError(t, err)
	assert.Equal(t, model.PolicyStatusSuspended, found.Status)
}
