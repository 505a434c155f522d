package policy

import (
	"errors"
	"testing"

	"claims-processor/src/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePolicyRepository struct {
	active  map[string]bool
	err     error
	lookups int
}

func (f *fakePolicyRepository) ExistsByPolicyNumber(policyNumber string) (bool, error) {
	f.lookups++
	if f.err != nil {
		return false, f.err
	}
	return f.active[policyNumber], nil
}

func (f *fakePolicyRepository) FindByPolicyNumber(string) (*model.InsurancePolicy, error) {
	return nil, nil
}

func (f *fakePolicyRepository) FindExpiringPolicies(int) ([]model.InsurancePolicy, error) {
	return nil, nil
}

func (f *fakePolicyRepository) UpdatePolicyStatus(string, model.PolicyStatus) (bool, error) {
	return false, nil
}

func (f *fakePolicyRepository) CreateOrUpdate(*model.InsurancePolicy) error {
	return nil
}

func (f *fakePolicyRepository) CountActivePolicies() (int64, error) {
	return 0, nil
}

func TestCheckerCachesPositiveLookups(t *testing.T) {
	repo := &fakePolicyRepository{active: map[string]bool{"POL001": true}}
	checker := NewChecker(repo)

	for i := 0; i < 5; i++ {
		exists, err := checker.Exists("POL001")
		require.NoError(t, err)
		assert.True(t, exists)
	}

	assert.Equal(t, 1, repo.lookups, "positive answers should be served from cache")
}

func TestCheckerNeverCachesNegativeLookups(t *testing.T) {
	repo := &fakePolicyRepository{active: map[string]bool{}}
	checker := NewChecker(repo)

	exists, err := checker.Exists("POL999")
	require.NoError(t, err)
	assert.False(t, exists)

	// Policy appears between lookups; the checker must see it immediately.
	repo.active["POL999"] = true

	exists, err = checker.Exists("POL999")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 2, repo.lookups)
}

func TestCheckerPropagatesRepositoryError(t *testing.T) {
	repo := &fakePolicyRepository{err: errors.New("connection refused")}
	checker := NewChecker(repo)

	_, err := checker.Exists("POL001")
	assert.Error(t, err)
}
