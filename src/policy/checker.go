package policy

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	existsCacheTTL  = 1 * time.Minute
	cleanupInterval = 5 * time.Minute
)

// Checker answers policy existence lookups, caching positive answers for a
// short TTL. Negatives are never cached so a policy created moments after a
// miss is seen on the next lookup.
type Checker struct {
	repository Repository
	cache      *gocache.Cache
}

func NewChecker(repository Repository) *Checker {
	return &Checker{
		repository: repository,
		cache:      gocache.New(existsCacheTTL, cleanupInterval),
	}
}

func (c *Checker) Exists(policyNumber string) (bool, error) {
	if _, found := c.cache.Get(policyNumber); found {
		return true, nil
	}

	exists, err := c.repository.ExistsByPolicyNumber(policyNumber)
	if err != nil {
		return false, err
	}

	if exists {
		c.cache.Set(policyNumber, struct{}{}, gocache.DefaultExpiration)
	}
	return exists, nil
}
