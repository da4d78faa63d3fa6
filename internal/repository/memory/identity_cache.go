package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// IdentityCache keeps a short-lived mapping from a provider identity
// ("provider:providerUserId") to the resolved local user id, so repeat
// logins skip the database lookup.
type IdentityCache struct {
	cache *cache.Cache
}

func NewIdentityCache() *IdentityCache {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &IdentityCache{
		cache: c,
	}
}

func key(providerName, providerUserId string) string {
	return providerName + ":" + providerUserId
}

func (r *IdentityCache) Save(providerName, providerUserId string, userId uuid.UUID) {
	r.cache.Set(key(providerName, providerUserId), userId, cache.DefaultExpiration)
}

func (r *IdentityCache) Get(providerName, providerUserId string) (uuid.UUID, bool) {
	if x, found := r.cache.Get(key(providerName, providerUserId)); found {
		return x.(uuid.UUID), true
	}
	return uuid.Nil, false
}

func (r *IdentityCache) Delete(providerName, providerUserId string) {
	r.cache.Delete(key(providerName, providerUserId))
}
