package store

import (
	"sync"
	"time"

	"culinamind-go-be/billing"
)

// SubscriptionStore holds entitlement state derived from the billing
// provider. UpdateFromCustomerInfo is the only path that sets isPro; no app
// logic may flip the flag directly, so the store always matches the
// provider's view.
type SubscriptionStore struct {
	mu            sync.Mutex
	entitlementID string
	isPro         bool
	loading       bool
	info          *billing.CustomerInfo
	offering      *billing.Offering
}

func NewSubscriptionStore(entitlementID string) *SubscriptionStore {
	return &SubscriptionStore{entitlementID: entitlementID, loading: true}
}

// UpdateFromCustomerInfo recomputes isPro from the snapshot and stores it.
func (s *SubscriptionStore) UpdateFromCustomerInfo(info *billing.CustomerInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
	s.isPro = info.HasActiveEntitlement(s.entitlementID, time.Now())
	s.loading = false
}

func (s *SubscriptionStore) IsPro() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isPro
}

func (s *SubscriptionStore) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Snapshot returns the derived flag, the raw provider snapshot and the
// loading state together.
func (s *SubscriptionStore) Snapshot() (isPro, loading bool, info *billing.CustomerInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isPro, s.loading, s.info
}

func (s *SubscriptionStore) SetCurrentOffering(offering *billing.Offering) {
	s.mu.Lock()
	s.offering = offering
	s.mu.Unlock()
}

func (s *SubscriptionStore) CurrentOffering() *billing.Offering {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offering
}
