package store_test

import (
	"testing"
	"time"

	"culinamind-go-be/billing"
	"culinamind-go-be/store"
)

const entitlementID = "AIF Pro"

func TestSubscriptionStartsLoadingNotPro(t *testing.T) {
	t.Parallel()
	s := store.NewSubscriptionStore(entitlementID)
	isPro, loading, info := s.Snapshot()
	if isPro || !loading || info != nil {
		t.Errorf("isPro=%v loading=%v info=%v", isPro, loading, info)
	}
}

func TestSubscriptionDerivesProFromEntitlement(t *testing.T) {
	t.Parallel()
	s := store.NewSubscriptionStore(entitlementID)
	future := time.Now().Add(30 * 24 * time.Hour)
	s.UpdateFromCustomerInfo(&billing.CustomerInfo{
		Entitlements: map[string]billing.Entitlement{
			entitlementID: {ExpiresDate: &future},
		},
	})
	isPro, loading, _ := s.Snapshot()
	if !isPro || loading {
		t.Errorf("isPro=%v loading=%v", isPro, loading)
	}
}

func TestSubscriptionExpiredEntitlementNotPro(t *testing.T) {
	t.Parallel()
	s := store.NewSubscriptionStore(entitlementID)
	past := time.Now().Add(-time.Hour)
	s.UpdateFromCustomerInfo(&billing.CustomerInfo{
		Entitlements: map[string]billing.Entitlement{
			entitlementID: {ExpiresDate: &past},
		},
	})
	if s.IsPro() {
		t.Error("expired entitlement must not grant Pro")
	}
}

func TestSubscriptionLifetimeEntitlement(t *testing.T) {
	t.Parallel()
	s := store.NewSubscriptionStore(entitlementID)
	s.UpdateFromCustomerInfo(&billing.CustomerInfo{
		Entitlements: map[string]billing.Entitlement{
			entitlementID: {ProductIdentifier: "culinamind_pro_lifetime"},
		},
	})
	if !s.IsPro() {
		t.Error("nil expiry means lifetime grant")
	}
}

func TestSubscriptionWrongEntitlementKey(t *testing.T) {
	t.Parallel()
	s := store.NewSubscriptionStore(entitlementID)
	future := time.Now().Add(time.Hour)
	s.UpdateFromCustomerInfo(&billing.CustomerInfo{
		Entitlements: map[string]billing.Entitlement{
			"Some Other Product": {ExpiresDate: &future},
		},
	})
	if s.IsPro() {
		t.Error("unrelated entitlement must not grant Pro")
	}
}

func TestSubscriptionRefreshRevokes(t *testing.T) {
	t.Parallel()
	s := store.NewSubscriptionStore(entitlementID)
	future := time.Now().Add(time.Hour)
	s.UpdateFromCustomerInfo(&billing.CustomerInfo{
		Entitlements: map[string]billing.Entitlement{
			entitlementID: {ExpiresDate: &future},
		},
	})
	// A later snapshot without the entitlement flips the flag back.
	s.UpdateFromCustomerInfo(&billing.CustomerInfo{Entitlements: map[string]billing.Entitlement{}})
	if s.IsPro() {
		t.Error("refresh without entitlement must revoke Pro")
	}
}

func TestSubscriptionOfferingSlot(t *testing.T) {
	t.Parallel()
	s := store.NewSubscriptionStore(entitlementID)
	if s.CurrentOffering() != nil {
		t.Error("offering should start nil")
	}
	s.SetCurrentOffering(billing.FallbackOffering())
	off := s.CurrentOffering()
	if off == nil || !off.Fallback {
		t.Errorf("offering = %+v", off)
	}
}
