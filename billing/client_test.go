package billing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"culinamind-go-be/billing"
)

func fakeProvider(t *testing.T, handler http.HandlerFunc) *billing.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return billing.NewClientWithBaseURL("test-key", srv.URL)
}

func TestGetCustomerInfoParsesEntitlements(t *testing.T) {
	t.Parallel()
	client := fakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subscribers/user-1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"subscriber": {
				"original_app_user_id": "user-1",
				"first_seen": "2025-01-15T10:00:00Z",
				"entitlements": {
					"AIF Pro": {
						"expires_date": "2099-01-01T00:00:00Z",
						"purchase_date": "2025-01-15T10:00:00Z",
						"product_identifier": "culinamind_pro_yearly"
					}
				}
			}
		}`))
	})

	info, err := client.GetCustomerInfo(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetCustomerInfo: %v", err)
	}
	if info.OriginalAppUserID != "user-1" {
		t.Errorf("app user id = %q", info.OriginalAppUserID)
	}
	if !info.HasActiveEntitlement("AIF Pro", time.Now()) {
		t.Error("expected active entitlement")
	}
	if info.HasActiveEntitlement("Other", time.Now()) {
		t.Error("unknown key reported active")
	}
}

func TestGetCustomerInfoLifetimeEntitlement(t *testing.T) {
	t.Parallel()
	client := fakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"subscriber": {
				"original_app_user_id": "user-2",
				"first_seen": "2025-01-15T10:00:00Z",
				"entitlements": {
					"AIF Pro": {
						"expires_date": null,
						"product_identifier": "culinamind_pro_lifetime"
					}
				}
			}
		}`))
	})

	info, err := client.GetCustomerInfo(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("GetCustomerInfo: %v", err)
	}
	if !info.HasActiveEntitlement("AIF Pro", time.Now()) {
		t.Error("nil expiry must mean a lifetime grant")
	}
}

func TestGetCustomerInfoProviderError(t *testing.T) {
	t.Parallel()
	client := fakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":7225,"message":"Invalid API Key"}`, http.StatusUnauthorized)
	})
	if _, err := client.GetCustomerInfo(context.Background(), "user-1"); err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestGetOfferingsSelectsCurrent(t *testing.T) {
	t.Parallel()
	client := fakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subscribers/user-1/offerings" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"current_offering_id": "default",
			"offerings": [
				{"identifier": "legacy", "description": "old", "packages": []},
				{"identifier": "default", "description": "CulinaMind Pro", "packages": [
					{"identifier": "monthly", "platform_product_identifier": "culinamind_pro_monthly"},
					{"identifier": "yearly", "platform_product_identifier": "culinamind_pro_yearly"}
				]}
			]
		}`))
	})

	offering, err := client.GetOfferings(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetOfferings: %v", err)
	}
	if offering.Identifier != "default" || len(offering.Packages) != 2 {
		t.Errorf("offering = %+v", offering)
	}
	if offering.Fallback {
		t.Error("live offering flagged as fallback")
	}
	if offering.Packages[0].ProductIdentifier != "culinamind_pro_monthly" {
		t.Errorf("package = %+v", offering.Packages[0])
	}
}

func TestGetOfferingsNoCurrent(t *testing.T) {
	t.Parallel()
	client := fakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_offering_id": "missing", "offerings": []}`))
	})
	if _, err := client.GetOfferings(context.Background(), "user-1"); err == nil {
		t.Fatal("expected error when current offering absent")
	}
}

func TestFallbackOfferingShape(t *testing.T) {
	t.Parallel()
	off := billing.FallbackOffering()
	if !off.Fallback {
		t.Error("fallback offering must be flagged")
	}
	if len(off.Packages) != 3 {
		t.Errorf("packages = %d, want 3", len(off.Packages))
	}
}
