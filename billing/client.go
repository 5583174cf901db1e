package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.revenuecat.com/v1"

// Entitlement is one named capability grant from the provider.
type Entitlement struct {
	ExpiresDate       *time.Time `json:"expires_date"`
	PurchaseDate      *time.Time `json:"purchase_date"`
	ProductIdentifier string     `json:"product_identifier"`
}

// Active reports whether the grant is live at now. A nil expiry means a
// non-expiring grant (lifetime purchase).
func (e Entitlement) Active(now time.Time) bool {
	return e.ExpiresDate == nil || e.ExpiresDate.After(now)
}

// CustomerInfo is the provider's view of one subscriber.
type CustomerInfo struct {
	OriginalAppUserID string                 `json:"original_app_user_id"`
	FirstSeen         *time.Time             `json:"first_seen"`
	Entitlements      map[string]Entitlement `json:"entitlements"`
}

// HasActiveEntitlement reports whether the named entitlement key is present
// and active. This is the sole Pro/non-Pro signal.
func (ci *CustomerInfo) HasActiveEntitlement(key string, now time.Time) bool {
	if ci == nil {
		return false
	}
	ent, ok := ci.Entitlements[key]
	return ok && ent.Active(now)
}

// Package is one purchasable plan inside an offering.
type Package struct {
	Identifier        string `json:"identifier"`
	ProductIdentifier string `json:"platform_product_identifier"`
	PriceString       string `json:"price_string,omitempty"`
}

// Offering is a set of packages presented together on the paywall.
type Offering struct {
	Identifier  string    `json:"identifier"`
	Description string    `json:"description"`
	Packages    []Package `json:"packages"`
	Fallback    bool      `json:"fallback,omitempty"`
}

// Client talks to the billing provider's REST API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake provider.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type subscriberResponse struct {
	Subscriber struct {
		OriginalAppUserID string `json:"original_app_user_id"`
		FirstSeen         string `json:"first_seen"`
		Entitlements      map[string]struct {
			ExpiresDate       *string `json:"expires_date"`
			PurchaseDate      *string `json:"purchase_date"`
			ProductIdentifier string  `json:"product_identifier"`
		} `json:"entitlements"`
	} `json:"subscriber"`
}

// GetCustomerInfo fetches the latest subscriber snapshot for the app user.
func (c *Client) GetCustomerInfo(ctx context.Context, appUserID string) (*CustomerInfo, error) {
	var parsed subscriberResponse
	if err := c.get(ctx, "/subscribers/"+url.PathEscape(appUserID), &parsed); err != nil {
		return nil, err
	}

	info := &CustomerInfo{
		OriginalAppUserID: parsed.Subscriber.OriginalAppUserID,
		Entitlements:      make(map[string]Entitlement, len(parsed.Subscriber.Entitlements)),
	}
	if t, err := time.Parse(time.RFC3339, parsed.Subscriber.FirstSeen); err == nil {
		info.FirstSeen = &t
	}
	for key, ent := range parsed.Subscriber.Entitlements {
		e := Entitlement{ProductIdentifier: ent.ProductIdentifier}
		if ent.ExpiresDate != nil {
			if t, err := time.Parse(time.RFC3339, *ent.ExpiresDate); err == nil {
				e.ExpiresDate = &t
			}
		}
		if ent.PurchaseDate != nil {
			if t, err := time.Parse(time.RFC3339, *ent.PurchaseDate); err == nil {
				e.PurchaseDate = &t
			}
		}
		info.Entitlements[key] = e
	}
	return info, nil
}

type offeringsResponse struct {
	CurrentOfferingID string `json:"current_offering_id"`
	Offerings         []struct {
		Identifier  string `json:"identifier"`
		Description string `json:"description"`
		Packages    []struct {
			Identifier                string `json:"identifier"`
			PlatformProductIdentifier string `json:"platform_product_identifier"`
		} `json:"packages"`
	} `json:"offerings"`
}

// GetOfferings fetches the current offering for the app user. Callers fall
// back to the static table only when this returns an error.
func (c *Client) GetOfferings(ctx context.Context, appUserID string) (*Offering, error) {
	var parsed offeringsResponse
	if err := c.get(ctx, "/subscribers/"+url.PathEscape(appUserID)+"/offerings", &parsed); err != nil {
		return nil, err
	}

	for _, off := range parsed.Offerings {
		if off.Identifier != parsed.CurrentOfferingID {
			continue
		}
		current := &Offering{
			Identifier:  off.Identifier,
			Description: off.Description,
		}
		for _, pkg := range off.Packages {
			current.Packages = append(current.Packages, Package{
				Identifier:        pkg.Identifier,
				ProductIdentifier: pkg.PlatformProductIdentifier,
			})
		}
		return current, nil
	}
	return nil, fmt.Errorf("no current offering in provider response")
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("billing provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("billing provider returned %d: %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, v)
}
