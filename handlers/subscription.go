package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/billing"
	"culinamind-go-be/store"
)

type SubscriptionHandler struct {
	subs         *store.SubscriptionStore
	billing      *billing.Client
	webhookToken string
}

func NewSubscriptionHandler(subs *store.SubscriptionStore, client *billing.Client, webhookToken string) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs, billing: client, webhookToken: webhookToken}
}

func (h *SubscriptionHandler) Status(c *fiber.Ctx) error {
	isPro, loading, info := h.subs.Snapshot()
	return c.JSON(fiber.Map{
		"is_pro":        isPro,
		"loading":       loading,
		"customer_info": info,
		"offering":      h.subs.CurrentOffering(),
	})
}

type appUserRequest struct {
	AppUserID string `json:"app_user_id"`
}

// refresh pulls the latest customer snapshot and rederives the Pro flag.
func (h *SubscriptionHandler) refresh(c *fiber.Ctx, appUserID string) error {
	if h.billing == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Billing is not configured"})
	}
	h.subs.SetLoading(true)
	info, err := h.billing.GetCustomerInfo(c.Context(), appUserID)
	if err != nil {
		h.subs.SetLoading(false)
		log.Printf("billing: customer info fetch failed for %s: %v", appUserID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch subscription status"})
	}
	h.subs.UpdateFromCustomerInfo(info)
	return c.JSON(fiber.Map{"is_pro": h.subs.IsPro(), "customer_info": info})
}

func (h *SubscriptionHandler) Refresh(c *fiber.Ctx) error {
	var req appUserRequest
	if err := c.BodyParser(&req); err != nil || req.AppUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "app_user_id is required"})
	}
	return h.refresh(c, req.AppUserID)
}

// Offerings serves the live paywall plans, falling back to the static table
// only when the live fetch fails.
func (h *SubscriptionHandler) Offerings(c *fiber.Ctx) error {
	appUserID := c.Query("app_user_id")
	if h.billing != nil && appUserID != "" {
		offering, err := h.billing.GetOfferings(c.Context(), appUserID)
		if err == nil {
			h.subs.SetCurrentOffering(offering)
			return c.JSON(offering)
		}
		log.Printf("billing: offerings fetch failed, serving fallback: %v", err)
	}
	fallback := billing.FallbackOffering()
	h.subs.SetCurrentOffering(fallback)
	return c.JSON(fallback)
}

type purchaseRequest struct {
	AppUserID string `json:"app_user_id"`
	ProductID string `json:"product_id"`
	Cancelled bool   `json:"cancelled"`
}

// Purchase ingests the client-side purchase result. A user cancellation is
// an ordinary outcome: state is untouched and the response is 200, not an
// error. A completed purchase triggers a customer-info refresh so the Pro
// flag comes from the provider, never from the purchase flow itself.
func (h *SubscriptionHandler) Purchase(c *fiber.Ctx) error {
	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil || req.AppUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "app_user_id is required"})
	}
	if req.Cancelled {
		return c.JSON(fiber.Map{"cancelled": true, "is_pro": h.subs.IsPro()})
	}
	return h.refresh(c, req.AppUserID)
}

// Restore re-syncs entitlements from the provider (e.g. after reinstall).
func (h *SubscriptionHandler) Restore(c *fiber.Ctx) error {
	var req appUserRequest
	if err := c.BodyParser(&req); err != nil || req.AppUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "app_user_id is required"})
	}
	return h.refresh(c, req.AppUserID)
}

// Webhook receives provider push events. Any event type triggers a refresh
// for the named app user; the handler never trusts the event payload for
// entitlement state.
func (h *SubscriptionHandler) Webhook(c *fiber.Ctx) error {
	if h.webhookToken != "" && c.Get("Authorization") != "Bearer "+h.webhookToken {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	var payload billing.WebhookPayload
	if err := c.BodyParser(&payload); err != nil || payload.Event.AppUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid webhook payload"})
	}

	log.Printf("billing: webhook %s for %s", payload.Event.Type, payload.Event.AppUserID)
	if h.billing != nil {
		info, err := h.billing.GetCustomerInfo(c.Context(), payload.Event.AppUserID)
		if err != nil {
			log.Printf("billing: webhook refresh failed for %s: %v", payload.Event.AppUserID, err)
		} else {
			h.subs.UpdateFromCustomerInfo(info)
		}
	}
	return c.JSON(fiber.Map{"received": true})
}
