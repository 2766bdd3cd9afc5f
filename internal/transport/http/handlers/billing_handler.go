package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dimantha2004/Blog-publication/internal/service"
	"github.com/dimantha2004/Blog-publication/internal/transport/http/middleware"
)

type BillingHandler struct {
	billingService *service.BillingService
	dashboardURL   string
}

func NewBillingHandler(billingService *service.BillingService, dashboardURL string) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		dashboardURL:   dashboardURL,
	}
}

func (h *BillingHandler) Products(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.billingService.Products())
}

// Checkout resolves the hosted payment page for a product. The client
// navigates there itself; no session is created on this side.
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	url, err := h.billingService.CheckoutURL(body.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Unknown product")
		} else {
			log.Printf("ERROR checkout: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"checkout_url": url})
}

// Success is where the hosted checkout page redirects back to. It
// grants premium to the caller and forwards them to the dashboard.
func (h *BillingHandler) Success(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if _, err := h.billingService.ConfirmSuccess(r.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		} else {
			log.Printf("ERROR billing success: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	http.Redirect(w, r, h.dashboardURL, http.StatusSeeOther)
}
