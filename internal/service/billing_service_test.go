package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
)

const testCheckoutURL = "https://checkout.example.com/pay"

func TestCheckoutURLKnownProduct(t *testing.T) {
	svc := NewBillingService(newStubProfileRepo(), newStubUserRepo(), testCheckoutURL)

	url, err := svc.CheckoutURL(products[0].ID)
	if err != nil {
		t.Fatalf("CheckoutURL returned error: %v", err)
	}
	if url != testCheckoutURL {
		t.Errorf("expected %s, got %s", testCheckoutURL, url)
	}
}

func TestCheckoutURLUnknownProduct(t *testing.T) {
	svc := NewBillingService(newStubProfileRepo(), newStubUserRepo(), testCheckoutURL)

	_, err := svc.CheckoutURL("prod_nope")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestConfirmSuccessGrantsPremium(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "payer@example.com"}
	profileRepo := newStubProfileRepo()
	svc := NewBillingService(profileRepo, newStubUserRepo(user), testCheckoutURL)

	profile, err := svc.ConfirmSuccess(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ConfirmSuccess returned error: %v", err)
	}
	if !profile.Premium {
		t.Error("expected premium granted")
	}

	// Hitting the success callback again is harmless.
	again, err := svc.ConfirmSuccess(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("second ConfirmSuccess returned error: %v", err)
	}
	if !again.Premium {
		t.Error("premium should stick")
	}
}

func TestConfirmSuccessUnknownUser(t *testing.T) {
	svc := NewBillingService(newStubProfileRepo(), newStubUserRepo(), testCheckoutURL)

	_, err := svc.ConfirmSuccess(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
