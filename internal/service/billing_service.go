package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/dimantha2004/Blog-publication/internal/repository"
	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// products is the static catalog shown on the pricing page. Checkout
// itself happens on an externally hosted payment page.
var products = []domain.Product{
	{
		ID:          "prod_Sgm9j9rJ9z2pS1",
		PriceID:     "price_1RlOavRjYuUozJvdvCNaWp8P",
		Name:        "Blog",
		Description: "Access to premium blog content and features",
		Mode:        "subscription",
		Price:       "$1.00/month",
	},
}

type BillingService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	checkoutURL string
}

func NewBillingService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, checkoutURL string) *BillingService {
	return &BillingService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		checkoutURL: checkoutURL,
	}
}

func (s *BillingService) Products() []domain.Product {
	return products
}

// CheckoutURL resolves the hosted payment page for a product.
func (s *BillingService) CheckoutURL(productID string) (string, error) {
	for _, p := range products {
		if p.ID == productID {
			return s.checkoutURL, nil
		}
	}
	return "", ErrProductNotFound
}

// ConfirmSuccess marks the caller premium after the checkout page
// redirects back. There is no payment verification here; this is the
// demo integration the hosted page hands back to, kept in one place so
// a real verification step has a single seam to land in.
func (s *BillingService) ConfirmSuccess(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := s.profileRepo.GetOrCreate(ctx, userID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	if !profile.Premium {
		profile.Premium = true
		profile.UpdatedAt = time.Now()
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, fmt.Errorf("granting premium: %w", err)
		}
	}

	return profile, nil
}
