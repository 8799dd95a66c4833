package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/cartsim/internal/catalog"
	"github.com/utafrali/cartsim/internal/domain"
	"github.com/utafrali/cartsim/internal/pricing"
	"github.com/utafrali/cartsim/internal/repository"
	apperrors "github.com/utafrali/cartsim/pkg/errors"
	"github.com/utafrali/cartsim/pkg/logger"
)

// CartService implements the cart consolidation engine: it owns the cart,
// maintains its invariants under mutation, and persists it after every
// mutation. All validation happens before any mutation, so a rejected call
// never leaves the cart partially changed.
type CartService struct {
	repo    repository.CartRepository
	catalog *catalog.Catalog
	pricer  *pricing.Resolver
	logger  *slog.Logger
	cart    *domain.Cart
}

// Summary is the render-ready outcome of a checkout computation.
type Summary struct {
	Lines     []domain.CartLine
	ItemCount int
	Subtotal  float64
	Quote     pricing.Quote
	// CodeGiven is the normalized discount code the user entered, "" if none.
	CodeGiven string
	// CodeRejected reports that CodeGiven matched no configured discount.
	CodeRejected bool
}

// NewCartService creates a cart service starting from an empty cart.
func NewCartService(repo repository.CartRepository, cat *catalog.Catalog, pricer *pricing.Resolver, logger *slog.Logger) *CartService {
	return &CartService{
		repo:    repo,
		catalog: cat,
		pricer:  pricer,
		logger:  logger,
		cart:    &domain.Cart{Lines: []domain.CartLine{}},
	}
}

// Load restores the cart from the persistence slot. A failing store degrades
// to an empty cart; the session always starts in a usable state.
func (s *CartService) Load(ctx context.Context) *domain.Cart {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		logger.WithContext(ctx, s.logger).WarnContext(ctx, "cart slot unavailable, starting empty",
			slog.String("error", err.Error()),
		)
		cart = &domain.Cart{Lines: []domain.CartLine{}}
	}
	s.cart = cart
	return s.cart
}

// Cart returns the engine-owned cart.
func (s *CartService) Cart() *domain.Cart {
	return s.cart
}

// AddItem adds quantity units of the given product to the cart. If a line for
// the product already exists its quantity is incremented; otherwise a new
// line is appended, preserving add order. The product's name and price are
// snapshotted from the catalog at this moment.
func (s *CartService) AddItem(ctx context.Context, productID, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, apperrors.InvalidQuantity("quantity must be a positive integer")
	}

	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return nil, apperrors.UnknownProduct(productID)
	}

	if idx := s.cart.FindLineIndex(productID); idx >= 0 {
		s.cart.Lines[idx].Quantity += quantity
	} else {
		s.cart.Lines = append(s.cart.Lines, domain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
		})
	}

	if err := s.repo.Save(ctx, s.cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "item added to cart",
		slog.Int("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Int("cart_lines", len(s.cart.Lines)),
	)

	return s.cart, nil
}

// RemoveLast removes the most recently appended line, by insertion order.
// Incrementing an existing line does not change which line is "last".
// Returns the removed line, or an empty-cart condition when there is nothing
// to remove.
func (s *CartService) RemoveLast(ctx context.Context) (*domain.CartLine, error) {
	if s.cart.IsEmpty() {
		return nil, apperrors.EmptyCart("no products to remove")
	}

	last := s.cart.Lines[len(s.cart.Lines)-1]
	s.cart.Lines = s.cart.Lines[:len(s.cart.Lines)-1]

	if err := s.repo.Save(ctx, s.cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "last item removed from cart",
		slog.Int("product_id", last.ProductID),
		slog.String("name", last.Name),
	)

	return &last, nil
}

// Clear empties the cart and persists the empty slot.
func (s *CartService) Clear(ctx context.Context) error {
	s.cart = &domain.Cart{Lines: []domain.CartLine{}}

	if err := s.repo.Save(ctx, s.cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "cart cleared")
	return nil
}

// Summarize computes the checkout summary for the current cart and an
// optional discount code. An empty cart short-circuits before any pricing
// computation. An unknown code degrades to zero discount and is reported via
// the summary, not as an error.
func (s *CartService) Summarize(ctx context.Context, code string) (*Summary, error) {
	if s.cart.IsEmpty() {
		return nil, apperrors.EmptyCart("no products to summarize")
	}

	log := logger.WithContext(ctx, s.logger)

	subtotal := s.cart.Subtotal()
	quote, err := s.pricer.Apply(subtotal, code)

	summary := &Summary{
		Lines:     s.cart.Lines,
		ItemCount: s.cart.ItemCount(),
		Subtotal:  subtotal,
		Quote:     quote,
		CodeGiven: pricing.Normalize(code),
	}

	if err != nil {
		summary.CodeRejected = true
		log.WarnContext(ctx, "discount code rejected",
			slog.String("code", summary.CodeGiven),
		)
	}

	log.InfoContext(ctx, "purchase summarized",
		slog.Int("item_count", summary.ItemCount),
		slog.Float64("subtotal", summary.Subtotal),
		slog.Float64("rate", quote.Rate),
		slog.Float64("total", quote.Total),
	)

	return summary, nil
}
