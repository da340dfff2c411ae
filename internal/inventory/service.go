package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/abgdnv/storekeeper/internal/search"
	"github.com/abgdnv/storekeeper/internal/store"
	"github.com/abgdnv/storekeeper/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ProductService defines the methods for managing the product inventory.
type ProductService interface {
	// Add validates and stores a new product, returning it with its generated code.
	// Returns ErrValidation if any field is out of range; nothing is stored in that case.
	Add(ctx context.Context, product ProductCreateDto) (Product, error)

	// Remove deletes a product by its code. Returns false if no such product exists.
	Remove(ctx context.Context, code string) bool

	// FindByID retrieves a single product by its code.
	// Returns ErrNotFound if no product exists with the given code.
	FindByID(ctx context.Context, code string) (Product, error)

	// List returns all products in store order.
	List(ctx context.Context) []Product

	// AdjustQuantity adds delta to the stock of a product and returns the new quantity.
	// Returns ErrNotFound for an unknown code and ErrInsufficientStock if the stock would go negative.
	AdjustQuantity(ctx context.Context, code string, delta int) (int, error)

	// Supply increases the stock of a product by quantity.
	Supply(ctx context.Context, code string, quantity int) (Product, error)

	// Sell decreases the stock of a product by quantity and reports the sale total.
	// Returns ErrInsufficientStock if quantity exceeds the available stock.
	Sell(ctx context.Context, code string, quantity int) (Sale, error)

	// Rename changes the display name of a product.
	Rename(ctx context.Context, code, name string) (Product, error)

	SearchByID(ctx context.Context, code string) []Product
	SearchByLabel(ctx context.Context, query string) []Product
	SearchByCategory(ctx context.Context, category Category) []Product

	// Value is the total worth of the stock on hand.
	Value(ctx context.Context) decimal.Decimal
}

// ProductCreateDto carries the fields of a product to be added.
type ProductCreateDto struct {
	Name     string          `json:"name"     validate:"required"`
	Price    decimal.Decimal `json:"price"    validate:"gt=0"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Category Category        `json:"category" validate:"oneof=Electronics Clothing Food Books Sports"`
}

// Sale is the outcome of selling a product. Total is informational and not stored.
type Sale struct {
	Product  Product
	Quantity int
	Total    decimal.Decimal
}

var _ ProductService = (*Service)(nil)

// Service implements ProductService on top of a record store.
type Service struct {
	store    store.Store[Product]
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a new instance of ProductService backed by s.
func NewService(s store.Store[Product], logger *slog.Logger) *Service {
	return &Service{
		store:    s,
		validate: validation.New(),
		logger:   logger.With("component", "inventory"),
	}
}

// Add validates the product and stores it under a freshly generated code.
func (s *Service) Add(ctx context.Context, product ProductCreateDto) (Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if err := validation.Struct(s.validate, product); err != nil {
		s.logger.WarnContext(ctx, "Rejected product", "name", product.Name, "error", err)
		return Product{}, fmt.Errorf("failed to add product: %w", err)
	}

	p := s.store.Add(func(code string) Product {
		return Product{
			Code:     code,
			Name:     product.Name,
			Price:    product.Price,
			Quantity: product.Quantity,
			Category: product.Category,
		}
	})
	s.logger.InfoContext(ctx, "Product added", "code", p.Code, "name", p.Name, "category", p.Category)
	return p, nil
}

// Remove deletes a product by its code.
func (s *Service) Remove(ctx context.Context, code string) bool {
	removed := s.store.Remove(code)
	s.logger.InfoContext(ctx, "Product removal requested", "code", code, "removed", removed)
	return removed
}

// FindByID retrieves a product by its code.
func (s *Service) FindByID(_ context.Context, code string) (Product, error) {
	p, ok := s.store.FindByID(code)
	if !ok {
		return Product{}, fmt.Errorf("failed to fetch product by code %s: %w", code, storeerrors.ErrNotFound)
	}
	return p, nil
}

// List retrieves all products.
func (s *Service) List(_ context.Context) []Product {
	return s.store.List()
}

// AdjustQuantity adds delta to the stock of a product and returns the new quantity.
// A negative delta withdraws stock; the product is left unchanged when the result would be negative.
func (s *Service) AdjustQuantity(ctx context.Context, code string, delta int) (int, error) {
	p, err := s.adjust(ctx, code, delta)
	if err != nil {
		return 0, err
	}
	return p.Quantity, nil
}

func (s *Service) adjust(ctx context.Context, code string, delta int) (Product, error) {
	p, err := s.store.Update(code, func(p *Product) error {
		if delta > 0 && p.Quantity > math.MaxInt-delta {
			return fmt.Errorf("%w: adding %d to %d exceeds the stock limit", storeerrors.ErrValidation, delta, p.Quantity)
		}
		if p.Quantity+delta < 0 {
			return fmt.Errorf("%w: requested %d, available %d", storeerrors.ErrInsufficientStock, -delta, p.Quantity)
		}
		p.Quantity += delta
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Stock adjustment rejected", "code", code, "delta", delta, "error", err)
		return Product{}, fmt.Errorf("failed to adjust stock of product %s: %w", code, err)
	}
	s.logger.InfoContext(ctx, "Stock adjusted", "code", code, "delta", delta, "quantity", p.Quantity)
	return p, nil
}

// Supply increases the stock of a product.
func (s *Service) Supply(ctx context.Context, code string, quantity int) (Product, error) {
	if quantity <= 0 {
		return Product{}, fmt.Errorf("%w: supply quantity must be positive, got %d", storeerrors.ErrValidation, quantity)
	}
	return s.adjust(ctx, code, quantity)
}

// Sell withdraws quantity units of a product and computes the sale total.
func (s *Service) Sell(ctx context.Context, code string, quantity int) (Sale, error) {
	if quantity <= 0 {
		return Sale{}, fmt.Errorf("%w: sale quantity must be positive, got %d", storeerrors.ErrValidation, quantity)
	}
	p, err := s.adjust(ctx, code, -quantity)
	if err != nil {
		return Sale{}, err
	}
	return Sale{
		Product:  p,
		Quantity: quantity,
		Total:    p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Rename changes the name of a product.
func (s *Service) Rename(ctx context.Context, code, name string) (Product, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Var(name, "required"); err != nil {
		return Product{}, fmt.Errorf("%w: name %v", storeerrors.ErrValidation, err)
	}
	p, err := s.store.Update(code, func(p *Product) error {
		p.Name = name
		return nil
	})
	if err != nil {
		return Product{}, fmt.Errorf("failed to rename product %s: %w", code, err)
	}
	s.logger.InfoContext(ctx, "Product renamed", "code", code, "name", name)
	return p, nil
}

// SearchByID returns the product with exactly this code, if any.
func (s *Service) SearchByID(_ context.Context, code string) []Product {
	return search.ByID(s.store.List(), strings.TrimSpace(code))
}

// SearchByLabel returns products whose name contains query, ignoring case.
func (s *Service) SearchByLabel(_ context.Context, query string) []Product {
	return search.ByLabel(s.store.List(), query)
}

// SearchByCategory returns products of the given category.
func (s *Service) SearchByCategory(_ context.Context, category Category) []Product {
	return search.Where(s.store.List(), func(p Product) bool { return p.Category == category })
}

// Value sums price × quantity over all products.
func (s *Service) Value(_ context.Context) decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.store.List() {
		total = total.Add(p.StockValue())
	}
	return total
}

// Seed loads the demonstration catalogue.
func (s *Service) Seed(ctx context.Context) error {
	for _, p := range demoProducts {
		if _, err := s.Add(ctx, p); err != nil {
			return fmt.Errorf("failed to seed inventory: %w", err)
		}
	}
	s.logger.InfoContext(ctx, "Demo products loaded", "count", len(demoProducts))
	return nil
}

var demoProducts = []ProductCreateDto{
	{Name: "Ноутбук HP", Price: decimal.NewFromInt(45000), Quantity: 10, Category: Electronics},
	{Name: "Футболка", Price: decimal.NewFromInt(1500), Quantity: 25, Category: Clothing},
	{Name: "Хлеб", Price: decimal.NewFromInt(50), Quantity: 100, Category: Food},
	{Name: "Война и мир", Price: decimal.NewFromInt(800), Quantity: 15, Category: Books},
	{Name: "Футбольный мяч", Price: decimal.NewFromInt(2500), Quantity: 8, Category: Sports},
}

// DemoSize is the number of products Seed adds.
func DemoSize() int {
	return len(demoProducts)
}
