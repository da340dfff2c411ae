package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/abgdnv/storekeeper/internal/inventory"
)

// Inventory drives the store inventory menu.
type Inventory struct {
	service inventory.ProductService
	p       *Prompter
	logger  *slog.Logger
}

// NewInventory creates the inventory menu on top of service.
func NewInventory(service inventory.ProductService, p *Prompter, logger *slog.Logger) *Inventory {
	return &Inventory{
		service: service,
		p:       p,
		logger:  logger.With("component", "console"),
	}
}

// Run shows the main menu until the user quits or the input ends.
func (c *Inventory) Run(ctx context.Context) error {
	c.p.Println("=== Store inventory ===")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.p.Println()
		c.p.Println("=== MAIN MENU ===")
		c.p.Println("1. Add product")
		c.p.Println("2. Delete product")
		c.p.Println("3. Order supply")
		c.p.Println("4. Sell product")
		c.p.Println("5. Search products")
		c.p.Println("6. Show all products")
		c.p.Println("0. Exit")
		choice, err := c.p.ReadLine("Choose a menu item: ")
		if err != nil {
			return c.stop(ctx, err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = c.add(ctx)
		case "2":
			err = c.remove(ctx)
		case "3":
			err = c.supply(ctx)
		case "4":
			err = c.sell(ctx)
		case "5":
			err = c.search(ctx)
		case "6":
			c.showAll(ctx)
		case "0":
			c.p.Println("Exiting...")
			return nil
		default:
			c.p.Println("Invalid choice! Try again.")
		}
		if err != nil {
			return c.stop(ctx, err)
		}
	}
}

func (c *Inventory) stop(ctx context.Context, err error) error {
	if errors.Is(err, ErrInputClosed) {
		c.logger.DebugContext(ctx, "Input closed, leaving inventory menu")
		return nil
	}
	return err
}

func (c *Inventory) add(ctx context.Context) error {
	c.p.Println()
	c.p.Println("=== ADD PRODUCT ===")
	name, err := Ask(c.p, "Product name: ", ParseLabel, "Error! Name cannot be empty.")
	if err != nil {
		return err
	}
	price, err := Ask(c.p, "Price: ", ParsePositiveDecimal, "Error! Enter a valid positive price.")
	if err != nil {
		return err
	}
	quantity, err := Ask(c.p, "Quantity: ", ParseNonNegativeInt, "Error! Enter a valid non-negative quantity.")
	if err != nil {
		return err
	}
	// the add form insists on a valid category
	var category inventory.Category
	for {
		var ok bool
		category, ok, err = c.chooseCategory("Choose a category:")
		if err != nil {
			return err
		}
		if ok {
			break
		}
		c.p.Println("Invalid choice! Try again.")
	}

	p, err := c.service.Add(ctx, inventory.ProductCreateDto{Name: name, Price: price, Quantity: quantity, Category: category})
	if err != nil {
		c.p.Printf("Product was not added: %v\n", err)
		return nil
	}
	c.p.Printf("Product added! Product code: %s\n", p.Code)
	return nil
}

// chooseCategory prints the category submenu; ok is false when the answer is not 1..5.
func (c *Inventory) chooseCategory(title string) (inventory.Category, bool, error) {
	c.p.Println(title)
	for i, cat := range inventory.Categories {
		c.p.Printf("%d. %s\n", i+1, cat)
	}
	line, err := c.p.ReadLine(fmt.Sprintf("Your choice (1-%d): ", len(inventory.Categories)))
	if err != nil {
		return "", false, err
	}
	n, err := ParseInt(line)
	if err != nil {
		return "", false, nil
	}
	cat, ok := inventory.CategoryFromChoice(n)
	return cat, ok, nil
}

func (c *Inventory) remove(ctx context.Context) error {
	c.p.Println()
	c.p.Println("=== DELETE PRODUCT ===")
	if len(c.service.List(ctx)) == 0 {
		c.p.Println("No products to delete.")
		return nil
	}
	c.showAll(ctx)
	code, err := c.p.ReadLine("Code of the product to delete: ")
	if err != nil {
		return err
	}
	code = strings.TrimSpace(code)
	if c.service.Remove(ctx, code) {
		c.p.Printf("Product %s deleted.\n", code)
	} else {
		c.p.Println("No product with this code.")
	}
	return nil
}

func (c *Inventory) supply(ctx context.Context) error {
	c.p.Println()
	c.p.Println("=== ORDER SUPPLY ===")
	p, found, err := c.pickProduct(ctx, "Code of the product to resupply: ")
	if err != nil || !found {
		return err
	}
	quantity, err := Ask(c.p, "Quantity to order: ", ParsePositiveInt, "Error! Enter a valid positive quantity.")
	if err != nil {
		return err
	}
	updated, err := c.service.Supply(ctx, p.Code, quantity)
	if err != nil {
		c.report(err)
		return nil
	}
	c.p.Printf("Supply ordered! New quantity: %d\n", updated.Quantity)
	return nil
}

func (c *Inventory) sell(ctx context.Context) error {
	c.p.Println()
	c.p.Println("=== SELL PRODUCT ===")
	p, found, err := c.pickProduct(ctx, "Code of the product to sell: ")
	if err != nil || !found {
		return err
	}
	if !p.InStock() {
		c.p.Println("Out of stock!")
		return nil
	}
	quantity, err := Ask(c.p,
		fmt.Sprintf("Quantity to sell (available: %d): ", p.Quantity),
		ParseIntInRange(1, p.Quantity),
		"Error! Enter a valid quantity.")
	if err != nil {
		return err
	}
	sale, err := c.service.Sell(ctx, p.Code, quantity)
	if err != nil {
		c.report(err)
		return nil
	}
	c.p.Printf("Sale completed! Sold: %d pcs, Total: %s\n", sale.Quantity, money(sale.Total))
	c.p.Printf("Remaining stock: %d pcs\n", sale.Product.Quantity)
	return nil
}

// pickProduct lists the products and asks for a code; found is false when the user
// was told there is nothing to pick or the code is unknown.
func (c *Inventory) pickProduct(ctx context.Context, prompt string) (inventory.Product, bool, error) {
	if len(c.service.List(ctx)) == 0 {
		c.p.Println("No products.")
		return inventory.Product{}, false, nil
	}
	c.showAll(ctx)
	code, err := c.p.ReadLine(prompt)
	if err != nil {
		return inventory.Product{}, false, err
	}
	p, err := c.service.FindByID(ctx, strings.TrimSpace(code))
	if err != nil {
		c.report(err)
		return inventory.Product{}, false, nil
	}
	return p, true, nil
}

func (c *Inventory) search(ctx context.Context) error {
	c.p.Println()
	c.p.Println("=== SEARCH PRODUCTS ===")
	c.p.Println("1. By code")
	c.p.Println("2. By name")
	c.p.Println("3. By category")
	kind, err := c.p.ReadLine("Choose a search type: ")
	if err != nil {
		return err
	}

	switch strings.TrimSpace(kind) {
	case "1":
		code, err := c.p.ReadLine("Product code: ")
		if err != nil {
			return err
		}
		found := c.service.SearchByID(ctx, code)
		if len(found) == 0 {
			c.p.Println("No product with this code.")
			return nil
		}
		c.p.Println()
		c.p.Println("Product found:")
		c.p.Println(found[0])
	case "2":
		query, err := c.p.ReadLine("Product name: ")
		if err != nil {
			return err
		}
		c.printMatches(c.service.SearchByLabel(ctx, query), "Products found: %d\n", "No products with this name.")
	case "3":
		// unlike the add form, an invalid category here aborts the search
		cat, ok, err := c.chooseCategory("Choose a category to search:")
		if err != nil {
			return err
		}
		if !ok {
			c.p.Println("Invalid choice!")
			return nil
		}
		c.printMatches(c.service.SearchByCategory(ctx, cat),
			fmt.Sprintf("Products in category %s: %%d\n", cat),
			fmt.Sprintf("No products in category %s.", cat))
	default:
		c.p.Println("Invalid choice!")
	}
	return nil
}

func (c *Inventory) printMatches(found []inventory.Product, header, empty string) {
	if len(found) == 0 {
		c.p.Println(empty)
		return
	}
	c.p.Println()
	c.p.Printf(header, len(found))
	for _, p := range found {
		c.p.Println(p)
	}
}

func (c *Inventory) showAll(ctx context.Context) {
	c.p.Println()
	c.p.Println("=== ALL PRODUCTS ===")
	list := c.service.List(ctx)
	if len(list) == 0 {
		c.p.Println("No products.")
		return
	}
	for _, p := range list {
		c.p.Println(p)
	}
	c.p.Printf("Stock value: %s\n", money(c.service.Value(ctx)))
}

// report prints a one-line message for a recoverable service error.
func (c *Inventory) report(err error) {
	switch {
	case errors.Is(err, storeerrors.ErrNotFound):
		c.p.Println("No product with this code.")
	case errors.Is(err, storeerrors.ErrInsufficientStock):
		c.p.Println("Not enough stock!")
	case errors.Is(err, storeerrors.ErrValidation):
		c.p.Printf("Invalid input: %v\n", err)
	default:
		c.p.Printf("Operation failed: %v\n", err)
	}
}
