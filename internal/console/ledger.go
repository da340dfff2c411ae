package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abgdnv/storekeeper/internal/currency"
	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/abgdnv/storekeeper/internal/ledger"
	"github.com/shopspring/decimal"
)

// Ledger drives the expense tracker: an initial data-entry phase followed by the main menu.
type Ledger struct {
	service    ledger.ExpenseService
	p          *Prompter
	logger     *slog.Logger
	minEntries int
	maxEntries int
}

// NewLedger creates the ledger menu; the user enters between minEntries and maxEntries expenses at start.
func NewLedger(service ledger.ExpenseService, p *Prompter, logger *slog.Logger, minEntries, maxEntries int) *Ledger {
	return &Ledger{
		service:    service,
		p:          p,
		logger:     logger.With("component", "console"),
		minEntries: minEntries,
		maxEntries: maxEntries,
	}
}

// Run collects the initial expenses and then serves the menu until the user quits or the input ends.
func (c *Ledger) Run(ctx context.Context) error {
	c.p.Println("=== Expense tracker ===")
	if err := c.setup(ctx); err != nil {
		return c.stop(ctx, err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.p.Println()
		c.p.Println("=== MENU ===")
		c.p.Println("1. Show all expenses")
		c.p.Println("2. Statistics")
		c.p.Println("3. Sort by amount")
		c.p.Println("4. Currency conversion")
		c.p.Println("5. Search by name")
		c.p.Println("0. Exit")
		choice, err := c.p.ReadLine("Choose a menu item: ")
		if err != nil {
			return c.stop(ctx, err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.showAll(ctx)
		case "2":
			c.statistics(ctx)
		case "3":
			c.service.Sort(ctx)
			c.p.Println("Expenses sorted ascending by amount.")
			c.showAll(ctx)
		case "4":
			err = c.convert(ctx)
		case "5":
			err = c.search(ctx)
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

func (c *Ledger) stop(ctx context.Context, err error) error {
	if errors.Is(err, ErrInputClosed) {
		c.logger.DebugContext(ctx, "Input closed, leaving ledger menu")
		return nil
	}
	return err
}

func (c *Ledger) setup(ctx context.Context) error {
	count, err := Ask(c.p,
		fmt.Sprintf("Number of expenses (%d-%d): ", c.minEntries, c.maxEntries),
		ParseIntInRange(c.minEntries, c.maxEntries),
		fmt.Sprintf("Error! Enter a whole number from %d to %d.", c.minEntries, c.maxEntries))
	if err != nil {
		return err
	}
	for i := 1; i <= count; i++ {
		for {
			e, err := Ask(c.p,
				fmt.Sprintf("Expense %d (name; amount): ", i),
				ParseEntry,
				"Error! Use the format \"name; amount\" with a positive amount.")
			if err != nil {
				return err
			}
			if _, err := c.service.Add(ctx, ledger.ExpenseCreateDto{Name: e.Label, Value: e.Amount}); err != nil {
				c.p.Printf("Expense was not added: %v\n", err)
				continue
			}
			break
		}
	}
	c.logger.InfoContext(ctx, "Ledger filled", "count", count)
	return nil
}

func (c *Ledger) showAll(ctx context.Context) {
	c.p.Println()
	c.p.Println("=== ALL EXPENSES ===")
	list, total := c.service.List(ctx)
	if len(list) == 0 {
		c.p.Println("No expenses.")
		return
	}
	running := decimal.Zero
	for i, e := range list {
		running = running.Add(e.Value)
		c.p.Printf("%d. %s: %s (running total: %s)\n", i+1, e.Name, money(e.Value), money(running))
	}
	c.p.Printf("Total: %s\n", money(total))
}

func (c *Ledger) statistics(ctx context.Context) {
	c.p.Println()
	c.p.Println("=== STATISTICS ===")
	s, err := c.service.Statistics(ctx)
	if err != nil {
		if errors.Is(err, storeerrors.ErrEmptyInput) {
			c.p.Println("No expenses to analyse.")
			return
		}
		c.p.Printf("Statistics failed: %v\n", err)
		return
	}
	c.p.Printf("Count: %d\n", s.Count)
	c.p.Printf("Sum: %s\n", money(s.Sum))
	c.p.Printf("Average: %s\n", money(s.Average))
	c.p.Printf("Maximum: %s (%s)\n", money(s.Max), s.MaxLabel)
	c.p.Printf("Minimum: %s (%s)\n", money(s.Min), s.MinLabel)
}

func (c *Ledger) convert(ctx context.Context) error {
	c.p.Println()
	c.p.Println("=== CURRENCY CONVERSION ===")
	for i, r := range currency.Presets() {
		c.p.Printf("%d. %s (rate %s)\n", i+1, r.Unit, r.PerUnit)
	}
	c.p.Printf("%d. Custom rate\n", currency.CustomChoice)
	line, err := c.p.ReadLine("Choose a currency: ")
	if err != nil {
		return err
	}
	n, err := ParseInt(line)
	if err != nil {
		c.p.Println("Invalid choice!")
		return nil
	}

	rate, ok := currency.Preset(n)
	if !ok {
		if n != currency.CustomChoice {
			c.p.Println("Invalid choice!")
			return nil
		}
		rate, err = c.customRate()
		if errors.Is(err, ErrInputClosed) {
			return err
		}
		if err != nil {
			c.p.Printf("Invalid rate: %v\n", err)
			return nil
		}
	}

	conv, err := c.service.Convert(ctx, rate)
	if err != nil {
		c.p.Printf("Conversion failed: %v\n", err)
		return nil
	}
	c.p.Printf("Amounts in %s (1 %s = %s):\n", rate.Unit, rate.Unit, rate.PerUnit)
	for _, item := range conv.Items {
		c.p.Printf("%s: %s -> %s %s\n", item.Label, money(item.Amount), money(item.Value), rate.Unit)
	}
	c.p.Printf("Total: %s %s\n", money(conv.Total), rate.Unit)
	return nil
}

func (c *Ledger) customRate() (currency.Rate, error) {
	perUnit, err := Ask(c.p, "Rate (local units per 1 foreign unit): ", parseRate, "Error! The rate must be a positive number.")
	if err != nil {
		return currency.Rate{}, err
	}
	unit, err := Ask(c.p, "Currency label: ", ParseLabel, "Error! The label cannot be empty.")
	if err != nil {
		return currency.Rate{}, err
	}
	return currency.NewRate(perUnit, unit)
}

// parseRate accepts any decimal but reports non-positive values as ErrInvalidRate.
func parseRate(s string) (decimal.Decimal, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return decimal.Zero, err
	}
	if _, err := currency.NewRate(d, "rate"); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

func (c *Ledger) search(ctx context.Context) error {
	query, err := c.p.ReadLine("Expense name: ")
	if err != nil {
		return err
	}
	found := c.service.SearchByLabel(ctx, query)
	if len(found) == 0 {
		c.p.Println("No matches.")
		return nil
	}
	c.p.Printf("Found: %d\n", len(found))
	for _, e := range found {
		c.p.Println(e)
	}
	return nil
}
