// Command seed populates a development database with a small, realistic
// ledger so the dashboard has something to aggregate locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
	"github.com/parishbooks/parishbooks-backend/internal/domain/money"
	"github.com/parishbooks/parishbooks-backend/internal/infrastructure/config"
	"github.com/parishbooks/parishbooks-backend/internal/infrastructure/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath := flag.String("db", "", "Database path (overrides config)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.LoadOrEnv()

	path := cfg.Storage.DatabasePath
	if *dbPath != "" {
		path = *dbPath
	}

	store, err := storage.NewStorage(path)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	now := time.Now()

	accounts := []ledger.Account{
		{Name: "Conta Corrente", Category: ledger.CategoryChecking, Balance: money.Amount(12500.00), Active: true},
		{Name: "Poupança Missões", Category: ledger.CategorySavings, Balance: money.Amount(34000.00), Active: true},
		{Name: "Cartão Igreja", Category: ledger.CategoryCreditCard, Balance: money.Amount(1830.45), Active: true},
		{Name: "Caixa Pequeno", Category: ledger.CategoryCash, Balance: money.Amount(420.00), Active: true},
	}
	for i := range accounts {
		if err := store.SaveAccount(ctx, &accounts[i]); err != nil {
			return fmt.Errorf("seed account %q: %w", accounts[i].Name, err)
		}
	}

	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	transactions := []ledger.Transaction{
		{Type: ledger.TypeIncome, Amount: money.Amount(8200), Date: day(-12), CategoryName: "Dízimos"},
		{Type: ledger.TypeIncome, Amount: money.Amount(1900), Date: day(-5), CategoryName: "Ofertas"},
		{Type: ledger.TypeExpense, Amount: money.Amount(2300), Date: day(-10), CategoryName: "Manutenção"},
		{Type: ledger.TypeExpense, Amount: money.Amount(640), Date: day(-8), CategoryName: "Limpeza"},
		{Type: ledger.TypeExpense, Amount: money.Amount(1150), Date: day(-3), CategoryName: "Eventos"},
		{Type: ledger.TypeExpense, Amount: money.Amount(480), Date: day(2), CategoryName: "Energia"},
		{Type: ledger.TypeIncome, Amount: money.Amount(750), Date: day(4), CategoryName: "Aluguel Salão"},
		{Type: ledger.TypeTransfer, Amount: money.Amount(5000), Date: day(-7)},
	}
	for i := range transactions {
		if err := store.SaveTransaction(ctx, &transactions[i]); err != nil {
			return fmt.Errorf("seed transaction: %w", err)
		}
	}

	fmt.Printf("seeded %d accounts and %d transactions into %s\n", len(accounts), len(transactions), path)
	return nil
}
