package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/metlab/inventory/types"
	"go.uber.org/zap"
)

// ItemRepository defines persistence operations for inventory items.
type ItemRepository interface {
	Create(ctx context.Context, item types.Item) (types.Item, error)
	List(ctx context.Context) ([]types.Item, error)
	Update(ctx context.Context, id int64, update types.ItemUpdate) error
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category types.Category) (types.Category, error)
	List(ctx context.Context) ([]types.Category, error)
	Update(ctx context.Context, id int64, update types.CategoryUpdate) error
	Delete(ctx context.Context, id int64) error
}

// SupplierRepository defines persistence operations for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, supplier types.Supplier) (types.Supplier, error)
	List(ctx context.Context) ([]types.Supplier, error)
	Update(ctx context.Context, id int64, update types.SupplierUpdate) error
	Delete(ctx context.Context, id int64) error
}

// TransactionRepository defines persistence operations for stock movements.
type TransactionRepository interface {
	Create(ctx context.Context, entry types.TransactionEntry) (int64, error)
	List(ctx context.Context) ([]types.Transaction, error)
	ListByItem(ctx context.Context, itemID int64) ([]types.Transaction, error)
}

// Resetter empties every table.
type Resetter interface {
	ClearAll(ctx context.Context) error
}

// LedgerRepositories groups the repositories backing a LedgerService.
type LedgerRepositories struct {
	Items        ItemRepository
	Categories   CategoryRepository
	Suppliers    SupplierRepository
	Transactions TransactionRepository
	Reset        Resetter
}

// LedgerService is the inventory ledger: items, categories, suppliers and
// the transaction history.
type LedgerService struct {
	items        ItemRepository
	categories   CategoryRepository
	suppliers    SupplierRepository
	transactions TransactionRepository
	reset        Resetter
	logger       *zap.Logger
}

func NewLedgerService(repos LedgerRepositories, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		items:        repos.Items,
		categories:   repos.Categories,
		suppliers:    repos.Suppliers,
		transactions: repos.Transactions,
		reset:        repos.Reset,
		logger:       logger,
	}
}

func (s *LedgerService) AddItem(ctx context.Context, name, category string, quantity int, price float64) error {
	item, err := s.items.Create(ctx, types.Item{
		Name:     name,
		Category: category,
		Quantity: quantity,
		Price:    price,
	})
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	s.logger.Debug("item added", zap.Int64("id", item.ID), zap.String("name", item.Name))
	return nil
}

func (s *LedgerService) ViewItems(ctx context.Context) ([]types.Item, error) {
	return s.items.List(ctx)
}

// SearchItems returns the items whose name or category contains term,
// ignoring case. An empty term returns every item.
func (s *LedgerService) SearchItems(ctx context.Context, term string) ([]types.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	if term == "" {
		return items, nil
	}

	matched := make([]types.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Category), term) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// UpdateItem changes only the populated fields. An empty update does not
// reach storage.
func (s *LedgerService) UpdateItem(ctx context.Context, id int64, update types.ItemUpdate) error {
	if update.Empty() {
		return nil
	}
	if err := s.items.Update(ctx, id, update); err != nil {
		return fmt.Errorf("update item %d: %w", id, err)
	}
	return nil
}

// DeleteItem removes the item. Transactions that reference it are kept and
// show no item name afterwards.
func (s *LedgerService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return nil
}

func (s *LedgerService) AddCategory(ctx context.Context, name string, description *string) error {
	if _, err := s.categories.Create(ctx, types.Category{Name: name, Description: description}); err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	return nil
}

func (s *LedgerService) ViewCategories(ctx context.Context) ([]types.Category, error) {
	return s.categories.List(ctx)
}

func (s *LedgerService) UpdateCategory(ctx context.Context, id int64, update types.CategoryUpdate) error {
	if update.Empty() {
		return nil
	}
	if err := s.categories.Update(ctx, id, update); err != nil {
		return fmt.Errorf("update category %d: %w", id, err)
	}
	return nil
}

func (s *LedgerService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

// AddSupplier inserts supplier; only Name is required.
func (s *LedgerService) AddSupplier(ctx context.Context, supplier types.Supplier) error {
	if _, err := s.suppliers.Create(ctx, supplier); err != nil {
		return fmt.Errorf("add supplier: %w", err)
	}
	return nil
}

func (s *LedgerService) ViewSuppliers(ctx context.Context) ([]types.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *LedgerService) UpdateSupplier(ctx context.Context, id int64, update types.SupplierUpdate) error {
	if update.Empty() {
		return nil
	}
	if err := s.suppliers.Update(ctx, id, update); err != nil {
		return fmt.Errorf("update supplier %d: %w", id, err)
	}
	return nil
}

func (s *LedgerService) DeleteSupplier(ctx context.Context, id int64) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, err)
	}
	return nil
}

// AddTransaction records a movement as given. Callers constrain the type to
// IN or OUT and reconcile item quantities themselves.
func (s *LedgerService) AddTransaction(ctx context.Context, entry types.TransactionEntry) error {
	id, err := s.transactions.Create(ctx, entry)
	if err != nil {
		return fmt.Errorf("add transaction: %w", err)
	}
	s.logger.Debug("transaction recorded",
		zap.Int64("id", id),
		zap.Int64("item_id", entry.ItemID),
		zap.String("type", entry.Type),
		zap.Int("quantity", entry.Quantity),
	)
	return nil
}

// ViewTransactions lists every movement, newest date string first.
func (s *LedgerService) ViewTransactions(ctx context.Context) ([]types.Transaction, error) {
	return s.transactions.List(ctx)
}

func (s *LedgerService) ViewTransactionsByItem(ctx context.Context, itemID int64) ([]types.Transaction, error) {
	return s.transactions.ListByItem(ctx, itemID)
}

// ClearAllData deletes every row of every table, users included. There is
// no undo.
func (s *LedgerService) ClearAllData(ctx context.Context) error {
	if err := s.reset.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear all data: %w", err)
	}
	s.logger.Warn("all data cleared")
	return nil
}
