package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/config"
	"github.com/metlab/inventory/internal/db"
	"github.com/metlab/inventory/types"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.Open(context.Background(), config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "inventory.db")},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func createUser(t *testing.T, repo *UserRepository, username, role string) types.User {
	t.Helper()
	user, err := repo.Create(context.Background(), types.User{
		Username:     username,
		PasswordHash: "digest",
		Role:         role,
		CreatedAt:    "2024-01-01 10:00:00",
	})
	if err != nil {
		t.Fatalf("Create %s: %v", username, err)
	}
	return user
}

func TestUserRepository_CreateAndGetByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	created := createUser(t, repo, "alice", types.RoleAdmin)
	if created.ID == 0 {
		t.Fatal("ID not set after Create")
	}

	found, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if found.ID != created.ID || found.Role != types.RoleAdmin || found.PasswordHash != "digest" {
		t.Errorf("GetByUsername = %+v, want id=%d role=admin", found, created.ID)
	}
	if found.Email != nil {
		t.Errorf("Email = %v, want nil", *found.Email)
	}

	if _, err := repo.GetByUsername(ctx, "Alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByUsername(Alice) err = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_UsernameIsUnique(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "alice", types.RoleUser)

	_, err := repo.Create(context.Background(), types.User{
		Username: "alice", PasswordHash: "x", Role: types.RoleUser, CreatedAt: "now",
	})
	if err == nil {
		t.Fatal("duplicate username accepted by storage")
	}
}

func TestUserRepository_ListOmitsDigest(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "alice", types.RoleAdmin)
	createUser(t, repo, "bob", types.RoleUser)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len(users) = %d, want 2", len(users))
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Errorf("user %s carries a digest", u.Username)
		}
		if u.CreatedAt != "2024-01-01 10:00:00" {
			t.Errorf("CreatedAt = %q", u.CreatedAt)
		}
	}
}

func TestUserRepository_DeleteUnlessLastAdmin(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	admin := createUser(t, repo, "root", types.RoleAdmin)
	clerk := createUser(t, repo, "clerk", types.RoleUser)

	if err := repo.DeleteUnlessLastAdmin(ctx, admin.ID); !errors.Is(err, ErrLastAdmin) {
		t.Fatalf("delete last admin err = %v, want ErrLastAdmin", err)
	}
	if exists, _ := repo.Exists(ctx, "root"); !exists {
		t.Fatal("last admin was deleted")
	}

	if err := repo.DeleteUnlessLastAdmin(ctx, clerk.ID); err != nil {
		t.Fatalf("delete non-admin: %v", err)
	}
	if err := repo.DeleteUnlessLastAdmin(ctx, 999); err != nil {
		t.Fatalf("delete missing id: %v", err)
	}

	second := createUser(t, repo, "deputy", types.RoleAdmin)
	if err := repo.DeleteUnlessLastAdmin(ctx, second.ID); err != nil {
		t.Fatalf("delete second admin: %v", err)
	}
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}

func TestItemRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(newTestDB(t))

	item, err := repo.Create(ctx, types.Item{Name: "Widget", Category: "Hardware", Quantity: 10, Price: 2.50})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Update(ctx, item.ID, types.ItemUpdate{Quantity: intPtr(3)}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	want := types.Item{ID: item.ID, Name: "Widget", Category: "Hardware", Quantity: 3, Price: 2.50}
	if items[0] != want {
		t.Errorf("item = %+v, want %+v", items[0], want)
	}
}

func TestItemRepository_NegativeValuesAllowed(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(newTestDB(t))

	if _, err := repo.Create(ctx, types.Item{Name: "Refund", Category: "Misc", Quantity: -4, Price: -1.25}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items[0].Quantity != -4 || items[0].Price != -1.25 {
		t.Errorf("item = %+v, want quantity -4 price -1.25", items[0])
	}
}

func TestCategoryRepository_DuplicateNameFails(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	if _, err := repo.Create(ctx, types.Category{Name: "Dairy"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, types.Category{Name: "Dairy", Description: strPtr("again")}); err == nil {
		t.Fatal("duplicate category name accepted")
	}

	categories, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("len(categories) = %d, want 1", len(categories))
	}
}

func TestCategoryRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	category, err := repo.Create(ctx, types.Category{Name: "Dairy", Description: strPtr("milk")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Update(ctx, category.ID, types.CategoryUpdate{Name: strPtr("Chilled")}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	categories, _ := repo.List(ctx)
	if categories[0].Name != "Chilled" || categories[0].Description == nil || *categories[0].Description != "milk" {
		t.Errorf("category = %+v, want Chilled/milk", categories[0])
	}

	if err := repo.Delete(ctx, category.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, category.ID); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	categories, _ = repo.List(ctx)
	if len(categories) != 0 {
		t.Errorf("len(categories) = %d, want 0", len(categories))
	}
}

func TestSupplierRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewSupplierRepository(newTestDB(t))

	supplier, err := repo.Create(ctx, types.Supplier{
		Name:          "Acme",
		ContactPerson: strPtr("Road Runner"),
		Phone:         strPtr("555-0100"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Update(ctx, supplier.ID, types.SupplierUpdate{Email: strPtr("sales@acme.test")}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	suppliers, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := suppliers[0]
	if got.Name != "Acme" || *got.ContactPerson != "Road Runner" || *got.Phone != "555-0100" {
		t.Errorf("supplier = %+v, untouched fields changed", got)
	}
	if got.Email == nil || *got.Email != "sales@acme.test" {
		t.Errorf("Email = %v, want sales@acme.test", got.Email)
	}
	if got.Address != nil {
		t.Errorf("Address = %q, want nil", *got.Address)
	}
}

func TestTransactionRepository_DanglingItem(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	items := NewItemRepository(conn)
	transactions := NewTransactionRepository(conn)

	item, err := items.Create(ctx, types.Item{Name: "Widget", Category: "Hardware", Quantity: 10, Price: 2.5})
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}
	if _, err := transactions.Create(ctx, types.TransactionEntry{
		ItemID: item.ID, Type: types.TransactionIn, Quantity: 5, Date: "2024-01-01",
	}); err != nil {
		t.Fatalf("Create transaction: %v", err)
	}

	listed, err := transactions.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 || listed[0].ItemName == nil || *listed[0].ItemName != "Widget" {
		t.Fatalf("List = %+v, want one row named Widget", listed)
	}

	if err := items.Delete(ctx, item.ID); err != nil {
		t.Fatalf("Delete item: %v", err)
	}

	listed, err = transactions.List(ctx)
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("len = %d, want 1", len(listed))
	}
	if listed[0].ItemName != nil {
		t.Errorf("ItemName = %q, want nil", *listed[0].ItemName)
	}
	if listed[0].ItemID == nil || *listed[0].ItemID != item.ID {
		t.Errorf("ItemID = %v, want %d", listed[0].ItemID, item.ID)
	}

	byItem, err := transactions.ListByItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if len(byItem) != 1 {
		t.Errorf("len(byItem) = %d, want 1", len(byItem))
	}
}

func TestTransactionRepository_DatesSortAsStrings(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))

	for _, date := range []string{"2024-01-05", "9/1/2023", "2024-12-31"} {
		if _, err := repo.Create(ctx, types.TransactionEntry{
			ItemID: 1, Type: types.TransactionOut, Quantity: 1, Date: date,
		}); err != nil {
			t.Fatalf("Create %s: %v", date, err)
		}
	}

	listed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"9/1/2023", "2024-12-31", "2024-01-05"}
	for i, tx := range listed {
		if tx.Date != want[i] {
			t.Errorf("listed[%d].Date = %q, want %q", i, tx.Date, want[i])
		}
	}
}

func TestResetRepository_ClearAll(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)

	users := NewUserRepository(conn)
	items := NewItemRepository(conn)
	categories := NewCategoryRepository(conn)
	suppliers := NewSupplierRepository(conn)
	transactions := NewTransactionRepository(conn)

	createUser(t, users, "root", types.RoleAdmin)
	item, _ := items.Create(ctx, types.Item{Name: "Widget", Category: "Hardware", Quantity: 1, Price: 1})
	_, _ = categories.Create(ctx, types.Category{Name: "Hardware"})
	_, _ = suppliers.Create(ctx, types.Supplier{Name: "Acme"})
	_, _ = transactions.Create(ctx, types.TransactionEntry{ItemID: item.ID, Type: "IN", Quantity: 1, Date: "2024-01-01"})

	if err := NewResetRepository(conn).ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	for _, table := range db.Tables {
		var count int
		if err := conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("%s has %d rows, want 0", table, count)
		}
	}

	if _, err := categories.Create(ctx, types.Category{Name: "Hardware"}); err != nil {
		t.Errorf("insert after reset: %v", err)
	}
}
