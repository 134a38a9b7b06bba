package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/metlab/inventory/internal/store"
	"github.com/metlab/inventory/internal/validate"
	"github.com/metlab/inventory/types"
)

const clearConfirmation = "DELETE"

type menuEntry struct {
	section   string
	label     string
	adminOnly bool
	run       func(ctx context.Context) error
}

// entries lists the menu visible to the logged-in user; numbering follows
// slice order.
func (s *Session) entries() []menuEntry {
	all := []menuEntry{
		{section: "INVENTORY MANAGEMENT", label: "Add Item", run: s.addItem},
		{label: "View Items", run: s.viewItems},
		{label: "Search Items", run: s.searchItems},
		{label: "Update Item", run: s.updateItem},
		{label: "Delete Item", run: s.deleteItem},
		{section: "CATEGORY MANAGEMENT", label: "Add Category", run: s.addCategory},
		{label: "View Categories", run: s.viewCategories},
		{label: "Update Category", run: s.updateCategory},
		{label: "Delete Category", run: s.deleteCategory},
		{section: "SUPPLIER MANAGEMENT", label: "Add Supplier", run: s.addSupplier},
		{label: "View Suppliers", run: s.viewSuppliers},
		{label: "Update Supplier", run: s.updateSupplier},
		{label: "Delete Supplier", run: s.deleteSupplier},
		{section: "TRANSACTION MANAGEMENT", label: "Add Transaction", run: s.addTransaction},
		{label: "View All Transactions", run: s.viewTransactions},
		{label: "View Item Transactions", run: s.viewItemTransactions},
		{section: "USER MANAGEMENT", label: "Add User", adminOnly: true, run: s.addUser},
		{label: "View Users", adminOnly: true, run: s.viewUsers},
		{label: "Delete User", adminOnly: true, run: s.deleteUser},
		{label: "Clear All Data", adminOnly: true, run: s.clearAllData},
		{section: "SESSION", label: "Logout", run: func(context.Context) error { return errLogout }},
		{label: "Exit", run: func(context.Context) error { return errExit }},
	}

	visible := make([]menuEntry, 0, len(all))
	for _, e := range all {
		if e.adminOnly && !s.current.IsAdmin() {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

func (s *Session) menuLoop(ctx context.Context) error {
	for {
		entries := s.entries()
		s.printf("\n%s\n", appTitle)
		s.printf("Logged in as: %s (%s)\n", s.current.Username, s.current.Role)
		for i, e := range entries {
			if e.section != "" {
				s.printf("\n=== %s ===\n", e.section)
			}
			s.printf("%d. %s\n", i+1, e.label)
		}

		choice, err := s.prompt("Select an option: ")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(choice))
		if convErr != nil || n < 1 || n > len(entries) {
			s.println("Invalid option. Try again.")
			continue
		}

		if err := entries[n-1].run(ctx); err != nil {
			if errors.Is(err, errExit) {
				s.println("Goodbye!")
			}
			return err
		}
	}
}

func (s *Session) addItem(ctx context.Context) error {
	name, err := s.prompt("Item name: ")
	if err != nil {
		return err
	}
	category, err := s.prompt("Category: ")
	if err != nil {
		return err
	}
	rawQuantity, err := s.prompt("Quantity: ")
	if err != nil {
		return err
	}
	rawPrice, err := s.prompt("Price: ")
	if err != nil {
		return err
	}

	quantity, price, verr := validate.ItemData(name, category, rawQuantity, rawPrice)
	if verr != nil {
		s.printf("%s!\n", capitalize(verr.Error()))
		return nil
	}
	if err := s.ledger.AddItem(ctx, strings.TrimSpace(name), strings.TrimSpace(category), quantity, price); err != nil {
		s.report("add item", err)
		return nil
	}
	s.println("Item added.")
	return nil
}

func (s *Session) viewItems(ctx context.Context) error {
	items, err := s.ledger.ViewItems(ctx)
	if err != nil {
		s.report("view items", err)
		return nil
	}
	s.printItems(items)
	return nil
}

func (s *Session) searchItems(ctx context.Context) error {
	term, err := s.prompt("Search (name or category): ")
	if err != nil {
		return err
	}
	items, serr := s.ledger.SearchItems(ctx, strings.TrimSpace(term))
	if serr != nil {
		s.report("search items", serr)
		return nil
	}
	s.printItems(items)
	return nil
}

func (s *Session) printItems(items []types.Item) {
	s.println("\nID | Name | Category | Quantity | Price")
	for _, item := range items {
		s.printf("%d | %s | %s | %d | $%.2f\n", item.ID, item.Name, item.Category, item.Quantity, item.Price)
	}
}

func (s *Session) updateItem(ctx context.Context) error {
	id, ok, err := s.promptID("Enter item ID to update: ")
	if err != nil || !ok {
		return err
	}
	s.println("Leave field blank to keep current value.")

	var update types.ItemUpdate
	if update.Name, err = s.promptOptional("New name: "); err != nil {
		return err
	}
	if update.Category, err = s.promptOptional("New category: "); err != nil {
		return err
	}
	rawQuantity, err := s.promptOptional("New quantity: ")
	if err != nil {
		return err
	}
	if rawQuantity != nil {
		q, verr := validate.Quantity(*rawQuantity)
		if verr != nil {
			s.printf("%s!\n", capitalize(verr.Error()))
			return nil
		}
		update.Quantity = &q
	}
	rawPrice, err := s.promptOptional("New price: ")
	if err != nil {
		return err
	}
	if rawPrice != nil {
		p, verr := validate.Price(*rawPrice)
		if verr != nil {
			s.printf("%s!\n", capitalize(verr.Error()))
			return nil
		}
		update.Price = &p
	}

	if update.Empty() {
		s.println("Nothing to update.")
		return nil
	}
	if err := s.ledger.UpdateItem(ctx, id, update); err != nil {
		s.report("update item", err)
		return nil
	}
	s.println("Item updated.")
	return nil
}

func (s *Session) deleteItem(ctx context.Context) error {
	id, ok, err := s.promptID("Enter item ID to delete: ")
	if err != nil || !ok {
		return err
	}
	if err := s.ledger.DeleteItem(ctx, id); err != nil {
		s.report("delete item", err)
		return nil
	}
	s.println("Item deleted.")
	return nil
}

func (s *Session) addCategory(ctx context.Context) error {
	name, err := s.prompt("Category name: ")
	if err != nil {
		return err
	}
	description, err := s.promptOptional("Description (optional): ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		s.println("Category name is required!")
		return nil
	}
	if err := s.ledger.AddCategory(ctx, strings.TrimSpace(name), description); err != nil {
		s.report("add category", err)
		return nil
	}
	s.println("Category added.")
	return nil
}

func (s *Session) viewCategories(ctx context.Context) error {
	categories, err := s.ledger.ViewCategories(ctx)
	if err != nil {
		s.report("view categories", err)
		return nil
	}
	s.println("\nID | Name | Description")
	for _, c := range categories {
		s.printf("%d | %s | %s\n", c.ID, c.Name, orNA(c.Description))
	}
	return nil
}

func (s *Session) updateCategory(ctx context.Context) error {
	id, ok, err := s.promptID("Enter category ID to update: ")
	if err != nil || !ok {
		return err
	}
	s.println("Leave field blank to keep current value.")

	var update types.CategoryUpdate
	if update.Name, err = s.promptOptional("New name: "); err != nil {
		return err
	}
	if update.Description, err = s.promptOptional("New description: "); err != nil {
		return err
	}
	if update.Empty() {
		s.println("Nothing to update.")
		return nil
	}
	if err := s.ledger.UpdateCategory(ctx, id, update); err != nil {
		s.report("update category", err)
		return nil
	}
	s.println("Category updated.")
	return nil
}

func (s *Session) deleteCategory(ctx context.Context) error {
	id, ok, err := s.promptID("Enter category ID to delete: ")
	if err != nil || !ok {
		return err
	}
	if err := s.ledger.DeleteCategory(ctx, id); err != nil {
		s.report("delete category", err)
		return nil
	}
	s.println("Category deleted.")
	return nil
}

func (s *Session) addSupplier(ctx context.Context) error {
	name, err := s.prompt("Supplier name: ")
	if err != nil {
		return err
	}
	supplier := types.Supplier{Name: strings.TrimSpace(name)}
	if supplier.ContactPerson, err = s.promptOptional("Contact person (optional): "); err != nil {
		return err
	}
	if supplier.Phone, err = s.promptOptional("Phone (optional): "); err != nil {
		return err
	}
	if supplier.Email, err = s.promptOptional("Email (optional): "); err != nil {
		return err
	}
	if supplier.Address, err = s.promptOptional("Address (optional): "); err != nil {
		return err
	}
	if supplier.Name == "" {
		s.println("Supplier name is required!")
		return nil
	}
	if err := s.ledger.AddSupplier(ctx, supplier); err != nil {
		s.report("add supplier", err)
		return nil
	}
	s.println("Supplier added.")
	return nil
}

func (s *Session) viewSuppliers(ctx context.Context) error {
	suppliers, err := s.ledger.ViewSuppliers(ctx)
	if err != nil {
		s.report("view suppliers", err)
		return nil
	}
	s.println("\nID | Name | Contact | Phone | Email | Address")
	for _, sup := range suppliers {
		s.printf("%d | %s | %s | %s | %s | %s\n",
			sup.ID, sup.Name, orNA(sup.ContactPerson), orNA(sup.Phone), orNA(sup.Email), orNA(sup.Address))
	}
	return nil
}

func (s *Session) updateSupplier(ctx context.Context) error {
	id, ok, err := s.promptID("Enter supplier ID to update: ")
	if err != nil || !ok {
		return err
	}
	s.println("Leave field blank to keep current value.")

	var update types.SupplierUpdate
	if update.Name, err = s.promptOptional("New name: "); err != nil {
		return err
	}
	if update.ContactPerson, err = s.promptOptional("New contact person: "); err != nil {
		return err
	}
	if update.Phone, err = s.promptOptional("New phone: "); err != nil {
		return err
	}
	if update.Email, err = s.promptOptional("New email: "); err != nil {
		return err
	}
	if update.Address, err = s.promptOptional("New address: "); err != nil {
		return err
	}
	if update.Empty() {
		s.println("Nothing to update.")
		return nil
	}
	if err := s.ledger.UpdateSupplier(ctx, id, update); err != nil {
		s.report("update supplier", err)
		return nil
	}
	s.println("Supplier updated.")
	return nil
}

func (s *Session) deleteSupplier(ctx context.Context) error {
	id, ok, err := s.promptID("Enter supplier ID to delete: ")
	if err != nil || !ok {
		return err
	}
	if err := s.ledger.DeleteSupplier(ctx, id); err != nil {
		s.report("delete supplier", err)
		return nil
	}
	s.println("Supplier deleted.")
	return nil
}

func (s *Session) addTransaction(ctx context.Context) error {
	itemID, ok, err := s.promptID("Item ID: ")
	if err != nil || !ok {
		return err
	}
	rawType, err := s.prompt("Transaction type (IN/OUT): ")
	if err != nil {
		return err
	}
	rawQuantity, err := s.prompt("Quantity: ")
	if err != nil {
		return err
	}
	date, err := s.prompt("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	notes, err := s.promptOptional("Notes (optional): ")
	if err != nil {
		return err
	}

	txType, verr := validate.TransactionType(rawType)
	if verr != nil {
		s.printf("%s!\n", capitalize(verr.Error()))
		return nil
	}
	quantity, verr := validate.Quantity(rawQuantity)
	if verr != nil {
		s.printf("%s!\n", capitalize(verr.Error()))
		return nil
	}

	if err := s.ledger.AddTransaction(ctx, types.TransactionEntry{
		ItemID:   itemID,
		Type:     txType,
		Quantity: quantity,
		Date:     strings.TrimSpace(date),
		Notes:    notes,
	}); err != nil {
		s.report("add transaction", err)
		return nil
	}
	s.println("Transaction added.")
	return nil
}

func (s *Session) viewTransactions(ctx context.Context) error {
	transactions, err := s.ledger.ViewTransactions(ctx)
	if err != nil {
		s.report("view transactions", err)
		return nil
	}
	s.println("\nID | Item | Type | Quantity | Date | Notes")
	for _, t := range transactions {
		s.printf("%d | %s | %s | %d | %s | %s\n",
			t.ID, orNA(t.ItemName), t.Type, t.Quantity, t.Date, orNA(t.Notes))
	}
	return nil
}

func (s *Session) viewItemTransactions(ctx context.Context) error {
	itemID, ok, err := s.promptID("Enter item ID to view transactions: ")
	if err != nil || !ok {
		return err
	}
	transactions, verr := s.ledger.ViewTransactionsByItem(ctx, itemID)
	if verr != nil {
		s.report("view item transactions", verr)
		return nil
	}
	s.printf("\nTransactions for Item ID %d:\n", itemID)
	s.println("ID | Type | Quantity | Date | Notes")
	for _, t := range transactions {
		s.printf("%d | %s | %d | %s | %s\n", t.ID, t.Type, t.Quantity, t.Date, orNA(t.Notes))
	}
	return nil
}

func (s *Session) addUser(ctx context.Context) error {
	username, err := s.prompt("New username: ")
	if err != nil {
		return err
	}
	password, err := s.prompt("New password: ")
	if err != nil {
		return err
	}
	email, err := s.promptOptional("Email (optional): ")
	if err != nil {
		return err
	}
	rawRole, err := s.prompt("Role (user/admin): ")
	if err != nil {
		return err
	}

	if verr := validate.Username(username); verr != nil {
		s.printf("%s!\n", capitalize(verr.Error()))
		return nil
	}
	if verr := validate.Password(password, s.opts.MinPasswordLength); verr != nil {
		s.printf("%s!\n", capitalize(verr.Error()))
		return nil
	}

	username = strings.TrimSpace(username)
	created, cerr := s.users.CreateUser(ctx, types.NewUser{
		Username: username,
		Password: password,
		Email:    email,
		Role:     validate.Role(rawRole),
	})
	if cerr != nil {
		s.report("add user", cerr)
		return nil
	}
	if !created {
		s.println("Failed to create user (username may already exist)!")
		return nil
	}
	s.printf("User '%s' created successfully!\n", username)
	return nil
}

func (s *Session) viewUsers(ctx context.Context) error {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.report("view users", err)
		return nil
	}
	s.println("\nID | Username | Email | Role | Created At")
	for _, u := range users {
		s.printf("%d | %s | %s | %s | %s\n", u.ID, u.Username, orNA(u.Email), u.Role, u.CreatedAt)
	}
	return nil
}

func (s *Session) deleteUser(ctx context.Context) error {
	id, ok, err := s.promptID("Enter user ID to delete: ")
	if err != nil || !ok {
		return err
	}
	if id == s.current.ID {
		s.println("You cannot delete your own account!")
		return nil
	}
	confirm, err := s.prompt("This action cannot be undone. Delete user? (y/N): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(confirm), "y") {
		s.println("Deletion cancelled.")
		return nil
	}

	msg, derr := s.users.DeleteUser(ctx, id)
	if derr != nil {
		if errors.Is(derr, store.ErrLastAdmin) {
			s.printf("%s!\n", capitalize(derr.Error()))
			return nil
		}
		s.report("delete user", derr)
		return nil
	}
	s.printf("%s!\n", capitalize(msg))
	return nil
}

// clearAllData wipes every table, accounts included, so the session ends
// afterwards.
func (s *Session) clearAllData(ctx context.Context) error {
	s.println("WARNING: This will delete ALL items, categories, suppliers, transactions and users.")
	s.println("This action cannot be undone!")
	answer, err := s.prompt("Type 'DELETE' to confirm permanent data deletion: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) != clearConfirmation {
		s.println("Data deletion cancelled.")
		return nil
	}
	if err := s.ledger.ClearAllData(ctx); err != nil {
		s.report("clear all data", err)
		return nil
	}
	s.println("All data has been cleared. Restart to create a fresh admin account.")
	return errExit
}
