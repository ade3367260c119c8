package form

import (
	"net/url"
	"testing"

	"github.com/davewalter/shoplist/internal/database"
	"github.com/davewalter/shoplist/internal/model"
	"github.com/davewalter/shoplist/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func testStores() []model.GroceryStore {
	return []model.GroceryStore{
		{ID: 1, Title: "Corner Mart", Address: "12 Main St"},
		{ID: 2, Title: "Greenway", Address: "3 Oak Ave"},
	}
}

func setupUserStore(t *testing.T) *store.UserStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return store.NewUserStore(db)
}

func TestStoreFormValid(t *testing.T) {
	f := ParseStoreForm(url.Values{
		"title":   {"Corner Mart"},
		"address": {"12 Main St"},
	})
	if !f.Valid() {
		t.Fatalf("expected valid form, errors: %v", f.Errors)
	}
}

func TestStoreFormRequiredFields(t *testing.T) {
	f := ParseStoreForm(url.Values{"title": {"  "}, "address": {""}})
	if f.Valid() {
		t.Fatal("expected invalid form")
	}
	if f.Errors["title"] == "" {
		t.Error("expected title error")
	}
	if f.Errors["address"] == "" {
		t.Error("expected address error")
	}
}

func TestItemFormValid(t *testing.T) {
	f := ParseItemForm(url.Values{
		"name":      {"Milk"},
		"price":     {"3.49"},
		"category":  {"dairy"},
		"photo_url": {"https://example.com/milk.jpg"},
		"store_id":  {"1"},
	}, testStores())
	if !f.Valid() {
		t.Fatalf("expected valid form, errors: %v", f.Errors)
	}
	if f.Price != 3.49 {
		t.Errorf("price = %v, want 3.49", f.Price)
	}
	if f.StoreID != 1 {
		t.Errorf("store id = %d, want 1", f.StoreID)
	}
}

func TestItemFormErrors(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		field  string
	}{
		{"missing name", url.Values{"price": {"1"}, "category": {"dairy"}, "photo_url": {"https://x.com/a.jpg"}, "store_id": {"1"}}, "name"},
		{"missing price", url.Values{"name": {"Milk"}, "category": {"dairy"}, "photo_url": {"https://x.com/a.jpg"}, "store_id": {"1"}}, "price"},
		{"non-numeric price", url.Values{"name": {"Milk"}, "price": {"abc"}, "category": {"dairy"}, "photo_url": {"https://x.com/a.jpg"}, "store_id": {"1"}}, "price"},
		{"negative price", url.Values{"name": {"Milk"}, "price": {"-2"}, "category": {"dairy"}, "photo_url": {"https://x.com/a.jpg"}, "store_id": {"1"}}, "price"},
		{"unknown category", url.Values{"name": {"Milk"}, "price": {"1"}, "category": {"gadgets"}, "photo_url": {"https://x.com/a.jpg"}, "store_id": {"1"}}, "category"},
		{"bad url", url.Values{"name": {"Milk"}, "price": {"1"}, "category": {"dairy"}, "photo_url": {"not a url"}, "store_id": {"1"}}, "photo_url"},
		{"missing url", url.Values{"name": {"Milk"}, "price": {"1"}, "category": {"dairy"}, "store_id": {"1"}}, "photo_url"},
		{"relative url", url.Values{"name": {"Milk"}, "price": {"1"}, "category": {"dairy"}, "photo_url": {"/milk.jpg"}, "store_id": {"1"}}, "photo_url"},
		{"unknown store", url.Values{"name": {"Milk"}, "price": {"1"}, "category": {"dairy"}, "photo_url": {"https://x.com/a.jpg"}, "store_id": {"99"}}, "store_id"},
		{"missing store", url.Values{"name": {"Milk"}, "price": {"1"}, "category": {"dairy"}, "photo_url": {"https://x.com/a.jpg"}}, "store_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseItemForm(tt.values, testStores())
			if f.Valid() {
				t.Fatal("expected invalid form")
			}
			if f.Errors[tt.field] == "" {
				t.Errorf("expected error on %q, got %v", tt.field, f.Errors)
			}
		})
	}
}

func TestItemFormSuggestsCategory(t *testing.T) {
	f := ParseItemForm(url.Values{
		"name":      {"Whole milk"},
		"price":     {"3.49"},
		"photo_url": {"https://x.com/a.jpg"},
		"store_id":  {"1"},
	}, testStores())

	if f.Valid() {
		t.Fatal("expected invalid form without a category")
	}
	if f.Errors["category"] == "" {
		t.Error("expected category error")
	}
	if f.Category != "dairy" {
		t.Errorf("Category = %q, want suggested dairy", f.Category)
	}
}

func TestSignupFormUsernameLength(t *testing.T) {
	f := ParseSignupForm(url.Values{"username": {"ab"}, "password": {"secret123"}})
	if f.Valid() {
		t.Fatal("expected invalid form for short username")
	}
	if f.Errors["username"] == "" {
		t.Error("expected username error")
	}

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	f = ParseSignupForm(url.Values{"username": {string(long)}, "password": {"secret123"}})
	if f.Errors["username"] == "" {
		t.Error("expected username error for 51 chars")
	}
}

func TestSignupFormDuplicateUsername(t *testing.T) {
	users := setupUserStore(t)
	users.Create("alice", "hash")

	f := ParseSignupForm(url.Values{"username": {"alice"}, "password": {"secret123"}})
	if err := f.Validate(users); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if f.Valid() {
		t.Fatal("expected invalid form for taken username")
	}
	if f.Errors["username"] == "" {
		t.Error("expected username error")
	}
}

func TestSignupFormFresh(t *testing.T) {
	users := setupUserStore(t)

	f := ParseSignupForm(url.Values{"username": {"alice"}, "password": {"secret123"}})
	if err := f.Validate(users); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !f.Valid() {
		t.Fatalf("expected valid form, errors: %v", f.Errors)
	}
}

func TestLoginFormUnknownUsername(t *testing.T) {
	users := setupUserStore(t)

	f := ParseLoginForm(url.Values{"username": {"nobody"}, "password": {"secret123"}})
	if err := f.Validate(users); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if f.Valid() {
		t.Fatal("expected invalid form")
	}
	if f.Errors["username"] == "" {
		t.Error("expected username error")
	}
}

func TestLoginFormWrongPassword(t *testing.T) {
	users := setupUserStore(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.Create("alice", string(hash))

	f := ParseLoginForm(url.Values{"username": {"alice"}, "password": {"wrong"}})
	if err := f.Validate(users); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if f.Valid() {
		t.Fatal("expected invalid form")
	}
	if f.Errors["password"] == "" {
		t.Error("expected password error")
	}
}

func TestLoginFormCorrectCredentials(t *testing.T) {
	users := setupUserStore(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.Create("alice", string(hash))

	f := ParseLoginForm(url.Values{"username": {"alice"}, "password": {"secret123"}})
	if err := f.Validate(users); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !f.Valid() {
		t.Fatalf("expected valid form, errors: %v", f.Errors)
	}
	if f.User == nil || f.User.Username != "alice" {
		t.Error("expected resolved user")
	}
}
