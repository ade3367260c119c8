package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/davewalter/shoplist/internal/database"
	"github.com/davewalter/shoplist/internal/model"
	"github.com/davewalter/shoplist/internal/store"
	"github.com/davewalter/shoplist/internal/websocket"
	"github.com/davewalter/shoplist/web"
)

func setupItemHandler(t *testing.T) (*ItemHandler, *store.GroceryStore, *model.GroceryStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Shopping list rows hold a foreign key to users; the fixture user
	// matches the UserID baked into asUser.
	if _, err := store.NewUserStore(db).Create("alice", "hash"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	gs := store.NewGroceryStore(db)
	st, err := gs.CreateStore("Corner Market", "12 Main St", "alice")
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	hub := websocket.NewHub(slog.Default())
	return NewItemHandler(gs, hub, web.Templates(), slog.Default()), gs, st
}

func itemValues(st *model.GroceryStore) url.Values {
	return url.Values{
		"name":      {"Milk"},
		"price":     {"3.49"},
		"category":  {"dairy"},
		"photo_url": {"https://x.com/milk.jpg"},
		"store_id":  {strconv.FormatInt(st.ID, 10)},
	}
}

func TestNewItemCreatePersistsAndRedirects(t *testing.T) {
	h, gs, st := setupItemHandler(t)

	rec := httptest.NewRecorder()
	h.NewItemCreate(rec, asUser(postForm(t, "/new_item", itemValues(st))))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/item/") {
		t.Errorf("Location = %q, want /item/{id}", loc)
	}

	items, err := gs.ListItemsByStore(st.ID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Name != "Milk" || items[0].Price != 3.49 {
		t.Errorf("persisted item = %q/%v, want Milk/3.49", items[0].Name, items[0].Price)
	}
}

func TestNewItemCreateBadPriceNotPersisted(t *testing.T) {
	h, gs, st := setupItemHandler(t)

	values := itemValues(st)
	values.Set("price", "cheap")
	rec := httptest.NewRecorder()
	h.NewItemCreate(rec, asUser(postForm(t, "/new_item", values)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form with %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Price must be a number") {
		t.Error("expected price error in response body")
	}

	items, _ := gs.ListItemsByStore(st.ID)
	if len(items) != 0 {
		t.Errorf("got %d items, want 0 after invalid submit", len(items))
	}
}

func TestItemDetailUnknownIDIs404(t *testing.T) {
	h, _, _ := setupItemHandler(t)

	rec := httptest.NewRecorder()
	req := withID(asUser(httptest.NewRequest("GET", "/item/999", nil)), "999")
	h.ItemDetailPage(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestItemUpdateChangesRow(t *testing.T) {
	h, gs, st := setupItemHandler(t)
	item, _ := gs.CreateItem("Milk", 3.49, "dairy", "", st.ID, "alice")

	values := itemValues(st)
	values.Set("price", "3.99")
	rec := httptest.NewRecorder()
	req := withID(asUser(postForm(t, "/item/1", values)), "1")
	h.ItemUpdate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	got, err := gs.GetItemByID(item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got.Price != 3.99 {
		t.Errorf("Price = %v, want 3.99", got.Price)
	}
}

func TestAddToShoppingListIdempotent(t *testing.T) {
	h, gs, st := setupItemHandler(t)
	item, _ := gs.CreateItem("Milk", 3.49, "dairy", "", st.ID, "alice")

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := withID(asUser(postForm(t, "/add_to_shopping_list/1", nil)), "1")
		h.AddToShoppingList(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("attempt %d: status = %d, want %d", i+1, rec.Code, http.StatusSeeOther)
		}
		if loc := rec.Header().Get("Location"); loc != "/item/1" {
			t.Errorf("attempt %d: Location = %q, want /item/1", i+1, loc)
		}
	}

	items, err := gs.ListShoppingListItems(1)
	if err != nil {
		t.Fatalf("list shopping list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d listed items, want 1 after repeated adds", len(items))
	}
	if items[0].ID != item.ID {
		t.Errorf("listed item = %d, want %d", items[0].ID, item.ID)
	}
}

func TestShoppingListPageShowsUserItems(t *testing.T) {
	h, gs, st := setupItemHandler(t)
	item, _ := gs.CreateItem("Milk", 3.49, "dairy", "", st.ID, "alice")
	gs.AddToShoppingList(1, item.ID)

	rec := httptest.NewRecorder()
	h.ShoppingListPage(rec, asUser(httptest.NewRequest("GET", "/shopping_list", nil)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Milk") {
		t.Error("expected shopping list to include the added item")
	}
}
