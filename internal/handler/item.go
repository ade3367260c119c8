package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/davewalter/shoplist/internal/auth"
	"github.com/davewalter/shoplist/internal/flash"
	"github.com/davewalter/shoplist/internal/form"
	"github.com/davewalter/shoplist/internal/model"
	"github.com/davewalter/shoplist/internal/store"
	"github.com/davewalter/shoplist/internal/websocket"
)

// ItemHandler serves the grocery item create/edit pages and the per-user
// shopping list.
type ItemHandler struct {
	grocery   *store.GroceryStore
	hub       *websocket.Hub
	templates *template.Template
	logger    *slog.Logger
}

func NewItemHandler(gs *store.GroceryStore, hub *websocket.Hub, templates *template.Template, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{grocery: gs, hub: hub, templates: templates, logger: logger}
}

func (h *ItemHandler) NewItemPage(w http.ResponseWriter, r *http.Request) {
	stores, err := h.grocery.ListStores()
	if err != nil {
		h.logger.Error("list stores", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	h.renderItemForm(w, r, http.StatusOK, "New Grocery Item", "/new_item", form.NewItemForm(stores), nil)
}

func (h *ItemHandler) NewItemCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	stores, err := h.grocery.ListStores()
	if err != nil {
		h.logger.Error("list stores", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	f := form.ParseItemForm(r.PostForm, stores)
	if !f.Valid() {
		h.renderItemForm(w, r, http.StatusOK, "New Grocery Item", "/new_item", f, nil)
		return
	}

	item, err := h.grocery.CreateItem(f.Name, f.Price, f.Category, f.PhotoURL, f.StoreID, auth.Username(r.Context()))
	if err != nil {
		h.logger.Error("create item", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	h.hub.Broadcast("grocery_item", "created", item.ID)
	flash.Set(w, "New item was created successfully.")
	http.Redirect(w, r, fmt.Sprintf("/item/%d", item.ID), http.StatusSeeOther)
}

// ItemDetailPage renders the item edit form pre-filled with the stored
// values.
func (h *ItemHandler) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	stores, err := h.grocery.ListStores()
	if err != nil {
		h.logger.Error("list stores", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	action := fmt.Sprintf("/item/%d", item.ID)
	h.renderItemForm(w, r, http.StatusOK, item.Name, action, form.PrefilledItemForm(item, stores), item)
}

func (h *ItemHandler) ItemUpdate(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	stores, err := h.grocery.ListStores()
	if err != nil {
		h.logger.Error("list stores", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	f := form.ParseItemForm(r.PostForm, stores)
	if !f.Valid() {
		action := fmt.Sprintf("/item/%d", item.ID)
		h.renderItemForm(w, r, http.StatusOK, item.Name, action, f, item)
		return
	}

	if _, err := h.grocery.UpdateItem(item.ID, f.Name, f.Price, f.Category, f.PhotoURL, f.StoreID); err != nil {
		h.logger.Error("update item", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	h.hub.Broadcast("grocery_item", "updated", item.ID)
	flash.Set(w, "Item was updated successfully.")
	http.Redirect(w, r, fmt.Sprintf("/item/%d", item.ID), http.StatusSeeOther)
}

// AddToShoppingList puts the item on the current user's shopping list. The
// operation is idempotent: adding an item that is already listed is a no-op,
// and either way the user sees a single success notice.
func (h *ItemHandler) AddToShoppingList(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	userID := auth.UserID(r.Context())
	added, err := h.grocery.AddToShoppingList(userID, item.ID)
	if err != nil {
		h.logger.Error("add to shopping list", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	if added {
		h.hub.Broadcast("shopping_list", "added", item.ID)
	}
	flash.Set(w, "Item added to your shopping list.")
	http.Redirect(w, r, fmt.Sprintf("/item/%d", item.ID), http.StatusSeeOther)
}

// ShoppingListPage renders the current user's shopping list.
func (h *ItemHandler) ShoppingListPage(w http.ResponseWriter, r *http.Request) {
	items, err := h.grocery.ListShoppingListItems(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list shopping list", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	data := pageData(w, r, "My Shopping List — Shoplist")
	data["Items"] = items
	render(w, h.logger, h.templates, http.StatusOK, "shopping_list.html", data)
}

// loadItem resolves the {id} path parameter to an item, rendering a 404 page
// and returning ok=false when it does not exist.
func (h *ItemHandler) loadItem(w http.ResponseWriter, r *http.Request) (*model.GroceryItem, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		renderNotFound(w, r, h.logger, h.templates, "That item does not exist.")
		return nil, false
	}

	item, err := h.grocery.GetItemByID(id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return nil, false
	}
	if item == nil {
		renderNotFound(w, r, h.logger, h.templates, "That item does not exist.")
		return nil, false
	}
	return item, true
}

func (h *ItemHandler) renderItemForm(w http.ResponseWriter, r *http.Request, status int, heading, action string, f *form.ItemForm, item *model.GroceryItem) {
	data := pageData(w, r, heading+" — Shoplist")
	data["Heading"] = heading
	data["Action"] = action
	data["Form"] = f
	data["Categories"] = model.Categories()
	if item != nil {
		data["Item"] = item
	}
	render(w, h.logger, h.templates, status, "item_form.html", data)
}
