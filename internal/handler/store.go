package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/davewalter/shoplist/internal/auth"
	"github.com/davewalter/shoplist/internal/flash"
	"github.com/davewalter/shoplist/internal/form"
	"github.com/davewalter/shoplist/internal/store"
	"github.com/davewalter/shoplist/internal/websocket"
)

// StoreHandler serves the home page and the grocery store create/edit pages.
type StoreHandler struct {
	grocery   *store.GroceryStore
	hub       *websocket.Hub
	templates *template.Template
	logger    *slog.Logger
}

func NewStoreHandler(gs *store.GroceryStore, hub *websocket.Hub, templates *template.Template, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{grocery: gs, hub: hub, templates: templates, logger: logger}
}

// Home lists all grocery stores. Public.
func (h *StoreHandler) Home(w http.ResponseWriter, r *http.Request) {
	stores, err := h.grocery.ListStores()
	if err != nil {
		h.logger.Error("list stores", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	data := pageData(w, r, "Shoplist")
	data["Stores"] = stores
	render(w, h.logger, h.templates, http.StatusOK, "home.html", data)
}

func (h *StoreHandler) NewStorePage(w http.ResponseWriter, r *http.Request) {
	h.renderStoreForm(w, r, http.StatusOK, "New Grocery Store", "/new_store", form.NewStoreForm(), nil)
}

func (h *StoreHandler) NewStoreCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	f := form.ParseStoreForm(r.PostForm)
	if !f.Valid() {
		h.renderStoreForm(w, r, http.StatusOK, "New Grocery Store", "/new_store", f, nil)
		return
	}

	st, err := h.grocery.CreateStore(f.Title, f.Address, auth.Username(r.Context()))
	if err != nil {
		h.logger.Error("create store", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	h.hub.Broadcast("grocery_store", "created", st.ID)
	flash.Set(w, "Store was created successfully.")
	http.Redirect(w, r, fmt.Sprintf("/store/%d", st.ID), http.StatusSeeOther)
}

// StoreDetailPage renders the store edit form pre-filled with the stored
// values, plus the store's items.
func (h *StoreHandler) StoreDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		renderNotFound(w, r, h.logger, h.templates, "That store does not exist.")
		return
	}

	st, err := h.grocery.GetStoreByID(id)
	if err != nil {
		h.logger.Error("get store", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}
	if st == nil {
		renderNotFound(w, r, h.logger, h.templates, "That store does not exist.")
		return
	}

	h.renderStoreDetail(w, r, http.StatusOK, st.ID, st.Title, form.PrefilledStoreForm(st))
}

func (h *StoreHandler) StoreUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		renderNotFound(w, r, h.logger, h.templates, "That store does not exist.")
		return
	}

	st, err := h.grocery.GetStoreByID(id)
	if err != nil {
		h.logger.Error("get store", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}
	if st == nil {
		renderNotFound(w, r, h.logger, h.templates, "That store does not exist.")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	f := form.ParseStoreForm(r.PostForm)
	if !f.Valid() {
		h.renderStoreDetail(w, r, http.StatusOK, st.ID, st.Title, f)
		return
	}

	if _, err := h.grocery.UpdateStore(id, f.Title, f.Address); err != nil {
		h.logger.Error("update store", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	h.hub.Broadcast("grocery_store", "updated", id)
	flash.Set(w, "Store was updated successfully.")
	http.Redirect(w, r, fmt.Sprintf("/store/%d", id), http.StatusSeeOther)
}

func (h *StoreHandler) renderStoreForm(w http.ResponseWriter, r *http.Request, status int, heading, action string, f *form.StoreForm, items any) {
	data := pageData(w, r, heading+" — Shoplist")
	data["Heading"] = heading
	data["Action"] = action
	data["Form"] = f
	data["Items"] = items
	render(w, h.logger, h.templates, status, "store_form.html", data)
}

func (h *StoreHandler) renderStoreDetail(w http.ResponseWriter, r *http.Request, status int, id int64, heading string, f *form.StoreForm) {
	items, err := h.grocery.ListItemsByStore(id)
	if err != nil {
		h.logger.Error("list store items", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}
	h.renderStoreForm(w, r, status, heading, fmt.Sprintf("/store/%d", id), f, items)
}
