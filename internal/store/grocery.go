package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/davewalter/shoplist/internal/model"
)

// GroceryStore is the data access layer for grocery stores, their items, and
// per-user shopping lists.
type GroceryStore struct {
	db *sql.DB
}

func NewGroceryStore(db *sql.DB) *GroceryStore {
	return &GroceryStore{db: db}
}

// --- Store methods ---

func scanStore(scanner interface{ Scan(...any) error }) (*model.GroceryStore, error) {
	var st model.GroceryStore
	err := scanner.Scan(&st.ID, &st.Title, &st.Address, &st.CreatedBy, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

const storeCols = `id, title, address, created_by, created_at, updated_at`

func (s *GroceryStore) CreateStore(title, address, createdBy string) (*model.GroceryStore, error) {
	result, err := s.db.Exec(
		`INSERT INTO grocery_stores (title, address, created_by) VALUES (?, ?, ?)`,
		title, address, createdBy,
	)
	if err != nil {
		return nil, fmt.Errorf("insert store: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetStoreByID(id)
}

func (s *GroceryStore) GetStoreByID(id int64) (*model.GroceryStore, error) {
	row := s.db.QueryRow(`SELECT `+storeCols+` FROM grocery_stores WHERE id = ?`, id)
	st, err := scanStore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	return st, nil
}

func (s *GroceryStore) ListStores() ([]model.GroceryStore, error) {
	rows, err := s.db.Query(`SELECT ` + storeCols + ` FROM grocery_stores ORDER BY title ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []model.GroceryStore
	for rows.Next() {
		st, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, *st)
	}
	return stores, rows.Err()
}

func (s *GroceryStore) UpdateStore(id int64, title, address string) (*model.GroceryStore, error) {
	_, err := s.db.Exec(
		`UPDATE grocery_stores SET title = ?, address = ?, updated_at = ? WHERE id = ?`,
		title, address, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	return s.GetStoreByID(id)
}

// --- Item methods ---

func scanItem(scanner interface{ Scan(...any) error }) (*model.GroceryItem, error) {
	var item model.GroceryItem
	err := scanner.Scan(
		&item.ID, &item.Name, &item.Price, &item.Category, &item.PhotoURL,
		&item.StoreID, &item.CreatedBy, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

const itemCols = `id, name, price, category, photo_url, store_id, created_by, created_at, updated_at`

func (s *GroceryStore) CreateItem(name string, price float64, category, photoURL string, storeID int64, createdBy string) (*model.GroceryItem, error) {
	result, err := s.db.Exec(
		`INSERT INTO grocery_items (name, price, category, photo_url, store_id, created_by) VALUES (?, ?, ?, ?, ?, ?)`,
		name, price, category, photoURL, storeID, createdBy,
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetItemByID(id)
}

func (s *GroceryStore) GetItemByID(id int64) (*model.GroceryItem, error) {
	row := s.db.QueryRow(`SELECT `+itemCols+` FROM grocery_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *GroceryStore) ListItemsByStore(storeID int64) ([]model.GroceryItem, error) {
	rows, err := s.db.Query(
		`SELECT `+itemCols+` FROM grocery_items WHERE store_id = ? ORDER BY category ASC, name ASC, id ASC`,
		storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.GroceryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *GroceryStore) UpdateItem(id int64, name string, price float64, category, photoURL string, storeID int64) (*model.GroceryItem, error) {
	_, err := s.db.Exec(
		`UPDATE grocery_items SET name = ?, price = ?, category = ?, photo_url = ?, store_id = ?, updated_at = ? WHERE id = ?`,
		name, price, category, photoURL, storeID, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return s.GetItemByID(id)
}

// --- Shopping list methods ---

// AddToShoppingList associates the item with the user's shopping list. The
// add is idempotent; it reports whether a new entry was actually inserted.
func (s *GroceryStore) AddToShoppingList(userID, itemID int64) (bool, error) {
	result, err := s.db.Exec(
		`INSERT OR IGNORE INTO shopping_list_items (user_id, item_id) VALUES (?, ?)`,
		userID, itemID,
	)
	if err != nil {
		return false, fmt.Errorf("add to shopping list: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return count > 0, nil
}

func (s *GroceryStore) InShoppingList(userID, itemID int64) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM shopping_list_items WHERE user_id = ? AND item_id = ?`,
		userID, itemID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("in shopping list: %w", err)
	}
	return count > 0, nil
}

// ListShoppingListItems returns the items on the user's shopping list,
// ordered by when they were added.
func (s *GroceryStore) ListShoppingListItems(userID int64) ([]model.GroceryItem, error) {
	rows, err := s.db.Query(
		`SELECT i.id, i.name, i.price, i.category, i.photo_url, i.store_id, i.created_by, i.created_at, i.updated_at
		 FROM grocery_items i
		 JOIN shopping_list_items sl ON sl.item_id = i.id
		 WHERE sl.user_id = ?
		 ORDER BY sl.created_at ASC, i.id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list shopping list items: %w", err)
	}
	defer rows.Close()

	var items []model.GroceryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
