// Package form holds the declarative form definitions: one struct per HTML
// form, each parsing submitted values into typed fields and collecting
// per-field error messages for re-rendering.
package form

import (
	"fmt"
	neturl "net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/davewalter/shoplist/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
)

// UserDirectory is the storage lookup the signup and login forms need for
// their cross-checks.
type UserDirectory interface {
	GetByUsername(username string) (*model.User, error)
}

// --- Store form ---

type StoreForm struct {
	Title   string
	Address string
	Errors  map[string]string
}

// NewStoreForm returns an empty store form for an initial GET render.
func NewStoreForm() *StoreForm {
	return &StoreForm{Errors: map[string]string{}}
}

// PrefilledStoreForm returns a store form populated from an existing store
// for the edit page.
func PrefilledStoreForm(st *model.GroceryStore) *StoreForm {
	return &StoreForm{Title: st.Title, Address: st.Address, Errors: map[string]string{}}
}

func ParseStoreForm(values neturl.Values) *StoreForm {
	f := &StoreForm{
		Title:   strings.TrimSpace(values.Get("title")),
		Address: strings.TrimSpace(values.Get("address")),
		Errors:  map[string]string{},
	}
	if f.Title == "" {
		f.Errors["title"] = "Title is required"
	}
	if f.Address == "" {
		f.Errors["address"] = "Address is required"
	}
	return f
}

func (f *StoreForm) Valid() bool { return len(f.Errors) == 0 }

// --- Item form ---

type ItemForm struct {
	Name     string
	PriceRaw string
	Price    float64
	Category string
	PhotoURL string
	StoreRaw string
	StoreID  int64

	// Stores holds the selectable store choices for rendering.
	Stores []model.GroceryStore
	Errors map[string]string
}

// NewItemForm returns an empty item form with the given store choices.
func NewItemForm(stores []model.GroceryStore) *ItemForm {
	return &ItemForm{Stores: stores, Errors: map[string]string{}}
}

// PrefilledItemForm returns an item form populated from an existing item for
// the edit page.
func PrefilledItemForm(item *model.GroceryItem, stores []model.GroceryStore) *ItemForm {
	return &ItemForm{
		Name:     item.Name,
		PriceRaw: strconv.FormatFloat(item.Price, 'f', -1, 64),
		Price:    item.Price,
		Category: item.Category,
		PhotoURL: item.PhotoURL,
		StoreRaw: strconv.FormatInt(item.StoreID, 10),
		StoreID:  item.StoreID,
		Stores:   stores,
		Errors:   map[string]string{},
	}
}

// ParseItemForm validates the item fields against the closed category set and
// the current list of persisted stores.
func ParseItemForm(values neturl.Values, stores []model.GroceryStore) *ItemForm {
	f := &ItemForm{
		Name:     strings.TrimSpace(values.Get("name")),
		PriceRaw: strings.TrimSpace(values.Get("price")),
		Category: values.Get("category"),
		PhotoURL: strings.TrimSpace(values.Get("photo_url")),
		StoreRaw: values.Get("store_id"),
		Stores:   stores,
		Errors:   map[string]string{},
	}

	if f.Name == "" {
		f.Errors["name"] = "Name is required"
	}

	price, err := strconv.ParseFloat(f.PriceRaw, 64)
	switch {
	case f.PriceRaw == "":
		f.Errors["price"] = "Price is required"
	case err != nil:
		f.Errors["price"] = "Price must be a number"
	case price < 0:
		f.Errors["price"] = "Price cannot be negative"
	default:
		f.Price = price
	}

	if !model.ValidCategory(f.Category) {
		f.Errors["category"] = "Choose a category from the list"
		// Preselect a guess on the re-rendered form so the user only has
		// to confirm it.
		if suggested := model.SuggestCategory(f.Name); suggested != "" {
			f.Category = suggested
		}
	}

	if !validPhotoURL(f.PhotoURL) {
		f.Errors["photo_url"] = "Photo must be a valid URL"
	}

	storeID, err := strconv.ParseInt(f.StoreRaw, 10, 64)
	if err != nil || !storeExists(stores, storeID) {
		f.Errors["store_id"] = "Choose a store from the list"
	} else {
		f.StoreID = storeID
	}

	return f
}

func (f *ItemForm) Valid() bool { return len(f.Errors) == 0 }

func validPhotoURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := neturl.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func storeExists(stores []model.GroceryStore, id int64) bool {
	for _, st := range stores {
		if st.ID == id {
			return true
		}
	}
	return false
}

// --- Signup form ---

type SignupForm struct {
	Username string
	Password string
	Errors   map[string]string
}

// NewSignupForm returns an empty signup form for an initial GET render.
func NewSignupForm() *SignupForm {
	return &SignupForm{Errors: map[string]string{}}
}

func ParseSignupForm(values neturl.Values) *SignupForm {
	f := &SignupForm{
		Username: strings.TrimSpace(values.Get("username")),
		Password: values.Get("password"),
		Errors:   map[string]string{},
	}
	if msg := usernameError(f.Username); msg != "" {
		f.Errors["username"] = msg
	}
	if f.Password == "" {
		f.Errors["password"] = "Password is required"
	}
	return f
}

// Validate runs the storage-backed uniqueness check. Parse errors suppress
// the lookup; a field that failed syntactic validation is not re-checked.
func (f *SignupForm) Validate(users UserDirectory) error {
	if _, ok := f.Errors["username"]; ok {
		return nil
	}
	existing, err := users.GetByUsername(f.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		f.Errors["username"] = "That username is already taken"
	}
	return nil
}

func (f *SignupForm) Valid() bool { return len(f.Errors) == 0 }

// --- Login form ---

type LoginForm struct {
	Username string
	Password string
	Errors   map[string]string

	// User is set by Validate when the credentials check out.
	User *model.User
}

// NewLoginForm returns an empty login form for an initial GET render.
func NewLoginForm() *LoginForm {
	return &LoginForm{Errors: map[string]string{}}
}

func ParseLoginForm(values neturl.Values) *LoginForm {
	f := &LoginForm{
		Username: strings.TrimSpace(values.Get("username")),
		Password: values.Get("password"),
		Errors:   map[string]string{},
	}
	if msg := usernameError(f.Username); msg != "" {
		f.Errors["username"] = msg
	}
	if f.Password == "" {
		f.Errors["password"] = "Password is required"
	}
	return f
}

// Validate looks up the user and verifies the password against the stored
// bcrypt hash. Credential failures become field-level errors.
func (f *LoginForm) Validate(users UserDirectory) error {
	if len(f.Errors) > 0 {
		return nil
	}
	user, err := users.GetByUsername(f.Username)
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		f.Errors["username"] = "No account with that username"
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(f.Password)); err != nil {
		f.Errors["password"] = "Incorrect password"
		return nil
	}
	f.User = user
	return nil
}

func (f *LoginForm) Valid() bool { return len(f.Errors) == 0 && f.User != nil }

func usernameError(username string) string {
	n := utf8.RuneCountInString(username)
	switch {
	case n == 0:
		return "Username is required"
	case n < usernameMinLen || n > usernameMaxLen:
		return fmt.Sprintf("Username must be between %d and %d characters", usernameMinLen, usernameMaxLen)
	}
	return ""
}
