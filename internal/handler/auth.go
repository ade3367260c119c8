package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/davewalter/shoplist/internal/flash"
	"github.com/davewalter/shoplist/internal/form"
	"github.com/davewalter/shoplist/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const sessionCookieName = "shoplist_session"

// AuthHandler serves signup, login, and logout.
type AuthHandler struct {
	userStore    *store.UserStore
	sessionStore *store.SessionStore
	templates    *template.Template
	logger       *slog.Logger
}

func NewAuthHandler(us *store.UserStore, ss *store.SessionStore, templates *template.Template, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userStore:    us,
		sessionStore: ss,
		templates:    templates,
		logger:       logger,
	}
}

func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.renderSignup(w, r, form.NewSignupForm())
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	f := form.ParseSignupForm(r.PostForm)
	if err := f.Validate(h.userStore); err != nil {
		h.logger.Error("signup validate", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}
	if !f.Valid() {
		h.renderSignup(w, r, f)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("hash password", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	if _, err := h.userStore.Create(f.Username, string(hash)); err != nil {
		h.logger.Error("create user", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	flash.Set(w, "Account created. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, form.NewLoginForm())
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	f := form.ParseLoginForm(r.PostForm)
	if err := f.Validate(h.userStore); err != nil {
		h.logger.Error("login validate", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}
	if !f.Valid() {
		h.renderLogin(w, r, f)
		return
	}

	sess, err := h.sessionStore.Create(f.User.ID)
	if err != nil {
		h.logger.Error("create session", "error", err)
		renderServerError(w, r, h.logger, h.templates)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})

	http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if sess, err := h.sessionStore.GetByToken(cookie.Value); err == nil && sess != nil {
			if err := h.sessionStore.Delete(sess.ID); err != nil {
				h.logger.Error("delete session", "error", err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) renderSignup(w http.ResponseWriter, r *http.Request, f *form.SignupForm) {
	data := pageData(w, r, "Sign Up — Shoplist")
	data["Form"] = f
	render(w, h.logger, h.templates, http.StatusOK, "signup.html", data)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, f *form.LoginForm) {
	action := "/login"
	if next := r.URL.Query().Get("next"); next != "" {
		action += "?next=" + url.QueryEscape(next)
	}

	data := pageData(w, r, "Log In — Shoplist")
	data["Form"] = f
	data["Action"] = action
	render(w, h.logger, h.templates, http.StatusOK, "login.html", data)
}

// safeNext returns the post-login destination, falling back to the home page
// unless next is a local path. Protocol-relative and absolute URLs are
// rejected to prevent open redirects.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
