package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"vrukshaAdmin/models"
	"vrukshaAdmin/repository"
)

type loginPageData struct {
	Email string
	Error string
	Next  string
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already signed in: go straight to where the guard sent us from.
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, exists, _ := h.sr.GetSession(r.Context(), c.Value); exists {
			http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusFound)
			return
		}
	}
	p := h.newPage(r, w, "Sign In", "")
	p.Data = loginPageData{Next: r.URL.Query().Get("next")}
	h.render(w, "login.html", p)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	next := r.PostFormValue("next")

	renderError := func(msg string) {
		p := h.newPage(r, w, "Sign In", "")
		p.Data = loginPageData{Email: email, Error: msg, Next: next}
		h.render(w, "login.html", p)
	}

	if email == "" || password == "" {
		renderError("Please enter both email and password")
		return
	}

	resp, err := h.aus.Login(r.Context(), email, password)
	if err != nil {
		// A rejected login never wipes an existing session; the 401
		// policy applies to every endpoint but this one.
		if errors.Is(err, models.ErrUnautorized) {
			renderError("Failed to login. Please check your credentials.")
			return
		}
		renderError(errorMessage(err, "Failed to login. Please try again."))
		return
	}

	sessionId, err := h.sr.CreateSession(r.Context(), repository.Session{
		Token:    resp.Token,
		Identity: resp.Identity,
	})
	if err != nil {
		renderError("Failed to login. Please try again.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionId,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

// Logout clears server-side and cookie state unconditionally; no upstream
// call is made.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.expireSession(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// safeNext keeps the post-login redirect on this site.
func safeNext(next string) string {
	if next == "" || next == "/login" {
		return "/dashboard"
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" || next[0] != '/' {
		return "/dashboard"
	}
	return next
}
