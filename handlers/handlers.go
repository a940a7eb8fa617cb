package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"runtime/debug"
	"time"

	"vrukshaAdmin/api"
	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"
	"vrukshaAdmin/repository"
	"vrukshaAdmin/services"
)

const sessionCookie = "adminSession"
const flashCookie = "adminFlash"

type Handler struct {
	aus services.AuthService
	cas services.CategoryService
	ps  services.ProductService
	ors services.OrderService
	pys services.PaymentService
	sls services.SliderService
	us  services.UserService
	sts services.StatsService
	sr  repository.SessionRepository
	tpl *template.Template
}

type HandlerParams struct {
	AuthService  services.AuthService
	CatsService  services.CategoryService
	PrdService   services.ProductService
	OrdService   services.OrderService
	PayService   services.PaymentService
	SldService   services.SliderService
	UsrService   services.UserService
	StatsService services.StatsService
	Sessions     repository.SessionRepository
	Templates    *template.Template
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		aus: params.AuthService,
		cas: params.CatsService,
		ps:  params.PrdService,
		ors: params.OrdService,
		pys: params.PayService,
		sls: params.SldService,
		us:  params.UsrService,
		sts: params.StatsService,
		sr:  params.Sessions,
		tpl: params.Templates,
	}
}

type ctxKey int

const sessionKey ctxKey = 0

// page is the envelope every template renders from.
type page struct {
	Title    string
	Active   string
	Identity *models.Identity
	Flash    *entities.Flash
	Data     any
}

func (h *Handler) newPage(r *http.Request, w http.ResponseWriter, title, active string) page {
	p := page{Title: title, Active: active}
	if sess, ok := currentSession(r); ok {
		identity := sess.Identity
		p.Identity = &identity
	}
	p.Flash = popFlash(w, r)
	return p
}

func (h *Handler) render(w http.ResponseWriter, name string, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tpl.ExecuteTemplate(w, name, p); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

// middleware

// AuthMiddleware is the route guard: requests without a resolvable session
// are sent to the login view, remembering where they were headed.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(sessionCookie)
		if err != nil {
			redirectToLogin(w, r)
			return
		}
		sess, exists, err := h.sr.GetSession(r.Context(), c.Value)
		if err != nil {
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}
		if !exists {
			redirectToLogin(w, r)
			return
		}
		h.sr.RefreshSession(r.Context(), c.Value)
		ctx := context.WithValue(r.Context(), sessionKey, sessionState{id: c.Value, session: sess})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) ErrorHandleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic occured: %v \n stacktrace: %v", rec, string(debug.Stack()))
				http.Error(w, "something went wrong, contact with service administration", http.StatusBadGateway)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type sessionState struct {
	id      string
	session repository.Session
}

func currentSession(r *http.Request) (repository.Session, bool) {
	state, ok := r.Context().Value(sessionKey).(sessionState)
	if !ok {
		return repository.Session{}, false
	}
	return state.session, true
}

func currentToken(r *http.Request) string {
	sess, ok := currentSession(r)
	if !ok {
		return ""
	}
	return sess.Token
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Path
	if next == "" || next == "/login" {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login?next="+url.QueryEscape(next), http.StatusFound)
}

// expireSession is the 401 policy: drop the server-side session and the
// cookie. Safe to run twice for the same session.
func (h *Handler) expireSession(w http.ResponseWriter, r *http.Request) {
	state, ok := r.Context().Value(sessionKey).(sessionState)
	if ok {
		h.sr.DeleteSession(r.Context(), state.id)
	}
	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Now(),
	})
}

// handleAPIError applies the shared failure policy for actions against the
// store api. It reports true when it already produced a response (the 401
// wipe-and-redirect); otherwise the caller renders with the returned flash.
func (h *Handler) handleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) (*entities.Flash, bool) {
	if errors.Is(err, models.ErrUnautorized) {
		h.expireSession(w, r)
		redirectToLogin(w, r)
		return nil, true
	}
	return &entities.Flash{Kind: "error", Message: errorMessage(err, fallback)}, false
}

func errorMessage(err error, fallback string) string {
	if msg := api.UserMessage(err); msg != "" {
		return msg
	}
	switch {
	case errors.Is(err, models.ErrForbidden):
		return "Not authorized for this action. Please check your admin privileges."
	case errors.Is(err, models.ErrUnavailable):
		return "The store API is unreachable. Please try again."
	}
	return fallback
}

// flash cookies, one-shot: set on redirect, read and cleared on next render.

func setFlash(w http.ResponseWriter, flash entities.Flash) {
	data, err := json.Marshal(flash)
	if err != nil {
		log.Printf("setFlash: %v", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:  flashCookie,
		Value: base64.URLEncoding.EncodeToString(data),
		Path:  "/",
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) *entities.Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:    flashCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Now(),
	})
	data, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	flash := entities.Flash{}
	if err := json.Unmarshal(data, &flash); err != nil {
		return nil
	}
	return &flash
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
