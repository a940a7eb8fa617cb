package handlers

import (
	"net/http"

	"vrukshaAdmin/models"
)

type usersPageData struct {
	Users []models.User
}

func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Users", "users")
	users, err := h.us.GetAllUsers(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch users")
		if handled {
			return
		}
		p.Flash = flash
		users = nil
	}
	p.Data = usersPageData{Users: users}
	h.render(w, "users.html", p)
}
