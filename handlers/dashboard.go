package handlers

import (
	"net/http"

	"vrukshaAdmin/models"
)

type dashboardPageData struct {
	Stats  *models.Stats
	Failed bool
}

// Dashboard fetches the snapshot once and renders it whole. An incomplete
// snapshot was already rejected at the service boundary, so the template
// sees either a full Stats or the failure state, nothing in between.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Dashboard", "dashboard")
	stats, err := h.sts.GetStats(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to load statistics")
		if handled {
			return
		}
		p.Flash = flash
		p.Data = dashboardPageData{Failed: true}
		h.render(w, "dashboard.html", p)
		return
	}
	p.Data = dashboardPageData{Stats: &stats}
	h.render(w, "dashboard.html", p)
}
