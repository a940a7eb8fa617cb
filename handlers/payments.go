package handlers

import (
	"net/http"

	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"

	"github.com/gorilla/mux"
)

type paymentsPageData struct {
	Payments []models.Payment
	Error    string
	Statuses []string
}

var codPaymentStatuses = []string{"Pending", "Received", "Failed"}

// Payments renders three distinct states: an error banner with a retry
// link, an explicit empty notice, or the table.
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Payments", "payments")
	data := paymentsPageData{Statuses: codPaymentStatuses}
	payments, err := h.pys.GetAllPayments(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch payments")
		if handled {
			return
		}
		data.Error = flash.Message
	} else {
		data.Payments = payments
	}
	p.Data = data
	h.render(w, "payments.html", p)
}

func (h *Handler) UpdateCODPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	status := r.PostFormValue("status")

	err := h.pys.UpdateCODPaymentStatus(r.Context(), currentToken(r), id, status)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to update payment status")
		if handled {
			return
		}
		setFlash(w, *flash)
	} else {
		setFlash(w, entities.Flash{Kind: "success", Message: "Payment status updated successfully"})
	}
	http.Redirect(w, r, "/payments", http.StatusSeeOther)
}
