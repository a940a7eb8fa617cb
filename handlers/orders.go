package handlers

import (
	"net/http"

	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"

	"github.com/gorilla/mux"
)

type ordersPageData struct {
	Orders []models.Order
}

type orderDetailsData struct {
	Order    models.Order
	Statuses []string
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Orders", "orders")
	orders, err := h.ors.GetAllOrders(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch orders")
		if handled {
			return
		}
		p.Flash = flash
		orders = nil
	}
	p.Data = ordersPageData{Orders: orders}
	h.render(w, "orders.html", p)
}

func (h *Handler) OrderDetails(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	order, err := h.ors.GetOrderDetails(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch order")
		if handled {
			return
		}
		setFlash(w, *flash)
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}
	p := h.newPage(r, w, "Order Details", "orders")
	p.Data = orderDetailsData{Order: order, Statuses: models.OrderStatuses}
	h.render(w, "order_details.html", p)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	status := r.PostFormValue("status")

	err := h.ors.SetOrderStatus(r.Context(), currentToken(r), id, status)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to update order status")
		if handled {
			return
		}
		setFlash(w, *flash)
	} else {
		setFlash(w, entities.Flash{Kind: "success", Message: "Order status updated successfully"})
	}
	http.Redirect(w, r, "/orders/"+id, http.StatusSeeOther)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.ors.CancelOrder(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to cancel order")
		if handled {
			return
		}
		setFlash(w, *flash)
	} else {
		setFlash(w, entities.Flash{Kind: "success", Message: "Order cancelled"})
	}
	http.Redirect(w, r, "/orders/"+id, http.StatusSeeOther)
}

// CancelRecurringOrder stops the recurring schedule behind an order; the
// order itself stays as-is.
func (h *Handler) CancelRecurringOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	order, err := h.ors.GetOrderDetails(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch order")
		if handled {
			return
		}
		setFlash(w, *flash)
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}
	if !order.IsRecurring || order.RecurringOrderId == "" {
		setFlash(w, entities.Flash{Kind: "error", Message: "This order has no recurring schedule"})
		http.Redirect(w, r, "/orders/"+id, http.StatusSeeOther)
		return
	}

	err = h.ors.CancelRecurringOrder(r.Context(), currentToken(r), id, order.RecurringOrderId)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to cancel recurring order")
		if handled {
			return
		}
		setFlash(w, *flash)
	} else {
		setFlash(w, entities.Flash{Kind: "success", Message: "Recurring order cancelled"})
	}
	http.Redirect(w, r, "/orders/"+id, http.StatusSeeOther)
}

// RecordPayment records a cash-on-delivery receipt for an order. The
// details view only offers it while the order is COD and not cancelled.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	order, err := h.ors.GetOrderDetails(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch order")
		if handled {
			return
		}
		setFlash(w, *flash)
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}
	if !order.CODPayable() {
		setFlash(w, entities.Flash{Kind: "error", Message: "Payment can not be recorded for this order"})
		http.Redirect(w, r, "/orders/"+id, http.StatusSeeOther)
		return
	}

	err = h.pys.RecordCODPayment(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to record payment")
		if handled {
			return
		}
		setFlash(w, *flash)
	} else {
		setFlash(w, entities.Flash{Kind: "success", Message: "Payment recorded successfully"})
	}
	http.Redirect(w, r, "/orders/"+id, http.StatusSeeOther)
}
