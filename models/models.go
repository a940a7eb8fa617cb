package models

import (
	"errors"
	"time"
)

var ErrBadRequest = errors.New("bad request")
var ErrUnautorized = errors.New("unautorized")
var ErrForbidden = errors.New("forbidden")
var ErrServerError = errors.New("server error")
var ErrNotFoundError = errors.New("not found")
var ErrNotAllowed = errors.New("not acceptable")
var ErrBadGateway = errors.New("store api error")
var ErrUnavailable = errors.New("store api unavailable")
var ErrInvalidResponse = errors.New("invalid response payload")

// Order statuses accepted by the status update form. The store reports one
// more bucket, Scheduled, for pending recurring orders; it is display-only.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
	StatusScheduled  = "Scheduled"
)

var OrderStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

const PaymentModeCOD = "COD"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Identity struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Identity
}

type CategoryRef struct {
	Id   string `json:"_id"`
	Name string `json:"name"`
}

type Category struct {
	Id     string       `json:"_id"`
	Name   string       `json:"name"`
	Parent *CategoryRef `json:"parent,omitempty"`
	Icon   string       `json:"icon,omitempty"`
}

func (c *Category) Validate() error {
	if c.Id == "" || c.Name == "" {
		return ErrInvalidResponse
	}
	return nil
}

type Variation struct {
	Weight string  `json:"weight"`
	Price  float64 `json:"price"`
	Pcs    int     `json:"pcs"`
}

type Product struct {
	Id          string       `json:"_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    *CategoryRef `json:"category,omitempty"`
	Images      []string     `json:"images"`
	Variation   []Variation  `json:"variation"`
}

func (p *Product) Validate() error {
	if p.Id == "" || p.Name == "" || len(p.Variation) == 0 {
		return ErrInvalidResponse
	}
	return nil
}

type OrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderItemProduct struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type OrderItem struct {
	Id       string            `json:"_id"`
	Product  *OrderItemProduct `json:"product,omitempty"`
	Quantity int               `json:"quantity"`
	Price    float64           `json:"price"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Order struct {
	Id               string           `json:"_id"`
	User             *OrderCustomer   `json:"user,omitempty"`
	Items            []OrderItem      `json:"items"`
	Total            float64          `json:"total"`
	Status           string           `json:"status"`
	PaymentMode      string           `json:"paymentMode"`
	ShippingAddress  *ShippingAddress `json:"shippingAddress,omitempty"`
	IsRecurring      bool             `json:"isRecurring"`
	RecurringOrderId string           `json:"recurringOrderId,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

func (o *Order) Validate() error {
	if o.Id == "" || o.Status == "" {
		return ErrInvalidResponse
	}
	return nil
}

// CODPayable reports whether the record-payment action applies: cash orders
// only, and never once the order is cancelled.
func (o *Order) CODPayable() bool {
	return o.PaymentMode == PaymentModeCOD && o.Status != StatusCancelled
}

type Payment struct {
	Id          string    `json:"_id"`
	OrderId     string    `json:"orderId"`
	PaymentMode string    `json:"paymentMode"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Payment) Validate() error {
	if p.Id == "" {
		return ErrInvalidResponse
	}
	return nil
}

// GatewayOrder is the payment gateway's order handle returned by
// /payments/create-order; the checkout flow on the customer side consumes
// it, the admin only relays it.
type GatewayOrder struct {
	Id       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type GatewayVerification struct {
	OrderId   string `json:"razorpay_order_id"`
	PaymentId string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Slider struct {
	Id        string    `json:"_id"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Slider) Validate() error {
	if s.Id == "" || s.Image == "" {
		return ErrInvalidResponse
	}
	return nil
}

type User struct {
	Id           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	IsBusiness   bool      `json:"isBusiness"`
	SavedAddress []string  `json:"savedAddress"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) Validate() error {
	if u.Id == "" || u.Email == "" {
		return ErrInvalidResponse
	}
	return nil
}

type UserStats struct {
	Total         int `json:"total"`
	BusinessUsers int `json:"businessUsers"`
}

type InventoryStats struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
}

type OrderStats struct {
	Total      int `json:"total"`
	Scheduled  int `json:"scheduled"`
	Processing int `json:"processing"`
	Delivered  int `json:"delivered"`
	Canceled   int `json:"canceled"`
}

type BusinessOrderStats struct {
	Total        int     `json:"total"`
	QuotedAmount float64 `json:"quotedAmount"`
}

type FinanceStats struct {
	TotalIncome float64 `json:"totalIncome"`
}

// Stats is the dashboard snapshot. The sections are pointers so a
// structurally incomplete payload is detectable; Validate treats any missing
// section as a failed load, not a partial one.
type Stats struct {
	Users          *UserStats          `json:"users"`
	Inventory      *InventoryStats     `json:"inventory"`
	Orders         *OrderStats         `json:"orders"`
	BusinessOrders *BusinessOrderStats `json:"businessOrders"`
	Finance        *FinanceStats       `json:"finance"`
}

func (s *Stats) Validate() error {
	if s.Users == nil || s.Inventory == nil || s.Orders == nil ||
		s.BusinessOrders == nil || s.Finance == nil {
		return ErrInvalidResponse
	}
	return nil
}
