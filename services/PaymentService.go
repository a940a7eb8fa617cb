package services

import (
	"context"
	"log"
	"vrukshaAdmin/api"
	"vrukshaAdmin/models"
)

type PaymentService struct {
	ac *api.Client
}

func NewPaymentService(client *api.Client) PaymentService {
	return PaymentService{ac: client}
}

func (pys *PaymentService) GetAllPayments(ctx context.Context, token string) (payments []models.Payment, err error) {
	err = pys.ac.GetJSON(ctx, token, "/payments/all", &payments)
	if err != nil {
		return
	}
	for i := range payments {
		if err = payments[i].Validate(); err != nil {
			log.Printf("GetAllPayments: %v", err)
			return nil, err
		}
	}
	return
}

// RecordCODPayment marks a cash-on-delivery order as paid; the store
// creates the payment record implicitly.
func (pys *PaymentService) RecordCODPayment(ctx context.Context, token, orderId string) (err error) {
	if orderId == "" {
		err = models.ErrNotAllowed
		return
	}
	payload := struct {
		OrderId string `json:"orderId"`
	}{OrderId: orderId}
	err = pys.ac.PostJSON(ctx, token, "/payments/record-cod", payload, nil)
	return
}

func (pys *PaymentService) UpdateCODPaymentStatus(ctx context.Context, token, paymentId, status string) (err error) {
	if paymentId == "" || status == "" {
		err = models.ErrNotAllowed
		return
	}
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	err = pys.ac.PutJSON(ctx, token, "/payments/update-cod-status/"+paymentId, payload, nil)
	return
}

func (pys *PaymentService) CreateGatewayOrder(ctx context.Context, token, orderId string) (gw models.GatewayOrder, err error) {
	if orderId == "" {
		err = models.ErrNotAllowed
		return
	}
	payload := struct {
		OrderId string `json:"orderId"`
	}{OrderId: orderId}
	err = pys.ac.PostJSON(ctx, token, "/payments/create-order", payload, &gw)
	return
}

func (pys *PaymentService) VerifyGatewayPayment(ctx context.Context, token string, details models.GatewayVerification) (err error) {
	err = pys.ac.PostJSON(ctx, token, "/payments/verify", details, nil)
	return
}
