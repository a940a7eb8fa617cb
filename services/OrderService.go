package services

import (
	"context"
	"log"
	"vrukshaAdmin/api"
	"vrukshaAdmin/models"
)

type OrderService struct {
	ac *api.Client
}

func NewOrderService(client *api.Client) OrderService {
	return OrderService{ac: client}
}

func (ors *OrderService) GetAllOrders(ctx context.Context, token string) (orders []models.Order, err error) {
	err = ors.ac.GetJSON(ctx, token, "/orders/all", &orders)
	if err != nil {
		return
	}
	for i := range orders {
		if err = orders[i].Validate(); err != nil {
			log.Printf("GetAllOrders: %v", err)
			return nil, err
		}
	}
	return
}

func (ors *OrderService) GetOrderDetails(ctx context.Context, token, id string) (order models.Order, err error) {
	err = ors.ac.GetJSON(ctx, token, "/orders/details/"+id, &order)
	if err != nil {
		return
	}
	err = order.Validate()
	return
}

func (ors *OrderService) SetOrderStatus(ctx context.Context, token, id, status string) (err error) {
	if !models.ValidOrderStatus(status) {
		log.Printf("SetOrderStatus: status %q is not allowed", status)
		err = models.ErrNotAllowed
		return
	}
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	err = ors.ac.PutJSON(ctx, token, "/orders/status/"+id, payload, nil)
	return
}

func (ors *OrderService) CancelOrder(ctx context.Context, token, id string) (err error) {
	if id == "" {
		err = models.ErrNotAllowed
		return
	}
	err = ors.ac.PutJSON(ctx, token, "/orders/cancel/"+id, struct{}{}, nil)
	return
}

func (ors *OrderService) CancelRecurringOrder(ctx context.Context, token, orderId, recurringId string) (err error) {
	if orderId == "" || recurringId == "" {
		err = models.ErrNotAllowed
		return
	}
	err = ors.ac.PutJSON(ctx, token, "/orders/recurring/"+orderId+"/"+recurringId+"/cancel", struct{}{}, nil)
	return
}
