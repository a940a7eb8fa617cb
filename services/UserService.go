package services

import (
	"context"
	"log"
	"vrukshaAdmin/api"
	"vrukshaAdmin/models"
)

type UserService struct {
	ac *api.Client
}

func NewUserService(client *api.Client) UserService {
	return UserService{ac: client}
}

// GetAllUsers lists registered customers. The store wraps the list in a
// {users: [...]} envelope.
func (us *UserService) GetAllUsers(ctx context.Context, token string) (users []models.User, err error) {
	var envelope struct {
		Users []models.User `json:"users"`
	}
	err = us.ac.GetJSON(ctx, token, "/admin/users", &envelope)
	if err != nil {
		return
	}
	for i := range envelope.Users {
		if err = envelope.Users[i].Validate(); err != nil {
			log.Printf("GetAllUsers: %v", err)
			return nil, err
		}
	}
	users = envelope.Users
	return
}
