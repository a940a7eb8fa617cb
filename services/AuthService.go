package services

import (
	"context"
	"log"
	"vrukshaAdmin/api"
	"vrukshaAdmin/models"
)

type AuthService struct {
	ac *api.Client
}

func NewAuthService(client *api.Client) AuthService {
	return AuthService{ac: client}
}

// Login exchanges credentials for a bearer token and the staff identity.
// A 200 without a token still counts as a failed login.
func (as *AuthService) Login(ctx context.Context, email, password string) (resp models.LoginResponse, err error) {
	if email == "" || password == "" {
		err = models.ErrBadRequest
		return
	}
	creds := models.Credentials{Email: email, Password: password}
	err = as.ac.PostJSON(ctx, "", "/admin/login", creds, &resp)
	if err != nil {
		return
	}
	if resp.Token == "" {
		log.Printf("Login: no token received")
		err = models.ErrUnautorized
	}
	return
}

func (as *AuthService) Register(ctx context.Context, req models.RegisterRequest) (resp models.LoginResponse, err error) {
	if req.Email == "" || req.Password == "" {
		err = models.ErrBadRequest
		return
	}
	err = as.ac.PostJSON(ctx, "", "/admin/register", req, &resp)
	if err != nil {
		return
	}
	if resp.Token == "" {
		log.Printf("Register: no token received")
		err = models.ErrUnautorized
	}
	return
}
