package services

import (
	"context"
	"net/http"
	"testing"
	"vrukshaAdmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllUsersUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/users", r.URL.Path)
		w.Write([]byte(`{"users": [
			{"_id": "u1", "name": "Asha", "email": "asha@example.com", "isBusiness": true},
			{"_id": "u2", "name": "Ravi", "email": "ravi@example.com"}
		]}`))
	})
	us := NewUserService(client)

	users, err := us.GetAllUsers(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.True(t, users[0].IsBusiness)
	assert.Equal(t, "ravi@example.com", users[1].Email)
}

func TestGetAllUsersRejectsInvalidEntry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users": [{"_id": "u1"}]}`))
	})
	us := NewUserService(client)

	_, err := us.GetAllUsers(context.Background(), "t1")
	assert.ErrorIs(t, err, models.ErrInvalidResponse)
}
