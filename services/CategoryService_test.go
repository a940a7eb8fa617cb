package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"vrukshaAdmin/api"
	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := api.NewClient(srv.URL)
	require.NoError(t, err)
	return client
}

func TestGetAllCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/categories", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Category{
			{Id: "c1", Name: "Fruits"},
			{Id: "c2", Name: "Apples", Parent: &models.CategoryRef{Id: "c1", Name: "Fruits"}},
		})
	})
	cs := NewCategoryService(client)

	cats, err := cs.GetAllCategories(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Fruits", cats[0].Name)
	require.NotNil(t, cats[1].Parent)
	assert.Equal(t, "c1", cats[1].Parent.Id)
}

func TestGetAllCategoriesRejectsInvalidEntry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Category{{Id: "c1"}})
	})
	cs := NewCategoryService(client)

	_, err := cs.GetAllCategories(context.Background(), "t1")
	assert.ErrorIs(t, err, models.ErrInvalidResponse)
}

func TestCreateCategoryMultipartContract(t *testing.T) {
	var gotName, gotParent, gotIconName string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/categories", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.PostFormValue("name")
		gotParent = r.PostFormValue("parent")
		files := r.MultipartForm.File["icon"]
		require.Len(t, files, 1)
		gotIconName = files[0].Filename
		json.NewEncoder(w).Encode(models.Category{Id: "c9", Name: gotName})
	})
	cs := NewCategoryService(client)

	icon := &entities.Upload{Filename: "icon.png", Content: []byte("png")}
	cat, err := cs.CreateCategory(context.Background(), "t1", entities.CategoryForm{Name: "Fruits"}, icon)
	require.NoError(t, err)
	assert.Equal(t, "c9", cat.Id)
	assert.Equal(t, "Fruits", gotName)
	assert.Equal(t, "", gotParent)
	assert.Equal(t, "icon.png", gotIconName)
}

func TestCreateCategoryRequiresIcon(t *testing.T) {
	cs := NewCategoryService(nil)
	_, err := cs.CreateCategory(context.Background(), "t1", entities.CategoryForm{Name: "Fruits"}, nil)
	assert.ErrorIs(t, err, models.ErrNotAllowed)
}

func TestUpdateCategoryOmitsIconWhenUnchanged(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/categories/c1", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Empty(t, r.MultipartForm.File["icon"])
		assert.Equal(t, "c9", r.PostFormValue("parent"))
		json.NewEncoder(w).Encode(models.Category{Id: "c1", Name: "Fruits"})
	})
	cs := NewCategoryService(client)

	_, err := cs.UpdateCategory(context.Background(), "t1", "c1", entities.CategoryForm{Name: "Fruits", Parent: "c9"}, nil)
	require.NoError(t, err)
}

func TestDeleteCategoryPropagatesRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Category has products"})
	})
	cs := NewCategoryService(client)

	err := cs.DeleteCategory(context.Background(), "t1", "c1")
	assert.ErrorIs(t, err, models.ErrBadRequest)
	assert.Equal(t, "Category has products", api.UserMessage(err))
}
