package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductMultipartContract(t *testing.T) {
	var gotVariation string
	var gotImages []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Honey", r.PostFormValue("name"))
		assert.Equal(t, "Raw honey", r.PostFormValue("description"))
		assert.Equal(t, "c1", r.PostFormValue("category"))
		gotVariation = r.PostFormValue("variation")
		for _, fh := range r.MultipartForm.File["images"] {
			gotImages = append(gotImages, fh.Filename)
		}
		json.NewEncoder(w).Encode(models.Product{
			Id: "p1", Name: "Honey",
			Variation: []models.Variation{{Weight: "500g", Price: 100, Pcs: 4}},
		})
	})
	ps := NewProductService(client)

	form := entities.ProductForm{
		Name:        "Honey",
		Description: "Raw honey",
		Category:    "c1",
		Variations: []entities.VariationRow{
			{Weight: "500g", Price: "100", Pcs: "4"},
			{}, // untouched blank row
		},
	}
	images := []entities.Upload{
		{Filename: "front.png", Content: []byte("a")},
		{Filename: "back.png", Content: []byte("b")},
	}
	prod, err := ps.CreateProduct(context.Background(), "t1", form, images)
	require.NoError(t, err)
	assert.Equal(t, "p1", prod.Id)
	// One JSON part with numbers, blank rows dropped.
	assert.JSONEq(t, `[{"weight":"500g","price":100,"pcs":4}]`, gotVariation)
	assert.Equal(t, []string{"front.png", "back.png"}, gotImages)
}

func TestCreateProductRejectsBadVariation(t *testing.T) {
	ps := NewProductService(nil)
	form := entities.ProductForm{
		Name:     "Honey",
		Category: "c1",
		Variations: []entities.VariationRow{
			{Weight: "500g", Price: "abc", Pcs: "4"},
		},
	}
	_, err := ps.CreateProduct(context.Background(), "t1", form, nil)
	assert.ErrorIs(t, err, models.ErrNotAllowed)
}

func TestCreateProductRequiresVariation(t *testing.T) {
	ps := NewProductService(nil)
	form := entities.ProductForm{
		Name:       "Honey",
		Category:   "c1",
		Variations: []entities.VariationRow{{}, {}},
	}
	_, err := ps.CreateProduct(context.Background(), "t1", form, nil)
	assert.ErrorIs(t, err, models.ErrNotAllowed)
}

func TestGetProductsByCategory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/category/c1", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Product{})
	})
	ps := NewProductService(client)

	prods, err := ps.GetProductsByCategory(context.Background(), "t1", "c1")
	require.NoError(t, err)
	assert.Empty(t, prods)
}
