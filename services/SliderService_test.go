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

func TestCreateSlider(t *testing.T) {
	var gotFilename string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sliders", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		files := r.MultipartForm.File["image"]
		require.Len(t, files, 1)
		gotFilename = files[0].Filename
		json.NewEncoder(w).Encode(models.Slider{Id: "s1", Image: "https://cdn/s1.png"})
	})
	ss := NewSliderService(client)

	slider, err := ss.CreateSlider(context.Background(), "t1", entities.Upload{
		Filename: "banner.png", Content: []byte("png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", slider.Id)
	assert.Equal(t, "banner.png", gotFilename)
}

func TestCreateSliderRequiresImage(t *testing.T) {
	ss := NewSliderService(nil)
	_, err := ss.CreateSlider(context.Background(), "t1", entities.Upload{Filename: "banner.png"})
	assert.ErrorIs(t, err, models.ErrNotAllowed)
}

func TestGetAllSlidersRejectsInvalidEntry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Slider{{Id: "s1"}})
	})
	ss := NewSliderService(client)

	_, err := ss.GetAllSliders(context.Background(), "t1")
	assert.ErrorIs(t, err, models.ErrInvalidResponse)
}
