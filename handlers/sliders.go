package handlers

import (
	"net/http"

	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"

	"github.com/gorilla/mux"
)

type slidersPageData struct {
	Sliders []models.Slider
}

type sliderConfirmData struct {
	Slider models.Slider
}

func (h *Handler) Sliders(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Sliders", "sliders")
	sliders, err := h.sls.GetAllSliders(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch sliders")
		if handled {
			return
		}
		p.Flash = flash
		sliders = nil
	}
	p.Data = slidersPageData{Sliders: sliders}
	h.render(w, "sliders.html", p)
}

func (h *Handler) SliderNew(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Add Slider", "sliders")
	h.render(w, "slider_form.html", p)
}

func (h *Handler) CreateSlider(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	image, err := readUpload(r, "image")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	renderError := func(msg string) {
		p := h.newPage(r, w, "Add Slider", "sliders")
		p.Flash = &entities.Flash{Kind: "error", Message: msg}
		h.render(w, "slider_form.html", p)
	}

	if image == nil {
		renderError("Please select an image")
		return
	}

	_, err = h.sls.CreateSlider(r.Context(), currentToken(r), *image)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Operation failed")
		if handled {
			return
		}
		renderError(flash.Message)
		return
	}

	setFlash(w, entities.Flash{Kind: "success", Message: "Slider created successfully"})
	http.Redirect(w, r, "/sliders", http.StatusSeeOther)
}

func (h *Handler) SliderConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	slider, err := h.sls.GetSliderById(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch slider")
		if handled {
			return
		}
		setFlash(w, *flash)
		http.Redirect(w, r, "/sliders", http.StatusSeeOther)
		return
	}
	p := h.newPage(r, w, "Delete Slider", "sliders")
	p.Data = sliderConfirmData{Slider: slider}
	h.render(w, "slider_confirm.html", p)
}

func (h *Handler) DeleteSlider(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.sls.DeleteSlider(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to delete slider")
		if handled {
			return
		}
		setFlash(w, *flash)
	} else {
		setFlash(w, entities.Flash{Kind: "success", Message: "Slider deleted successfully"})
	}
	http.Redirect(w, r, "/sliders", http.StatusSeeOther)
}
