package handlers

import (
	"net/http"

	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"

	"github.com/gorilla/mux"
)

type categoriesPageData struct {
	Categories []models.Category
}

type categoryFormData struct {
	Editing bool
	Id      string
	Form    entities.CategoryForm
	Parents []models.Category
}

type categoryConfirmData struct {
	Category models.Category
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Categories", "categories")
	cats, err := h.cas.GetAllCategories(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch categories")
		if handled {
			return
		}
		// Fetch failure renders an empty table, never stale rows.
		p.Flash = flash
		cats = nil
	}
	p.Data = categoriesPageData{Categories: cats}
	h.render(w, "categories.html", p)
}

func (h *Handler) CategoryNew(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Add Category", "categories")
	cats, err := h.cas.GetAllCategories(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch categories")
		if handled {
			return
		}
		p.Flash = flash
	}
	p.Data = categoryFormData{Parents: entities.ParentOptions(cats, "")}
	h.render(w, "category_form.html", p)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	form := entities.CategoryForm{
		Name:   r.PostFormValue("name"),
		Parent: r.PostFormValue("parent"),
	}
	icon, err := readUpload(r, "icon")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	_, err = h.cas.CreateCategory(r.Context(), currentToken(r), form, icon)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Operation failed")
		if handled {
			return
		}
		// Keep the draft on screen; only the icon input cannot be
		// repopulated.
		p := h.newPage(r, w, "Add Category", "categories")
		p.Flash = flash
		cats, _ := h.cas.GetAllCategories(r.Context(), currentToken(r))
		p.Data = categoryFormData{Form: form, Parents: entities.ParentOptions(cats, "")}
		h.render(w, "category_form.html", p)
		return
	}

	setFlash(w, entities.Flash{Kind: "success", Message: "Category created successfully"})
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

func (h *Handler) CategoryEdit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cat, err := h.cas.GetCategoryById(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch category")
		if handled {
			return
		}
		setFlash(w, *flash)
		http.Redirect(w, r, "/categories", http.StatusSeeOther)
		return
	}
	p := h.newPage(r, w, "Edit Category", "categories")
	cats, err := h.cas.GetAllCategories(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch categories")
		if handled {
			return
		}
		p.Flash = flash
	}
	p.Data = categoryFormData{
		Editing: true,
		Id:      cat.Id,
		Form:    entities.CategoryFormFromEntity(cat),
		Parents: entities.ParentOptions(cats, cat.Id),
	}
	h.render(w, "category_form.html", p)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !parseMultipart(w, r) {
		return
	}
	form := entities.CategoryForm{
		Name:   r.PostFormValue("name"),
		Parent: r.PostFormValue("parent"),
	}
	icon, err := readUpload(r, "icon")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	_, err = h.cas.UpdateCategory(r.Context(), currentToken(r), id, form, icon)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Operation failed")
		if handled {
			return
		}
		p := h.newPage(r, w, "Edit Category", "categories")
		p.Flash = flash
		cats, _ := h.cas.GetAllCategories(r.Context(), currentToken(r))
		p.Data = categoryFormData{
			Editing: true,
			Id:      id,
			Form:    form,
			Parents: entities.ParentOptions(cats, id),
		}
		h.render(w, "category_form.html", p)
		return
	}

	setFlash(w, entities.Flash{Kind: "success", Message: "Category updated successfully"})
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

// CategoryConfirmDelete is the explicit confirmation step; nothing is
// deleted until the confirm form posts back.
func (h *Handler) CategoryConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cat, err := h.cas.GetCategoryById(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch category")
		if handled {
			return
		}
		setFlash(w, *flash)
		http.Redirect(w, r, "/categories", http.StatusSeeOther)
		return
	}
	p := h.newPage(r, w, "Delete Category", "categories")
	p.Data = categoryConfirmData{Category: cat}
	h.render(w, "category_confirm.html", p)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.cas.DeleteCategory(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to delete category")
		if handled {
			return
		}
		setFlash(w, *flash)
	} else {
		setFlash(w, entities.Flash{Kind: "success", Message: "Category deleted successfully"})
	}
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}
