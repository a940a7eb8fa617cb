package handlers

import (
	"net/http"

	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"

	"github.com/gorilla/mux"
)

type productsPageData struct {
	Products []models.Product
}

type productFormData struct {
	Editing    bool
	Id         string
	Form       entities.ProductForm
	Categories []models.Category
}

type productConfirmData struct {
	Product models.Product
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Products", "products")
	prods, err := h.ps.GetAllProducts(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch products")
		if handled {
			return
		}
		p.Flash = flash
		prods = nil
	}
	p.Data = productsPageData{Products: prods}
	h.render(w, "products.html", p)
}

func (h *Handler) ProductNew(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r, w, "Add Product", "products")
	cats, err := h.cas.GetAllCategories(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch categories")
		if handled {
			return
		}
		p.Flash = flash
	}
	form := entities.ProductForm{Variations: []entities.VariationRow{{}, {}, {}}}
	p.Data = productFormData{Form: form, Categories: cats}
	h.render(w, "product_form.html", p)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	form := productFormFromRequest(r)
	images, err := readUploads(r, "images")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	_, err = h.ps.CreateProduct(r.Context(), currentToken(r), form, images)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Operation failed")
		if handled {
			return
		}
		p := h.newPage(r, w, "Add Product", "products")
		p.Flash = flash
		cats, _ := h.cas.GetAllCategories(r.Context(), currentToken(r))
		p.Data = productFormData{Form: form, Categories: cats}
		h.render(w, "product_form.html", p)
		return
	}

	setFlash(w, entities.Flash{Kind: "success", Message: "Product created successfully"})
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) ProductEdit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	prod, err := h.ps.GetProductById(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch product")
		if handled {
			return
		}
		setFlash(w, *flash)
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	p := h.newPage(r, w, "Edit Product", "products")
	cats, err := h.cas.GetAllCategories(r.Context(), currentToken(r))
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch categories")
		if handled {
			return
		}
		p.Flash = flash
	}
	form := entities.ProductFormFromEntity(prod)
	form.Variations = append(form.Variations, entities.VariationRow{})
	p.Data = productFormData{Editing: true, Id: prod.Id, Form: form, Categories: cats}
	h.render(w, "product_form.html", p)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !parseMultipart(w, r) {
		return
	}
	form := productFormFromRequest(r)
	images, err := readUploads(r, "images")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	_, err = h.ps.UpdateProductById(r.Context(), currentToken(r), id, form, images)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Operation failed")
		if handled {
			return
		}
		p := h.newPage(r, w, "Edit Product", "products")
		p.Flash = flash
		cats, _ := h.cas.GetAllCategories(r.Context(), currentToken(r))
		p.Data = productFormData{Editing: true, Id: id, Form: form, Categories: cats}
		h.render(w, "product_form.html", p)
		return
	}

	setFlash(w, entities.Flash{Kind: "success", Message: "Product updated successfully"})
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) ProductConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	prod, err := h.ps.GetProductById(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to fetch product")
		if handled {
			return
		}
		setFlash(w, *flash)
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	p := h.newPage(r, w, "Delete Product", "products")
	p.Data = productConfirmData{Product: prod}
	h.render(w, "product_confirm.html", p)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.ps.DeleteProduct(r.Context(), currentToken(r), id)
	if err != nil {
		flash, handled := h.handleAPIError(w, r, err, "Failed to delete product")
		if handled {
			return
		}
		setFlash(w, *flash)
	} else {
		setFlash(w, entities.Flash{Kind: "success", Message: "Product deleted successfully"})
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func productFormFromRequest(r *http.Request) entities.ProductForm {
	return entities.ProductForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Category:    r.PostFormValue("category"),
		Variations:  variationRows(r),
	}
}
