package services

import (
	"context"
	"log"
	"vrukshaAdmin/api"
	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"
)

type ProductService struct {
	ac *api.Client
}

func NewProductService(client *api.Client) ProductService {
	return ProductService{ac: client}
}

func (ps *ProductService) GetAllProducts(ctx context.Context, token string) (prods []models.Product, err error) {
	err = ps.ac.GetJSON(ctx, token, "/products", &prods)
	if err != nil {
		return
	}
	for i := range prods {
		if err = prods[i].Validate(); err != nil {
			log.Printf("GetAllProducts: %v", err)
			return nil, err
		}
	}
	return
}

func (ps *ProductService) GetProductById(ctx context.Context, token, id string) (prod models.Product, err error) {
	err = ps.ac.GetJSON(ctx, token, "/products/"+id, &prod)
	if err != nil {
		return
	}
	err = prod.Validate()
	return
}

func (ps *ProductService) GetProductsByCategory(ctx context.Context, token, categoryId string) (prods []models.Product, err error) {
	err = ps.ac.GetJSON(ctx, token, "/products/category/"+categoryId, &prods)
	return
}

// CreateProduct encodes the product upload contract: name, description and
// category as string parts, the variation list as a single JSON-text part
// (with price/pcs already coerced to numbers), and one `images` file part
// per image.
func (ps *ProductService) CreateProduct(ctx context.Context, token string, form entities.ProductForm, images []entities.Upload) (prod models.Product, err error) {
	variations, err := form.Coerce()
	if err != nil {
		log.Printf("CreateProduct: %v", err)
		err = models.ErrNotAllowed
		return
	}
	if form.Name == "" || form.Category == "" {
		log.Printf("CreateProduct: invalid product data")
		err = models.ErrNotAllowed
		return
	}
	body := productForm(form, variations, images)
	err = ps.ac.PostMultipart(ctx, token, "/products", body, &prod)
	return
}

func (ps *ProductService) UpdateProductById(ctx context.Context, token, id string, form entities.ProductForm, images []entities.Upload) (prod models.Product, err error) {
	variations, err := form.Coerce()
	if err != nil {
		log.Printf("UpdateProductById: %v", err)
		err = models.ErrNotAllowed
		return
	}
	if id == "" || form.Name == "" {
		log.Printf("UpdateProductById: invalid product data")
		err = models.ErrNotAllowed
		return
	}
	body := productForm(form, variations, images)
	err = ps.ac.PutMultipart(ctx, token, "/products/"+id, body, &prod)
	return
}

func (ps *ProductService) DeleteProduct(ctx context.Context, token, id string) (err error) {
	if id == "" {
		err = models.ErrNotAllowed
		return
	}
	err = ps.ac.Delete(ctx, token, "/products/"+id)
	return
}

func productForm(form entities.ProductForm, variations []models.Variation, images []entities.Upload) *api.Form {
	body := &api.Form{}
	body.AddField("name", form.Name)
	body.AddField("description", form.Description)
	body.AddField("category", form.Category)
	body.AddJSONField("variation", variations)
	for _, img := range images {
		body.AddFile("images", img.Filename, img.Content)
	}
	return body
}
