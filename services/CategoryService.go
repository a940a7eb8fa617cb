package services

import (
	"context"
	"log"
	"vrukshaAdmin/api"
	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"
)

type CategoryService struct {
	ac *api.Client
}

func NewCategoryService(client *api.Client) CategoryService {
	return CategoryService{ac: client}
}

func (cs *CategoryService) GetAllCategories(ctx context.Context, token string) (cats []models.Category, err error) {
	err = cs.ac.GetJSON(ctx, token, "/categories", &cats)
	if err != nil {
		return
	}
	for i := range cats {
		if err = cats[i].Validate(); err != nil {
			log.Printf("GetAllCategories: %v", err)
			return nil, err
		}
	}
	return
}

func (cs *CategoryService) GetCategoryById(ctx context.Context, token, id string) (cat models.Category, err error) {
	err = cs.ac.GetJSON(ctx, token, "/categories/"+id, &cat)
	if err != nil {
		return
	}
	err = cat.Validate()
	return
}

// CreateCategory posts the multipart contract the store expects: scalar
// fields as string parts and the icon as a binary part. The icon is
// mandatory on create.
func (cs *CategoryService) CreateCategory(ctx context.Context, token string, form entities.CategoryForm, icon *entities.Upload) (cat models.Category, err error) {
	if form.Name == "" {
		log.Printf("CreateCategory: name can not be empty")
		err = models.ErrNotAllowed
		return
	}
	if icon == nil {
		log.Printf("CreateCategory: icon can not be empty")
		err = models.ErrNotAllowed
		return
	}
	body := &api.Form{}
	body.AddField("name", form.Name)
	body.AddField("parent", form.Parent)
	body.AddFile("icon", icon.Filename, icon.Content)
	err = cs.ac.PostMultipart(ctx, token, "/categories", body, &cat)
	return
}

// UpdateCategory sends the same encoding; the icon part is appended only
// when a replacement file was chosen.
func (cs *CategoryService) UpdateCategory(ctx context.Context, token, id string, form entities.CategoryForm, icon *entities.Upload) (cat models.Category, err error) {
	if id == "" || form.Name == "" {
		log.Printf("UpdateCategory: invalid category data")
		err = models.ErrNotAllowed
		return
	}
	body := &api.Form{}
	body.AddField("name", form.Name)
	body.AddField("parent", form.Parent)
	if icon != nil {
		body.AddFile("icon", icon.Filename, icon.Content)
	}
	err = cs.ac.PutMultipart(ctx, token, "/categories/"+id, body, &cat)
	return
}

func (cs *CategoryService) DeleteCategory(ctx context.Context, token, id string) (err error) {
	if id == "" {
		err = models.ErrNotAllowed
		return
	}
	err = cs.ac.Delete(ctx, token, "/categories/"+id)
	return
}
