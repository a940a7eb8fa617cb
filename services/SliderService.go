package services

import (
	"context"
	"log"
	"vrukshaAdmin/api"
	"vrukshaAdmin/entities"
	"vrukshaAdmin/models"
)

type SliderService struct {
	ac *api.Client
}

func NewSliderService(client *api.Client) SliderService {
	return SliderService{ac: client}
}

func (ss *SliderService) GetAllSliders(ctx context.Context, token string) (sliders []models.Slider, err error) {
	err = ss.ac.GetJSON(ctx, token, "/sliders", &sliders)
	if err != nil {
		return
	}
	for i := range sliders {
		if err = sliders[i].Validate(); err != nil {
			log.Printf("GetAllSliders: %v", err)
			return nil, err
		}
	}
	return
}

func (ss *SliderService) GetSliderById(ctx context.Context, token, id string) (slider models.Slider, err error) {
	err = ss.ac.GetJSON(ctx, token, "/sliders/"+id, &slider)
	if err != nil {
		return
	}
	err = slider.Validate()
	return
}

func (ss *SliderService) CreateSlider(ctx context.Context, token string, image entities.Upload) (slider models.Slider, err error) {
	if len(image.Content) == 0 {
		log.Printf("CreateSlider: image can not be empty")
		err = models.ErrNotAllowed
		return
	}
	body := &api.Form{}
	body.AddFile("image", image.Filename, image.Content)
	err = ss.ac.PostMultipart(ctx, token, "/sliders", body, &slider)
	return
}

func (ss *SliderService) DeleteSlider(ctx context.Context, token, id string) (err error) {
	if id == "" {
		err = models.ErrNotAllowed
		return
	}
	err = ss.ac.Delete(ctx, token, "/sliders/"+id)
	return
}
