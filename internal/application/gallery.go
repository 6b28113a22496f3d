package application

import (
	"errors"

	"github.com/civichub/community-go/internal/domain/gallery"
	"github.com/civichub/community-go/internal/repository"
)

var ErrEventNotFound = errors.New("gallery event not found")

type GalleryService struct {
	Repos *repository.Repos
}

func NewGalleryService(repos *repository.Repos) *GalleryService {
	return &GalleryService{Repos: repos}
}

func (s *GalleryService) List() ([]gallery.Event, error) {
	return s.Repos.Gallery.List()
}

func (s *GalleryService) FindByID(id uint) (gallery.Event, error) {
	e, err := s.Repos.Gallery.GetByID(id)
	if err != nil {
		return gallery.Event{}, ErrEventNotFound
	}
	return e, nil
}

func (s *GalleryService) Create(input gallery.CreateEventInput) (gallery.Event, error) {
	e := gallery.Event{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
	}
	e.ImageKeys = append(e.ImageKeys, input.ImageKeys...)
	return e, s.Repos.Gallery.Create(&e)
}

func (s *GalleryService) Update(id uint, input gallery.UpdateEventInput) (gallery.Event, error) {
	e, err := s.FindByID(id)
	if err != nil {
		return gallery.Event{}, err
	}

	if input.Title != nil {
		e.Title = *input.Title
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.EventDate != nil {
		e.EventDate = input.EventDate
	}
	if input.ImageKeys != nil {
		e.ImageKeys = nil
		e.ImageKeys = append(e.ImageKeys, (*input.ImageKeys)...)
	}

	if err := s.Repos.Gallery.Save(&e); err != nil {
		return gallery.Event{}, err
	}
	return e, nil
}

func (s *GalleryService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.Repos.Gallery.Delete(id)
}
