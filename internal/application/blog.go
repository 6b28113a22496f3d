package application

import (
	"errors"

	"github.com/civichub/community-go/internal/domain/blog"
	"github.com/civichub/community-go/internal/repository"
)

var ErrPostNotFound = errors.New("blog post not found")

type BlogService struct {
	Repos *repository.Repos
}

func NewBlogService(repos *repository.Repos) *BlogService {
	return &BlogService{Repos: repos}
}

func (s *BlogService) List(filter blog.ListFilter) ([]blog.Post, error) {
	return s.Repos.Blog.List(filter)
}

func (s *BlogService) FindByID(id uint) (blog.Post, error) {
	p, err := s.Repos.Blog.GetByID(id)
	if err != nil {
		return blog.Post{}, ErrPostNotFound
	}
	return p, nil
}

func (s *BlogService) Create(input blog.CreatePostInput) (blog.Post, error) {
	p := blog.Post{
		Title:    input.Title,
		Author:   input.Author,
		Content:  input.Content,
		CoverKey: input.CoverKey,
	}
	p.Tags = append(p.Tags, input.Tags...)
	return p, s.Repos.Blog.Create(&p)
}

func (s *BlogService) Update(id uint, input blog.UpdatePostInput) (blog.Post, error) {
	p, err := s.FindByID(id)
	if err != nil {
		return blog.Post{}, err
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Author != nil {
		p.Author = *input.Author
	}
	if input.Content != nil {
		p.Content = *input.Content
	}
	if input.CoverKey != nil {
		p.CoverKey = *input.CoverKey
	}
	if input.Tags != nil {
		p.Tags = nil
		p.Tags = append(p.Tags, (*input.Tags)...)
	}
	if input.Published != nil {
		p.Published = *input.Published
	}

	if err := s.Repos.Blog.Save(&p); err != nil {
		return blog.Post{}, err
	}
	return p, nil
}

func (s *BlogService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.Repos.Blog.Delete(id)
}
