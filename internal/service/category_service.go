package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/infra"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/repository"
)

type CategoryService interface {
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Create(ctx context.Context, req dto.CategoryRequest) (*dto.CategoryResponse, error)
	// Update ignores req.Slug: a slug is fixed once the category exists.
	Update(ctx context.Context, id string, req dto.CategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	cache      *infra.CatalogCache
}

func NewCategoryService(categories repository.CategoryRepository, products repository.ProductRepository, cache *infra.CatalogCache) CategoryService {
	return &categoryService{categories: categories, products: products, cache: cache}
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	var cached []dto.CategoryResponse
	hit, gen := s.cache.Get(ctx, infra.CatalogKeyCategories, &cached)
	if hit {
		return cached, nil
	}
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	resp := toCategoryResponses(list)
	s.cache.Set(ctx, infra.CatalogKeyCategories, gen, resp)
	return resp, nil
}

func (s *categoryService) Create(ctx context.Context, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	normalizeCategory(&req)
	if !model.SlugPattern.MatchString(req.Slug) {
		return nil, ErrInvalidSlug
	}
	if fields := dto.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if _, err := s.categories.FindBySlug(ctx, req.Slug); err == nil {
		return nil, ErrDuplicateSlug
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeErr("find category by slug", err)
	}

	c := &model.Category{Slug: req.Slug, Name: req.Name, Description: req.Description, Emoji: req.Emoji}
	if err := s.categories.Create(ctx, c); err != nil {
		// Lost a race with a concurrent create of the same slug.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateSlug
		}
		return nil, storeErr("create category", err)
	}
	s.cache.Invalidate(ctx)

	log.Info().Str("slug", c.Slug).Msg("category created")
	resp := toCategoryResponse(*c)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	normalizeCategory(&req)
	req.Slug = ""
	if fields := dto.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	err := s.categories.Update(ctx, &model.Category{ID: id, Name: req.Name, Description: req.Description, Emoji: req.Emoji})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("update category", err)
	}
	s.cache.Invalidate(ctx)

	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("reload category", err)
	}
	resp := toCategoryResponse(*c)
	return &resp, nil
}

// Delete refuses while any product references the category. The count and the
// delete are two separate store calls, so a product saved in between can end
// up pointing at a deleted slug; readers then show the placeholder category.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	c, err := s.categories.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return storeErr("find category", err)
	}

	n, err := s.products.CountByCategory(ctx, c.Slug)
	if err != nil {
		return storeErr("count products by category", err)
	}
	if n > 0 {
		return &CategoryInUseError{Count: n}
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeErr("delete category", err)
	}
	s.cache.Invalidate(ctx)

	log.Info().Str("slug", c.Slug).Msg("category deleted")
	return nil
}

func normalizeCategory(req *dto.CategoryRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Emoji != nil {
		e := strings.TrimSpace(*req.Emoji)
		if e == "" {
			req.Emoji = nil
		} else {
			req.Emoji = &e
		}
	}
}

func toCategoryResponse(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		InternalID:  c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Emoji:       c.DisplayEmoji(),
	}
}

func toCategoryResponses(list []model.Category) []dto.CategoryResponse {
	resp := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, toCategoryResponse(c))
	}
	return resp
}
