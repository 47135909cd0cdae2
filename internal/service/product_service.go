package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/infra"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/repository"
)

// UnknownCategoryName is shown for products whose slug matches no category.
const UnknownCategoryName = "Categoría desconocida"

type ProductService interface {
	// Catalog returns every category and every product, each product joined
	// with its category's display metadata.
	Catalog(ctx context.Context) (*dto.CatalogResponse, error)
	// ReplaceAll validates the full set first and writes nothing on failure.
	ReplaceAll(ctx context.Context, req dto.ReplaceProductsRequest) error
	// GetCategoryInfo never fails; unknown slugs and store errors yield the placeholder.
	GetCategoryInfo(ctx context.Context, slug string) dto.CategoryInfo
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      *infra.CatalogCache
	now        func() time.Time
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository, cache *infra.CatalogCache) ProductService {
	return &productService{products: products, categories: categories, cache: cache, now: time.Now}
}

func (s *productService) Catalog(ctx context.Context) (*dto.CatalogResponse, error) {
	var cached dto.CatalogResponse
	hit, gen := s.cache.Get(ctx, infra.CatalogKeyProducts, &cached)
	if hit {
		return &cached, nil
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, storeErr("list products", err)
	}

	index := indexBySlug(cats)
	resp := &dto.CatalogResponse{
		Categories: toCategoryResponses(cats),
		Products:   make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductResponse(p, categoryInfo(index, p.Category)))
	}
	s.cache.Set(ctx, infra.CatalogKeyProducts, gen, resp)
	return resp, nil
}

func (s *productService) GetCategoryInfo(ctx context.Context, slug string) dto.CategoryInfo {
	c, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Warn().Err(err).Str("slug", slug).Msg("category lookup failed, using placeholder")
		}
		return placeholderInfo(slug)
	}
	return categoryInfo(map[string]model.Category{c.Slug: *c}, slug)
}

func (s *productService) ReplaceAll(ctx context.Context, req dto.ReplaceProductsRequest) error {
	for i := range req.Products {
		normalizeProduct(&req.Products[i])
	}
	for i := range req.Categories {
		normalizeCategory(&req.Categories[i])
	}

	fields := dto.Validate(req)
	if fields == nil {
		fields = map[string]string{}
	}
	validateCategorySet(req.Categories, fields)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	ids := newProductIDs(s.now(), req.Products)
	products := make([]model.Product, 0, len(req.Products))
	for _, p := range req.Products {
		id := p.ID
		if id == 0 {
			id = ids.next()
		}
		products = append(products, model.Product{
			ID:                  id,
			Name:                p.Name,
			Images:              p.Images,
			Description:         p.Description,
			DetailedDescription: p.DetailedDescription,
			Features:            p.Features,
			Category:            p.Category,
		})
	}

	var categories []model.Category
	for _, c := range req.Categories {
		categories = append(categories, model.Category{Slug: c.Slug, Name: c.Name, Description: c.Description, Emoji: c.Emoji})
	}

	if err := s.products.ReplaceAll(ctx, products, categories); err != nil {
		return storeErr("replace products", err)
	}
	s.cache.Invalidate(ctx)

	log.Info().Int("products", len(products)).Int("categories", len(categories)).Msg("catalog replaced")
	return nil
}

// validateCategorySet adds the rules a replacement category set needs on top
// of the struct tags: every slug present, well formed and unique in the set.
func validateCategorySet(cats []dto.CategoryRequest, fields map[string]string) {
	seen := make(map[string]bool, len(cats))
	for i, c := range cats {
		key := "categories[" + strconv.Itoa(i) + "].id"
		switch {
		case c.Slug == "":
			fields[key] = "es obligatorio"
		case !model.SlugPattern.MatchString(c.Slug):
			fields[key] = ErrInvalidSlug.Error()
		case seen[c.Slug]:
			fields[key] = ErrDuplicateSlug.Error()
		}
		seen[c.Slug] = true
	}
}

func normalizeProduct(p *dto.ProductPayload) {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.DetailedDescription = strings.TrimSpace(p.DetailedDescription)
	p.Category = strings.TrimSpace(p.Category)
	for i := range p.Images {
		p.Images[i] = strings.TrimSpace(p.Images[i])
	}
	// The admin form submits an empty row per unused feature input.
	features := make([]string, 0, len(p.Features))
	for _, f := range p.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	p.Features = features
}

// productIDs hands out millisecond timestamps for new products, skipping any
// value already used in the same batch.
type productIDs struct {
	last  int64
	taken map[int64]bool
}

func newProductIDs(now time.Time, payload []dto.ProductPayload) *productIDs {
	taken := make(map[int64]bool, len(payload))
	for _, p := range payload {
		if p.ID != 0 {
			taken[p.ID] = true
		}
	}
	return &productIDs{last: now.UnixMilli() - 1, taken: taken}
}

func (g *productIDs) next() int64 {
	g.last++
	for g.taken[g.last] {
		g.last++
	}
	g.taken[g.last] = true
	return g.last
}

func indexBySlug(cats []model.Category) map[string]model.Category {
	index := make(map[string]model.Category, len(cats))
	for _, c := range cats {
		index[c.Slug] = c
	}
	return index
}

func categoryInfo(index map[string]model.Category, slug string) dto.CategoryInfo {
	c, ok := index[slug]
	if !ok {
		return placeholderInfo(slug)
	}
	return dto.CategoryInfo{Slug: slug, Name: c.Name, Emoji: c.DisplayEmoji(), Known: true}
}

func placeholderInfo(slug string) dto.CategoryInfo {
	return dto.CategoryInfo{Slug: slug, Name: UnknownCategoryName, Emoji: model.DefaultEmojiFallback}
}

func toProductResponse(p model.Product, info dto.CategoryInfo) dto.ProductResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return dto.ProductResponse{
		InternalID:          p.InternalID,
		ID:                  p.ID,
		Name:                p.Name,
		Images:              p.Images,
		Description:         p.Description,
		DetailedDescription: p.DetailedDescription,
		Features:            features,
		Category:            p.Category,
		CategoryInfo:        info,
	}
}
