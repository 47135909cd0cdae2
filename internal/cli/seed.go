package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/config"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/infra"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/service"
)

// SeedFile is the YAML layout accepted by "caloctl seed --file".
type SeedFile struct {
	Categories []SeedCategory `yaml:"categories"`
	Products   []SeedProduct  `yaml:"products"`
}

type SeedCategory struct {
	Slug        string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Emoji       *string `yaml:"emoji,omitempty"`
}

type SeedProduct struct {
	ID                  int64    `yaml:"id"`
	Name                string   `yaml:"name"`
	Images              []string `yaml:"images"`
	Description         string   `yaml:"description"`
	DetailedDescription string   `yaml:"detailedDescription"`
	Features            []string `yaml:"features"`
	Category            string   `yaml:"category"`
}

// Request converts the file into the same payload the admin UI sends, so the
// seed goes through the same validation.
func (f SeedFile) Request() dto.ReplaceProductsRequest {
	req := dto.ReplaceProductsRequest{
		Products:   make([]dto.ProductPayload, 0, len(f.Products)),
		Categories: make([]dto.CategoryRequest, 0, len(f.Categories)),
	}
	for _, c := range f.Categories {
		req.Categories = append(req.Categories, dto.CategoryRequest{Slug: c.Slug, Name: c.Name, Description: c.Description, Emoji: c.Emoji})
	}
	for _, p := range f.Products {
		req.Products = append(req.Products, dto.ProductPayload{
			ID:                  p.ID,
			Name:                p.Name,
			Images:              p.Images,
			Description:         p.Description,
			DetailedDescription: p.DetailedDescription,
			Features:            p.Features,
			Category:            p.Category,
		})
	}
	return req
}

// LoadSeedFile reads a YAML seed file.
func LoadSeedFile(path string) (*SeedFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f SeedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// NewSeedCommand creates the seed command. It replaces the whole catalog in
// the configured store with the built-in starter catalog or a YAML file.
func NewSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reemplaza el catálogo con los datos iniciales o un archivo YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := DefaultSeed()
			if file != "" {
				f, err := LoadSeedFile(file)
				if err != nil {
					return err
				}
				seed = *f
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			store, err := infra.OpenStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close(context.Background())

			// Drop cached public payloads so the site shows the seed at once.
			var cache *infra.CatalogCache
			if cfg.RedisURL != "" {
				if rdb, err := infra.NewRedis(cfg.RedisURL); err == nil {
					defer rdb.Close()
					cache = infra.NewCatalogCache(rdb, cfg.CatalogCacheTTL)
				}
			}

			svc := service.NewProductService(store.Products, store.Categories, cache)
			if err := svc.ReplaceAll(ctx, seed.Request()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ %d categorías y %d productos cargados (%s)\n", len(seed.Categories), len(seed.Products), store.Driver)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "archivo YAML con categories y products")
	return cmd
}
