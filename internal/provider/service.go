package provider

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore uploads a gallery image and returns its public URL.
type ImageStore interface {
	UploadFile(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

type Service struct {
	repo   Repository
	images ImageStore
}

func NewService(repo Repository, images ImageStore) *Service {
	return &Service{
		repo:   repo,
		images: images,
	}
}

// --------------------------------------------------
// List approved providers
// --------------------------------------------------
// A failed read degrades to an empty list; the search page renders its
// "no providers found" state instead of an error.
func (s *Service) ListApprovedProviders(ctx context.Context) []*Provider {
	providers, err := s.repo.ListApproved(ctx)
	if err != nil {
		log.Println("Error fetching providers:", err)
		return []*Provider{}
	}
	return providers
}

// --------------------------------------------------
// Get one provider (detail view)
// --------------------------------------------------
func (s *Service) GetProvider(ctx context.Context, id string) (*Provider, error) {
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// Facet values
// --------------------------------------------------
func (s *Service) Areas(ctx context.Context) []string {
	areas, err := s.repo.DistinctAreas(ctx)
	if err != nil {
		log.Println("Error fetching areas:", err)
		return []string{}
	}
	return areas
}

func (s *Service) Cuisines(ctx context.Context) []string {
	cuisines, err := s.repo.DistinctCuisines(ctx)
	if err != nil {
		log.Println("Error fetching cuisines:", err)
		return []string{}
	}
	return cuisines
}

// --------------------------------------------------
// Register a new provider
// --------------------------------------------------
func (s *Service) Register(ctx context.Context, reg *Registration) (string, error) {
	if reg.Name == "" || reg.Email == "" || reg.Phone == "" {
		return "", errors.New("missing required fields")
	}
	if len(reg.Areas) == 0 {
		return "", errors.New("at least one area is required")
	}
	if reg.FoodType != FoodTypeVeg && reg.FoodType != FoodTypeNonVeg && reg.FoodType != FoodTypeBoth {
		return "", errors.New("invalid food type")
	}

	return s.repo.Register(ctx, reg)
}

// --------------------------------------------------
// Add a testimonial (always unverified)
// --------------------------------------------------
func (s *Service) AddTestimonial(
	ctx context.Context,
	providerID string,
	customerName string,
	rating int,
	comment string,
) error {
	if customerName == "" || comment == "" {
		return errors.New("missing required fields")
	}
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	if _, err := s.repo.GetByID(ctx, providerID); err != nil {
		return err
	}

	return s.repo.AddTestimonial(ctx, providerID, &Testimonial{
		CustomerName: customerName,
		Rating:       rating,
		Comment:      comment,
		IsVerified:   false,
	})
}

// --------------------------------------------------
// Upload gallery images
// --------------------------------------------------
func (s *Service) UploadGalleryImages(
	ctx context.Context,
	providerID string,
	files []*multipart.FileHeader,
) ([]string, error) {
	if s.images == nil {
		return nil, errors.New("image storage not configured")
	}
	if len(files) == 0 {
		return nil, errors.New("images are required")
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		key := fmt.Sprintf(
			"providers/%s/gallery/%s%s",
			providerID,
			uuid.NewString(),
			filepath.Ext(file.Filename),
		)
		url, err := s.images.UploadFile(ctx, key, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	if err := s.repo.SaveGalleryImages(ctx, providerID, urls); err != nil {
		return nil, err
	}

	return urls, nil
}
