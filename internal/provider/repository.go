package provider

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("provider not found")

type Repository interface {
	// reads
	ListApproved(ctx context.Context) ([]*Provider, error)
	GetByID(ctx context.Context, id string) (*Provider, error)
	DistinctAreas(ctx context.Context) ([]string, error)
	DistinctCuisines(ctx context.Context) ([]string, error)

	// writes
	Register(ctx context.Context, reg *Registration) (string, error)
	AddTestimonial(ctx context.Context, providerID string, t *Testimonial) error
	SaveGalleryImages(ctx context.Context, providerID string, urls []string) error
}
