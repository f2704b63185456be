package provider

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	providers    []*Provider
	listErr      error
	registerErr  error
	registered   []*Registration
	testimonials map[string][]*Testimonial
	gallery      map[string][]string
	nextID       int
}

func NewMockRepository(providers ...*Provider) *MockRepository {
	return &MockRepository{
		providers:    providers,
		testimonials: make(map[string][]*Testimonial),
		gallery:      make(map[string][]string),
		nextID:       1,
	}
}

func (m *MockRepository) ListApproved(ctx context.Context) ([]*Provider, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.providers, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Provider, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	for _, p := range m.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockRepository) DistinctAreas(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	areas := []string{}
	for _, p := range m.providers {
		for _, a := range p.Areas {
			if !seen[a] {
				seen[a] = true
				areas = append(areas, a)
			}
		}
	}
	return areas, nil
}

func (m *MockRepository) DistinctCuisines(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	cuisines := []string{}
	for _, p := range m.providers {
		for _, c := range p.Cuisines {
			if !seen[c] {
				seen[c] = true
				cuisines = append(cuisines, c)
			}
		}
	}
	return cuisines, nil
}

func (m *MockRepository) Register(ctx context.Context, reg *Registration) (string, error) {
	if m.registerErr != nil {
		return "", m.registerErr
	}
	m.registered = append(m.registered, reg)
	id := strconv.Itoa(m.nextID)
	m.nextID++
	return id, nil
}

func (m *MockRepository) AddTestimonial(ctx context.Context, providerID string, t *Testimonial) error {
	m.testimonials[providerID] = append(m.testimonials[providerID], t)
	return nil
}

func (m *MockRepository) SaveGalleryImages(ctx context.Context, providerID string, urls []string) error {
	m.gallery[providerID] = append(m.gallery[providerID], urls...)
	return nil
}

func approvedProvider(id string) *Provider {
	return &Provider{
		ID:       id,
		Name:     "Test Kitchen " + id,
		Status:   StatusApproved,
		FoodType: FoodTypeVeg,
		Areas:    []string{"Koramangala"},
		Cuisines: []string{"South Indian"},
	}
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestListApprovedProviders_Success(t *testing.T) {
	mockRepo := NewMockRepository(approvedProvider("1"), approvedProvider("2"))
	service := NewService(mockRepo, nil)

	providers := service.ListApprovedProviders(context.Background())
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
}

func TestListApprovedProviders_DegradesToEmpty(t *testing.T) {
	mockRepo := NewMockRepository()
	mockRepo.listErr = errors.New("connection refused")
	service := NewService(mockRepo, nil)

	providers := service.ListApprovedProviders(context.Background())
	if providers == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(providers) != 0 {
		t.Errorf("expected empty list, got %d", len(providers))
	}
}

func TestGetProvider_NotFound(t *testing.T) {
	mockRepo := NewMockRepository(approvedProvider("1"))
	service := NewService(mockRepo, nil)

	_, err := service.GetProvider(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegister_Success(t *testing.T) {
	mockRepo := NewMockRepository()
	service := NewService(mockRepo, nil)

	id, err := service.Register(context.Background(), &Registration{
		Name:     "Lakshmi Devi",
		Email:    "lakshmi@example.com",
		Phone:    "+919876543210",
		FoodType: FoodTypeVeg,
		Areas:    []string{"Koramangala"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id == "" {
		t.Error("expected provider id to be set")
	}
	if len(mockRepo.registered) != 1 {
		t.Errorf("expected 1 registration, got %d", len(mockRepo.registered))
	}
}

func TestRegister_MissingFields(t *testing.T) {
	mockRepo := NewMockRepository()
	service := NewService(mockRepo, nil)

	_, err := service.Register(context.Background(), &Registration{
		Name: "Lakshmi Devi",
	})
	if err == nil {
		t.Fatal("expected error for missing fields")
	}
}

func TestRegister_NoAreas(t *testing.T) {
	mockRepo := NewMockRepository()
	service := NewService(mockRepo, nil)

	_, err := service.Register(context.Background(), &Registration{
		Name:     "Lakshmi Devi",
		Email:    "lakshmi@example.com",
		Phone:    "+919876543210",
		FoodType: FoodTypeVeg,
	})
	if err == nil {
		t.Fatal("expected error for missing areas")
	}
}

func TestRegister_InvalidFoodType(t *testing.T) {
	mockRepo := NewMockRepository()
	service := NewService(mockRepo, nil)

	_, err := service.Register(context.Background(), &Registration{
		Name:     "Lakshmi Devi",
		Email:    "lakshmi@example.com",
		Phone:    "+919876543210",
		FoodType: "vegan",
		Areas:    []string{"Koramangala"},
	})
	if err == nil {
		t.Fatal("expected error for invalid food type")
	}
}

func TestAddTestimonial_Success(t *testing.T) {
	mockRepo := NewMockRepository(approvedProvider("1"))
	service := NewService(mockRepo, nil)

	err := service.AddTestimonial(context.Background(), "1", "Priya", 5, "Tastes like home!")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	saved := mockRepo.testimonials["1"]
	if len(saved) != 1 {
		t.Fatalf("expected 1 testimonial, got %d", len(saved))
	}
	if saved[0].IsVerified {
		t.Error("new testimonials must start unverified")
	}
}

func TestAddTestimonial_RatingBounds(t *testing.T) {
	mockRepo := NewMockRepository(approvedProvider("1"))
	service := NewService(mockRepo, nil)

	for _, rating := range []int{0, 6, -1} {
		err := service.AddTestimonial(context.Background(), "1", "Priya", rating, "Nice")
		if err == nil {
			t.Errorf("expected error for rating %d", rating)
		}
	}
}

func TestAddTestimonial_UnknownProvider(t *testing.T) {
	mockRepo := NewMockRepository()
	service := NewService(mockRepo, nil)

	err := service.AddTestimonial(context.Background(), "ghost", "Priya", 4, "Nice")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUploadGalleryImages_NoStore(t *testing.T) {
	mockRepo := NewMockRepository(approvedProvider("1"))
	service := NewService(mockRepo, nil)

	_, err := service.UploadGalleryImages(context.Background(), "1", nil)
	if err == nil {
		t.Fatal("expected error when image storage is not configured")
	}
}
