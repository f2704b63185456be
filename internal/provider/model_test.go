package provider

import "testing"

func TestPriceRange(t *testing.T) {
	p := &Provider{
		TiffinItems: []TiffinItem{
			{Name: "Mini", Price: 90},
			{Name: "Full", Price: 150},
			{Name: "Special", Price: 220},
		},
	}

	min, ok := p.MinPrice()
	if !ok || min != 90 {
		t.Errorf("expected min 90, got %v (ok=%v)", min, ok)
	}

	max, ok := p.MaxPrice()
	if !ok || max != 220 {
		t.Errorf("expected max 220, got %v (ok=%v)", max, ok)
	}
}

func TestPriceRange_NoItems(t *testing.T) {
	p := &Provider{}

	if _, ok := p.MinPrice(); ok {
		t.Error("expected no min price for empty items")
	}
	if _, ok := p.MaxPrice(); ok {
		t.Error("expected no max price for empty items")
	}
}

func TestPrimaryImage(t *testing.T) {
	p := &Provider{
		Gallery: []GalleryImage{
			{ImageURL: "https://cdn.example.com/one.jpg"},
			{ImageURL: "https://cdn.example.com/two.jpg", IsPrimary: true},
		},
	}
	if got := p.PrimaryImage(); got != "https://cdn.example.com/two.jpg" {
		t.Errorf("expected the primary entry, got %s", got)
	}
}

func TestPrimaryImage_FallsBackToFirst(t *testing.T) {
	p := &Provider{
		Gallery: []GalleryImage{
			{ImageURL: "https://cdn.example.com/one.jpg"},
			{ImageURL: "https://cdn.example.com/two.jpg"},
		},
	}
	if got := p.PrimaryImage(); got != "https://cdn.example.com/one.jpg" {
		t.Errorf("expected the first entry, got %s", got)
	}
}

func TestPrimaryImage_Placeholder(t *testing.T) {
	p := &Provider{}
	if got := p.PrimaryImage(); got != PlaceholderImageURL {
		t.Errorf("expected placeholder, got %s", got)
	}
}
