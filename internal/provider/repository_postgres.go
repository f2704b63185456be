package provider

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List approved providers with all related data
// --------------------------------------------------
func (r *PostgresRepository) ListApproved(ctx context.Context) ([]*Provider, error) {
	query := `
		SELECT
			id,
			name,
			email,
			phone,
			COALESCE(whatsapp, ''),
			COALESCE(address, ''),
			COALESCE(description, ''),
			food_type,
			COALESCE(experience_years, 0),
			COALESCE(specialties, '{}'),
			COALESCE(timing_lunch, ''),
			COALESCE(timing_dinner, ''),
			allow_single_tiffin,
			rating,
			review_count,
			status,
			created_at
		FROM providers
		WHERE status = 'approved'
		ORDER BY rating DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []*Provider
	byID := make(map[string]*Provider)

	for rows.Next() {
		var p Provider
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Email,
			&p.Phone,
			&p.Whatsapp,
			&p.Address,
			&p.Description,
			&p.FoodType,
			&p.ExperienceYears,
			&p.Specialties,
			&p.TimingLunch,
			&p.TimingDinner,
			&p.AllowSingleTiffin,
			&p.Rating,
			&p.ReviewCount,
			&p.Status,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.Areas = []string{}
		p.Cuisines = []string{}
		p.DeliveryTypes = []string{}
		p.TiffinItems = []TiffinItem{}
		p.PricingPlans = []PricingPlan{}
		p.Testimonials = []Testimonial{}
		p.Gallery = []GalleryImage{}
		p.DeliverySlots = []string{}

		providers = append(providers, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(providers) == 0 {
		return []*Provider{}, nil
	}

	ids := make([]string, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
	}

	if err := r.loadStringChildren(ctx, byID, ids,
		`SELECT provider_id, area FROM provider_areas
		 WHERE provider_id = ANY($1::uuid[]) ORDER BY id`,
		func(p *Provider, v string) { p.Areas = append(p.Areas, v) },
	); err != nil {
		return nil, err
	}

	if err := r.loadStringChildren(ctx, byID, ids,
		`SELECT provider_id, cuisine FROM provider_cuisines
		 WHERE provider_id = ANY($1::uuid[]) ORDER BY id`,
		func(p *Provider, v string) { p.Cuisines = append(p.Cuisines, v) },
	); err != nil {
		return nil, err
	}

	if err := r.loadStringChildren(ctx, byID, ids,
		`SELECT provider_id, delivery_type FROM provider_delivery_types
		 WHERE provider_id = ANY($1::uuid[]) ORDER BY id`,
		func(p *Provider, v string) { p.DeliveryTypes = append(p.DeliveryTypes, v) },
	); err != nil {
		return nil, err
	}

	if err := r.loadStringChildren(ctx, byID, ids,
		`SELECT provider_id, slot_time FROM delivery_slots
		 WHERE provider_id = ANY($1::uuid[]) AND is_active ORDER BY sort_order`,
		func(p *Provider, v string) { p.DeliverySlots = append(p.DeliverySlots, v) },
	); err != nil {
		return nil, err
	}

	if err := r.loadTiffinItems(ctx, byID, ids); err != nil {
		return nil, err
	}
	if err := r.loadPricingPlans(ctx, byID, ids); err != nil {
		return nil, err
	}
	if err := r.loadTestimonials(ctx, byID, ids); err != nil {
		return nil, err
	}
	if err := r.loadGallery(ctx, byID, ids); err != nil {
		return nil, err
	}

	return providers, nil
}

// --------------------------------------------------
// Get a single approved provider by ID
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Provider, error) {
	providers, err := r.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// --------------------------------------------------
// Distinct facet values
// --------------------------------------------------
func (r *PostgresRepository) DistinctAreas(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx,
		`SELECT DISTINCT area FROM provider_areas ORDER BY area`)
}

func (r *PostgresRepository) DistinctCuisines(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx,
		`SELECT DISTINCT cuisine FROM provider_cuisines ORDER BY cuisine`)
}

func (r *PostgresRepository) distinctValues(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// --------------------------------------------------
// Register a new provider (single transaction)
// --------------------------------------------------
func (r *PostgresRepository) Register(ctx context.Context, reg *Registration) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	providerID := uuid.NewString()

	_, err = tx.Exec(ctx, `
		INSERT INTO providers (
			id, name, email, phone, whatsapp, address, description,
			food_type, experience_years, specialties,
			timing_lunch, timing_dinner, allow_single_tiffin, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 'pending')
	`,
		providerID,
		reg.Name,
		reg.Email,
		reg.Phone,
		reg.Whatsapp,
		reg.Address,
		reg.Description,
		reg.FoodType,
		reg.ExperienceYears,
		reg.Specialties,
		reg.TimingLunch,
		reg.TimingDinner,
		reg.AllowSingleTiffin,
	)
	if err != nil {
		return "", err
	}

	for _, area := range reg.Areas {
		if _, err := tx.Exec(ctx,
			`INSERT INTO provider_areas (provider_id, area) VALUES ($1, $2)`,
			providerID, area,
		); err != nil {
			return "", err
		}
	}

	for _, cuisine := range reg.Cuisines {
		if _, err := tx.Exec(ctx,
			`INSERT INTO provider_cuisines (provider_id, cuisine) VALUES ($1, $2)`,
			providerID, cuisine,
		); err != nil {
			return "", err
		}
	}

	for _, dt := range reg.DeliveryTypes {
		if _, err := tx.Exec(ctx,
			`INSERT INTO provider_delivery_types (provider_id, delivery_type) VALUES ($1, $2)`,
			providerID, dt,
		); err != nil {
			return "", err
		}
	}

	for i, item := range reg.TiffinItems {
		var itemID int
		err := tx.QueryRow(ctx, `
			INSERT INTO tiffin_items (provider_id, name, price, description, sort_order)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, providerID, item.Name, item.Price, item.Description, i).Scan(&itemID)
		if err != nil {
			return "", err
		}

		for j, content := range item.Contents {
			if _, err := tx.Exec(ctx, `
				INSERT INTO tiffin_item_contents (tiffin_item_id, content_item, sort_order)
				VALUES ($1, $2, $3)
			`, itemID, content, j); err != nil {
				return "", err
			}
		}
	}

	for i, plan := range reg.PricingPlans {
		if _, err := tx.Exec(ctx, `
			INSERT INTO pricing_plans (
				provider_id, plan_type, meals_per_day, price,
				original_price, discount_percentage, description, sort_order
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			providerID,
			plan.PlanType,
			plan.MealsPerDay,
			plan.Price,
			plan.OriginalPrice,
			plan.DiscountPercentage,
			plan.Description,
			i,
		); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	return providerID, nil
}

// --------------------------------------------------
// Add an unverified testimonial
// --------------------------------------------------
func (r *PostgresRepository) AddTestimonial(ctx context.Context, providerID string, t *Testimonial) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO provider_testimonials (provider_id, customer_name, rating, comment, is_verified)
		VALUES ($1, $2, $3, $4, FALSE)
	`, providerID, t.CustomerName, t.Rating, t.Comment)
	return err
}

// --------------------------------------------------
// Save gallery image URLs
// --------------------------------------------------
func (r *PostgresRepository) SaveGalleryImages(ctx context.Context, providerID string, urls []string) error {
	for i, url := range urls {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO provider_gallery (provider_id, image_url, sort_order)
			VALUES ($1, $2, $3)
		`, providerID, url, i); err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------
// Child loaders (merge rows by provider_id)
// --------------------------------------------------
func (r *PostgresRepository) loadStringChildren(
	ctx context.Context,
	byID map[string]*Provider,
	ids []string,
	query string,
	attach func(*Provider, string),
) error {
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var providerID, value string
		if err := rows.Scan(&providerID, &value); err != nil {
			return err
		}
		if p, ok := byID[providerID]; ok {
			attach(p, value)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) loadTiffinItems(
	ctx context.Context,
	byID map[string]*Provider,
	ids []string,
) error {
	rows, err := r.db.Query(ctx, `
		SELECT provider_id, id, name, price, COALESCE(description, ''), is_available, sort_order
		FROM tiffin_items
		WHERE provider_id = ANY($1::uuid[]) AND is_available
		ORDER BY sort_order
	`, ids)
	if err != nil {
		return err
	}

	type itemRow struct {
		providerID string
		item       TiffinItem
	}

	var items []itemRow
	itemIDs := []int{}
	for rows.Next() {
		var row itemRow
		if err := rows.Scan(
			&row.providerID,
			&row.item.ID,
			&row.item.Name,
			&row.item.Price,
			&row.item.Description,
			&row.item.IsAvailable,
			&row.item.SortOrder,
		); err != nil {
			rows.Close()
			return err
		}
		row.item.Contents = []string{}
		items = append(items, row)
		itemIDs = append(itemIDs, row.item.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	contents := make(map[int][]string)
	if len(itemIDs) > 0 {
		crows, err := r.db.Query(ctx, `
			SELECT tiffin_item_id, content_item
			FROM tiffin_item_contents
			WHERE tiffin_item_id = ANY($1::int[])
			ORDER BY sort_order
		`, itemIDs)
		if err != nil {
			return err
		}
		defer crows.Close()

		for crows.Next() {
			var itemID int
			var content string
			if err := crows.Scan(&itemID, &content); err != nil {
				return err
			}
			contents[itemID] = append(contents[itemID], content)
		}
		if err := crows.Err(); err != nil {
			return err
		}
	}

	for _, row := range items {
		if c, ok := contents[row.item.ID]; ok {
			row.item.Contents = c
		}
		if p, ok := byID[row.providerID]; ok {
			p.TiffinItems = append(p.TiffinItems, row.item)
		}
	}
	return nil
}

func (r *PostgresRepository) loadPricingPlans(
	ctx context.Context,
	byID map[string]*Provider,
	ids []string,
) error {
	rows, err := r.db.Query(ctx, `
		SELECT provider_id, id, plan_type, meals_per_day, price,
		       original_price, discount_percentage, COALESCE(description, ''),
		       is_active, sort_order
		FROM pricing_plans
		WHERE provider_id = ANY($1::uuid[]) AND is_active
		ORDER BY sort_order
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var providerID string
		var plan PricingPlan
		if err := rows.Scan(
			&providerID,
			&plan.ID,
			&plan.PlanType,
			&plan.MealsPerDay,
			&plan.Price,
			&plan.OriginalPrice,
			&plan.DiscountPercentage,
			&plan.Description,
			&plan.IsActive,
			&plan.SortOrder,
		); err != nil {
			return err
		}
		if p, ok := byID[providerID]; ok {
			p.PricingPlans = append(p.PricingPlans, plan)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) loadTestimonials(
	ctx context.Context,
	byID map[string]*Provider,
	ids []string,
) error {
	rows, err := r.db.Query(ctx, `
		SELECT provider_id, id, customer_name, rating, comment, is_verified, created_at
		FROM provider_testimonials
		WHERE provider_id = ANY($1::uuid[]) AND is_verified
		ORDER BY created_at DESC
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var providerID string
		var t Testimonial
		if err := rows.Scan(
			&providerID,
			&t.ID,
			&t.CustomerName,
			&t.Rating,
			&t.Comment,
			&t.IsVerified,
			&t.CreatedAt,
		); err != nil {
			return err
		}
		if p, ok := byID[providerID]; ok {
			p.Testimonials = append(p.Testimonials, t)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) loadGallery(
	ctx context.Context,
	byID map[string]*Provider,
	ids []string,
) error {
	rows, err := r.db.Query(ctx, `
		SELECT provider_id, id, image_url, COALESCE(alt_text, ''), is_primary, sort_order
		FROM provider_gallery
		WHERE provider_id = ANY($1::uuid[])
		ORDER BY sort_order
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var providerID string
		var img GalleryImage
		if err := rows.Scan(
			&providerID,
			&img.ID,
			&img.ImageURL,
			&img.AltText,
			&img.IsPrimary,
			&img.SortOrder,
		); err != nil {
			return err
		}
		if p, ok := byID[providerID]; ok {
			p.Gallery = append(p.Gallery, img)
		}
	}
	return rows.Err()
}
