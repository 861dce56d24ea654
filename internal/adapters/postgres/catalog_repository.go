package postgres

import (
	"context"
	"errors"
	"fmt"

	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCatalogRepository читает каталог из таблиц migrations/0001_catalog.sql.
// Запись в таблицы выполняется вне сервиса.
type PostgresCatalogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCatalogRepository(pool *pgxpool.Pool) (*PostgresCatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("database pool is nil")
	}
	return &PostgresCatalogRepository{pool: pool}, nil
}

// Load собирает каталог в одной read-only транзакции, чтобы все таблицы читались из одного снимка
func (r *PostgresCatalogRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresCatalogRepository"})

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogRepository: failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var c domain.Catalog
	if err := r.loadSettings(ctx, tx, &c); err != nil {
		return nil, err
	}
	if c.Cities, err = r.loadCities(ctx, tx); err != nil {
		return nil, err
	}
	if c.Properties, err = r.loadProperties(ctx, tx); err != nil {
		return nil, err
	}
	if c.SocialLinks, err = r.loadSocialLinks(ctx, tx); err != nil {
		return nil, err
	}
	if c.HeroSlides, err = r.loadHeroSlides(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Catalog loaded from PostgreSQL", port.Fields{
		"properties": len(c.Properties),
		"cities":     len(c.Cities),
	})
	return domain.NewCatalog(c)
}

func (r *PostgresCatalogRepository) loadSettings(ctx context.Context, tx pgx.Tx, c *domain.Catalog) error {
	query := `SELECT brand, seo_title, seo_description, seo_image,
	                 contact_address, contact_phone, contact_email, contact_whatsapp
	          FROM site_settings WHERE id = 1`

	err := tx.QueryRow(ctx, query).Scan(
		&c.Brand, &c.SEO.Title, &c.SEO.Description, &c.SEO.Image,
		&c.Contact.Address, &c.Contact.Phone, &c.Contact.Email, &c.Contact.WhatsApp,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: site_settings row is missing", domain.ErrInvalidCatalog)
	}
	if err != nil {
		return fmt.Errorf("PostgresCatalogRepository: failed to query site settings: %w", err)
	}
	return nil
}

func (r *PostgresCatalogRepository) loadCities(ctx context.Context, tx pgx.Tx) ([]domain.City, error) {
	rows, err := tx.Query(ctx, `SELECT id, name FROM cities ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogRepository: failed to query cities: %w", err)
	}
	cities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.City, error) {
		var city domain.City
		err := row.Scan(&city.ID, &city.Name)
		return city, err
	})
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogRepository: failed to scan cities: %w", err)
	}
	return cities, nil
}

func (r *PostgresCatalogRepository) loadProperties(ctx context.Context, tx pgx.Tx) ([]domain.Property, error) {
	query := `SELECT id, slug, name, description, images, city_id, category, location,
	                 bedrooms, max_guests, price, featured, highlights, amenities
	          FROM properties ORDER BY position, id`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogRepository: failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("PostgresCatalogRepository: failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresCatalogRepository: error during properties iteration: %w", err)
	}
	return properties, nil
}

// scanProperty - порядок колонок совпадает с SELECT в loadProperties
func scanProperty(row pgx.Row) (domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Description, &p.Images, &p.City, &p.Category, &p.Location,
		&p.Bedrooms, &p.MaxGuests, &p.Price, &p.Featured, &p.Highlights, &p.Amenities,
	)
	if err != nil {
		return domain.Property{}, err
	}
	return p, nil
}

func (r *PostgresCatalogRepository) loadSocialLinks(ctx context.Context, tx pgx.Tx) ([]domain.SocialLink, error) {
	rows, err := tx.Query(ctx, `SELECT network, url FROM social_links ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogRepository: failed to query social links: %w", err)
	}
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SocialLink, error) {
		var link domain.SocialLink
		err := row.Scan(&link.Network, &link.URL)
		return link, err
	})
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogRepository: failed to scan social links: %w", err)
	}
	return links, nil
}

func (r *PostgresCatalogRepository) loadHeroSlides(ctx context.Context, tx pgx.Tx) ([]domain.HeroSlide, error) {
	rows, err := tx.Query(ctx, `SELECT image, title, subtitle FROM hero_slides ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogRepository: failed to query hero slides: %w", err)
	}
	slides, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HeroSlide, error) {
		var s domain.HeroSlide
		err := row.Scan(&s.Image, &s.Title, &s.Subtitle)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogRepository: failed to scan hero slides: %w", err)
	}
	return slides, nil
}
