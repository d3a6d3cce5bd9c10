package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/repository"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/database"
	apperrors "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/errors"
)

const productColumns = `id, name, brand, model, category, description, price, original_price, price_aed,
		image, images, stock, rating, reviews, featured, date_added, created_at, updated_at`

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product into the database.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Brand,
		p.Model,
		p.Category,
		p.Description,
		p.Price,
		p.OriginalPrice,
		p.PriceAED,
		p.Image,
		p.Images,
		p.Stock,
		p.Rating,
		p.Reviews,
		p.Featured,
		p.DateAdded,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "id", p.ID)
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	var p domain.Product
	if err := r.db.QueryRow(ctx, query, id).Scan(scanTargets(&p)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

// GetByIDs retrieves the products for the given IDs. Missing IDs are omitted.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("query products by ids: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// List returns products matching the filter with the total matching count.
// Filtering, searching, sorting, and pagination are all pushed into SQL; the
// semantics mirror the in-memory catalog pipeline, with the API additions of
// brand in the search fields and a creation-recency default order.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.Category != "" && filter.Category != "All" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.Brand != "" && filter.Brand != "All" {
		conditions = append(conditions, fmt.Sprintf("lower(brand) = lower($%d)", argIndex))
		args = append(args, filter.Brand)
		argIndex++
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d OR brand ILIKE $%d)",
			argIndex, argIndex, argIndex, argIndex,
		))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// count(*) OVER() yields the total matching count in the same query.
	query := fmt.Sprintf(`
		SELECT `+productColumns+`,
			   count(*) OVER() AS total_count
		FROM products
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		whereClause, orderClause(filter.Sort), argIndex, argIndex+1,
	)

	limit := filter.PerPage
	if limit <= 0 {
		limit = 100
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	filterArgs := args
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		products   []domain.Product
		totalCount int
	)

	for rows.Next() {
		var p domain.Product
		targets := append(scanTargets(&p), &totalCount)
		if err := rows.Scan(targets...); err != nil {
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	// count(*) OVER() only appears on returned rows, so a page past the end
	// of the result set would report zero matches. The total must stay
	// independent of the requested slice; fetch it separately in that case.
	if len(products) == 0 && offset > 0 {
		countQuery := "SELECT count(*) FROM products " + whereClause
		if err := r.db.QueryRow(ctx, countQuery, filterArgs...).Scan(&totalCount); err != nil {
			return nil, 0, fmt.Errorf("count products: %w", err)
		}
	}

	return products, totalCount, nil
}

// Brands returns the distinct non-empty brands in the catalog, alphabetical.
func (r *ProductRepository) Brands(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT brand FROM products WHERE brand <> '' ORDER BY brand`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []string
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, fmt.Errorf("scan brand row: %w", err)
		}
		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate brand rows: %w", err)
	}

	return brands, nil
}

// Update modifies an existing product in the database.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE products
		SET name = $1, brand = $2, model = $3, category = $4, description = $5,
		    price = $6, original_price = $7, price_aed = $8, image = $9, images = $10,
		    stock = $11, rating = $12, reviews = $13, featured = $14, date_added = $15,
		    updated_at = $16
		WHERE id = $17`

	ct, err := r.db.Exec(ctx, query,
		p.Name,
		p.Brand,
		p.Model,
		p.Category,
		p.Description,
		p.Price,
		p.OriginalPrice,
		p.PriceAED,
		p.Image,
		p.Images,
		p.Stock,
		p.Rating,
		p.Reviews,
		p.Featured,
		p.DateAdded,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", p.ID)
	}

	return nil
}

// Delete removes a product from the database by its ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", id)
	}

	return nil
}

// orderClause maps a sort key to its ORDER BY expression. Unknown keys fall
// back to creation recency, matching the permissive query contract.
func orderClause(sortKey string) string {
	switch sortKey {
	case "price-low":
		return "price ASC"
	case "price-high":
		return "price DESC"
	case "newest":
		return "date_added DESC"
	case "popular":
		return "reviews DESC"
	default:
		return "created_at DESC"
	}
}

// scanTargets returns the scan destinations for a product row, in
// productColumns order.
func scanTargets(p *domain.Product) []any {
	return []any{
		&p.ID,
		&p.Name,
		&p.Brand,
		&p.Model,
		&p.Category,
		&p.Description,
		&p.Price,
		&p.OriginalPrice,
		&p.PriceAED,
		&p.Image,
		&p.Images,
		&p.Stock,
		&p.Rating,
		&p.Reviews,
		&p.Featured,
		&p.DateAdded,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(scanTargets(&p)...); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}

// isUniqueViolation checks for a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
