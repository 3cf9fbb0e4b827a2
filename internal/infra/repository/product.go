package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"huellitas/internal/domain/product"
	"huellitas/internal/infra"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `
	id, name, description, category, species, age, brand, size,
	ingredients, price, original_price, image, stock, rating, reviews,
	features, badge, active`

func scanProduct(row interface{ Scan(...any) error }) (product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.Species,
		&p.Age,
		&p.Brand,
		&p.Size,
		&p.Ingredients,
		&p.Price,
		&p.OriginalPrice,
		&p.Image,
		&p.Stock,
		&p.Rating,
		&p.Reviews,
		&p.Features,
		&p.Badge,
		&p.Active,
	)
	return p, err
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]product.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE active ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND active`, id)

	p, err := scanProduct(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return &p, nil
}

// Upsert keeps the seed idempotent across restarts.
func (r *ProductRepository) Upsert(ctx context.Context, p product.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			species = EXCLUDED.species,
			age = EXCLUDED.age,
			brand = EXCLUDED.brand,
			size = EXCLUDED.size,
			ingredients = EXCLUDED.ingredients,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			image = EXCLUDED.image,
			stock = EXCLUDED.stock,
			rating = EXCLUDED.rating,
			reviews = EXCLUDED.reviews,
			features = EXCLUDED.features,
			badge = EXCLUDED.badge,
			active = EXCLUDED.active
	`,
		p.ID, p.Name, p.Description, p.Category, p.Species, p.Age, p.Brand, p.Size,
		p.Ingredients, p.Price, p.OriginalPrice, p.Image, p.Stock, p.Rating, p.Reviews,
		p.Features, p.Badge, p.Active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert product", err)
	}
	return nil
}
