package product

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const productColumns = `"productId", name, "unitPrice", category, "imageRef", description, farmer, "createdAt", "updatedAt"`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY "productId"`)
	if err != nil {
		// table may not exist yet — keep the API resilient
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE "productId" = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) ListByFarmer(farmer string) ([]Product, error) {
	rows, err := r.db.Query(`SELECT `+productColumns+` FROM products WHERE farmer = $1 ORDER BY "productId"`, farmer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(`INSERT INTO products (name, "unitPrice", category, "imageRef", description, farmer, "createdAt", "updatedAt")
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING "productId"`,
		p.Name, p.UnitPrice, p.Category, p.ImageRef, p.Description, p.Farmer, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE "productId" = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset wipes the table and reinserts the provided products keeping their ids.
func (r *PostgresRepository) Reset(products []Product) error {
	if _, err := r.db.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := r.db.Exec(`INSERT INTO products ("productId", name, "unitPrice", category, "imageRef", description, farmer, "createdAt", "updatedAt")
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			p.ID, p.Name, p.UnitPrice, p.Category, p.ImageRef, p.Description, p.Farmer, p.CreatedAt, p.UpdatedAt); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p        Product
		desc     sql.NullString
		farmer   sql.NullString
		created  sql.NullString
		updated  sql.NullString
		imageRef sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.Category, &imageRef, &desc, &farmer, &created, &updated); err != nil {
		return Product{}, err
	}
	p.ImageRef = imageRef.String
	p.Description = desc.String
	p.Farmer = farmer.String
	if created.Valid {
		p.CreatedAt = &created.String
	}
	if updated.Valid {
		p.UpdatedAt = &updated.String
	}
	return p, nil
}
