package address

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertAddressQuery = `
        INSERT INTO address ("userID", "addressDesc", phone, "addressName", "createdAt", "updatedAt")
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING "addressID", "userID", "addressDesc", phone, "addressName", "createdAt", "updatedAt"`

	selectAddressesQuery = `
        SELECT "addressID", "userID", "addressDesc", phone, "addressName", "createdAt", "updatedAt"
        FROM address
        WHERE "userID" = $1
        ORDER BY "addressID"`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAddresses(userID int) ([]Address, error) {
	rows, err := r.db.Query(selectAddressesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *PostgresRepository) AddAddress(userID int, addressDesc, phone, addressName, now string) (Address, error) {
	row := r.db.QueryRow(insertAddressQuery, userID, addressDesc, phone, addressName, now, now)
	return scanAddress(row)
}

func (r *PostgresRepository) UpdateAddress(userID int, addressID int, addressDesc, phone, addressName, now string) (Address, error) {
	row := r.db.QueryRow(`UPDATE address
        SET "addressDesc" = $1, phone = $2, "addressName" = $3, "updatedAt" = $4
        WHERE "userID" = $5 AND "addressID" = $6
        RETURNING "addressID", "userID", "addressDesc", phone, "addressName", "createdAt", "updatedAt"`,
		addressDesc, phone, addressName, now, userID, addressID)
	a, err := scanAddress(row)
	if err == sql.ErrNoRows {
		return Address{}, ErrNotFound
	}
	return a, err
}

func (r *PostgresRepository) DeleteAddress(userID int, addressID int) error {
	res, err := r.db.Exec(`DELETE FROM address WHERE "userID" = $1 AND "addressID" = $2`, userID, addressID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAddress(row rowScanner) (Address, error) {
	var (
		a       Address
		desc    sql.NullString
		phone   sql.NullString
		name    sql.NullString
		created sql.NullString
		updated sql.NullString
	)
	if err := row.Scan(&a.AddressID, &a.UserID, &desc, &phone, &name, &created, &updated); err != nil {
		return Address{}, err
	}
	a.AddressDesc = desc.String
	a.Phone = phone.String
	a.AddressName = name.String
	a.CreatedAt = created.String
	a.UpdatedAt = updated.String
	return a, nil
}
