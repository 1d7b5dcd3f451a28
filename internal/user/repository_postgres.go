package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const userColumns = `"userId", email, password, name, phone, "userType", "mainAddressId", "createdAt", "updatedAt"`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY "userId"`)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			continue
		}
		users = append(users, u)
	}
	return users
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE "userId" = $1`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *PostgresRepository) Create(u User) (User, error) {
	err := r.db.QueryRow(`INSERT INTO users (email, password, name, phone, "userType", "createdAt", "updatedAt")
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING "userId"`,
		u.Email, u.Password, u.Name, u.Phone, u.UserType, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Update(id int, u User) (User, error) {
	var mainAddr sql.NullInt64
	if u.MainAddressID != nil {
		mainAddr = sql.NullInt64{Int64: int64(*u.MainAddressID), Valid: true}
	}
	res, err := r.db.Exec(`UPDATE users SET email = $1, name = $2, phone = $3, "userType" = $4, "mainAddressId" = $5, "updatedAt" = $6 WHERE "userId" = $7`,
		u.Email, u.Name, u.Phone, u.UserType, mainAddr, u.UpdatedAt, id)
	if err != nil {
		return User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return User{}, ErrNotFound
	}
	u.ID = id
	return u, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM users WHERE "userId" = $1`, id)
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

func scanUser(row rowScanner) (User, error) {
	var (
		u        User
		mainAddr sql.NullInt64
		created  sql.NullString
		updated  sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Phone, &u.UserType, &mainAddr, &created, &updated); err != nil {
		return User{}, err
	}
	if mainAddr.Valid {
		id := int(mainAddr.Int64)
		u.MainAddressID = &id
	}
	u.CreatedAt = created.String
	u.UpdatedAt = updated.String
	return u, nil
}
