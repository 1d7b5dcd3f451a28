package order

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const orderColumns = `"orderId", "buyerId", "buyerName", "buyerContact", "buyerAddress", "paymentMethod", crop, farmer, location, status, transport, "createdAt"`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	if ord.OrderID == "" {
		ord.OrderID = uuid.NewString()
	}

	var locJSON []byte
	if ord.Location != nil {
		var err error
		locJSON, err = json.Marshal(ord.Location)
		if err != nil {
			return Order{}, err
		}
	}

	_, err := r.db.Exec(`INSERT INTO orders (`+orderColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		ord.OrderID, ord.BuyerID, ord.BuyerName, ord.BuyerContact, ord.BuyerAddress,
		ord.PaymentMethod, ord.Crop, ord.Farmer, nullableJSON(locJSON), ord.Status, ord.Transport, ord.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id string) (Order, error) {
	row := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE "orderId" = $1`, id)
	ord, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return ord, err
}

func (r *PostgresRepository) ListByBuyer(buyerID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE "buyerId" = $1 ORDER BY "createdAt" DESC`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *PostgresRepository) List() ([]Order, error) {
	rows, err := r.db.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY "createdAt" DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *PostgresRepository) UpdateStatus(id string, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = $1 WHERE "orderId" = $2`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) AssignTransport(id string, transport string) error {
	res, err := r.db.Exec(`UPDATE orders SET transport = $1 WHERE "orderId" = $2`, transport, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		ord     Order
		locJSON []byte
	)
	if err := row.Scan(&ord.OrderID, &ord.BuyerID, &ord.BuyerName, &ord.BuyerContact, &ord.BuyerAddress,
		&ord.PaymentMethod, &ord.Crop, &ord.Farmer, &locJSON, &ord.Status, &ord.Transport, &ord.CreatedAt); err != nil {
		return Order{}, err
	}
	if len(locJSON) > 0 {
		var loc Location
		if err := json.Unmarshal(locJSON, &loc); err == nil {
			ord.Location = &loc
		}
	}
	return ord, nil
}

func collectOrders(rows *sql.Rows) ([]Order, error) {
	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}
