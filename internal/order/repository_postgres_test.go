package order

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreate_AssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(Order{
		BuyerID:       7,
		BuyerName:     "Asha",
		BuyerContact:  "9876543210",
		BuyerAddress:  "12 Market Road",
		PaymentMethod: PaymentCOD,
		Crop:          "Tomato",
		Farmer:        "ram@farm.in",
		Location:      &Location{Latitude: 19.99, Longitude: 73.78},
		Status:        StatusPending,
		Transport:     TransportNotAssigned,
		CreatedAt:     "2026-08-31T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if created.OrderID == "" {
		t.Fatal("expected a generated orderId")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_ParsesLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	cols := []string{"orderId", "buyerId", "buyerName", "buyerContact", "buyerAddress", "paymentMethod", "crop", "farmer", "location", "status", "transport", "createdAt"}
	rows := sqlmock.NewRows(cols).
		AddRow("abc-123", 7, "Asha", "9876543210", "12 Market Road", "COD", "Tomato", "ram@farm.in",
			[]byte(`{"latitude":19.99,"longitude":73.78}`), "Pending", "Not Assigned", "2026-08-31T10:00:00Z")
	mock.ExpectQuery("FROM orders").WithArgs("abc-123").WillReturnRows(rows)

	ord, err := repo.GetByID("abc-123")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if ord.Location == nil || ord.Location.Longitude != 73.78 {
		t.Fatalf("expected parsed location, got %+v", ord.Location)
	}
	if ord.Crop != "Tomato" || ord.Status != StatusPending {
		t.Fatalf("unexpected order %+v", ord)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET status").WithArgs("Delivered", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateStatus("missing", "Delivered"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresAssignTransport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET transport").WithArgs("Nashik Logistics", "abc-123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AssignTransport("abc-123", "Nashik Logistics"); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
