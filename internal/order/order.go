package order

// Known status values. The workflow does not enforce transitions: any value
// may overwrite any other, and unknown statuses are accepted as-is.
const (
	StatusPending   = "Pending"
	StatusInTransit = "In Transit"
	StatusDelivered = "Delivered"
)

// Payment methods accepted at checkout.
const (
	PaymentCOD = "COD"
	PaymentUPI = "UPI"
)

// TransportNotAssigned is the initial transport value until the supply-chain
// view assigns one.
const TransportNotAssigned = "Not Assigned"

// Location is the geocoded delivery point resolved at checkout. Nil on an
// Order means the address was never resolved (which checkout prevents).
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Order is the persisted record of one purchased line-item and its
// fulfillment state. Checkout writes one Order per cart line, not one per
// transaction.
type Order struct {
	OrderID       string    `json:"orderId"`
	BuyerID       int       `json:"buyerId"`
	BuyerName     string    `json:"buyerName"`
	BuyerContact  string    `json:"buyerContact"`
	BuyerAddress  string    `json:"buyerAddress"`
	PaymentMethod string    `json:"paymentMethod"`
	Crop          string    `json:"crop"`
	Farmer        string    `json:"farmer"`
	Location      *Location `json:"location"`
	Status        string    `json:"status"`
	Transport     string    `json:"transport"`
	CreatedAt     string    `json:"createdAt"`
}

// BuyerDetails is what the checkout form submits alongside the resolved
// location.
type BuyerDetails struct {
	BuyerID       int
	Name          string
	Contact       string
	Address       string
	PaymentMethod string
}
