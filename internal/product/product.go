package product

// Product is one produce listing. UnitPrice is a display string carrying the
// currency and unit (e.g. "₹30/kg") — pricing math never happens server-side.
type Product struct {
	ID          int     `json:"productId"`
	Name        string  `json:"name"`
	UnitPrice   string  `json:"unitPrice"`
	Category    string  `json:"category"`
	ImageRef    string  `json:"imageRef"`
	Description string  `json:"description,omitempty"`
	Farmer      string  `json:"farmer,omitempty"`
	CreatedAt   *string `json:"createdAt,omitempty"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

// Catalog returns the built-in storefront catalog. It is seeded into the
// products table on first boot and served read-only; farmer listings are
// appended alongside it.
func Catalog() []Product {
	return []Product{
		{ID: 1, Name: "Tomato", UnitPrice: "₹30/kg", Category: "Vegetables", ImageRef: "/produce/tomato.jpg", Description: "Farm fresh hybrid tomatoes"},
		{ID: 2, Name: "Onion", UnitPrice: "₹25/kg", Category: "Vegetables", ImageRef: "/produce/onion.jpg", Description: "Red onions, medium size"},
		{ID: 3, Name: "Potato", UnitPrice: "₹22/kg", Category: "Vegetables", ImageRef: "/produce/potato.jpg", Description: "Jyoti variety potatoes"},
		{ID: 4, Name: "Wheat", UnitPrice: "₹28/kg", Category: "Grains", ImageRef: "/produce/wheat.jpg", Description: "Sharbati wheat, cleaned"},
		{ID: 5, Name: "Rice", UnitPrice: "₹45/kg", Category: "Grains", ImageRef: "/produce/rice.jpg", Description: "Sona Masoori raw rice"},
		{ID: 6, Name: "Apple", UnitPrice: "₹120/kg", Category: "Fruits", ImageRef: "/produce/apple.jpg", Description: "Shimla apples"},
		{ID: 7, Name: "Banana", UnitPrice: "₹50/dozen", Category: "Fruits", ImageRef: "/produce/banana.jpg", Description: "Robusta bananas"},
		{ID: 8, Name: "Toor Dal", UnitPrice: "₹110/kg", Category: "Pulses", ImageRef: "/produce/toor-dal.jpg", Description: "Unpolished toor dal"},
		{ID: 9, Name: "Milk", UnitPrice: "₹60/litre", Category: "Dairy", ImageRef: "/produce/milk.jpg", Description: "Full cream cow milk"},
		{ID: 10, Name: "Turmeric", UnitPrice: "₹180/kg", Category: "Spices", ImageRef: "/produce/turmeric.jpg", Description: "Salem turmeric powder"},
	}
}
