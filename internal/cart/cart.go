package cart

// Item is one pending cart line. It mirrors the product shape so the
// checkout page can render without a second lookup. The same product may
// appear more than once; removal is by position, not identity.
type Item struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Category  string `json:"category"`
	ImageRef  string `json:"imageRef,omitempty"`
	Farmer    string `json:"farmer,omitempty"`
}
