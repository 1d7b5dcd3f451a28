package category

// CategoryItem is the public DTO returned by the category API.
// JSON tags follow the camelCase convention used elsewhere in the project.
type CategoryItem struct {
	CategoryID     int     `json:"categoryID"`
	CategoryName   string  `json:"categoryName"`
	CategoryNameHI *string `json:"categoryNameHI,omitempty"`
	CategoryImg    *string `json:"categoryImg,omitempty"`
}

// Seed is the default produce category list inserted when the table is
// empty.
type Seed struct {
	Name   string
	NameHI string
	Img    string
}

func DefaultSeed() []Seed {
	return []Seed{
		{"Vegetables", "सब्ज़ियां", "/category/vegetables.png"},
		{"Fruits", "फल", "/category/fruits.png"},
		{"Grains", "अनाज", "/category/grains.png"},
		{"Pulses", "दालें", "/category/pulses.png"},
		{"Dairy", "डेयरी", "/category/dairy.png"},
		{"Spices", "मसाले", "/category/spices.png"},
	}
}
