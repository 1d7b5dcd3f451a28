package user

// UserType values. A user is either a farmer selling produce or a buyer
// placing orders; a few routes are gated on this.
const (
	TypeFarmer = "farmer"
	TypeBuyer  = "buyer"
)

type User struct {
	ID            int    `json:"userId"`
	Email         string `json:"email"`
	Password      string `json:"password,omitempty"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	UserType      string `json:"userType"`
	MainAddressID *int   `json:"mainAddressId,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}
