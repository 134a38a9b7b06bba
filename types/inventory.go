package types

// Item is a stocked product. Quantity and Price have no floor.
type Item struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Category string  `json:"category" db:"category"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
}

// ItemUpdate is a sparse update: nil fields keep their stored value.
type ItemUpdate struct {
	Name     *string
	Category *string
	Quantity *int
	Price    *float64
}

// Empty reports whether no field is set.
func (u ItemUpdate) Empty() bool {
	return u.Name == nil && u.Category == nil && u.Quantity == nil && u.Price == nil
}

type Category struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

// CategoryUpdate is a sparse update: nil fields keep their stored value.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

func (u CategoryUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil
}

type Supplier struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	ContactPerson *string `json:"contact_person" db:"contact_person"`
	Phone         *string `json:"phone" db:"phone"`
	Email         *string `json:"email" db:"email"`
	Address       *string `json:"address" db:"address"`
}

// SupplierUpdate is a sparse update: nil fields keep their stored value.
type SupplierUpdate struct {
	Name          *string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
}

func (u SupplierUpdate) Empty() bool {
	return u.Name == nil &&
		u.ContactPerson == nil &&
		u.Phone == nil &&
		u.Email == nil &&
		u.Address == nil
}
