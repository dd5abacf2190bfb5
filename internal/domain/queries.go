package domain

// OrderLine is one requested line of a new order, before menu resolution.
type OrderLine struct {
	MenuID   int
	Quantity int
	Options  string
}

type MenuFilter struct {
	CategoryID    *int
	AvailableOnly bool
	Skip          int
	Limit         int
}

type OrderFilter struct {
	Status *OrderStatus
	Skip   int
	Limit  int
}
