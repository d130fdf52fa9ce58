package view

type AdminOrderListItem struct {
	ID        int
	Customer  string
	Email     string
	Status    string // display (lower-case) form
	Total     string
	CreatedAt string
	Updating  bool // true while a status change for this row is in flight
}

type AdminOrderItem struct {
	ProductName string
	VariantName string
	Qty         int
	Unit        string
	Line        string
}

type AdminOrderDetail struct {
	ID        int
	Customer  string
	Email     string
	Status    string
	Total     string
	CreatedAt string
	Items     []AdminOrderItem
	Statuses  []string // selectable statuses for the dropdown
}
