package models

// MenuItem is one catalog entry. Price is in whole rupees; items flagged
// free are covered by the corporate meal subsidy and are never billed,
// whatever their listed price.
type MenuItem struct {
	ID       string
	Name     string
	Price    int64
	IsFree   bool
	Image    string
	Category string
}
