package sales

// BatchRow is one line of the daily sales form: how many units of a
// menu item went out through each channel.
type BatchRow struct {
	MenuItemID  int64 `json:"menu_item_id"`
	DineInQty   int   `json:"dine_in_qty"`
	DeliveryQty int   `json:"delivery_qty"`
}

// BatchInput carries a full day's recording submission.
type BatchInput struct {
	Date string
	Rows []BatchRow
}

// DailyIncome is the per-day revenue summary over the ledger joined to
// the menu catalog. Days with no ledger rows are absent, not zero.
type DailyIncome struct {
	Date           string  `json:"date"`
	TotalIncome    float64 `json:"total_income"`
	DineInIncome   float64 `json:"dine_in_income"`
	DeliveryIncome float64 `json:"delivery_income"`
}

// TopMenuItem is the per-item sales aggregate for a date range.
type TopMenuItem struct {
	MenuItemID   int64   `json:"menu_item_id"`
	Name         string  `json:"name"`
	TotalQty     int     `json:"total_qty"`
	TotalRevenue float64 `json:"total_revenue"`
}
