package v1

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int `json:"count" example:"25"`   // The amount of records returned in this response
	Offset int `json:"offset" example:"50"`  // The offset for the first record returned
	Limit  int `json:"limit" example:"200"` // The maximum amount of resources to return for this request
}

// QueryPeriod is a query string with a budgeting period.
type QueryPeriod struct {
	Period string `form:"period" binding:"omitempty,period" example:"2025-10"` // Year and month in YYYY-MM format. Defaults to the current month.
}

// QueryDateTo is a query string with an inclusive upper date bound.
type QueryDateTo struct {
	DateTo string `form:"dateTo" binding:"omitempty,isodate" example:"2025-10-31"` // Only include transactions on or before this date
}

// QueryPage is a query string with pagination and date bounds.
type QueryPage struct {
	DateFrom string `form:"dateFrom" binding:"omitempty,isodate" example:"2025-10-01"` // Only include transactions on or after this date
	DateTo   string `form:"dateTo" binding:"omitempty,isodate" example:"2025-10-31"`   // Only include transactions on or before this date
	Offset   int    `form:"offset" binding:"omitempty,min=0" example:"0"`              // The offset of the first transaction returned. Defaults to 0.
	Limit    int    `form:"limit" binding:"omitempty,min=0,max=1000" example:"200"`    // Maximum number of transactions to return. Defaults to 200, at most 1000.
}
