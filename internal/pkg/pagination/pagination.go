package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Params struct {
	Page  int
	Limit int
}

func NewParams(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{
		Page:  page,
		Limit: limit,
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Info struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewInfo computes total pages as ceil(totalItems/limit); an empty result
// set yields zero pages.
func NewInfo(page, limit, totalItems int) *Info {
	totalPages := totalItems / limit
	if totalItems%limit > 0 {
		totalPages++
	}

	return &Info{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
