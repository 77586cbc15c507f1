package domain

const (
	// DefaultPageLimit is applied when the caller does not supply a limit.
	DefaultPageLimit = 10
	// MaxPageLimit bounds the result size of any single page.
	MaxPageLimit = 100
)

// PageRequest carries raw page/limit values from the request layer.
// Call Normalize before use.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize applies defaults and clamps: page >= 1, limit in [1, MaxPageLimit].
func (p PageRequest) Normalize() PageRequest {
	return PageLimits{}.Normalize(p)
}

// PageLimits carries configured pagination bounds. The zero value falls back
// to the package defaults.
type PageLimits struct {
	Default int
	Max     int
}

// Normalize applies the configured defaults and clamps: page >= 1, limit in
// [1, Max].
func (l PageLimits) Normalize(p PageRequest) PageRequest {
	def := l.Default
	if def <= 0 {
		def = DefaultPageLimit
	}
	max := l.Max
	if max <= 0 {
		max = MaxPageLimit
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = def
	}
	if p.Limit > max {
		p.Limit = max
	}
	return p
}

// Offset returns the row offset for the normalized request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo is the pagination envelope returned with every paginated result.
type PageInfo struct {
	Page        int
	Limit       int
	Total       int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// NewPageInfo builds the envelope for a normalized request and a total row
// count. A zero total yields TotalPages == 0 and no next/prev pages.
func NewPageInfo(req PageRequest, total int) PageInfo {
	totalPages := 0
	if total > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}
	return PageInfo{
		Page:        req.Page,
		Limit:       req.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: req.Page < totalPages,
		HasPrevPage: req.Page > 1 && total > 0,
	}
}
