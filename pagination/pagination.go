package pagination

// The backend rejects limits above MaxPageSize and applies DefaultPageSize
// when no limit is sent.
const (
	DefaultPage     = 1
	DefaultPageSize = 25
	MaxPageSize     = 100
)

type Window struct {
	Page   int
	Limit  int
	Offset int
}

func Normalize(page, pageSize int) Window {
	if page < 1 {
		page = DefaultPage
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	} else if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Window{
		Page:   page,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
}

// TotalPages reports how many pages of pageSize cover total documents.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}

	return (total + pageSize - 1) / pageSize
}
