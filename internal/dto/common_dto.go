package dto

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery is bound from ?page=&page_size=.
type PageQuery struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// Normalize clamps the query and returns page, page size and row offset.
func (q PageQuery) Normalize() (page, size, offset int) {
	page, size = q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size, (page - 1) * size
}

// UploadedFile is a multipart file already read into memory.
type UploadedFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// FileResponse is a generated or stored document streamed back to the client.
type FileResponse struct {
	FileName    string
	ContentType string
	Data        []byte
}

type AggregateRow struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int64  `json:"count"`
	Total string `json:"total"`
}
