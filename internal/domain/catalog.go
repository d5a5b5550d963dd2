package domain

const (
	SortByQueueLength  = "queue_length"
	SortByAveragePrice = "average_price"
	SortByRating       = "rating"

	SortAsc  = "asc"
	SortDesc = "desc"
)

type CatalogParams struct {
	MinRating float64
	MaxPrice  *float64
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}
