package dto

// SearchRequest are the query parameters of a plain search
type SearchRequest struct {
	Query      string `form:"q"`
	Department string `form:"department"`
	Type       string `form:"type"`
	Year       string `form:"year"`
}

// AdvancedSearchRequest are the strictly-AND advanced search parameters.
// Dates are RFC 3339 or plain YYYY-MM-DD.
type AdvancedSearchRequest struct {
	Query      string `form:"q"`
	Department string `form:"department"`
	Course     string `form:"course"`
	Lecturer   string `form:"lecturer"`
	Type       string `form:"type"`
	Year       string `form:"year"`
	FileType   string `form:"fileType"`
	DateFrom   string `form:"dateFrom"`
	DateTo     string `form:"dateTo"`
}

// SearchResponse is a ranked result list
type SearchResponse struct {
	Results []ResourceResponse `json:"results"`
	Total   int                `json:"total"`
}

// SuggestionsResponse is the autocomplete candidate list
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
