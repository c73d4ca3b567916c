package models

// Department is static reference data seeded once
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
