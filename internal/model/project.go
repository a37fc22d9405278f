package model

// Project is one entry of the static portfolio project catalog.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Icon        string   `json:"icon"`
}

// Skills maps a skill name to a 0-100 proficiency level.
type Skills map[string]int
