package domain

// Experience is a read-only biographical entry: an engagement in some
// country with an impact narrative. The backend exposes no write
// endpoints for experiences; the collection is seed data.
type Experience struct {
	ID          string            `json:"id"`
	Country     string            `json:"country"`
	Role        string            `json:"role"`
	Description string            `json:"description"`
	Impact      string            `json:"impact"`
	Stats       map[string]string `json:"stats,omitempty"`
	Years       string            `json:"years"`
	Completed   bool              `json:"completed"`
}

// Skill is a read-only seed entity describing a single competency.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}
