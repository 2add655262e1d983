package models

// StatsRequest holds the query parameters of the stats table endpoints.
type StatsRequest struct {
	Scope    string `json:"scope" validate:"max=32"`
	Sort     string `json:"sort" validate:"omitempty,oneof=Player Kills Deaths Assists DamageDone DamageTaken KD KDA ShotsFired ShotsLanded Accuracy AvgKills AvgAssists AvgDeaths AvgDamageDone AvgDamageTaken"`
	Order    string `json:"order" validate:"omitempty,oneof=asc desc"`
	Page     int    `json:"page" validate:"min=0,max=100000"`
	PageSize int    `json:"page_size" validate:"min=0,max=100"`
}

// StatsResponse is the body of GET /api/v1/stats.
type StatsResponse struct {
	Title   string   `json:"title,omitempty"`
	Scope   string   `json:"scope"`
	Columns []string `json:"columns"`
	Sort    string   `json:"sort"`
	Order   string   `json:"order"`
	Page
}

// MatchOptions is the body of GET /api/v1/matches.
type MatchOptions struct {
	Options []string `json:"options"`
	Matches []int    `json:"matches"`
}

// Dashboard bundles everything the table view needs on first load.
type Dashboard struct {
	Title    string        `json:"title"`
	Selected string        `json:"selected"`
	Options  []string      `json:"options"`
	Notice   string        `json:"notice,omitempty"`
	Stats    StatsResponse `json:"stats"`
}
