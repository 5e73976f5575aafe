package catalog

type CreatePropertyInput struct {
	Title     string
	Price     float64
	Category  string
	ProjectID string
	ImageURL  string
}

type CreateProjectInput struct {
	Title          string
	Description    string
	Kind           string
	Location       string
	TargetAmount   float64
	YieldRate      float64
	DurationMonths int
	ImageURL       string
}
