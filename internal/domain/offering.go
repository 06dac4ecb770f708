package domain

// Offering is one automatable business capability from the catalog.
// Name is the unique key; the catalog owns these records and the core
// never mutates them.
type Offering struct {
	Name               string
	Industry           string
	Category           string
	MonthlyPrice       float64
	SetupPrice         float64
	Complexity         Complexity
	ImplementationTime string
	Description        string
	Benefit            string
}

// SearchText returns the concatenated text the keyword scorer matches
// against.
func (o Offering) SearchText() string {
	return o.Name + " " + o.Description + " " + o.Category + " " + o.Benefit
}
