package model

type Vehicle struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

type VehicleList struct {
	Vehicles []Vehicle `json:"vehicles"`
}

type VehicleFilter struct {
	Name  string
	Brand string
}

// Page selects a slice of a listing. A non-positive Number means no paging.
type Page struct {
	Number int
	Size   int
}

func (p Page) Enabled() bool {
	return p.Number > 0
}

func (p Page) Offset() int {
	if !p.Enabled() {
		return 0
	}

	return (p.Number - 1) * p.Size
}
