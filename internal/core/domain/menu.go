package domain

// MenuItem is a dish on the restaurant catalog.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe,omitempty"`
	Image    string  `json:"image,omitempty"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Review is a customer testimonial shown on the public site.
type Review struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
