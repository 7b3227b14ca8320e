package poi

// ListItem is the response shape for a POI inside a category listing.
type ListItem struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Image *string `json:"image,omitempty"`
	Short *string `json:"short,omitempty"`
}

// Detail is the full response shape for a single POI.
type Detail struct {
	ID            string   `json:"id"`
	CategoryID    string   `json:"categoryId"`
	CategoryTitle string   `json:"categoryTitle"`
	Title         string   `json:"title"`
	Short         *string  `json:"short,omitempty"`
	Lat           float64  `json:"lat"`
	Lon           float64  `json:"lon"`
	WikipediaURL  *string  `json:"wikipediaUrl,omitempty"`
	Images        []string `json:"images"`
	Description   *string  `json:"description,omitempty"`
}
