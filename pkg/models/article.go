package models

// Article is a content file projected into the fields the site renders.
// Every field except Slug comes from the front matter and defaults to "".
type Article struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishDate string `json:"publishDate"`
	ReadTime    string `json:"readTime"`
	Category    string `json:"category"`
	Content     string `json:"content,omitempty"` // Markdown body without front matter
}
