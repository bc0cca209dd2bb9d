package models

// SiteConfig describes the site-wide metadata and the fixed pages that are
// not backed by content files.
type SiteConfig struct {
	Title       string       `yaml:"title" toml:"title" json:"title"`
	Description string       `yaml:"description" toml:"description" json:"description"`
	BaseURL     string       `yaml:"base_url" toml:"base_url" json:"base_url"`
	Language    string       `yaml:"language" toml:"language" json:"language"`
	Pages       []Page       `yaml:"pages" toml:"pages" json:"pages"`
	Calculators []Calculator `yaml:"calculators" toml:"calculators" json:"calculators"`
}

// Page is a static route listed in the sitemap.
type Page struct {
	Path       string  `yaml:"path" toml:"path" json:"path"`
	ChangeFreq string  `yaml:"changefreq" toml:"changefreq" json:"changefreq"`
	Priority   float64 `yaml:"priority" toml:"priority" json:"priority"`
}

// Calculator is the metadata wrapper of an interactive pricing calculator.
type Calculator struct {
	Slug        string `yaml:"slug" toml:"slug" json:"slug"`
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
}
