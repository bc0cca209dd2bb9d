package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"costsite/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var siteFiles = []string{"site.yml", "site.yaml", "site.toml"}

// DefaultCalculators are the calculator slugs published when the site config
// does not list its own.
var DefaultCalculators = []string{
	"nat-gateway", "storage", "siem", "cloud-compare", "managed-db",
	"serverless", "ec2-pricing", "ebs-storage", "cdn", "finops-maturity",
}

// DefaultSite returns the site config used when no site file exists.
func DefaultSite() models.SiteConfig {
	var site models.SiteConfig
	applySiteDefaults(&site)
	return site
}

// LoadSite reads the first site file found in dir. A missing file yields
// DefaultSite; a malformed one is an error.
func LoadSite(dir string) (models.SiteConfig, error) {
	for _, name := range siteFiles {
		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return models.SiteConfig{}, fmt.Errorf("read site config %s: %w", path, err)
		}

		var site models.SiteConfig
		if strings.HasSuffix(name, ".toml") {
			err = toml.Unmarshal(content, &site)
		} else {
			err = yaml.Unmarshal(content, &site)
		}
		if err != nil {
			return models.SiteConfig{}, fmt.Errorf("parse site config %s: %w", path, err)
		}

		if SiteURL != "" {
			site.BaseURL = SiteURL
		}
		applySiteDefaults(&site)
		return site, nil
	}

	site := DefaultSite()
	if SiteURL != "" {
		site.BaseURL = SiteURL
	}
	return site, nil
}

func applySiteDefaults(site *models.SiteConfig) {
	if site.Title == "" {
		site.Title = "Cloud Cost Insights"
	}
	if site.Description == "" {
		site.Description = "Practical guides and calculators for cutting your cloud bill."
	}
	if site.BaseURL == "" {
		site.BaseURL = "http://localhost:8080"
	}
	site.BaseURL = strings.TrimRight(site.BaseURL, "/")
	if site.Language == "" {
		site.Language = "en-us"
	}

	if len(site.Pages) == 0 {
		site.Pages = []models.Page{
			{Path: "/", ChangeFreq: "daily", Priority: 1.0},
			{Path: "/articles", ChangeFreq: "daily", Priority: 0.9},
			{Path: "/calculators", ChangeFreq: "weekly", Priority: 0.9},
			{Path: "/about", ChangeFreq: "monthly", Priority: 0.5},
		}
	}
	for i := range site.Pages {
		if site.Pages[i].ChangeFreq == "" {
			site.Pages[i].ChangeFreq = "monthly"
		}
		if site.Pages[i].Priority == 0 {
			site.Pages[i].Priority = 0.5
		}
	}

	if len(site.Calculators) == 0 {
		for _, slug := range DefaultCalculators {
			site.Calculators = append(site.Calculators, models.Calculator{Slug: slug, Title: calculatorTitle(slug)})
		}
	}
	for i := range site.Calculators {
		if site.Calculators[i].Title == "" {
			site.Calculators[i].Title = calculatorTitle(site.Calculators[i].Slug)
		}
	}
}

// calculatorTitle turns "ec2-pricing" into "EC2 Pricing Calculator".
func calculatorTitle(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		switch w {
		case "ec2", "ebs", "cdn", "nat", "siem", "db":
			words[i] = strings.ToUpper(w)
		case "finops":
			words[i] = "FinOps"
		default:
			if w != "" {
				words[i] = strings.ToUpper(w[:1]) + w[1:]
			}
		}
	}
	return strings.Join(words, " ") + " Calculator"
}
