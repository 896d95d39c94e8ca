package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Service is one offering on the services pages and in the contact form's
// service-type select.
type Service struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

// Brand holds everything that varies between deployments of the templated
// site: company identity, contact details, copy, and the services
// enumeration. One file per business, loaded once at startup.
type Brand struct {
	CompanyName    string   `yaml:"company_name"`
	Tagline        string   `yaml:"tagline"`
	Phone          string   `yaml:"phone"`
	EmergencyPhone string   `yaml:"emergency_phone"`
	Email          string   `yaml:"email"`
	Address        string   `yaml:"address"`
	Hours          string   `yaml:"hours"`
	Region         string   `yaml:"region"`
	ServiceAreas   []string `yaml:"service_areas"`

	SEO struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"seo"`

	Hero struct {
		Heading    string `yaml:"heading"`
		Subheading string `yaml:"subheading"`
	} `yaml:"hero"`

	About struct {
		Story []string `yaml:"story"`
	} `yaml:"about"`

	ContactForm struct {
		Heading        string `yaml:"heading"`
		SuccessMessage string `yaml:"success_message"`
		ErrorMessage   string `yaml:"error_message"`
	} `yaml:"contact_form"`

	Services []Service `yaml:"services"`
}

// LoadBrand reads and validates a brand file.
func LoadBrand(path string) (*Brand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("site: read brand file: %w", err)
	}
	return ParseBrand(data)
}

// ParseBrand decodes brand YAML and applies defaults.
func ParseBrand(data []byte) (*Brand, error) {
	var b Brand
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("site: parse brand file: %w", err)
	}
	if b.CompanyName == "" {
		return nil, fmt.Errorf("site: brand file missing company_name")
	}
	if b.SEO.Title == "" {
		b.SEO.Title = b.CompanyName + " - " + b.Tagline
	}
	if b.Hero.Heading == "" {
		b.Hero.Heading = b.CompanyName
	}
	if b.ContactForm.Heading == "" {
		b.ContactForm.Heading = "Request a Free Quote"
	}
	if b.ContactForm.SuccessMessage == "" {
		b.ContactForm.SuccessMessage = "Thank you for contacting us! We'll get back to you within 24 hours."
	}
	if b.ContactForm.ErrorMessage == "" {
		b.ContactForm.ErrorMessage = "Failed to submit form. Please try again or call us directly."
	}
	return &b, nil
}

// ServiceBySlug looks up a configured service.
func (b *Brand) ServiceBySlug(slug string) (*Service, bool) {
	for i := range b.Services {
		if b.Services[i].Slug == slug {
			return &b.Services[i], true
		}
	}
	return nil, false
}
