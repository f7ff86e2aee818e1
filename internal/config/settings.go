package config

// Business settings live in a YAML file so operators can change the
// storefront details and price list without redeploying.  The file is
// optional; defaults below match the current storefront.

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Settings carries the operator-editable business details and the two
// price lists.  AdminRates drives totals computed on the dashboard;
// PublicRates drives the self-service quote on the public order form.
type Settings struct {
	Business struct {
		Name    string `yaml:"name" json:"name"`
		Email   string `yaml:"email" json:"email"`
		Phone   string `yaml:"phone" json:"phone"`
		Address string `yaml:"address" json:"address"`
	} `yaml:"business" json:"business"`
	AdminRates  map[string]float64 `yaml:"admin_rates" json:"adminRates"`
	PublicRates map[string]float64 `yaml:"public_rates" json:"publicRates"`
}

// DefaultSettings returns the built-in business profile used when no
// settings file exists.
func DefaultSettings() Settings {
	var s Settings
	s.Business.Name = "Joacia Laundry Services"
	s.Business.Email = "hello@joacia.example"
	s.Business.Phone = "+2348000000000"
	s.Business.Address = "12 Adeola Odeku St, Victoria Island, Lagos"
	return s
}

// LoadSettings reads the YAML settings file at path.  A missing file
// yields the defaults; a malformed file is an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, err
	}
	return s, nil
}
