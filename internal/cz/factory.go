package cz

import (
	"fmt"
	"strings"

	"github.com/huimingz/commitbuddy-go/internal/config"
)

// StyleFactory creates commit styles based on configuration
type StyleFactory struct{}

// NewStyleFactory creates a new StyleFactory
func NewStyleFactory() *StyleFactory {
	return &StyleFactory{}
}

// Create creates a Style by name
func (f *StyleFactory) Create(name string, cfg *config.Config) (Style, error) {
	switch name {
	case StyleNameConventionalJira:
		return NewConventionalJiraStyle(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported style: %s (available: %s)", name, strings.Join(f.Names(), ", "))
	}
}

// CreateFromConfig creates the Style selected by the configuration,
// honoring the styleName override when non-empty
func (f *StyleFactory) CreateFromConfig(appCfg *config.Config, styleName string) (Style, error) {
	return f.Create(appCfg.GetStyle(styleName), appCfg)
}

// Names returns the names of all available styles
func (f *StyleFactory) Names() []string {
	return []string{StyleNameConventionalJira}
}
