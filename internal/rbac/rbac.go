// Package rbac decides which admin sections a role may see. The decision is
// three-way: a role unknown to the permission table gets the section hidden
// outright, a known role missing the specific permission gets a denial
// notice, and everything else gets the content. Authorization denial is a
// render outcome here, not an error.
package rbac

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Wildcard grants a role every permission.
const Wildcard = "*"

type Decision int

const (
	// Hidden: the role is not in the permission table at all. The section
	// must not be revealed to exist.
	Hidden Decision = iota
	// Denied: the role is known but lacks this permission.
	Denied
	// Granted: render the content.
	Granted
)

func (d Decision) String() string {
	switch d {
	case Hidden:
		return "hidden"
	case Denied:
		return "denied"
	case Granted:
		return "granted"
	}
	return "unknown"
}

// TabRule maps one admin tab to the single permission key gating it.
type TabRule struct {
	ID         string `yaml:"id"`
	Permission string `yaml:"permission"`
}

// Config holds the role and tab permission tables. It is loaded once at
// startup and never mutated afterwards, so Gate and AccessibleTabs are safe
// to call from any goroutine without synchronization.
type Config struct {
	Roles map[string][]string `yaml:"roles"`
	Tabs  []TabRule           `yaml:"tabs"`
}

// Gate resolves a (role, permission) pair to a render decision. It is total:
// every pair of strings has a defined outcome and nothing ever errors. An
// unrecognized permission key resolves to Denied.
func (c *Config) Gate(role, permission string) Decision {
	perms, known := c.Roles[role]
	if !known {
		return Hidden
	}
	for _, p := range perms {
		if p == Wildcard || p == permission {
			return Granted
		}
	}
	return Denied
}

// AccessibleTabs returns the tabs whose permission the role holds, in tab
// declaration order. The order is stable so that downstream default-tab
// selection is reproducible. Unknown roles get an empty list.
func (c *Config) AccessibleTabs(role string) []string {
	tabs := []string{}
	for _, t := range c.Tabs {
		if c.Gate(role, t.Permission) == Granted {
			tabs = append(tabs, t.ID)
		}
	}
	return tabs
}

// TabPermission returns the permission key gating a tab, or "" if the tab is
// not declared.
func (c *Config) TabPermission(tabID string) string {
	for _, t := range c.Tabs {
		if t.ID == tabID {
			return t.Permission
		}
	}
	return ""
}

// Load reads a Config from a YAML file. An empty path returns the built-in
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Roles == nil {
		cfg.Roles = map[string][]string{}
	}
	if len(cfg.Tabs) == 0 {
		cfg.Tabs = Default().Tabs
	}
	return cfg, nil
}
