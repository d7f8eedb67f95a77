package domain

import (
	"fmt"
	"slices"
)

// RoleRule describes which classes may fill a role and how many characters
// of that role a single roster may hold. Max == 0 means unbounded.
type RoleRule struct {
	Role    Role
	Classes []Class
	Max     int
	Plural  string
}

// RuleCatalog is immutable once built; share it by pointer.
type RuleCatalog struct {
	roles   []Role
	classes []Class
	rules   map[Role]RoleRule
}

var defaultCatalog = mustCatalog(
	RoleRule{Role: RoleTank, Classes: []Class{ClassPaladin, ClassWarrior}, Max: 2, Plural: "Tanks"},
	RoleRule{Role: RoleHeal, Classes: []Class{ClassShaman, ClassPaladin, ClassDruid}, Max: 2, Plural: "Healers"},
	RoleRule{Role: RoleMeleeDPS, Classes: []Class{ClassWarrior, ClassPaladin, ClassDruid}},
	RoleRule{Role: RoleRangedDPS, Classes: []Class{ClassWarlock, ClassMage, ClassShaman}},
)

func DefaultCatalog() *RuleCatalog {
	return defaultCatalog
}

func NewRuleCatalog(rules ...RoleRule) (*RuleCatalog, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("at least one role rule is required")
	}

	catalog := &RuleCatalog{rules: make(map[Role]RoleRule, len(rules))}
	for _, rule := range rules {
		if rule.Role == "" {
			return nil, fmt.Errorf("role is required")
		}
		if _, ok := catalog.rules[rule.Role]; ok {
			return nil, fmt.Errorf("duplicate role %q", rule.Role)
		}
		if len(rule.Classes) == 0 {
			return nil, fmt.Errorf("role %q permits no classes", rule.Role)
		}
		if rule.Max < 0 {
			return nil, fmt.Errorf("role %q has negative cap %d", rule.Role, rule.Max)
		}
		if rule.Plural == "" {
			rule.Plural = string(rule.Role) + "s"
		}
		rule.Classes = slices.Clone(rule.Classes)

		catalog.rules[rule.Role] = rule
		catalog.roles = append(catalog.roles, rule.Role)
		for _, class := range rule.Classes {
			if !slices.Contains(catalog.classes, class) {
				catalog.classes = append(catalog.classes, class)
			}
		}
	}

	return catalog, nil
}

func mustCatalog(rules ...RoleRule) *RuleCatalog {
	catalog, err := NewRuleCatalog(rules...)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (c *RuleCatalog) Roles() []Role {
	return slices.Clone(c.roles)
}

func (c *RuleCatalog) Classes() []Class {
	return slices.Clone(c.classes)
}

func (c *RuleCatalog) PermittedClasses(role Role) []Class {
	rule, ok := c.rules[role]
	if !ok {
		return nil
	}
	return slices.Clone(rule.Classes)
}

func (c *RuleCatalog) Permits(role Role, class Class) bool {
	rule, ok := c.rules[role]
	return ok && slices.Contains(rule.Classes, class)
}

// MaxCount reports the cap for role. The bool is false when the role is unbounded
// or unknown.
func (c *RuleCatalog) MaxCount(role Role) (int, bool) {
	rule, found := c.rules[role]
	if !found || rule.Max == 0 {
		return 0, false
	}
	return rule.Max, true
}

func (c *RuleCatalog) ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if _, ok := c.rules[role]; !ok {
		return "", fmt.Errorf("unknown position %q", raw)
	}
	return role, nil
}

func (c *RuleCatalog) ParseClass(raw string) (Class, error) {
	class := Class(raw)
	if !slices.Contains(c.classes, class) {
		return "", fmt.Errorf("unknown class %q", raw)
	}
	return class, nil
}

func (c *RuleCatalog) plural(role Role) string {
	if rule, ok := c.rules[role]; ok {
		return rule.Plural
	}
	return string(role) + "s"
}
