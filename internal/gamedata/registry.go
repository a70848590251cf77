package gamedata

import (
	"errors"
	"fmt"
)

// =============================================================================
// ClassRegistry
// =============================================================================

// ClassRegistry holds loaded class definitions and provides lookup utilities.
type ClassRegistry struct {
	classes []ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	return &ClassRegistry{classes: classes}
}

// LoadClassRegistry loads and creates a registry from the embedded classes.json.
func LoadClassRegistry() (*ClassRegistry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	return NewClassRegistry(classes), nil
}

// GetByID returns the class definition with the given ID, or nil if not found.
func (r *ClassRegistry) GetByID(id string) *ClassDef {
	for i := range r.classes {
		if r.classes[i].ID == id {
			return &r.classes[i]
		}
	}
	return nil
}

// All returns all class definitions.
func (r *ClassRegistry) All() []ClassDef {
	return r.classes
}

// Count returns the number of classes in the registry.
func (r *ClassRegistry) Count() int {
	return len(r.classes)
}

// =============================================================================
// SkillRegistry
// =============================================================================

// SkillRegistry holds loaded skill definitions and provides lookup utilities.
type SkillRegistry struct {
	skills map[string]*SkillDef
	all    []SkillDef
}

// NewSkillRegistry creates a registry from loaded skill definitions.
func NewSkillRegistry(skills []SkillDef) *SkillRegistry {
	registry := &SkillRegistry{
		skills: make(map[string]*SkillDef),
		all:    skills,
	}
	for i := range skills {
		registry.skills[skills[i].ID] = &skills[i]
	}
	return registry
}

// LoadSkillRegistry loads and creates a registry from the embedded skills.json.
func LoadSkillRegistry() (*SkillRegistry, error) {
	skills, err := LoadSkills()
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, errors.New("no skills loaded from skills.json")
	}
	return NewSkillRegistry(skills), nil
}

// GetByID returns the skill definition with the given ID, or nil if not found.
func (r *SkillRegistry) GetByID(id string) *SkillDef {
	return r.skills[id]
}

// All returns all skill definitions in catalog order.
func (r *SkillRegistry) All() []SkillDef {
	return r.all
}

// Count returns the number of skills in the registry.
func (r *SkillRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog bundles every content table the engine reads.
type Catalog struct {
	Classes *ClassRegistry
	Skills  *SkillRegistry
	Enemies EnemyRoster
	Flavor  Flavor
}

// LoadCatalog loads all embedded content tables.
func LoadCatalog() (*Catalog, error) {
	classes, err := LoadClassRegistry()
	if err != nil {
		return nil, err
	}
	skills, err := LoadSkillRegistry()
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemyRoster()
	if err != nil {
		return nil, err
	}
	if len(enemies.Normal) == 0 || len(enemies.Bosses) == 0 {
		return nil, fmt.Errorf("enemies.json needs normal and boss names (got %d/%d)",
			len(enemies.Normal), len(enemies.Bosses))
	}
	flavor, err := LoadFlavor()
	if err != nil {
		return nil, err
	}
	return &Catalog{
		Classes: classes,
		Skills:  skills,
		Enemies: enemies,
		Flavor:  flavor,
	}, nil
}

// MustLoadCatalog loads all content tables, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
