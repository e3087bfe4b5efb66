// Package catalog provides RecipeCatalog implementations backing the
// machine's recipe selection.
package catalog

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
	"github.com/andrescamacho/coffeemachine-go/internal/infrastructure/config"
)

// MemoryCatalog is an in-memory recipe catalog with case-insensitive lookup
type MemoryCatalog struct {
	recipes map[string]brewing.Recipe
	order   []string
}

// NewMemoryCatalog creates a catalog holding the given recipes.
// A later recipe with the same name replaces an earlier one.
func NewMemoryCatalog(recipes ...brewing.Recipe) *MemoryCatalog {
	c := &MemoryCatalog{recipes: make(map[string]brewing.Recipe)}
	for _, recipe := range recipes {
		key := strings.ToLower(recipe.Name())
		if _, exists := c.recipes[key]; !exists {
			c.order = append(c.order, key)
		}
		c.recipes[key] = recipe
	}
	return c
}

// NewCatalogFromConfig builds a catalog from configured recipe entries.
// Every entry goes through full recipe validation; the first invalid entry
// aborts catalog construction.
func NewCatalogFromConfig(entries []config.RecipeConfig) (*MemoryCatalog, error) {
	recipes := make([]brewing.Recipe, 0, len(entries))
	for _, entry := range entries {
		grind, err := brewing.ParseGrindLevel(entry.Grind)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", entry.Name, err)
		}

		recipe, err := brewing.NewRecipe(entry.Name, entry.WaterML, entry.BeansG, grind)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", entry.Name, err)
		}
		recipes = append(recipes, recipe)
	}
	return NewMemoryCatalog(recipes...), nil
}

// Get returns the recipe with the given name (case-insensitive)
func (c *MemoryCatalog) Get(name string) (brewing.Recipe, error) {
	recipe, ok := c.recipes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return brewing.Recipe{}, brewing.ErrRecipeNotFound
	}
	return recipe, nil
}

// List returns the recipes in insertion order
func (c *MemoryCatalog) List() []brewing.Recipe {
	out := make([]brewing.Recipe, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.recipes[key])
	}
	return out
}
