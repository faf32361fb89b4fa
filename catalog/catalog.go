package catalog

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"foodhub-kiosk/models"
)

// Catalog is the in-memory menu the kiosk sells from. It is seeded once
// at startup and changes only through the admin operations.
type Catalog struct {
	mu     sync.RWMutex
	items  []models.MenuItem
	nextID int64
}

type seedFile struct {
	Items []seedItem `yaml:"items"`
}

type seedItem struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    int64  `yaml:"price"`
	Free     bool   `yaml:"free"`
	Image    string `yaml:"image"`
	Category string `yaml:"category"`
}

// Load builds a catalog from a YAML seed file. An empty path falls back
// to the embedded default menu, so the kiosk starts regardless of the
// working directory.
func Load(path string) (*Catalog, error) {
	data := defaultMenu
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read menu seed: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse builds a catalog from YAML seed bytes.
func Parse(data []byte) (*Catalog, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse menu seed: %w", err)
	}
	c := &Catalog{nextID: 1}
	for _, it := range f.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("menu item %q: name is required", it.ID)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("menu item %q: price must be >= 0", it.Name)
		}
		id := it.ID
		if id == "" {
			id = strconv.FormatInt(c.nextID, 10)
		}
		if n, err := strconv.ParseInt(id, 10, 64); err == nil && n >= c.nextID {
			c.nextID = n + 1
		}
		c.items = append(c.items, models.MenuItem{
			ID:       id,
			Name:     it.Name,
			Price:    it.Price,
			IsFree:   it.Free,
			Image:    it.Image,
			Category: it.Category,
		})
	}
	return c, nil
}

// List returns all menu items in seed order.
func (c *Catalog) List() []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// ListByCategory returns the items with the given category label.
func (c *Catalog) ListByCategory(category string) []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.MenuItem
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Get looks up one menu item by ID.
func (c *Catalog) Get(id string) (models.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

// Add lists a new menu item with a generated ID. Admin operation.
func (c *Catalog) Add(name, category string, price int64, image string) (models.MenuItem, error) {
	if name == "" {
		return models.MenuItem{}, errors.New("name is required")
	}
	if price < 0 {
		return models.MenuItem{}, errors.New("price must be >= 0")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	item := models.MenuItem{
		ID:       strconv.FormatInt(c.nextID, 10),
		Name:     name,
		Price:    price,
		Image:    image,
		Category: category,
	}
	c.nextID++
	c.items = append(c.items, item)
	return item, nil
}

// ToggleFree flips the subsidy flag on a menu item. Admin operation.
func (c *Catalog) ToggleFree(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].IsFree = !c.items[i].IsFree
			return nil
		}
	}
	return fmt.Errorf("menu item %s not found", id)
}

// Delete removes a menu item from the catalog. Unknown IDs are a no-op.
// Admin operation; carts already holding the item keep their line.
func (c *Catalog) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
