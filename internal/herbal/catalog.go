// Package herbal holds the descriptions and benefits shown for each leaf the
// classifier recognizes.
package herbal

const fallbackDescription = "Informasi tidak tersedia."

type Info struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
}

// Catalog is an ordered, read-only set of entries. The order matches the
// class indices the model was trained with.
type Catalog struct {
	entries []Info
	index   map[string]int
}

func NewCatalog(entries []Info) *Catalog {
	c := &Catalog{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		c.index[e.Name] = i
	}
	return c
}

// Default returns the catalog for the leaf classifier.
func Default() *Catalog {
	return NewCatalog(leaves)
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

func (c *Catalog) Entries() []Info {
	return append([]Info(nil), c.entries...)
}

// Lookup returns the entry for label. The boolean is false for unknown
// labels, which get a placeholder description and no benefits.
func (c *Catalog) Lookup(label string) (Info, bool) {
	i, ok := c.index[label]
	if !ok {
		return Info{Name: label, Description: fallbackDescription, Benefits: []string{}}, false
	}
	return c.entries[i], true
}

// Missing reports the classes that have no catalog entry.
func (c *Catalog) Missing(classes []string) []string {
	var missing []string
	for _, class := range classes {
		if _, ok := c.index[class]; !ok {
			missing = append(missing, class)
		}
	}
	return missing
}
