// Package catalog holds the chart of accounts templates and assembles them per industry.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-petr/coa-seeder/internal/domain"
)

//go:embed data/*.yaml
var files embed.FS

const (
	dataDir  = "data"
	baseName = "base"
)

type document struct {
	Name     string               `yaml:"name"`
	Accounts []domain.AccountNode `yaml:"accounts"`
}

// Catalog is the read-only set of account templates: the base template
// shared by every project and one extension per industry group.
type Catalog struct {
	base       []domain.AccountNode
	extensions map[Extension][]domain.AccountNode
}

// New returns the catalog embedded in the binary.
func New() (*Catalog, error) {
	return Load(files)
}

// Load reads the base template and every extension from fsys.
//
// Files are expected at data/<name>.yaml.
func Load(fsys fs.FS) (*Catalog, error) {
	base, err := readDocument(fsys, baseName)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		base:       base,
		extensions: make(map[Extension][]domain.AccountNode, len(Extensions)),
	}

	for _, ext := range Extensions {
		nodes, err := readDocument(fsys, string(ext))
		if err != nil {
			return nil, err
		}

		c.extensions[ext] = nodes
	}

	return c, nil
}

func readDocument(fsys fs.FS, name string) ([]domain.AccountNode, error) {
	f, err := fsys.Open(path.Join(dataDir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("opening %s catalog: %w", name, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding %s catalog: %w", name, err)
	}

	if doc.Name != name {
		return nil, fmt.Errorf("catalog file %s declares name %q", name, doc.Name)
	}

	return doc.Accounts, nil
}

// Base returns a copy of the base template.
func (c *Catalog) Base() []domain.AccountNode {
	return clone(c.base)
}

// Extension returns a copy of the extension catalog.
func (c *Catalog) Extension(ext Extension) ([]domain.AccountNode, bool) {
	nodes, ok := c.extensions[ext]
	if !ok {
		return nil, false
	}

	return clone(nodes), true
}

// Assemble returns the base template followed by the extension selected by
// the industry key. Unknown or empty keys select no extension.
func (c *Catalog) Assemble(industry string) []domain.AccountNode {
	ext, ok := Lookup(industry)
	if !ok {
		return clone(c.base)
	}

	extension := c.extensions[ext]

	nodes := make([]domain.AccountNode, 0, len(c.base)+len(extension))
	nodes = append(nodes, c.base...)
	nodes = append(nodes, extension...)

	return nodes
}

// Industries returns every known industry key sorted by key.
func (c *Catalog) Industries() []domain.Industry {
	items := make([]domain.Industry, 0, len(industries))

	for key, ext := range industries {
		items = append(items, domain.Industry{Key: key, Extension: string(ext)})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Key < items[j].Key
	})

	return items
}

func clone(nodes []domain.AccountNode) []domain.AccountNode {
	out := make([]domain.AccountNode, len(nodes))
	copy(out, nodes)

	return out
}
