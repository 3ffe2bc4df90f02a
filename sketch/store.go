package sketch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/soypat/wing/curve"
)

// Store holds the host's sketches by integer id. Id 0 means no curve.
type Store struct {
	curves map[int]*curve.Curve
	next   int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{curves: make(map[int]*curve.Curve), next: 1}
}

// Curve returns a copy of the curve with the given id or nil if not present.
func (s *Store) Curve(id int) *curve.Curve {
	c, ok := s.curves[id]
	if !ok || id == 0 {
		return nil
	}
	return curve.New(c.Vertices()...)
}

// Set stores c under id, replacing any previous curve.
func (s *Store) Set(id int, c *curve.Curve) {
	if id <= 0 {
		panic("sketch: curve id must be positive")
	}
	s.curves[id] = c
	if id >= s.next {
		s.next = id + 1
	}
}

// Add stores c under a fresh id and returns it.
func (s *Store) Add(c *curve.Curve) int {
	id := s.next
	s.Set(id, c)
	return id
}

// IDs returns the ids in the store in increasing order.
func (s *Store) IDs() []int {
	ids := make([]int, 0, len(s.curves))
	for id := range s.curves {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of curves stored.
func (s *Store) Len() int { return len(s.curves) }

// Import adds every curve in the DXF or GeoJSON file at path under new ids.
func (s *Store) Import(path string) error {
	curves, err := readFile(path)
	if err != nil {
		return err
	}
	for _, c := range curves {
		s.Add(c)
	}
	return nil
}

// LoadDir loads every file in dir named after a positive integer id with a
// .dxf, .geojson or .json extension, such as 3.dxf. The first curve
// in a file is stored under its id. Other files are ignored.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		id, err := strconv.Atoi(stem)
		if err != nil || id <= 0 {
			continue
		}
		path := filepath.Join(dir, e.Name())
		curves, err := readFile(path)
		if err != nil {
			return err
		}
		if len(curves) == 0 {
			return fmt.Errorf("%s: no curves found", path)
		}
		s.Set(id, curves[0])
	}
	return nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".dxf", ".geojson", ".json":
		return true
	}
	return false
}

func readFile(path string) (curves []*curve.Curve, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dxf":
		curves, err = ReadDXFFile(path)
	case ".geojson", ".json":
		curves, err = readGeoJSONFile(path)
	default:
		return nil, fmt.Errorf("%s: unsupported sketch format", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return curves, nil
}

func readGeoJSONFile(path string) ([]*curve.Curve, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadGeoJSON(fp)
}
