package emulator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

var (
	errInvalidPath   = errors.New("invalid path")
	errUnknownWrite  = errors.New("unknown write op")
	errEmptyBatch    = errors.New("empty batch")
	errTooManyWrites = errors.New("too many writes in batch")
)

const maxBatchWrites = 500

type document struct {
	id     string
	path   string
	fields map[string]any
	seq    int64
}

// query filters and orders a collection listing.
type query struct {
	orderBy    string
	descending bool
	limit      int
	whereField string
	whereValue string
}

// documentStore is an in-memory document database. Documents live at paths
// with an even number of segments; collections at odd ones.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
	seq  int64
	ids  utils.IDGenerator
}

func newDocumentStore(ids utils.IDGenerator) *documentStore {
	return &documentStore{docs: make(map[string]*document), ids: ids}
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

func validDocumentPath(path string) bool {
	parts := splitPath(path)
	return len(parts)%2 == 0 && !hasEmpty(parts)
}

func validCollectionPath(path string) bool {
	parts := splitPath(path)
	return len(parts)%2 == 1 && !hasEmpty(parts)
}

func hasEmpty(parts []string) bool {
	for _, p := range parts {
		if p == "" {
			return true
		}
	}
	return false
}

func cleanPath(path string) string {
	return strings.Trim(path, "/")
}

func (s *documentStore) get(path string) (document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.docs[cleanPath(path)]
	if !ok {
		return document{}, false
	}
	return d.snapshot(), true
}

func (s *documentStore) set(path string, fields map[string]any) (document, error) {
	if !validDocumentPath(path) {
		return document{}, errInvalidPath
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(cleanPath(path), fields).snapshot(), nil
}

func (s *documentStore) merge(path string, fields map[string]any, mask []string) (document, error) {
	if !validDocumentPath(path) {
		return document{}, errInvalidPath
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mergeLocked(cleanPath(path), fields, mask).snapshot(), nil
}

func (s *documentStore) delete(path string) error {
	if !validDocumentPath(path) {
		return errInvalidPath
	}
	s.mu.Lock()
	delete(s.docs, cleanPath(path))
	s.mu.Unlock()
	return nil
}

func (s *documentStore) add(collection string, fields map[string]any) (document, error) {
	if !validCollectionPath(collection) {
		return document{}, errInvalidPath
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path := cleanPath(collection) + "/" + s.ids.Generate()
	return s.setLocked(path, fields).snapshot(), nil
}

func (s *documentStore) list(collection string, q query) ([]document, error) {
	if !validCollectionPath(collection) {
		return nil, errInvalidPath
	}
	prefix := cleanPath(collection) + "/"

	s.mu.RLock()
	out := make([]document, 0)
	for path, d := range s.docs {
		rest, ok := strings.CutPrefix(path, prefix)
		if !ok || strings.Contains(rest, "/") {
			continue
		}
		if q.whereField != "" && !fieldEquals(d.fields[q.whereField], q.whereValue) {
			continue
		}
		out = append(out, d.snapshot())
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if q.orderBy != "" {
			c := compareValues(out[i].fields[q.orderBy], out[j].fields[q.orderBy])
			if c != 0 {
				if q.descending {
					return c > 0
				}
				return c < 0
			}
		}
		return out[i].seq < out[j].seq
	})

	if q.limit > 0 && len(out) > q.limit {
		out = out[:q.limit]
	}
	return out, nil
}

// apply runs every write or none of them.
func (s *documentStore) apply(writes []models.BatchWrite) error {
	if len(writes) == 0 {
		return errEmptyBatch
	}
	if len(writes) > maxBatchWrites {
		return errTooManyWrites
	}
	for _, w := range writes {
		if !validDocumentPath(w.Path) {
			return fmt.Errorf("%w: %q", errInvalidPath, w.Path)
		}
		switch w.Op {
		case models.WriteSet, models.WriteMerge, models.WriteDelete:
		default:
			return fmt.Errorf("%w: %q", errUnknownWrite, w.Op)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range writes {
		path := cleanPath(w.Path)
		switch w.Op {
		case models.WriteSet:
			s.setLocked(path, w.Fields)
		case models.WriteMerge:
			s.mergeLocked(path, w.Fields, w.UpdateMask)
		case models.WriteDelete:
			delete(s.docs, path)
		}
	}
	return nil
}

func (s *documentStore) setLocked(path string, fields map[string]any) *document {
	d, ok := s.docs[path]
	if !ok {
		s.seq++
		parts := splitPath(path)
		d = &document{id: parts[len(parts)-1], path: path, seq: s.seq}
		s.docs[path] = d
	}
	d.fields = cloneFields(fields)
	return d
}

func (s *documentStore) mergeLocked(path string, fields map[string]any, mask []string) *document {
	d, ok := s.docs[path]
	if !ok {
		d = s.setLocked(path, nil)
	}

	masked := make(map[string]bool, len(mask))
	for _, name := range mask {
		masked[name] = true
		if v, present := fields[name]; present {
			d.fields[name] = cloneValue(v)
		} else {
			delete(d.fields, name)
		}
	}
	for name, v := range fields {
		if masked[name] {
			continue
		}
		d.fields[name] = deepMerge(d.fields[name], cloneValue(v))
	}
	return d
}

func (d *document) snapshot() document {
	return document{id: d.id, path: d.path, fields: cloneFields(d.fields), seq: d.seq}
}

// deepMerge merges src into dst when both are objects; otherwise src wins.
func deepMerge(dst, src any) any {
	srcMap, ok := src.(map[string]any)
	if !ok {
		return src
	}
	dstMap, ok := dst.(map[string]any)
	if !ok {
		return srcMap
	}
	for k, v := range srcMap {
		dstMap[k] = deepMerge(dstMap[k], v)
	}
	return dstMap
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneFields(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return t
	}
}

func fieldEquals(v any, want string) bool {
	switch t := v.(type) {
	case string:
		return t == want
	case json.Number:
		return t.String() == want
	case bool:
		return fmt.Sprint(t) == want
	case nil:
		return false
	default:
		return fmt.Sprint(t) == want
	}
}

// compareValues orders numbers numerically and strings lexically. Missing
// values sort first.
func compareValues(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	switch {
	case aNum && bNum:
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

// decodeJSON decodes a JSON body keeping numbers as json.Number.
func decodeJSON(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
