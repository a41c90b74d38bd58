// Package analyze accumulates field type observations across a corpus of
// inventory documents and derives a categorized issue report.
//
// The analyzer answers one question: which fields are typed inconsistently
// across a fleet's lshw output? Its report drives the field lists the
// normalizer applies.
package analyze

import (
	"github.com/fredericlepied/lshw-normalization/core/inventory"
	"github.com/fredericlepied/lshw-normalization/core/typetag"
)

// Analyzer tracks field types and occurrences across documents.
type Analyzer struct {
	fieldTypes  map[string]map[typetag.Tag]struct{}
	occurrences map[string]int
	totalFiles  int
}

// New creates an empty Analyzer.
func New() *Analyzer {
	return &Analyzer{
		fieldTypes:  make(map[string]map[typetag.Tag]struct{}),
		occurrences: make(map[string]int),
	}
}

// TotalFiles returns the number of documents folded in so far.
func (a *Analyzer) TotalFiles() int {
	return a.totalFiles
}

// Observe folds one decoded document into the analysis. The document must
// match the envelope shape; rejected documents contribute nothing to the
// aggregate counts.
func (a *Analyzer) Observe(doc any) error {
	env, err := inventory.ParseEnvelope(doc)
	if err != nil {
		return err
	}

	a.totalFiles++
	a.walkObject(env.Data, inventory.DataPath)
	return nil
}

// record notes one observation of tag at path.
func (a *Analyzer) record(path string, tag typetag.Tag) {
	set, ok := a.fieldTypes[path]
	if !ok {
		set = make(map[typetag.Tag]struct{})
		a.fieldTypes[path] = set
	}
	set[tag] = struct{}{}
}

// walkObject records every field under obj. Objects inside arrays recurse
// under the array's own path, so an occurrence count can exceed the file
// count. Scalar array elements are tracked under path[] without occurrence
// counts of their own; nested arrays and null elements are not tracked.
func (a *Analyzer) walkObject(obj map[string]any, path string) {
	for key, value := range obj {
		fieldPath := path + "." + key

		a.occurrences[fieldPath]++
		a.record(fieldPath, typetag.Classify(value))

		switch v := value.(type) {
		case map[string]any:
			a.walkObject(v, fieldPath)
		case []any:
			for _, item := range v {
				switch elem := item.(type) {
				case map[string]any:
					a.walkObject(elem, fieldPath)
				case []any, nil:
				default:
					a.record(fieldPath+"[]", typetag.Classify(elem))
				}
			}
		}
	}
}
