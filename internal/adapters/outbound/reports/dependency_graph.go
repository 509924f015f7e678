package reports

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/openkraft/reportkraft/internal/domain"
)

// ReadDependencyGraph decodes a {module: [dependency, ...]} object. Modules
// are returned in the order they appear in the document so that repeated
// runs over the same file produce identical summaries.
func (r *FileReader) ReadDependencyGraph(path string) ([]domain.ModuleDependencies, error) {
	data, err := readReport(domain.ReportDependency, path)
	if err != nil {
		return nil, err
	}

	graph := orderedmap.New[string, []json.RawMessage]()
	if err := json.Unmarshal(data, graph); err != nil {
		return nil, parseError(domain.ReportDependency, path, err)
	}

	modules := make([]domain.ModuleDependencies, 0, graph.Len())
	for pair := graph.Oldest(); pair != nil; pair = pair.Next() {
		modules = append(modules, domain.ModuleDependencies{
			Module:       pair.Key,
			Dependencies: dependencyNames(pair.Value),
		})
	}
	return modules, nil
}

// dependencyNames keeps every array element; non-string entries are kept as
// their raw JSON text since only the count matters downstream.
func dependencyNames(raw []json.RawMessage) []string {
	names := make([]string, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err != nil {
			name = string(item)
		}
		names = append(names, name)
	}
	return names
}
