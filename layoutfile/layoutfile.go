// Package layoutfile parses layout definition files into rbf.Definition
// values. Three dialects of the same document are supported, selected by file
// extension: the original XML layout format (.xml), YAML (.yaml/.yml) and
// JSON (.json). All layout semantics (duplicate record keys, unknown type
// references) are checked by rbf.Build, not here; this package only deals
// with file syntax.
package layoutfile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	rbf "github.com/reoring/rbf"
)

// MapSpec is the layout file's optional <map> declaration, naming how lines
// of the data file are classified into record-type keys.
type MapSpec struct {
	// Type is one of "prefix", "range" or "constant"; empty when the layout
	// declares no map.
	Type string
	// Domain parameterizes the map: a length for "prefix", "lo..hi" for
	// "range", the key itself for "constant".
	Domain string
}

// Document is one parsed layout file.
type Document struct {
	Definition rbf.Definition
	Map        MapSpec
}

var rangeRe = regexp.MustCompile(`^(\d+)\.\.(\d+)$`)

// Classifier builds the rbf.Classifier declared by the map spec. It fails
// with a layout_syntax issue on an unknown map type or a malformed domain.
func (m MapSpec) Classifier() (rbf.Classifier, error) {
	switch m.Type {
	case "prefix":
		n, err := strconv.Atoi(strings.TrimSpace(m.Domain))
		if err != nil {
			return nil, rbf.Issue{Code: rbf.CodeLayoutSyntax, Message: fmt.Sprintf("prefix map domain %q is not a number", m.Domain), Cause: err}
		}
		return rbf.ClassifyPrefix(n), nil
	case "range":
		sub := rangeRe.FindStringSubmatch(strings.TrimSpace(m.Domain))
		if sub == nil {
			return nil, rbf.Issue{Code: rbf.CodeLayoutSyntax, Message: fmt.Sprintf("range map domain %q is not of the form lo..hi", m.Domain)}
		}
		lo, _ := strconv.Atoi(sub[1])
		hi, _ := strconv.Atoi(sub[2])
		return rbf.ClassifyRange(lo, hi), nil
	case "constant":
		return rbf.ClassifyConstant(m.Domain), nil
	case "":
		return nil, rbf.Issue{Code: rbf.CodeLayoutSyntax, Message: "layout declares no map"}
	default:
		return nil, rbf.Issue{Code: rbf.CodeLayoutSyntax, Message: fmt.Sprintf("unknown map type %q", m.Type)}
	}
}

// Load reads and parses the named layout file, choosing the dialect from the
// file extension. Unreadable files report source_unavailable, malformed
// content layout_syntax.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, rbf.Issue{Code: rbf.CodeSourceUnavailable, Message: "cannot read layout file <" + path + ">", Cause: err}
	}
	doc, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Document{}, err
	}
	if doc.Definition.Name == "" {
		doc.Definition.Name = filepath.Base(path)
	}
	return doc, nil
}

// Parse parses layout file content in the given dialect ("xml", "yaml", "yml"
// or "json").
func Parse(data []byte, dialect string) (Document, error) {
	switch strings.ToLower(dialect) {
	case "xml":
		return parseXML(data)
	case "yaml", "yml":
		return parseYAML(data)
	case "json":
		return parseJSON(data)
	default:
		return Document{}, rbf.Issue{Code: rbf.CodeLayoutSyntax, Message: fmt.Sprintf("unsupported layout dialect %q", dialect)}
	}
}
