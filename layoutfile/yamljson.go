package layoutfile

import (
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	rbf "github.com/reoring/rbf"
)

// YAML/JSON renditions share one document shape:
//
//	name: world_data
//	description: Continents, countries, cities
//	map: {type: prefix, domain: "4"}
//	fieldtypes:
//	  - {name: A/N, type: string}
//	records:
//	  - name: CONT
//	    description: Continent record
//	    fields:
//	      - {name: NAME, description: Continent name, type: A/N, length: 25}

type fileDoc struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Map         struct {
		Type   string `yaml:"type" json:"type"`
		Domain string `yaml:"domain" json:"domain"`
	} `yaml:"map" json:"map"`
	FieldTypes []struct {
		Name string `yaml:"name" json:"name"`
		Type string `yaml:"type" json:"type"`
	} `yaml:"fieldtypes" json:"fieldtypes"`
	Records []struct {
		Name        string `yaml:"name" json:"name"`
		Description string `yaml:"description" json:"description"`
		Fields      []struct {
			Name        string `yaml:"name" json:"name"`
			Description string `yaml:"description" json:"description"`
			Type        string `yaml:"type" json:"type"`
			Length      int    `yaml:"length" json:"length"`
		} `yaml:"fields" json:"fields"`
	} `yaml:"records" json:"records"`
}

func parseYAML(data []byte) (Document, error) {
	var d fileDoc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, rbf.Issue{Code: rbf.CodeLayoutSyntax, Message: "malformed YAML layout", Cause: err}
	}
	return d.document(), nil
}

func parseJSON(data []byte) (Document, error) {
	var d fileDoc
	if err := gojson.Unmarshal(data, &d); err != nil {
		return Document{}, rbf.Issue{Code: rbf.CodeLayoutSyntax, Message: "malformed JSON layout", Cause: err}
	}
	return d.document(), nil
}

func (d fileDoc) document() Document {
	def := rbf.Definition{Name: d.Name, Description: d.Description}
	for _, ft := range d.FieldTypes {
		def.Types = append(def.Types, rbf.TypeSpec{Name: ft.Name, Description: ft.Type})
	}
	for _, r := range d.Records {
		rs := rbf.RecordSpec{Name: r.Name, Description: r.Description}
		for _, f := range r.Fields {
			rs.Fields = append(rs.Fields, rbf.FieldSpec{
				Name:        f.Name,
				Description: f.Description,
				Type:        f.Type,
				Length:      f.Length,
			})
		}
		def.Records = append(def.Records, rs)
	}
	return Document{Definition: def, Map: MapSpec{Type: d.Map.Type, Domain: d.Map.Domain}}
}
