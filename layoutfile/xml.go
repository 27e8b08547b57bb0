package layoutfile

import (
	"encoding/xml"

	rbf "github.com/reoring/rbf"
)

// Original XML layout dialect:
//
//	<rbfile>
//	  <meta description="Continents, countries, cities" version="1.0"/>
//	  <map type="prefix" domain="4"/>
//	  <fieldtype name="A/N" type="string"/>
//	  <record name="CONT" description="Continent record">
//	    <field name="NAME" description="Continent name" length="25" type="A/N"/>
//	  </record>
//	</rbfile>
//
// The root element name is not checked; only the nested elements matter.

type xmlDoc struct {
	Meta struct {
		Name        string `xml:"name,attr"`
		Description string `xml:"description,attr"`
	} `xml:"meta"`
	Map struct {
		Type   string `xml:"type,attr"`
		Domain string `xml:"domain,attr"`
	} `xml:"map"`
	FieldTypes []struct {
		Name string `xml:"name,attr"`
		Type string `xml:"type,attr"`
	} `xml:"fieldtype"`
	Records []struct {
		Name        string `xml:"name,attr"`
		Description string `xml:"description,attr"`
		Fields      []struct {
			Name        string `xml:"name,attr"`
			Description string `xml:"description,attr"`
			Type        string `xml:"type,attr"`
			Length      int    `xml:"length,attr"`
		} `xml:"field"`
	} `xml:"record"`
}

func parseXML(data []byte) (Document, error) {
	var x xmlDoc
	if err := xml.Unmarshal(data, &x); err != nil {
		return Document{}, rbf.Issue{Code: rbf.CodeLayoutSyntax, Message: "malformed XML layout", Cause: err}
	}

	def := rbf.Definition{
		Name:        x.Meta.Name,
		Description: x.Meta.Description,
	}
	for _, ft := range x.FieldTypes {
		def.Types = append(def.Types, rbf.TypeSpec{Name: ft.Name, Description: ft.Type})
	}
	for _, r := range x.Records {
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
	return Document{Definition: def, Map: MapSpec{Type: x.Map.Type, Domain: x.Map.Domain}}, nil
}
