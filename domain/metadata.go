package domain

const (
	DisplayTypeDate   = "date"
	DisplayTypeNumber = "number"
	DisplayTypeString = "string"
	DisplayTypeObject = "object"
)

type Attribute struct {
	TraitType   string      `json:"trait_type"`
	DisplayType string      `json:"display_type"`
	Value       interface{} `json:"value"`
}

// Metadata is the token metadata document served for an ENS name.
type Metadata struct {
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Attributes      []Attribute `json:"attributes"`
	NameLength      int         `json:"name_length"`
	SegmentLength   int         `json:"segment_length"`
	Url             *string     `json:"url"`
	Version         Version     `json:"version"`
	BackgroundImage string      `json:"background_image"`
	Image           string      `json:"image"`
	ImageUrl        string      `json:"image_url"`
	IsNormalized    bool        `json:"is_normalized"`
	LastRequestDate int64       `json:"last_request_date"`
}

func (m *Metadata) AddAttribute(traitType, displayType string, value interface{}) {
	m.Attributes = append(m.Attributes, Attribute{
		TraitType:   traitType,
		DisplayType: displayType,
		Value:       value,
	})
}

func (m *Metadata) SetImage(image string) {
	m.Image = image
	m.ImageUrl = image
}

// Attribute returns the first attribute with the given trait type.
func (m *Metadata) Attribute(traitType string) (Attribute, bool) {
	for _, a := range m.Attributes {
		if a.TraitType == traitType {
			return a, true
		}
	}
	return Attribute{}, false
}
