package renderer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/domain/namewrapper"
)

const (
	ensAppUrl = "https://app.ens.domains/name/"

	homographWarning = " ⚠️ ATTENTION: This name contains non-ASCII characters as shown above. " +
		"Please be aware that there are characters that look identical or very similar to English letters, " +
		"especially characters from Cyrillic and Greek. Also, traditional Chinese characters can look identical " +
		"or very similar to simplified variants. For more information: https://en.wikipedia.org/wiki/IDN_homograph_attack"
)

type MetadataParams struct {
	Name string
	// Id is the 0x prefixed hex token id
	Id        string
	CreatedAt int64
	Version   domain.Version
}

// NewMetadata builds the metadata of a name without any image.
func (r *Renderer) NewMetadata(p MetadataParams) *domain.Metadata {
	normalized, err := r.normalize(p.Name)
	isNormalized := err == nil && normalized == p.Name

	name := p.Name
	if isNormalized {
		name = beautify(name)
	} else {
		name = redact(p.Id)
	}

	label := strings.SplitN(p.Name, ".", 2)[0]
	m := &domain.Metadata{
		Name:            name,
		Description:     description(name, p.Name, isNormalized, label),
		Attributes:      []domain.Attribute{},
		NameLength:      utf8.RuneCountInString(label),
		SegmentLength:   len(graphemes(label)),
		Version:         p.Version,
		IsNormalized:    isNormalized,
		LastRequestDate: r.now().UnixNano() / 1e6,
	}
	if isNormalized {
		url := ensAppUrl + p.Name
		m.Url = &url
	}

	m.AddAttribute("Created Date", domain.DisplayTypeDate, p.CreatedAt*1000)
	m.AddAttribute("Length", domain.DisplayTypeNumber, m.NameLength)
	m.AddAttribute("Segment Length", domain.DisplayTypeNumber, m.SegmentLength)
	m.AddAttribute("Character Set", domain.DisplayTypeString, string(GetCharacterSet(label)))
	return m
}

// AddWrapperAttributes describes the NameWrapper state of a wrapped name.
func (r *Renderer) AddWrapperAttributes(m *domain.Metadata, w *domain.WrappedDomain) {
	if w == nil {
		return
	}
	fuses := namewrapper.Fuses(w.Fuses)
	m.AddAttribute("Namewrapper Fuse States", domain.DisplayTypeObject, namewrapper.Decode(fuses))
	m.AddAttribute("Namewrapper Expiry Date", domain.DisplayTypeDate, w.ExpiryDate*1000)
	m.AddAttribute("Namewrapper State", domain.DisplayTypeString, string(namewrapper.GetWrapperState(fuses)))
}

func description(display, raw string, isNormalized bool, label string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, an ENS name.", display)
	if !isNormalized {
		fmt.Fprintf(&sb, " (%s is not in normalized form)", raw)
	}
	if !isASCII(label) {
		sb.WriteString(homographWarning)
	}
	return sb.String()
}

// redact hides a name that can not be displayed behind its token id.
func redact(id string) string {
	hex := strings.TrimPrefix(id, "0x")
	if len(hex) < 10 {
		return "[" + hex + "].eth"
	}
	return fmt.Sprintf("[%s...%s].eth", hex[:6], hex[len(hex)-4:])
}

func isRedacted(name string) bool {
	return strings.HasPrefix(name, "[") && strings.Contains(name, "...")
}

// beautify swaps the lowercase xi for its uppercase form outside Greek labels.
func beautify(name string) string {
	labels := strings.Split(name, ".")
	for i, label := range labels {
		if !strings.ContainsRune(label, 'ξ') || isGreek(label) {
			continue
		}
		labels[i] = strings.ReplaceAll(label, "ξ", "Ξ")
	}
	return strings.Join(labels, ".")
}

func isGreek(label string) bool {
	for _, r := range label {
		if r != 'ξ' && unicode.Is(unicode.Greek, r) {
			return true
		}
	}
	return false
}
