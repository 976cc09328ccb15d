package renderer

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"strings"
	"text/template"

	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
	"golang.org/x/xerrors"
)

const svgDataPrefix = "data:image/svg+xml;base64,"

var svgTemplate = template.Must(template.New("svg").Funcs(template.FuncMap{
	"esc": escape,
}).Parse(`<svg width="270" height="270" viewBox="0 0 270 270" fill="none" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
<rect width="270" height="270" fill="url(#paint0_linear)"/>
{{- if .Background}}
<defs><pattern id="backImg" patternUnits="userSpaceOnUse" x="0" y="0" width="270" height="270"><image href="{{esc .Background}}" width="270" height="270"/></pattern></defs>
<rect width="270" height="270" fill="url(#backImg)"/>
<rect width="270" height="270" fill="#000" fill-opacity=".12"/>
{{- end}}
<defs><filter id="dropShadow" color-interpolation-filters="sRGB" filterUnits="userSpaceOnUse" height="270" width="270"><feDropShadow dx="0" dy="1" stdDeviation="2" flood-opacity="0.225" width="200%" height="200%"/></filter></defs>
<path d="M38 29.5 L46 43 L38 47.5 L30 43 Z M38 49.5 L46 45 L38 56.5 L30 45 Z" fill="white" filter="url(#dropShadow)"/>
<defs><linearGradient id="paint0_linear" x1="190.5" y1="302" x2="-64" y2="-172.5" gradientUnits="userSpaceOnUse"><stop stop-color="#44BCF0"/><stop offset="0.428185" stop-color="#7298F8"/><stop offset="1" stop-color="#A099FF"/></linearGradient></defs>
{{- if .Subdomain}}
<text x="32.5" y="200" font-size="{{.SubdomainFontSize}}px" fill="white" filter="url(#dropShadow)">{{esc .Subdomain}}</text>
{{- end}}
<text x="32.5" y="231" font-size="{{.FontSize}}px" fill="white" filter="url(#dropShadow)">
{{- if .SecondLine}}<tspan x="32.5" dy="-1.2em">{{esc .Domain}}</tspan><tspan x="32.5" dy="1.2em">{{esc .SecondLine}}</tspan>
{{- else}}{{esc .Domain}}{{end -}}
</text>
</svg>`))

type svgData struct {
	Background        string
	Subdomain         string
	SubdomainFontSize int
	Domain            string
	SecondLine        string
	FontSize          int
}

// GenerateImage draws the name of m on the ENS gradient, over
// m.BackgroundImage when set. Failures yield an empty string.
func (r *Renderer) GenerateImage(ctx bCtx.Ctx, m *domain.Metadata) string {
	svg, err := r.RenderSVG(m.Name, m.BackgroundImage)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": m.Name,
		}).Error("failed to render svg")
		return ""
	}
	return svgDataPrefix + base64.StdEncoding.EncodeToString(svg)
}

// RenderSVG returns the raw svg document for name.
func (r *Renderer) RenderSVG(name string, background string) ([]byte, error) {
	data := svgData{Background: background}

	domainPart := name
	if labels := strings.Split(name, "."); len(labels) > 2 && !isRedacted(name) {
		data.Subdomain = truncate(strings.Join(labels[:len(labels)-2], ".") + ".")
		domainPart = strings.Join(labels[len(labels)-2:], ".")
		size, err := r.fontSize(data.Subdomain)
		if err != nil {
			return nil, err
		}
		data.SubdomainFontSize = size
	}
	if !isRedacted(name) {
		domainPart = truncate(domainPart)
	}

	measured := domainPart
	if g := graphemes(domainPart); len(g) > lineBreakChar {
		half := len(g) / 2
		data.Domain = strings.Join(g[:half], "")
		data.SecondLine = strings.Join(g[half:], "")
		measured = data.SecondLine
		if len(data.Domain) > len(measured) {
			measured = data.Domain
		}
	} else {
		data.Domain = domainPart
	}
	size, err := r.fontSize(measured)
	if err != nil {
		return nil, err
	}
	if data.SecondLine != "" {
		size = clampFontSize(size - 3)
	}
	data.FontSize = size

	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, data); err != nil {
		return nil, xerrors.Errorf("execute svg template: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate keeps at most MaxChar grapheme clusters, eliding the middle.
func truncate(s string) string {
	g := graphemes(s)
	if len(g) <= MaxChar {
		return s
	}
	return strings.Join(g[:MaxChar-7], "") + "..." + strings.Join(g[len(g)-3:], "")
}

func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return ""
	}
	return buf.String()
}
