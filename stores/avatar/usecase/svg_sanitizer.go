package usecase

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"unicode"

	"golang.org/x/xerrors"
)

var forbiddenSVGElements = map[string]bool{
	"script":        true,
	"foreignobject": true,
	"iframe":        true,
	"embed":         true,
	"object":        true,
}

var animationElements = map[string]bool{
	"animate":          true,
	"set":              true,
	"animatemotion":    true,
	"animatetransform": true,
}

// SanitizeSVG re-serialises an svg document without scripts, foreign content,
// event handler attributes and javascript links. Doctype declarations and
// comments are dropped. Animations targeting links or event handlers are
// dropped with their content.
func SanitizeSVG(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity

	var (
		buf   bytes.Buffer
		skip  int
		depth int
	)
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xerrors.Errorf("decode svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if skip > 0 || forbiddenElement(t) {
				skip++
				continue
			}
			depth++
			buf.WriteByte('<')
			buf.WriteString(qualifiedName(t.Name))
			for _, attr := range t.Attr {
				if !allowedAttr(attr) {
					continue
				}
				buf.WriteByte(' ')
				buf.WriteString(qualifiedName(attr.Name))
				buf.WriteString(`="`)
				if err := xml.EscapeText(&buf, []byte(attr.Value)); err != nil {
					return nil, err
				}
				buf.WriteByte('"')
			}
			buf.WriteByte('>')
		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			if depth == 0 {
				continue
			}
			depth--
			buf.WriteString("</")
			buf.WriteString(qualifiedName(t.Name))
			buf.WriteByte('>')
		case xml.CharData:
			if skip > 0 {
				continue
			}
			if err := xml.EscapeText(&buf, t); err != nil {
				return nil, err
			}
		case xml.ProcInst:
			if t.Target == "xml" && buf.Len() == 0 {
				buf.WriteString("<?xml ")
				buf.Write(t.Inst)
				buf.WriteString("?>")
			}
		}
	}
	if depth != 0 {
		return nil, xerrors.New("unbalanced svg document")
	}
	return buf.Bytes(), nil
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func forbiddenElement(t xml.StartElement) bool {
	name := strings.ToLower(t.Name.Local)
	if forbiddenSVGElements[name] {
		return true
	}
	if !animationElements[name] {
		return false
	}
	for _, attr := range t.Attr {
		if strings.ToLower(attr.Name.Local) != "attributename" {
			continue
		}
		target := strings.ToLower(strings.TrimSpace(attr.Value))
		if i := strings.LastIndexByte(target, ':'); i >= 0 {
			target = target[i+1:]
		}
		if target == "href" || strings.HasPrefix(target, "on") {
			return true
		}
	}
	return false
}

func allowedAttr(attr xml.Attr) bool {
	name := strings.ToLower(attr.Name.Local)
	if strings.HasPrefix(name, "on") {
		return false
	}
	switch name {
	case "href", "src", "action", "formaction", "from", "to", "by":
		return !unsafeURL(attr.Value)
	case "values":
		for _, v := range strings.Split(attr.Value, ";") {
			if unsafeURL(v) {
				return false
			}
		}
	}
	return true
}

func unsafeURL(v string) bool {
	value := strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, v))
	return strings.HasPrefix(value, "javascript:") || strings.HasPrefix(value, "data:text/html")
}
