package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
	"golang.org/x/xerrors"
)

const dataUriScheme = "data:"

// dataUri is a parsed data:[<mediatype>][;base64],<data> url.
type dataUri struct {
	mediaType string
	isBase64  bool
	payload   string
}

func parseDataUri(uri string) (*dataUri, error) {
	if len(uri) < len(dataUriScheme) || !strings.EqualFold(uri[:len(dataUriScheme)], dataUriScheme) {
		return nil, xerrors.Errorf("not a data uri")
	}
	parts := strings.SplitN(uri[len(dataUriScheme):], ",", 2)
	if len(parts) < 2 || parts[1] == "" {
		return nil, xerrors.Errorf("data uri without payload")
	}
	d := &dataUri{payload: parts[1]}
	params := strings.Split(parts[0], ";")
	d.mediaType = strings.ToLower(strings.TrimSpace(params[0]))
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			d.isBase64 = true
		}
	}
	return d, nil
}

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

func (d *dataUri) decode() ([]byte, error) {
	if !d.isBase64 {
		// percent-encoded svg avatars are common, keep text that does not unescape
		if s, err := url.PathUnescape(d.payload); err == nil {
			return []byte(s), nil
		}
		return []byte(d.payload), nil
	}
	payload := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, d.payload)
	if s, err := url.PathUnescape(payload); err == nil {
		payload = s
	}
	var lastErr error
	for _, enc := range base64Encodings {
		data, err := enc.DecodeString(payload)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, xerrors.Errorf("decode base64 payload: %w", lastErr)
}

type dataUriReaderRepo struct {
}

// NewDataUriReaderRepo decodes data urls inline, it never does io.
func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	d, err := parseDataUri(uri)
	if err != nil {
		return nil, err
	}
	return d.decode()
}
