package renderer

import (
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/domain/namewrapper"
)

const wrappertest3Id = "0xd1de1a8a0f0a4b1b0d7ee2c1b3f3e1b6c7b1d0f5a8e1c1a4c0b0f3d1e2a3b4c5"

var (
	fixedNow   = time.Unix(1700000000, 0)
	fontSizeRe = regexp.MustCompile(`font-size="(-?\d+)px"`)
)

func newRenderer() *Renderer {
	return New(&Cfg{Now: func() time.Time { return fixedNow }})
}

func decodeImage(t *testing.T, image string) string {
	require.True(t, strings.HasPrefix(image, svgDataPrefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(image, svgDataPrefix))
	require.NoError(t, err)
	return string(raw)
}

func TestNewMetadata(t *testing.T) {
	req := require.New(t)
	r := newRenderer()

	m := r.NewMetadata(MetadataParams{
		Name:      "wrappertest3.eth",
		Id:        wrappertest3Id,
		CreatedAt: 1624965592,
		Version:   domain.VersionV2,
	})
	req.Equal("wrappertest3.eth", m.Name)
	req.Equal("wrappertest3.eth, an ENS name.", m.Description)
	req.True(m.IsNormalized)
	req.NotNil(m.Url)
	req.Equal("https://app.ens.domains/name/wrappertest3.eth", *m.Url)
	req.Equal(domain.VersionV2, m.Version)
	req.Equal(fixedNow.UnixNano()/1e6, m.LastRequestDate)

	created, ok := m.Attribute("Created Date")
	req.True(ok)
	req.Equal(domain.DisplayTypeDate, created.DisplayType)
	req.Equal(int64(1624965592000), created.Value)

	length, _ := m.Attribute("Length")
	req.Equal(12, length.Value)
	charset, _ := m.Attribute("Character Set")
	req.Equal("alphanumeric", charset.Value)

	image := decodeImage(t, r.GenerateImage(bCtx.Background(), m))
	req.Contains(image, "wrappertest3.eth")
}

func TestNewMetadata_NotNormalized(t *testing.T) {
	req := require.New(t)
	r := newRenderer()

	m := r.NewMetadata(MetadataParams{Name: "Nick.eth", Id: wrappertest3Id, CreatedAt: 1})
	req.False(m.IsNormalized)
	req.Nil(m.Url)
	req.Equal("[d1de1a...b4c5].eth", m.Name)
	req.Equal("[d1de1a...b4c5].eth, an ENS name. (Nick.eth is not in normalized form)", m.Description)

	image := decodeImage(t, r.GenerateImage(bCtx.Background(), m))
	req.Contains(image, "[d1de1a...b4c5].eth")
	req.NotContains(image, "<tspan")
}

func TestNewMetadata_Unicode(t *testing.T) {
	req := require.New(t)
	r := New(&Cfg{Normalizer: func(name string) (string, error) { return name, nil }})

	m := r.NewMetadata(MetadataParams{Name: "👨‍👩‍👧🇯🇵.eth", Id: wrappertest3Id})
	req.Equal(2, m.SegmentLength)
	req.Greater(m.NameLength, m.SegmentLength)
	req.Contains(m.Description, "non-ASCII")

	m = r.NewMetadata(MetadataParams{Name: "ξth.eth", Id: wrappertest3Id})
	req.Equal("Ξth.eth", m.Name)

	m = r.NewMetadata(MetadataParams{Name: "αξ.eth", Id: wrappertest3Id})
	req.Equal("αξ.eth", m.Name)
}

func TestGetCharacterSet(t *testing.T) {
	tests := []struct {
		label string
		want  CharacterSet
	}{
		{"123", CharacterSetDigit},
		{"abc", CharacterSetLetter},
		{"abc123", CharacterSetAlphanumeric},
		{"日本", CharacterSetAlphanumeric},
		{"😀😀", CharacterSetEmoji},
		{"a-b", CharacterSetMixed},
		{"a😀", CharacterSetMixed},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCharacterSet(tt.label))
		})
	}
}

func TestAddWrapperAttributes(t *testing.T) {
	req := require.New(t)
	r := newRenderer()
	m := &domain.Metadata{}

	r.AddWrapperAttributes(m, nil)
	req.Empty(m.Attributes)

	fuses := namewrapper.ParentCannotControl | namewrapper.IsDotEth | namewrapper.CannotUnwrap
	r.AddWrapperAttributes(m, &domain.WrappedDomain{Fuses: uint32(fuses), ExpiryDate: 1700000000})

	state, ok := m.Attribute("Namewrapper State")
	req.True(ok)
	req.Equal(string(namewrapper.StateLocked), state.Value)
	expiry, _ := m.Attribute("Namewrapper Expiry Date")
	req.Equal(int64(1700000000000), expiry.Value)
	decoded, _ := m.Attribute("Namewrapper Fuse States")
	req.Equal(domain.DisplayTypeObject, decoded.DisplayType)
	req.Equal(namewrapper.Decode(fuses), decoded.Value)
}

func TestRenderSVG_Ellipsis(t *testing.T) {
	req := require.New(t)
	r := newRenderer()

	svg, err := r.RenderSVG(strings.Repeat("a", 100)+".eth", "")
	req.NoError(err)
	req.Contains(string(svg), "...")
	req.Contains(string(svg), "<tspan")

	truncated := truncate(strings.Repeat("😀", 100))
	req.LessOrEqual(uniseg.GraphemeClusterCount(truncated), MaxChar)
	req.Contains(truncated, "...")
}

func TestRenderSVG_Subdomain(t *testing.T) {
	req := require.New(t)
	r := newRenderer()

	svg, err := r.RenderSVG("sub.nick.eth", "data:image/png;base64,AAAA")
	req.NoError(err)
	req.Contains(string(svg), `y="200"`)
	req.Contains(string(svg), ">sub.</text>")
	req.Contains(string(svg), "nick.eth")
	req.Contains(string(svg), `href="data:image/png;base64,AAAA"`)

	svg, err = r.RenderSVG("<b>&.eth", "")
	req.NoError(err)
	req.Contains(string(svg), "&lt;b&gt;&amp;.eth")
}

func TestFontSize(t *testing.T) {
	req := require.New(t)
	r := newRenderer()

	short, err := r.fontSize("a.eth")
	req.NoError(err)
	req.Equal(maxFontSize, short)

	long, err := r.fontSize(strings.Repeat("w", 40))
	req.NoError(err)
	req.Less(long, maxFontSize)
}

func TestMeasureText_Clusters(t *testing.T) {
	req := require.New(t)
	r := newRenderer()

	family, err := r.measureText("👨‍👩‍👧", baseFontSize)
	req.NoError(err)
	single, err := r.measureText("👨", baseFontSize)
	req.NoError(err)
	req.Equal(single, family)

	accented, err := r.measureText("e\u0301", baseFontSize)
	req.NoError(err)
	plain, err := r.measureText("e", baseFontSize)
	req.NoError(err)
	req.Equal(plain, accented)
}

func TestRenderSVG_LongEmojiName(t *testing.T) {
	req := require.New(t)
	r := newRenderer()

	for _, n := range []int{52, 60, 100} {
		svg, err := r.RenderSVG(strings.Repeat("👨‍👩‍👧", n)+".eth", "")
		req.NoError(err)
		sizes := fontSizeRe.FindAllStringSubmatch(string(svg), -1)
		req.NotEmpty(sizes)
		for _, m := range sizes {
			size, err := strconv.Atoi(m[1])
			req.NoError(err)
			req.GreaterOrEqual(size, minFontSize, "name of %d clusters", n)
		}
	}
}

func TestGenerateImage_BadFont(t *testing.T) {
	r := New(&Cfg{Font: []byte("not a font")})
	require.Empty(t, r.GenerateImage(bCtx.Background(), &domain.Metadata{Name: "nick.eth"}))
}

func TestRenderer_Concurrent(t *testing.T) {
	r := newRenderer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.RenderSVG("nick.eth", "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
