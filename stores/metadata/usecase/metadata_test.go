package usecase

import (
	"encoding/base64"
	"errors"
	"math/big"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/domain/avatar"
	avatarmocks "github.com/x-xyz/ensmetadata/domain/avatar/mocks"
	"github.com/x-xyz/ensmetadata/domain/mocks"
	"github.com/x-xyz/ensmetadata/service/ens"
	ensmocks "github.com/x-xyz/ensmetadata/service/ens/mocks"
	"github.com/x-xyz/ensmetadata/service/renderer"
)

const (
	subgraphUrl     = "https://api.thegraph.com/subgraphs/name/ensdomains/ens"
	nameWrapperAddr = "0xD4416b13d2b3a9aBae7AcD5D6C2BbDBE25686401"
	registrarAddr   = "0x57f1887a8BF19b14fC0dF6Fd9B2acc9Af147eA85"
	host            = "https://metadata.ens.domains"
	svgPrefix       = "data:image/svg+xml;base64,"
)

var (
	fixedNow = time.Unix(1700000000, 0)
	pngBytes = []byte("\x89PNG\r\n\x1a\n0000")
)

type metadataSuite struct {
	suite.Suite

	indexer *mocks.IndexerRepository
	avatar  *avatarmocks.UseCase
	ens     *ensmocks.ENS
	network domain.NetworkCfg
	im      domain.MetadataUseCase
}

func TestMetadataSuite(t *testing.T) {
	suite.Run(t, new(metadataSuite))
}

func (s *metadataSuite) SetupTest() {
	s.indexer = &mocks.IndexerRepository{}
	s.avatar = &avatarmocks.UseCase{}
	s.ens = &ensmocks.ENS{}
	s.network = domain.NetworkCfg{
		Name:        "mainnet",
		ChainId:     1,
		SubgraphUrl: subgraphUrl,
		Registrar:   registrarAddr,
		NameWrapper: nameWrapperAddr,
	}
	now := func() time.Time { return fixedNow }
	s.im = NewMetadataUseCase(&MetadataUseCaseCfg{
		Indexer:  s.indexer,
		Avatar:   s.avatar,
		Ens:      s.ens,
		Renderer: renderer.New(&renderer.Cfg{Now: now}),
		Now:      now,
	})
}

func (s *metadataSuite) TearDownTest() {
	s.indexer.AssertExpectations(s.T())
	s.avatar.AssertExpectations(s.T())
	s.ens.AssertExpectations(s.T())
}

func nodeId(name string) domain.Identifier {
	h := ens.NameHash(name)
	return domain.IdentifierFromInt(new(big.Int).SetBytes(h[:]))
}

func labelId(label string) domain.Identifier {
	h := ens.LabelHash(label)
	return domain.IdentifierFromInt(new(big.Int).SetBytes(h[:]))
}

func wrappedRecord(label string, texts ...string) *domain.DomainRecord {
	return &domain.DomainRecord{
		Id:        ens.NameHashHex(label + ".eth"),
		LabelName: label,
		Labelhash: ens.LabelHashHex(label),
		Name:      label + ".eth",
		CreatedAt: 1624965592,
		ParentId:  domain.EthNode,
		Resolver:  &domain.ResolverRecord{Address: "0x4976fb03C32e5B8cfe2b6cCB31c09Ba78EBaBa41", Texts: texts},
		WrappedDomain: &domain.WrappedDomain{
			Fuses:      0,
			ExpiryDate: 1800000000,
		},
	}
}

func (s *metadataSuite) v2Request(name string, loadImages bool) *domain.DomainRequest {
	return &domain.DomainRequest{
		Network:         s.network,
		ContractAddress: nameWrapperAddr,
		Identifier:      nodeId(name),
		Version:         domain.VersionV2,
		LoadImages:      loadImages,
		Host:            host,
	}
}

func (s *metadataSuite) attr(m *domain.Metadata, traitType string) interface{} {
	a, ok := m.Attribute(traitType)
	s.Require().True(ok, "missing attribute %s", traitType)
	return a.Value
}

func (s *metadataSuite) TestGetDomain_WrappedName() {
	req := s.v2Request("wrappertest3.eth", false)
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).
		Return(wrappedRecord("wrappertest3", avatar.TextKeyAvatar), nil).Once()
	s.indexer.On("GetRegistrations", mock.Anything, subgraphUrl, ens.LabelHashHex("wrappertest3")).
		Return([]domain.Registration{
			{LabelName: "wrappertest3", RegistrationDate: 1600000000, ExpiryDate: 1650000000},
			{LabelName: "wrappertest3", RegistrationDate: 1624965592, ExpiryDate: 1750000000},
		}, nil).Once()

	m, err := s.im.GetDomain(bCtx.Background(), req)
	s.Require().NoError(err)
	s.Equal("wrappertest3.eth", m.Name)
	s.Equal(domain.VersionV2, m.Version)
	s.True(m.IsNormalized)
	s.Equal(host+"/mainnet/"+nameWrapperAddr+"/"+req.Identifier.Hex()+"/image", m.Image)
	s.Equal(m.Image, m.ImageUrl)
	s.Equal(host+"/mainnet/avatar/wrappertest3.eth", m.BackgroundImage)

	s.Equal(int64(1624965592000), s.attr(m, "Created Date"))
	s.Equal(int64(1624965592000), s.attr(m, "Registration Date"))
	s.Equal(int64(1750000000000), s.attr(m, "Expiration Date"))
	s.Equal(int64(1800000000000), s.attr(m, "Namewrapper Expiry Date"))
	s.Equal("Wrapped", s.attr(m, "Namewrapper State"))
	_, ok := m.Attribute("Namewrapper Fuse States")
	s.True(ok)
}

func (s *metadataSuite) TestGetDomain_LegacyName() {
	req := &domain.DomainRequest{
		Network:         s.network,
		ContractAddress: registrarAddr,
		Identifier:      labelId("nick"),
		Version:         domain.VersionV1,
		Host:            host,
	}
	record := wrappedRecord("nick")
	record.WrappedDomain = nil
	s.indexer.On("GetDomainByLabelhash", mock.Anything, subgraphUrl, req.Identifier.Hex(), domain.EthNode).
		Return(record, nil).Once()
	s.indexer.On("GetRegistrations", mock.Anything, subgraphUrl, record.Labelhash).
		Return([]domain.Registration{{LabelName: "nick", RegistrationDate: 1580000000, ExpiryDate: 1900000000}}, nil).Once()

	m, err := s.im.GetDomain(bCtx.Background(), req)
	s.Require().NoError(err)
	s.Equal("nick.eth", m.Name)
	s.Equal(domain.VersionV1, m.Version)
	s.Equal("", m.BackgroundImage)
	_, ok := m.Attribute("Namewrapper State")
	s.False(ok)
	s.Equal(int64(1900000000000), s.attr(m, "Expiration Date"))
}

func (s *metadataSuite) TestGetDomain_NamehashMismatch() {
	req := s.v2Request("wrappertest3.eth", false)
	record := wrappedRecord("wrappertest3")
	record.Name = "wrappertest4.eth"
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).Return(record, nil).Once()

	_, err := s.im.GetDomain(bCtx.Background(), req)
	s.True(domain.IsKind(err, domain.KindNamehashMismatch))
	s.Equal(http.StatusNotFound, domain.StatusOf(err))
}

func (s *metadataSuite) TestGetDomain_LegacyRecordForAnotherLabel() {
	req := &domain.DomainRequest{
		Network:         s.network,
		ContractAddress: registrarAddr,
		Identifier:      labelId("nick"),
		Version:         domain.VersionV1,
		Host:            host,
	}
	s.indexer.On("GetDomainByLabelhash", mock.Anything, subgraphUrl, req.Identifier.Hex(), domain.EthNode).
		Return(wrappedRecord("vitalik"), nil).Once()

	_, err := s.im.GetDomain(bCtx.Background(), req)
	s.True(domain.IsKind(err, domain.KindNamehashMismatch))
	s.Equal(http.StatusNotFound, domain.StatusOf(err))
}

func (s *metadataSuite) TestGetDomain_RecordNotFound() {
	req := s.v2Request("missing.eth", false)
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).Return(nil, nil).Once()

	_, err := s.im.GetDomain(bCtx.Background(), req)
	s.True(domain.IsKind(err, domain.KindRecordNotFound))
}

func (s *metadataSuite) TestGetDomain_IndexerFailure() {
	req := s.v2Request("wrappertest3.eth", false)
	upstream := domain.NewError(domain.KindRecordNotFound, "No results found.").WithInternalStatus(http.StatusBadGateway)
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).Return(nil, upstream).Once()

	_, err := s.im.GetDomain(bCtx.Background(), req)
	s.ErrorIs(err, upstream)
	s.Equal(http.StatusNotFound, domain.StatusOf(err))
}

func (s *metadataSuite) TestGetDomain_ExpiredName() {
	req := s.v2Request("wrappertest3.eth", false)
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).
		Return(wrappedRecord("wrappertest3"), nil).Once()
	s.indexer.On("GetRegistrations", mock.Anything, subgraphUrl, ens.LabelHashHex("wrappertest3")).
		Return([]domain.Registration{{RegistrationDate: 1500000000, ExpiryDate: 1600000000}}, nil).Once()

	_, err := s.im.GetDomain(bCtx.Background(), req)
	s.True(domain.IsKind(err, domain.KindExpiredName))
	s.Equal(http.StatusGone, domain.StatusOf(err))
}

func (s *metadataSuite) TestGetDomain_InGracePeriod() {
	req := s.v2Request("wrappertest3.eth", false)
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).
		Return(wrappedRecord("wrappertest3"), nil).Once()
	expiry := fixedNow.Add(-30 * 24 * time.Hour).Unix()
	s.indexer.On("GetRegistrations", mock.Anything, subgraphUrl, ens.LabelHashHex("wrappertest3")).
		Return([]domain.Registration{{RegistrationDate: 1500000000, ExpiryDate: expiry}}, nil).Once()

	m, err := s.im.GetDomain(bCtx.Background(), req)
	s.Require().NoError(err)
	s.Equal(expiry*1000, s.attr(m, "Expiration Date"))
}

func (s *metadataSuite) TestGetDomain_RegistrationQueryFails() {
	req := s.v2Request("wrappertest3.eth", false)
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).
		Return(wrappedRecord("wrappertest3"), nil).Once()
	s.indexer.On("GetRegistrations", mock.Anything, subgraphUrl, ens.LabelHashHex("wrappertest3")).
		Return(nil, domain.NewError(domain.KindRecordNotFound, "No results found.")).Once()

	_, err := s.im.GetDomain(bCtx.Background(), req)
	s.True(domain.IsKind(err, domain.KindRecordNotFound))
}

func (s *metadataSuite) TestGetDomain_SubdomainSkipsRegistrations() {
	name := "sub.wrappertest3.eth"
	req := s.v2Request(name, false)
	record := &domain.DomainRecord{
		Id:        ens.NameHashHex(name),
		LabelName: "sub",
		Labelhash: ens.LabelHashHex("sub"),
		Name:      name,
		CreatedAt: 1624965592,
		ParentId:  ens.NameHashHex("wrappertest3.eth"),
	}
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).Return(record, nil).Once()

	m, err := s.im.GetDomain(bCtx.Background(), req)
	s.Require().NoError(err)
	s.Equal(name, m.Name)
	_, ok := m.Attribute("Registration Date")
	s.False(ok)
	s.indexer.AssertNotCalled(s.T(), "GetRegistrations", mock.Anything, mock.Anything, mock.Anything)
}

func (s *metadataSuite) TestGetDomain_AvatarBackground() {
	req := s.v2Request("wrappertest3.eth", true)
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).
		Return(wrappedRecord("wrappertest3", avatar.TextKeyAvatar), nil).Once()
	s.indexer.On("GetRegistrations", mock.Anything, subgraphUrl, mock.Anything).Return(nil, nil).Once()
	s.avatar.On("GetImageByName", mock.Anything, mock.Anything, "wrappertest3.eth").
		Return(&avatar.Image{Data: pngBytes, MimeType: "image/png"}, nil).Once()

	m, err := s.im.GetDomain(bCtx.Background(), req)
	s.Require().NoError(err)
	s.Equal("data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes), m.BackgroundImage)
	s.Require().True(strings.HasPrefix(m.Image, svgPrefix))
	svg, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(m.Image, svgPrefix))
	s.Require().NoError(err)
	s.Contains(string(svg), `id="backImg"`)
	s.Contains(string(svg), "wrappertest3.eth")
}

func (s *metadataSuite) TestGetDomain_ExplicitImageWins() {
	req := s.v2Request("wrappertest3.eth", true)
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).
		Return(wrappedRecord("wrappertest3", avatar.TextKeyAvatar, avatar.TextKeyImage), nil).Once()
	s.indexer.On("GetRegistrations", mock.Anything, subgraphUrl, mock.Anything).Return(nil, nil).Once()
	s.ens.On("Text", mock.Anything, mock.Anything, "wrappertest3.eth", avatar.TextKeyImage).
		Return("https://example.com/card.png", nil).Once()
	s.avatar.On("GetImage", mock.Anything, mock.Anything, "https://example.com/card.png", domain.Address("")).
		Return(&avatar.Image{Data: pngBytes, MimeType: "image/png"}, nil).Once()
	s.avatar.On("GetImageByName", mock.Anything, mock.Anything, "wrappertest3.eth").
		Return(&avatar.Image{Data: []byte("<svg/>"), MimeType: "image/svg+xml"}, nil).Once()

	m, err := s.im.GetDomain(bCtx.Background(), req)
	s.Require().NoError(err)
	s.Equal("data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes), m.Image)
	s.Equal(m.Image, m.ImageUrl)
	s.Equal("", m.BackgroundImage)
}

func (s *metadataSuite) TestGetDomain_MediaFailureFallsBack() {
	req := s.v2Request("wrappertest3.eth", true)
	s.indexer.On("GetDomainById", mock.Anything, subgraphUrl, req.Identifier.Hex()).
		Return(wrappedRecord("wrappertest3", avatar.TextKeyAvatar, avatar.TextKeyImage), nil).Once()
	s.indexer.On("GetRegistrations", mock.Anything, subgraphUrl, mock.Anything).Return(nil, nil).Once()
	s.ens.On("Text", mock.Anything, mock.Anything, "wrappertest3.eth", avatar.TextKeyImage).
		Return("", domain.NewError(domain.KindTextRecordNotFound, "no image")).Once()
	s.avatar.On("GetImageByName", mock.Anything, mock.Anything, "wrappertest3.eth").
		Return(nil, errors.New("gateway timeout")).Once()

	m, err := s.im.GetDomain(bCtx.Background(), req)
	s.Require().NoError(err)
	s.True(strings.HasPrefix(m.Image, svgPrefix))
	s.Equal("", m.BackgroundImage)
}

func (s *metadataSuite) TestPreview() {
	m, err := s.im.Preview(bCtx.Background(), "nick.eth")
	s.Require().NoError(err)
	s.Equal("nick.eth", m.Name)
	s.True(strings.HasPrefix(m.Image, svgPrefix))

	_, err = s.im.Preview(bCtx.Background(), " ")
	s.True(domain.IsKind(err, domain.KindURIParsingError))
}
