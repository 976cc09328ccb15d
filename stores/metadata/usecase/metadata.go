package usecase

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/viney-shih/goroutines"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/goroutine"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/base/metrics"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/domain/avatar"
	"github.com/x-xyz/ensmetadata/service/ens"
	"github.com/x-xyz/ensmetadata/service/renderer"
	"golang.org/x/xerrors"
)

type MetadataUseCaseCfg struct {
	Indexer  domain.IndexerRepository
	Avatar   avatar.UseCase
	Ens      ens.ENS
	Renderer *renderer.Renderer
	// MediaTimeout bounds the image and avatar lookups, no bound when zero.
	MediaTimeout time.Duration
	Now          func() time.Time
}

type metadataUseCase struct {
	indexer      domain.IndexerRepository
	avatar       avatar.UseCase
	ens          ens.ENS
	renderer     *renderer.Renderer
	mediaTimeout time.Duration
	now          func() time.Time
	met          metrics.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	u := &metadataUseCase{
		indexer:      cfg.Indexer,
		avatar:       cfg.Avatar,
		ens:          cfg.Ens,
		renderer:     cfg.Renderer,
		mediaTimeout: cfg.MediaTimeout,
		now:          cfg.Now,
		met:          metrics.New("metadata"),
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u
}

func (u *metadataUseCase) GetDomain(c bCtx.Ctx, req *domain.DomainRequest) (*domain.Metadata, error) {
	defer u.met.BumpTime("get_domain.time", "network", req.Network.Name, "version", string(req.Version)).End()

	ctx := bCtx.WithLogFields(c, log.Fields{
		"network":    req.Network.Name,
		"contract":   req.ContractAddress,
		"identifier": req.Identifier.String(),
		"version":    req.Version,
	})

	hexId := tokenHex(req)
	record, err := u.queryDomain(ctx, req, hexId)
	if err != nil {
		return nil, err
	}
	if err := checkNamehash(record, req.Version, hexId); err != nil {
		ctx.WithFields(log.Fields{
			"name":     record.Name,
			"recordId": record.Id,
		}).Warn("namehash mismatch")
		return nil, err
	}

	m := u.renderer.NewMetadata(renderer.MetadataParams{
		Name:      record.Name,
		Id:        hexId,
		CreatedAt: record.CreatedAt,
		Version:   req.Version,
	})
	if req.Version == domain.VersionV2 {
		u.renderer.AddWrapperAttributes(m, record.WrappedDomain)
	}

	var (
		regAttrs []domain.Attribute
		regErr   error
	)
	mediaCh := goroutine.RecoverableGo(func() {
		u.setMedia(ctx, req, record, m, hexId)
	})
	attrCh := goroutine.RecoverableGo(func() {
		regAttrs, regErr = u.registrationAttributes(ctx, req.Network, record)
	})
	if err := goroutine.Join(mediaCh, attrCh); err != nil {
		ctx.WithField("err", err).Error("metadata task panicked")
		return nil, xerrors.Errorf("build metadata: %w", err)
	}
	if regErr != nil {
		return nil, regErr
	}
	m.Attributes = append(m.Attributes, regAttrs...)
	return m, nil
}

// tokenHex is the indexer key of the request: the namehash for V2 tokens,
// the labelhash otherwise.
func tokenHex(req *domain.DomainRequest) string {
	if req.Identifier.IsNumeric() {
		return req.Identifier.Hex()
	}
	if req.Version == domain.VersionV2 {
		return ens.NameHashHex(req.Identifier.String())
	}
	return ens.LabelHashHex(strings.TrimSuffix(req.Identifier.String(), ".eth"))
}

func (u *metadataUseCase) queryDomain(ctx bCtx.Ctx, req *domain.DomainRequest, hexId string) (*domain.DomainRecord, error) {
	var (
		record *domain.DomainRecord
		err    error
	)
	if req.Version == domain.VersionV2 {
		record, err = u.indexer.GetDomainById(ctx, req.Network.SubgraphUrl, hexId)
	} else {
		record, err = u.indexer.GetDomainByLabelhash(ctx, req.Network.SubgraphUrl, hexId, domain.EthNode)
	}
	if err != nil {
		ctx.WithField("err", err).Error("indexer query failed")
		return nil, err
	}
	if record == nil || record.Name == "" {
		return nil, domain.NewError(domain.KindRecordNotFound, "No results found.")
	}
	return record, nil
}

func checkNamehash(record *domain.DomainRecord, version domain.Version, hexId string) error {
	computed := ens.NameHashHex(record.Name)
	if !strings.EqualFold(computed, record.Id) {
		return domain.Errorf(domain.KindNamehashMismatch, "namehash of %s does not match the record %s", record.Name, record.Id)
	}
	expected := hexId
	if version != domain.VersionV2 {
		// legacy tokens are labelhashes under .eth
		expected = ens.NameHashHex("[" + strings.TrimPrefix(hexId, "0x") + "].eth")
	}
	if !strings.EqualFold(computed, expected) {
		return domain.Errorf(domain.KindNamehashMismatch, "namehash of %s does not match the token %s", record.Name, hexId)
	}
	return nil
}

type mediaKind int

const (
	mediaImage mediaKind = iota
	mediaAvatar
)

type mediaResult struct {
	kind  mediaKind
	image *avatar.Image
	err   error
}

// setMedia never fails, every image problem falls back to the generated svg.
func (u *metadataUseCase) setMedia(c bCtx.Ctx, req *domain.DomainRequest, record *domain.DomainRecord, m *domain.Metadata, hexId string) {
	if !req.LoadImages {
		m.SetImage(fmt.Sprintf("%s/%s/%s/%s/image", req.Host, req.Network.Name, req.ContractAddress, hexId))
		if record.HasText(avatar.TextKeyAvatar) {
			m.BackgroundImage = fmt.Sprintf("%s/%s/avatar/%s", req.Host, req.Network.Name, record.Name)
		}
		return
	}

	ctx := c
	if u.mediaTimeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(c, u.mediaTimeout)
		defer cancel()
	}

	b := goroutines.NewBatch(2, goroutines.WithBatchSize(2))
	defer b.Close()
	b.Queue(func() (interface{}, error) {
		res := mediaResult{kind: mediaImage}
		if record.HasText(avatar.TextKeyImage) {
			res.image, res.err = u.explicitImage(ctx, req.Network, record.Name)
		}
		return res, nil
	})
	b.Queue(func() (interface{}, error) {
		res := mediaResult{kind: mediaAvatar}
		if record.HasText(avatar.TextKeyAvatar) {
			res.image, res.err = u.avatar.GetImageByName(ctx, req.Network, record.Name)
		}
		return res, nil
	})
	b.QueueComplete()

	var image, avatarImage *avatar.Image
	for ret := range b.Results() {
		res, ok := ret.Value().(mediaResult)
		if !ok {
			continue
		}
		if res.err != nil {
			ctx.WithFields(log.Fields{
				"err":  res.err,
				"kind": res.kind,
			}).Warn("failed to load media, falling back")
			continue
		}
		switch res.kind {
		case mediaImage:
			image = res.image
		case mediaAvatar:
			avatarImage = res.image
		}
	}

	if image != nil {
		m.SetImage(toDataURI(image))
		return
	}
	if avatarImage != nil {
		m.BackgroundImage = toDataURI(avatarImage)
	}
	m.SetImage(u.renderer.GenerateImage(ctx, m))
}

func (u *metadataUseCase) explicitImage(ctx bCtx.Ctx, network domain.NetworkCfg, name string) (*avatar.Image, error) {
	text, err := u.ens.Text(ctx, network, name, avatar.TextKeyImage)
	if err != nil {
		return nil, err
	}
	return u.avatar.GetImage(ctx, network, text, "")
}

func toDataURI(img *avatar.Image) string {
	return fmt.Sprintf("data:%s;base64,%s", img.MimeType, base64.StdEncoding.EncodeToString(img.Data))
}

// registrationAttributes describes the latest registration of a second level
// .eth name. A name past its grace period is reported as expired.
func (u *metadataUseCase) registrationAttributes(ctx bCtx.Ctx, network domain.NetworkCfg, record *domain.DomainRecord) ([]domain.Attribute, error) {
	if !record.IsSecondLevelEth() {
		return nil, nil
	}
	labelhash := record.Labelhash
	if labelhash == "" {
		labelhash = ens.LabelHashHex(record.LabelName)
	}
	regs, err := u.indexer.GetRegistrations(ctx, network.SubgraphUrl, labelhash)
	if err != nil {
		ctx.WithField("err", err).Error("indexer.GetRegistrations failed")
		return nil, err
	}
	if len(regs) == 0 {
		return nil, nil
	}

	latest := regs[0]
	for _, r := range regs[1:] {
		if r.RegistrationDate > latest.RegistrationDate {
			latest = r
		}
	}
	if latest.GraceExpiry().Before(u.now()) {
		return nil, domain.Errorf(domain.KindExpiredName, "'%s' is already been expired at %s.", record.Name, time.Unix(latest.ExpiryDate, 0).UTC().Format(time.RFC1123))
	}
	return []domain.Attribute{
		{TraitType: "Registration Date", DisplayType: domain.DisplayTypeDate, Value: latest.RegistrationDate * 1000},
		{TraitType: "Expiration Date", DisplayType: domain.DisplayTypeDate, Value: latest.ExpiryDate * 1000},
	}, nil
}

// Preview renders the card of name without any chain or indexer lookup.
func (u *metadataUseCase) Preview(c bCtx.Ctx, name string) (*domain.Metadata, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return nil, domain.Errorf(domain.KindURIParsingError, "%q is not a valid name", name)
	}
	m := u.renderer.NewMetadata(renderer.MetadataParams{
		Name:      name,
		Id:        ens.NameHashHex(name),
		CreatedAt: u.now().Unix(),
		Version:   domain.VersionV2,
	})
	image := u.renderer.GenerateImage(c, m)
	if image == "" {
		return nil, xerrors.Errorf("failed to render %s", name)
	}
	m.SetImage(image)
	return m, nil
}
