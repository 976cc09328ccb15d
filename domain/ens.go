package domain

import (
	"strings"
	"time"

	"github.com/x-xyz/ensmetadata/base/ctx"
)

// Version tells which ENS contract generation a token lives on.
type Version string

const (
	VersionV1        Version = "v1"
	VersionV1Wrapped Version = "v1w"
	VersionV2        Version = "v2"
)

// GracePeriod is how long an expired .eth registration can still be renewed.
const GracePeriod = 90 * 24 * time.Hour

// EthNode is namehash("eth").
const EthNode = "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"

type ResolverRecord struct {
	Address Address
	Texts   []string
}

type WrappedDomain struct {
	Fuses      uint32
	ExpiryDate int64
}

type DomainRecord struct {
	Id            string
	LabelName     string
	Labelhash     string
	Name          string
	CreatedAt     int64
	ParentId      string
	Resolver      *ResolverRecord
	WrappedDomain *WrappedDomain
}

// HasText reports whether the resolver of the domain exposes the text key.
func (d *DomainRecord) HasText(key string) bool {
	if d == nil || d.Resolver == nil {
		return false
	}
	for _, k := range d.Resolver.Texts {
		if k == key {
			return true
		}
	}
	return false
}

func (d *DomainRecord) IsSecondLevelEth() bool {
	return strings.EqualFold(d.ParentId, EthNode)
}

type Registration struct {
	LabelName        string
	RegistrationDate int64
	ExpiryDate       int64
}

// GraceExpiry is the moment the registration can no longer be renewed.
func (r Registration) GraceExpiry() time.Time {
	return time.Unix(r.ExpiryDate, 0).Add(GracePeriod)
}

type VersionResult struct {
	Version Version
	Id      Identifier
}

type DomainRequest struct {
	Network         NetworkCfg
	ContractAddress Address
	Identifier      Identifier
	Version         Version
	LoadImages      bool
	Host            string
}

type IndexerRepository interface {
	GetDomainById(c ctx.Ctx, endpoint string, id string) (*DomainRecord, error)
	GetDomainByLabelhash(c ctx.Ctx, endpoint string, labelhash string, parent string) (*DomainRecord, error)
	GetRegistrations(c ctx.Ctx, endpoint string, labelhash string) ([]Registration, error)
	Ping(c ctx.Ctx, endpoint string) error
}

type VersionUseCase interface {
	Resolve(c ctx.Ctx, network NetworkCfg, contract Address, id Identifier) (*VersionResult, error)
}

type MetadataUseCase interface {
	GetDomain(c ctx.Ctx, req *DomainRequest) (*Metadata, error)
	Preview(c ctx.Ctx, name string) (*Metadata, error)
}
