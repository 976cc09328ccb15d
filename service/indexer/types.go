package indexer

import (
	"encoding/json"
	"strconv"

	"github.com/x-xyz/ensmetadata/domain"
)

type gqlDomain struct {
	Id        string `json:"id"`
	LabelName string `json:"labelName"`
	Labelhash string `json:"labelhash"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	Parent    *struct {
		Id string `json:"id"`
	} `json:"parent"`
	Resolver *struct {
		Address string   `json:"address"`
		Texts   []string `json:"texts"`
	} `json:"resolver"`
	WrappedDomain *struct {
		Fuses      json.Number `json:"fuses"`
		ExpiryDate string      `json:"expiryDate"`
	} `json:"wrappedDomain"`
}

type gqlRegistration struct {
	LabelName        string `json:"labelName"`
	RegistrationDate string `json:"registrationDate"`
	ExpiryDate       string `json:"expiryDate"`
}

// subgraph BigInt values arrive as decimal strings
func parseInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func (d *gqlDomain) toDomain() *domain.DomainRecord {
	r := &domain.DomainRecord{
		Id:        d.Id,
		LabelName: d.LabelName,
		Labelhash: d.Labelhash,
		Name:      d.Name,
		CreatedAt: parseInt64(d.CreatedAt),
	}
	if d.Parent != nil {
		r.ParentId = d.Parent.Id
	}
	if d.Resolver != nil {
		r.Resolver = &domain.ResolverRecord{
			Address: domain.Address(d.Resolver.Address),
			Texts:   d.Resolver.Texts,
		}
	}
	if d.WrappedDomain != nil {
		fuses, _ := strconv.ParseUint(d.WrappedDomain.Fuses.String(), 10, 32)
		r.WrappedDomain = &domain.WrappedDomain{
			Fuses:      uint32(fuses),
			ExpiryDate: parseInt64(d.WrappedDomain.ExpiryDate),
		}
	}
	return r
}

func (r gqlRegistration) toDomain() domain.Registration {
	return domain.Registration{
		LabelName:        r.LabelName,
		RegistrationDate: parseInt64(r.RegistrationDate),
		ExpiryDate:       parseInt64(r.ExpiryDate),
	}
}
