package ens

import (
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/service/chain/contract"
	"golang.org/x/xerrors"
)

type impl struct {
	registry contract.RegistryContract
}

func New(registry contract.RegistryContract) ENS {
	return &impl{registry: registry}
}

func (im *impl) Resolver(ctx ctx.Ctx, network domain.NetworkCfg, name string) (domain.Address, error) {
	resolver, err := im.registry.Resolver(ctx, int32(network.ChainId), string(network.Registry), NameHash(name))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"name":    name,
			"network": network.Name,
		}).Error("failed to registry.Resolver")
		return "", xerrors.Errorf("resolver of %s: %w", name, err)
	}
	if resolver.IsEmpty() {
		return "", domain.Errorf(domain.KindResolverNotFound, "there is no resolver set under given address")
	}
	return resolver, nil
}

func (im *impl) Text(ctx ctx.Ctx, network domain.NetworkCfg, name string, key string) (string, error) {
	resolver, err := im.Resolver(ctx, network, name)
	if err != nil {
		return "", err
	}
	text, err := im.registry.Text(ctx, int32(network.ChainId), string(resolver), NameHash(name), key)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"name":     name,
			"key":      key,
			"resolver": resolver,
		}).Error("failed to registry.Text")
		return "", xerrors.Errorf("text %s of %s: %w", key, name, err)
	}
	if text == "" {
		return "", domain.Errorf(domain.KindTextRecordNotFound, "there is no %s record", key)
	}
	return text, nil
}

func (im *impl) Owner(ctx ctx.Ctx, network domain.NetworkCfg, name string) (domain.Address, error) {
	owner, err := im.registry.Owner(ctx, int32(network.ChainId), string(network.Registry), NameHash(name))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("failed to registry.Owner")
		return "", xerrors.Errorf("owner of %s: %w", name, err)
	}
	return owner, nil
}
