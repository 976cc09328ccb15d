package usecase

import (
	"math/big"
	"strings"

	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/service/chain/contract"
	"github.com/x-xyz/ensmetadata/service/ens"
	"golang.org/x/xerrors"
)

type VersionUseCaseCfg struct {
	Registrar   contract.RegistrarContract
	NameWrapper contract.NameWrapperContract
}

type versionUseCase struct {
	registrar   contract.RegistrarContract
	nameWrapper contract.NameWrapperContract
}

func NewVersionUseCase(cfg *VersionUseCaseCfg) domain.VersionUseCase {
	return &versionUseCase{
		registrar:   cfg.Registrar,
		nameWrapper: cfg.NameWrapper,
	}
}

func (u *versionUseCase) Resolve(c bCtx.Ctx, network domain.NetworkCfg, contractAddr domain.Address, id domain.Identifier) (*domain.VersionResult, error) {
	ctx := bCtx.WithLogFields(c, log.Fields{
		"network":    network.Name,
		"contract":   contractAddr,
		"identifier": id.String(),
	})
	if n := id.Int(); n != nil && n.BitLen() > 256 {
		return nil, domain.NewError(domain.KindRecordNotFound, "invalid identifier").Wrap(domain.ErrInvalidIdentifier)
	}
	if contractAddr.Equals(network.Registrar) {
		return u.resolveLegacy(ctx, network, id)
	}
	return u.resolveWrapped(ctx, network, contractAddr, id)
}

// resolveLegacy never yields V2, the legacy registrar only knows labelhashes.
func (u *versionUseCase) resolveLegacy(ctx bCtx.Ctx, network domain.NetworkCfg, id domain.Identifier) (*domain.VersionResult, error) {
	labelhash := id.Int()
	if labelhash == nil {
		label := strings.TrimSuffix(id.String(), ".eth")
		h := ens.LabelHash(label)
		labelhash = new(big.Int).SetBytes(h[:])
	}
	chainId := int32(network.ChainId)

	owner, err := u.registrar.OwnerOf(ctx, chainId, string(network.Registrar), labelhash)
	if err != nil {
		ctx.WithField("err", err).Info("registrar.OwnerOf failed")
		return nil, domain.NewError(domain.KindOwnerNotFound, "cannot get owner of the name").Wrap(err)
	}
	res := &domain.VersionResult{Version: domain.VersionV1, Id: domain.IdentifierFromInt(labelhash)}
	if owner.Equals(network.NameWrapper) {
		res.Version = domain.VersionV1Wrapped
		return res, nil
	}

	// A failing probe degrades to V1. Owners that are not contracts revert here
	// and a flaky rpc makes a wrapped name look unwrapped.
	isWrapper, err := u.nameWrapper.SupportsNameWrapper(ctx, chainId, string(owner))
	if err != nil {
		ctx.WithFields(log.Fields{
			"owner": owner,
			"err":   err,
		}).Warn("supportsInterface probe failed, assuming v1")
		return res, nil
	}
	if isWrapper {
		res.Version = domain.VersionV1Wrapped
	}
	return res, nil
}

func (u *versionUseCase) resolveWrapped(ctx bCtx.Ctx, network domain.NetworkCfg, contractAddr domain.Address, id domain.Identifier) (*domain.VersionResult, error) {
	chainId := int32(network.ChainId)
	if !contractAddr.Equals(network.NameWrapper) {
		ok, err := u.nameWrapper.SupportsNameWrapper(ctx, chainId, string(contractAddr))
		if err != nil || !ok {
			ctx.WithField("err", err).Info("contract is not a name wrapper")
			return nil, domain.Errorf(domain.KindContractMismatch, "%s is not an ENS contract", contractAddr).Wrap(err)
		}
	}

	var node [32]byte
	if n := id.Int(); n != nil {
		n.FillBytes(node[:])
	} else {
		node = ens.NameHash(id.String())
	}

	wrapped, err := u.nameWrapper.IsWrapped(ctx, chainId, string(contractAddr), node)
	if err != nil {
		ctx.WithField("err", err).Error("nameWrapper.IsWrapped failed")
		return nil, xerrors.Errorf("isWrapped: %w", err)
	}
	if !wrapped {
		return nil, domain.NewError(domain.KindRecordNotFound, "name is not wrapped")
	}
	return &domain.VersionResult{
		Version: domain.VersionV2,
		Id:      domain.IdentifierFromInt(new(big.Int).SetBytes(node[:])),
	}, nil
}
