package domain

import "strings"

// NetworkCfg is everything needed to resolve names on one ENS deployment.
type NetworkCfg struct {
	Name        string
	ChainId     ChainId
	RpcUrl      string
	SubgraphUrl string
	Registrar   Address
	NameWrapper Address
	Registry    Address
}

// Networks indexes network configs by their lowercased name.
type Networks map[string]NetworkCfg

func (n Networks) Get(name string) (NetworkCfg, error) {
	cfg, ok := n[strings.ToLower(name)]
	if !ok {
		return NetworkCfg{}, Errorf(KindUnsupportedNetwork, "network %q is not supported", name)
	}
	return cfg, nil
}

// ByChainId finds the network configured for chainId.
func (n Networks) ByChainId(chainId ChainId) (NetworkCfg, bool) {
	for _, cfg := range n {
		if cfg.ChainId == chainId {
			return cfg, true
		}
	}
	return NetworkCfg{}, false
}

func (n Networks) Names() []string {
	names := make([]string, 0, len(n))
	for k := range n {
		names = append(names, k)
	}
	return names
}
