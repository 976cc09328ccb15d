// Package bootstrap builds the use cases of the service from the viper config.
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/viper"
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/domain/avatar"
	"github.com/x-xyz/ensmetadata/service/chain"
	"github.com/x-xyz/ensmetadata/service/chain/contract"
	"github.com/x-xyz/ensmetadata/service/ens"
	"github.com/x-xyz/ensmetadata/service/indexer"
	"github.com/x-xyz/ensmetadata/service/renderer"
	avatar_usecase "github.com/x-xyz/ensmetadata/stores/avatar/usecase"
	metadata_usecase "github.com/x-xyz/ensmetadata/stores/metadata/usecase"
	version_usecase "github.com/x-xyz/ensmetadata/stores/version/usecase"
	web_resource_repository "github.com/x-xyz/ensmetadata/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/ensmetadata/stores/web_resource/usecase"
)

const defaultRegistry = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"

// ReadConfig loads the yaml config at path into viper.
func ReadConfig(path string) error {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("http.timeout", 10*time.Second)
	viper.SetDefault("avatar.timeout", 10*time.Second)
	viper.SetDefault("rpc.maxConcurrency", 32)
	viper.SetDefault("inameWrapper", contract.DefaultNameWrapperInterfaceId)
	viper.SetDefault("ipfs.gateway", web_resource_usecase.DefaultIpfsGateway)
	viper.SetDefault("arweave.gateway", web_resource_usecase.DefaultArweaveGateway)
	return viper.ReadInConfig()
}

// Networks reads the `networks` section, keyed by lowercased network name.
func Networks() domain.Networks {
	networks := domain.Networks{}
	for name := range viper.GetStringMap("networks") {
		pfx := "networks." + name + "."
		registry := viper.GetString(pfx + "registry")
		if registry == "" {
			registry = defaultRegistry
		}
		networks[strings.ToLower(name)] = domain.NetworkCfg{
			Name:        strings.ToLower(name),
			ChainId:     domain.ChainId(viper.GetInt32(pfx + "chainId")),
			RpcUrl:      viper.GetString(pfx + "rpcUrl"),
			SubgraphUrl: viper.GetString(pfx + "subgraphUrl"),
			Registrar:   domain.Address(viper.GetString(pfx + "registrar")),
			NameWrapper: domain.Address(viper.GetString(pfx + "nameWrapper")),
			Registry:    domain.Address(registry),
		}
	}
	return networks
}

type UseCases struct {
	Networks    domain.Networks
	ChainClient chain.Client
	Indexer     domain.IndexerRepository
	Version     domain.VersionUseCase
	Metadata    domain.MetadataUseCase
	Avatar      avatar.UseCase
	Renderer    *renderer.Renderer
	// DataUri decodes data: urls, the generated images are served through it
	DataUri domain.WebResourceReaderRepository
}

// New dials every configured rpc node and wires the use cases. A node that
// cannot be dialed is logged and its network answers UnsupportedNetwork.
func New(c ctx.Ctx) *UseCases {
	networks := Networks()

	rpcUrls := map[int32]string{}
	for _, n := range networks {
		rpcUrls[int32(n.ChainId)] = n.RpcUrl
	}
	chainClient, err := chain.NewClient(c, &chain.ClientCfg{
		RpcUrls:        rpcUrls,
		MaxConcurrency: viper.GetInt("rpc.maxConcurrency"),
	})
	if err != nil {
		c.WithField("err", err).Warn("some rpc nodes are unavailable")
	}

	httpTimeout := viper.GetDuration("http.timeout")
	httpClient := http.Client{}
	httpReader := web_resource_repository.NewHttpReaderRepo(httpClient, httpTimeout, nil)
	dataUriReader := web_resource_repository.NewDataUriReaderRepo()
	arReader := web_resource_repository.NewArReaderRepo(httpClient, viper.GetString("arweave.gateway"), httpTimeout, nil)
	var ipfsReader domain.WebResourceReaderRepository
	if nodeApi := viper.GetString("ipfs.nodeApi"); nodeApi != "" {
		c.WithField("nodeApi", nodeApi).Info("reading ipfs through node api")
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), httpTimeout)
	} else {
		ipfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(httpClient, viper.GetString("ipfs.gateway"), httpTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:     httpReader,
		IpfsReader:     ipfsReader,
		DataUriReader:  dataUriReader,
		ArUriReader:    arReader,
		IpfsGateway:    viper.GetString("ipfs.gateway"),
		ArweaveGateway: viper.GetString("arweave.gateway"),
	})

	ensService := ens.New(contract.NewRegistry(chainClient))
	avatarUC := avatar_usecase.NewAvatarUseCase(&avatar_usecase.AvatarUseCaseCfg{
		ChainClient: chainClient,
		Erc721:      contract.NewErc721(chainClient),
		Erc1155:     contract.NewErc1155(chainClient),
		Ens:         ensService,
		WebResource: webResource,
	})
	indexerRepo := indexer.NewClient(&indexer.ClientCfg{
		HttpClient: httpClient,
		Timeout:    httpTimeout,
	})
	rend := renderer.New(&renderer.Cfg{})

	log.Log().WithField("networks", networks.Names()).Info("use cases ready")
	return &UseCases{
		Networks:    networks,
		ChainClient: chainClient,
		Indexer:     indexerRepo,
		Version: version_usecase.NewVersionUseCase(&version_usecase.VersionUseCaseCfg{
			Registrar:   contract.NewRegistrar(chainClient),
			NameWrapper: contract.NewNameWrapper(chainClient, viper.GetString("inameWrapper")),
		}),
		Metadata: metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
			Indexer:      indexerRepo,
			Avatar:       avatarUC,
			Ens:          ensService,
			Renderer:     rend,
			MediaTimeout: viper.GetDuration("avatar.timeout"),
		}),
		Avatar:   avatarUC,
		Renderer: rend,
		DataUri:  dataUriReader,
	}
}
