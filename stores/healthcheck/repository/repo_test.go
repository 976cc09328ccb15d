package repository

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/ensmetadata/base/ctx"
	bEthereum "github.com/x-xyz/ensmetadata/base/ethereum"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/service/chain"
	"github.com/x-xyz/ensmetadata/service/chain/chaintest"
	"github.com/x-xyz/ensmetadata/service/indexer"
)

func TestPing(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"_meta":{"block":{"number":16000000}}}}`))
	}))
	defer srv.Close()

	client := chain.NewClientWithCallers(map[int32]bEthereum.Caller{1: chaintest.NewCaller()})
	repo := New(client, indexer.NewClient(&indexer.ClientCfg{HttpClient: *srv.Client()}))

	mainnet := domain.NetworkCfg{Name: "mainnet", ChainId: 1, SubgraphUrl: srv.URL}
	req.NoError(repo.PingRpc(ctx.Background(), mainnet))
	req.NoError(repo.PingIndexer(ctx.Background(), mainnet))

	goerli := domain.NetworkCfg{Name: "goerli", ChainId: 5, SubgraphUrl: srv.URL}
	req.Error(repo.PingRpc(ctx.Background(), goerli))
}

func TestPingIndexer_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	repo := New(chain.NewClientWithCallers(nil), indexer.NewClient(&indexer.ClientCfg{HttpClient: *srv.Client()}))
	err := repo.PingIndexer(ctx.Background(), domain.NetworkCfg{Name: "mainnet", SubgraphUrl: srv.URL})
	require.True(t, domain.IsKind(err, domain.KindRecordNotFound))

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	require.Equal(t, http.StatusBadGateway, derr.InternalStatus)
}
