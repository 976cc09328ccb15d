package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/domain/healthcheck/mocks"
)

var networks = domain.Networks{
	"mainnet": {Name: "mainnet", ChainId: 1},
	"goerli":  {Name: "goerli", ChainId: 5},
}

func TestCheck(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewHealthCheckRepo(t)
	repo.On("PingRpc", mock.Anything, mock.Anything).Return(nil).Twice()
	repo.On("PingIndexer", mock.Anything, mock.Anything).Return(nil).Twice()

	req.NoError(New(repo, networks).Check(ctx.Background()))
}

func TestCheck_StopsAtFirstFailure(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewHealthCheckRepo(t)
	errDown := errors.New("connection refused")
	repo.On("PingRpc", mock.Anything, networks["goerli"]).Return(nil).Once()
	repo.On("PingIndexer", mock.Anything, networks["goerli"]).Return(errDown).Once()

	err := New(repo, networks).Check(ctx.Background())
	req.ErrorIs(err, errDown)
	repo.AssertNotCalled(t, "PingRpc", mock.Anything, networks["mainnet"])
}
