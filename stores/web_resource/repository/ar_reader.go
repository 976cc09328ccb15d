package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
	"golang.org/x/xerrors"
)

const (
	arUriSchema = "ar://"
	// DefaultArweaveGateway serves ar:// transactions.
	DefaultArweaveGateway = "https://arweave.net"
)

type arReaderRepo struct {
	client     http.Client
	gateway    string
	ctxTimeout time.Duration
	headers    map[string]string
}

func NewArReaderRepo(client http.Client, gateway string, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	if gateway == "" {
		gateway = DefaultArweaveGateway
	}
	return &arReaderRepo{client: client, gateway: strings.TrimSuffix(gateway, "/"), ctxTimeout: timeout, headers: headers}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	if !strings.HasPrefix(url, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri")
	}
	url = r.gateway + "/" + strings.TrimPrefix(url, arUriSchema)
	return get(c, r.client, r.ctxTimeout, url, r.headers)
}
