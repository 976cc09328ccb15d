package indexer

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/machinebox/graphql"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
)

const (
	noResultsMessage = "No results found."
	defaultTimeout   = 10 * time.Second
)

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
}

type client struct {
	client  http.Client
	timeout time.Duration
}

// NewClient returns a repository querying the ENS subgraph over GraphQL.
func NewClient(cfg *ClientCfg) domain.IndexerRepository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := cfg.HttpClient
	hc.Transport = statusTransport{base: hc.Transport}
	return &client{
		client:  hc,
		timeout: timeout,
	}
}

func (c *client) GetDomainById(ctx bCtx.Ctx, endpoint string, id string) (*domain.DomainRecord, error) {
	resp := struct {
		Domain *gqlDomain `json:"domain"`
	}{}
	vars := map[string]interface{}{"tokenId": strings.ToLower(id)}
	if err := c.query(ctx, endpoint, getDomainByIdQuery, vars, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("c.query failed")
		return nil, err
	}
	if resp.Domain == nil {
		return nil, nil
	}
	return resp.Domain.toDomain(), nil
}

func (c *client) GetDomainByLabelhash(ctx bCtx.Ctx, endpoint string, labelhash string, parent string) (*domain.DomainRecord, error) {
	resp := struct {
		Domains []gqlDomain `json:"domains"`
	}{}
	vars := map[string]interface{}{
		"tokenId": strings.ToLower(labelhash),
		"parent":  strings.ToLower(parent),
	}
	if err := c.query(ctx, endpoint, getDomainByLabelhashQuery, vars, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"labelhash": labelhash,
			"err":       err,
		}).Error("c.query failed")
		return nil, err
	}
	if len(resp.Domains) == 0 {
		return nil, nil
	}
	return resp.Domains[0].toDomain(), nil
}

func (c *client) GetRegistrations(ctx bCtx.Ctx, endpoint string, labelhash string) ([]domain.Registration, error) {
	resp := struct {
		Registrations []gqlRegistration `json:"registrations"`
	}{}
	vars := map[string]interface{}{"labelhash": strings.ToLower(labelhash)}
	if err := c.query(ctx, endpoint, getRegistrationsQuery, vars, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"labelhash": labelhash,
			"err":       err,
		}).Error("c.query failed")
		return nil, err
	}
	res := make([]domain.Registration, 0, len(resp.Registrations))
	for _, r := range resp.Registrations {
		res = append(res, r.toDomain())
	}
	return res, nil
}

func (c *client) Ping(ctx bCtx.Ctx, endpoint string) error {
	resp := struct{}{}
	return c.query(ctx, endpoint, pingQuery, nil, &resp)
}

// statusTransport turns non-200 answers into errors so the upstream status
// survives the GraphQL client.
type statusTransport struct {
	base http.RoundTripper
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "subgraph returned status " + strconv.Itoa(e.code)
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &statusError{code: resp.StatusCode}
	}
	return resp, nil
}

// query runs a GraphQL request. Any upstream failure is reported as
// RecordNotFound keeping the upstream status for the logs.
func (c *client) query(ctx bCtx.Ctx, endpoint string, query string, vars map[string]interface{}, out interface{}) error {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	gc := graphql.NewClient(endpoint, graphql.WithHTTPClient(&c.client))
	if err := gc.Run(ctx, req, out); err != nil {
		notFound := domain.NewError(domain.KindRecordNotFound, noResultsMessage)
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			notFound = notFound.WithInternalStatus(statusErr.code)
		}
		ctx.WithFields(log.Fields{
			"url":            endpoint,
			"internalStatus": notFound.InternalStatus,
			"err":            err,
		}).Error("gc.Run failed")
		return notFound.Wrap(err)
	}
	return nil
}
