package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"regexp"
	"strings"

	"github.com/ipfs/go-cid"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
)

const (
	DefaultIpfsGateway    = "https://ipfs.io"
	DefaultArweaveGateway = "https://arweave.net"
)

type WebResourceUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	ArUriReader   domain.WebResourceReaderRepository
	// IpfsGateway and ArweaveGateway are the public gateways normalised urls point to
	IpfsGateway    string
	ArweaveGateway string
}

type webResourceUseCase struct {
	httpReader     domain.WebResourceReaderRepository
	ipfsReader     domain.WebResourceReaderRepository
	dataUriReader  domain.WebResourceReaderRepository
	arUriReader    domain.WebResourceReaderRepository
	ipfsGateway    string
	arweaveGateway string
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	u := &webResourceUseCase{
		httpReader:     cfg.HttpReader,
		ipfsReader:     cfg.IpfsReader,
		dataUriReader:  cfg.DataUriReader,
		arUriReader:    cfg.ArUriReader,
		ipfsGateway:    strings.TrimSuffix(cfg.IpfsGateway, "/"),
		arweaveGateway: strings.TrimSuffix(cfg.ArweaveGateway, "/"),
	}
	if u.ipfsGateway == "" {
		u.ipfsGateway = DefaultIpfsGateway
	}
	if u.arweaveGateway == "" {
		u.arweaveGateway = DefaultArweaveGateway
	}
	return u
}

// ipfs://ipfs/, ipfs://, /ipfs/ and ipfs/ prefixes, same for ipns. An inner
// ipfs/ or ipns/ segment names the namespace.
var ipfsPrefixRegex = regexp.MustCompile(`^(?:(ipfs|ipns)://(?:(ipfs|ipns)/)?|/?(ipfs|ipns)/)`)

// ipfsPath returns the ipfs/<cid>/... or ipns/<name>/... path uri points to.
func ipfsPath(uri string) (string, bool) {
	if m := ipfsPrefixRegex.FindStringSubmatchIndex(uri); m != nil {
		var namespace string
		switch {
		case m[4] >= 0:
			namespace = uri[m[4]:m[5]]
		case m[2] >= 0:
			namespace = uri[m[2]:m[3]]
		default:
			namespace = uri[m[6]:m[7]]
		}
		rest := uri[m[1]:]
		if rest == "" {
			return "", false
		}
		return namespace + "/" + rest, true
	}
	if strings.Contains(uri, "://") || strings.HasPrefix(uri, "data:") {
		return "", false
	}
	// bare cid, optionally followed by a subpath
	if _, err := cid.Decode(strings.SplitN(uri, "/", 2)[0]); err == nil {
		return "ipfs/" + uri, true
	}
	return "", false
}

func (u *webResourceUseCase) NormalizeURI(uri string) string {
	uri = strings.TrimSpace(uri)
	if strings.HasPrefix(uri, "data:") {
		return uri
	}
	if path, ok := ipfsPath(uri); ok {
		return u.ipfsGateway + "/" + path
	}
	if strings.HasPrefix(uri, "ar://") {
		return u.arweaveGateway + "/" + strings.TrimPrefix(uri, "ar://")
	}
	return uri
}

// Get returns nil without error when the resource could not be reached.
func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil && isUnreachable(err) {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("resource unreachable")
		return nil, nil
	}
	return data, err
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.Get(c, rawUrl)
	if err != nil || data == nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	rawUrl = strings.TrimSpace(rawUrl)

	if strings.HasPrefix(rawUrl, "data:") {
		return u.dataUriReader.Get(c, rawUrl)
	}
	if path, ok := ipfsPath(rawUrl); ok {
		data, err = u.ipfsReader.Get(c, path)
		if err != nil {
			c.WithFields(log.Fields{
				"url":  rawUrl,
				"path": path,
				"err":  err,
			}).Error("ipfsReader.Get failed")
		}
		return data, err
	}

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, err
	}

	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ar":
		data, err = u.arUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err == nil {
		return data, nil
	}

	if pUrl.Scheme == "https" {
		ipfsUrl := getIpfsUrl(rawUrl)
		if len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl)
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Error("failed to fetch")
	return nil, err
}

func isUnreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

var dedicatedPinataRegex = regexp.MustCompile(`^https://.*.mypinata.cloud/ipfs/`)

// getIpfsUrl turns well known gateway urls back into ipfs uris so another
// gateway can be tried.
func getIpfsUrl(url string) string {
	var (
		pinataPrefix     = "https://gateway.pinata.cloud/ipfs/"
		ipfsIoPrefix     = "https://ipfs.io/ipfs/"
		cloudflarePrefix = "https://cloudflare-ipfs.com/ipfs/"
		foundationPrefix = "https://ipfs.foundation.app/ipfs/"
		ipfsPrefix       = "ipfs://"
	)

	fixedPrefix := []string{pinataPrefix, ipfsIoPrefix, cloudflarePrefix, foundationPrefix}
	for _, p := range fixedPrefix {
		if strings.HasPrefix(url, p) {
			return strings.Replace(url, p, ipfsPrefix, 1)
		}
	}
	if dedicatedPinataRegex.Match([]byte(url)) {
		return dedicatedPinataRegex.ReplaceAllLiteralString(url, ipfsPrefix)
	}
	return ""
}
