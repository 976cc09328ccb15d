package metrics

import (
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensmetadata/base/log"
)

const (
	defaultAgentPort = 8125
	// statsd clients share the load round robin
	defaultPoolSize = 16
	// counters buffered by each client before a flush
	defaultBufferSize = 10
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

type clientPool struct {
	idx     uint32
	clients []statsCli
}

var (
	poolOnce sync.Once
	pool     *clientPool
)

// defaultPool connects to the agent at datadog_host:datadog_port on first
// use. Without a host every metric goes to the debug log.
func defaultPool() *clientPool {
	poolOnce.Do(func() {
		pool = newClientPool(agentAddr(), defaultPoolSize, viper.GetInt("datadog_buffer"))
	})
	return pool
}

func agentAddr() string {
	host := viper.GetString("datadog_host")
	if host == "" {
		return ""
	}
	port := viper.GetInt("datadog_port")
	if port == 0 {
		port = defaultAgentPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func newClientPool(addr string, size, buffer int) *clientPool {
	if buffer <= 0 {
		buffer = defaultBufferSize
	}
	p := &clientPool{clients: make([]statsCli, size)}
	for i := range p.clients {
		if addr == "" {
			p.clients[i] = &LogClient{}
			continue
		}
		c, err := statsd.NewBuffered(addr, buffer)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("statsd.NewBuffered failed, logging metrics instead")
			p.clients[i] = &LogClient{}
			continue
		}
		p.clients[i] = c
	}
	log.Log().WithFields(log.Fields{"addr": addr, "clients": size}).Info("metrics client pool ready")
	return p
}

func (p *clientPool) next() statsCli {
	i := atomic.AddUint32(&p.idx, 1)
	return p.clients[int(i)%len(p.clients)]
}

// DDMetrics sends bumps to the datadog agent with a fixed set of tags.
type DDMetrics struct {
	ddTags []string
	pool   *clientPool
}

func (dm *DDMetrics) client() statsCli {
	if dm.pool == nil {
		return defaultPool().next()
	}
	return dm.pool.next()
}

// tags joins the fixed tags with key/value pairs without sharing backing
// arrays between calls.
func (dm *DDMetrics) tags(kvs []string) []string {
	res := make([]string, 0, len(dm.ddTags)+len(kvs)/2)
	res = append(res, dm.ddTags...)
	return append(res, parseTag(kvs)...)
}

func report(fn, key string, val interface{}, err error) {
	if err == nil {
		return
	}
	log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": fn}).Error("Bump fail")
}

// BumpAvg is reported as a gauge, statsd has no average type.
func (dm *DDMetrics) BumpAvg(key string, val, sampleRate float64, tags ...string) {
	report("BumpAvg", key, val, dm.client().Gauge(key, val, dm.tags(tags), sampleRate))
}

func (dm *DDMetrics) BumpSum(key string, val, sampleRate float64, tags ...string) {
	report("BumpSum", key, val, dm.client().Count(key, int64(val), dm.tags(tags), sampleRate))
}

func (dm *DDMetrics) BumpHistogram(key string, val, sampleRate float64, tags ...string) {
	report("BumpHistogram", key, val, dm.client().Histogram(key, val, dm.tags(tags), sampleRate))
}

// BumpTime starts a timer reported in milliseconds when End is called.
func (dm *DDMetrics) BumpTime(key string, sampleRate float64, tags ...string) Ender {
	return &ddTimeTracker{
		start:      time.Now(),
		key:        key,
		tags:       dm.tags(tags),
		sampleRate: sampleRate,
		client:     dm.client,
	}
}

// parseTag pairs up key/value tags. A trailing key without value is dropped.
func parseTag(kvs []string) []string {
	if len(kvs)%2 != 0 {
		log.Log().WithField("tags", kvs).Warn("odd number of tag elements")
		kvs = kvs[:len(kvs)-1]
	}
	res := make([]string, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		res = append(res, kvs[i]+":"+kvs[i+1])
	}
	return res
}

type ddTimeTracker struct {
	start      time.Time
	key        string
	tags       []string
	sampleRate float64
	client     func() statsCli
}

func (dt *ddTimeTracker) End() {
	ms := float64(time.Since(dt.start)) / float64(time.Millisecond)
	report("BumpTime", dt.key, ms, dt.client().TimeInMilliseconds(dt.key, ms, dt.tags, dt.sampleRate))
}
