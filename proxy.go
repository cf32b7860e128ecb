package connector

// Proxy is a handle which keeps the owner of a connector reachable, so the
// connector of a temporary owner can be passed around alone. Graph
// operations always resolve the proxy to the wrapped connector, so proxy
// itself is never an edge endpoint.
type Proxy struct {
	c     Connector
	owner interface{}
}

// NewProxy wraps the connector of endpoint e.
func NewProxy(e Endpoint, owner interface{}) *Proxy {
	return &Proxy{
		c:     e.Connector(),
		owner: owner,
	}
}

// Connector returns the wrapped connector.
func (p *Proxy) Connector() Connector {
	return p.c
}

// Owner returns the owner of the wrapped connector.
func (p *Proxy) Owner() interface{} {
	return p.owner
}

// Name returns the name of the wrapped connector.
func (p *Proxy) Name() string {
	return p.c.Name()
}

// Call invokes the wrapped connector.
func (p *Proxy) Call(args ...interface{}) (interface{}, error) {
	return p.c.Call(args...)
}

// Connections returns peers of the wrapped connector.
func (p *Proxy) Connections() []Connector {
	return p.c.Connections()
}

// CheckConnection checks the wrapped connector.
func (p *Proxy) CheckConnection(c Connector) error {
	return p.c.CheckConnection(c.Connector())
}

// Connect connects the wrapped connector one-sided.
func (p *Proxy) Connect(c Connector) error {
	return p.c.Connect(c.Connector())
}

// Disconnect disconnects the wrapped connector one-sided.
func (p *Proxy) Disconnect(c Connector) error {
	return p.c.Disconnect(c.Connector())
}

// DisconnectAll removes all edges of the wrapped connector.
func (p *Proxy) DisconnectAll() error {
	return p.c.DisconnectAll()
}

// NoticeAnnouncement forwards the announcement.
func (p *Proxy) NoticeAnnouncement(c Connector) {
	p.c.NoticeAnnouncement(c)
}

// NoticeValueChange forwards the report.
func (p *Proxy) NoticeValueChange(c Connector) {
	p.c.NoticeValueChange(c)
}

func (p *Proxy) String() string {
	return p.c.Name()
}
