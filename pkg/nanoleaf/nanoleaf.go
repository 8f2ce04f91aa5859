package nanoleaf

import (
	"fmt"
	"net/http"

	"github.com/miguelangel-nubla/ipv6bracket/pkg/registry"
)

const (
	Name        = "nanoleaf"
	DefaultPort = 16021
)

// Signature is the constructor signature the client registers with.
var Signature = registry.Signature{
	registry.Required("session"),
	registry.Required("host"),
	registry.Optional("token", ""),
	registry.Optional("port", DefaultPort),
}

func init() {
	registry.Register(Name, Signature, Factory)
}

type ArgumentError struct {
	Name string
	Want string
	Got  any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %s: expected %s, got %T", e.Name, e.Want, e.Got)
}

type Nanoleaf struct {
	session *http.Client
	host    string
	token   string
	port    int
	apiURL  string
}

// New interpolates host into the API URL as given. IPv6 literals must already be bracketed.
func New(session *http.Client, host string, token string, port int) *Nanoleaf {
	return &Nanoleaf{
		session: session,
		host:    host,
		token:   token,
		port:    port,
		apiURL:  fmt.Sprintf("http://%s:%d/api/v1/%s", host, port, token),
	}
}

// Factory is the registry entry point for New.
func Factory(args registry.Args) (any, error) {
	bound, err := Signature.Bind(args)
	if err != nil {
		return nil, fmt.Errorf("nanoleaf: %w", err)
	}
	bound.ApplyDefaults()
	a := bound.Arguments

	var session *http.Client
	if v := a["session"]; v != nil {
		s, ok := v.(*http.Client)
		if !ok {
			return nil, &ArgumentError{Name: "session", Want: "*http.Client", Got: v}
		}
		session = s
	}

	host, ok := a["host"].(string)
	if !ok {
		return nil, &ArgumentError{Name: "host", Want: "string", Got: a["host"]}
	}

	var token string
	if v := a["token"]; v != nil {
		if token, ok = v.(string); !ok {
			return nil, &ArgumentError{Name: "token", Want: "string", Got: v}
		}
	}

	port, ok := a["port"].(int)
	if !ok {
		return nil, &ArgumentError{Name: "port", Want: "int", Got: a["port"]}
	}

	return New(session, host, token, port), nil
}

func (n *Nanoleaf) Session() *http.Client {
	return n.session
}

func (n *Nanoleaf) Host() string {
	return n.host
}

func (n *Nanoleaf) Token() string {
	return n.token
}

func (n *Nanoleaf) Port() int {
	return n.port
}

// APIURL is derived once in New and is read-only afterwards.
func (n *Nanoleaf) APIURL() string {
	return n.apiURL
}
