package flickr

import (
	"context"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"log/slog"
	"os"
)

const (
	DefaultEndpoint     = "http://flickr.com/services/rest"
	DefaultAuthEndpoint = "http://flickr.com/services/auth"

	// WebHost serves the human-facing photo and profile pages.
	WebHost = "www.flickr.com"
	// StaticHost serves image files, prefixed with the photo's farm.
	StaticHost = "static.flickr.com"

	FormatREST = "rest"
	FormatJSON = "json"
)

var (
	ErrMissingAPIKey = errors.New("flickr: api key not set")
	ErrNoClient      = errors.New("flickr: entity has no client or api key")
)

// Options configures a Client. Only APIKey is required.
type Options struct {
	APIKey       string
	SharedSecret string
	AuthToken    string

	Endpoint     string
	AuthEndpoint string
	// Format selects the response encoding requested from the service,
	// FormatREST (XML, the default) or FormatJSON.
	Format string

	Transport Transport
	Decoder   Decoder
	Logger    *slog.Logger
}

type Client struct {
	apiKey       string
	sharedSecret string
	authToken    string
	user         *User

	// only set by the legacy login, the service no longer reads them
	email    string
	password string

	endpoint     string
	authEndpoint string
	format       string
	transport    Transport
	decode       Decoder
	log          *slog.Logger
}

func New(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		apiKey:       opts.APIKey,
		sharedSecret: opts.SharedSecret,
		authToken:    opts.AuthToken,
		endpoint:     opts.Endpoint,
		authEndpoint: opts.AuthEndpoint,
		format:       opts.Format,
		transport:    opts.Transport,
		decode:       opts.Decoder,
		log:          opts.Logger,
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	if c.authEndpoint == "" {
		c.authEndpoint = DefaultAuthEndpoint
	}
	if c.format == "" {
		c.format = FormatREST
	}
	if c.format != FormatREST && c.format != FormatJSON {
		return nil, fmt.Errorf("flickr: unknown format %q", c.format)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(nil)
	}
	if c.decode == nil {
		if c.format == FormatJSON {
			c.decode = DecodeJSON
		} else {
			c.decode = DecodeXML
		}
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c, nil
}

// NewLegacy is the positional constructor kept for older callers. When both
// email and password are non-empty it immediately calls Login; otherwise it
// behaves exactly like New. opts may adjust the remaining Options, such as
// Transport or Logger.
func NewLegacy(ctx context.Context, apiKey, email, password, sharedSecret string, opts ...func(*Options)) (*Client, error) {
	o := Options{APIKey: apiKey, SharedSecret: sharedSecret}
	for _, opt := range opts {
		opt(&o)
	}
	c, err := New(o)
	if err != nil {
		return nil, err
	}
	if email != "" && password != "" {
		if err := c.Login(ctx, email, password); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Login performs the old email and password authentication and stores the
// user the service reports.
func (c *Client) Login(ctx context.Context, email, password string) error {
	c.email, c.password = email, password

	resp, err := c.Invoke(ctx, "test.login", Params{"email": email, "password": password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if row := rowOf(resp["user"]); row != nil {
		c.user = userFromRow(c, row)
	}
	return nil
}

// OptionsFromEnv reads client options from FLICKR_* environment variables,
// loading .env and .env.local first if present.
func OptionsFromEnv() (Options, error) {
	err := godotenv.Load(".env", ".env.local")
	if err != nil {
		slog.Debug("no dotenv", "err", err)
	}

	opts := Options{
		APIKey:       os.Getenv("FLICKR_API_KEY"),
		SharedSecret: os.Getenv("FLICKR_SHARED_SECRET"),
		AuthToken:    os.Getenv("FLICKR_AUTH_TOKEN"),
		Endpoint:     os.Getenv("FLICKR_ENDPOINT"),
		Format:       os.Getenv("FLICKR_FORMAT"),
	}
	if opts.APIKey == "" {
		return Options{}, fmt.Errorf("FLICKR_API_KEY not set: %w", ErrMissingAPIKey)
	}
	return opts, nil
}

func (c *Client) APIKey() string { return c.apiKey }

func (c *Client) AuthToken() string { return c.authToken }

func (c *Client) SetAuthToken(token string) { c.authToken = token }

// User is the authenticated user, set by GetTokenFrom or Login.
func (c *Client) User() *User { return c.user }

// Photo returns a photo bound to c.
func (c *Client) Photo(id string, attrs map[string]any) *Photo {
	p := NewPhoto(id, c.apiKey, attrs)
	p.Bind(c)
	return p
}

// Person returns a user bound to c.
func (c *Client) Person(id string, attrs map[string]any) *User {
	u := NewUser(id, c.apiKey, attrs)
	u.Bind(c)
	return u
}

func (c *Client) Group(id string, attrs map[string]any) *Group {
	g := NewGroup(id, c.apiKey, attrs)
	g.Bind(c)
	return g
}

func (c *Client) Photoset(id string, attrs map[string]any) *Photoset {
	s := NewPhotoset(id, c.apiKey, attrs)
	s.Bind(c)
	return s
}
