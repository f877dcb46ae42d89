package flickr

// Attrs is the open attribute bag behind every entity, holding whatever
// fields the service returned.
type Attrs map[string]any

// String returns the text of the attribute, "" when unset.
func (a Attrs) String(key string) string {
	return Text(a[key])
}

type entity struct {
	id     string
	apiKey string
	client *Client
	attrs  Attrs
}

func newEntity(id, apiKey string, attrs map[string]any) entity {
	e := entity{id: id, apiKey: apiKey, attrs: make(Attrs, len(attrs))}
	for k, v := range attrs {
		if k == "id" {
			continue
		}
		e.attrs[k] = v
	}
	return e
}

func (e *entity) ID() string { return e.id }

func (e *entity) APIKey() string { return e.apiKey }

// Get looks up an attribute by its exact (case-sensitive) key, returning nil
// for unknown keys.
func (e *entity) Get(key string) any {
	if key == "id" {
		return e.id
	}
	return e.attrs[key]
}

// Set overwrites an attribute. It never resets lazy-load state.
func (e *entity) Set(key string, value any) {
	if key == "id" {
		e.id = Text(value)
		return
	}
	e.attrs[key] = value
}

// Bind attaches the entity to c for follow-up calls.
func (e *entity) Bind(c *Client) {
	e.client = c
	if e.apiKey == "" && c != nil {
		e.apiKey = c.apiKey
	}
}

// Client returns the bound client. An entity built from an api key alone
// gets a client created on first use; a fully detached entity returns nil.
func (e *entity) Client() *Client {
	if e.client == nil && e.apiKey != "" {
		c, err := New(Options{APIKey: e.apiKey})
		if err == nil {
			e.client = c
		}
	}
	return e.client
}

func (e *entity) remote() (*Client, error) {
	c := e.Client()
	if c == nil {
		return nil, ErrNoClient
	}
	return c, nil
}
