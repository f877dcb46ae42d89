package flickr

import (
	"context"
	"fmt"
)

type User struct {
	entity

	// Kept for callers of NewLegacyUser; the service ignores them.
	email    string
	password string

	prettyURL       string
	prettyURLLoaded bool
}

type TagCount struct {
	Tag   string
	Count int
}

// NewUser builds a user from its NSID. Every field of attrs, username and
// name included, stays in the attribute bag.
func NewUser(id, apiKey string, attrs map[string]any) *User {
	return &User{entity: newEntity(id, apiKey, attrs)}
}

// NewLegacyUser is the old positional constructor. email and password are
// stored but unused.
func NewLegacyUser(id, username, email, password, apiKey string) *User {
	u := NewUser(id, apiKey, map[string]any{"username": username})
	u.email, u.password = email, password
	return u
}

// userFromRow builds a user from a response element, where the id may come
// as "nsid" or "id".
func userFromRow(c *Client, row map[string]any) *User {
	id := Text(row["nsid"])
	if id == "" {
		id = Text(row["id"])
	}
	u := NewUser(id, "", row)
	if c != nil {
		u.Bind(c)
	}
	return u
}

func (u *User) Equal(other *User) bool {
	return other != nil && u.id == other.id
}

func (u *User) Username() string { return u.attrs.String("username") }

// nameKeys are the fields the service uses for a display name, in order of
// preference.
var nameKeys = []string{"name", "realname", "fullname"}

func (u *User) Name() string {
	for _, key := range nameKeys {
		if name := u.attrs.String(key); name != "" {
			return name
		}
	}
	return ""
}

func (u *User) Email() string { return u.email }

// URL is the profile page addressed by NSID.
func (u *User) URL() string {
	return "http://" + WebHost + "/people/" + u.id + "/"
}

func (u *User) PhotosURL() string {
	return "http://" + WebHost + "/photos/" + u.id + "/"
}

// PrettyURL is the profile page under the user's chosen alias, asked once
// and cached.
func (u *User) PrettyURL(ctx context.Context) (string, error) {
	if u.prettyURLLoaded {
		return u.prettyURL, nil
	}
	c, err := u.remote()
	if err != nil {
		return "", err
	}
	resp, err := c.Invoke(ctx, "urls.getUserProfile", Params{"user_id": u.id})
	if err != nil {
		return "", err
	}
	u.prettyURL = Text(Dig(resp, "user", "url"))
	u.prettyURLLoaded = true
	return u.prettyURL, nil
}

// Groups lists the user's public groups.
func (u *User) Groups(ctx context.Context) ([]*Group, error) {
	c, err := u.remote()
	if err != nil {
		return nil, err
	}
	resp, err := c.Invoke(ctx, "people.getPublicGroups", Params{"user_id": u.id})
	if err != nil {
		return nil, err
	}
	return groupsFrom(c, Dig(resp, "groups", "group")), nil
}

func (u *User) photos(ctx context.Context, method string) (*PhotoCollection, error) {
	c, err := u.remote()
	if err != nil {
		return nil, err
	}
	return c.PhotosRequest(ctx, method, Params{"user_id": u.id})
}

func (u *User) Photos(ctx context.Context) (*PhotoCollection, error) {
	return u.photos(ctx, "people.getPublicPhotos")
}

func (u *User) Favorites(ctx context.Context) (*PhotoCollection, error) {
	return u.photos(ctx, "favorites.getPublicList")
}

// ContactsPhotos lists recent public photos from the user's contacts.
func (u *User) ContactsPhotos(ctx context.Context) (*PhotoCollection, error) {
	return u.photos(ctx, "photos.getContactsPublicPhotos")
}

func (u *User) Contacts(ctx context.Context) ([]*User, error) {
	c, err := u.remote()
	if err != nil {
		return nil, err
	}
	resp, err := c.Invoke(ctx, "contacts.getPublicList", Params{"user_id": u.id})
	if err != nil {
		return nil, err
	}
	var contacts []*User
	for _, row := range Rows(Dig(resp, "contacts", "contact")) {
		contacts = append(contacts, userFromRow(c, row))
	}
	return contacts, nil
}

func (u *User) Photosets(ctx context.Context) ([]*Photoset, error) {
	c, err := u.remote()
	if err != nil {
		return nil, err
	}
	resp, err := c.Invoke(ctx, "photosets.getList", Params{"user_id": u.id})
	if err != nil {
		return nil, err
	}
	var sets []*Photoset
	for _, row := range Rows(Dig(resp, "photosets", "photoset")) {
		sets = append(sets, c.Photoset(Text(row["id"]), row))
	}
	return sets, nil
}

func (u *User) Tags(ctx context.Context) ([]string, error) {
	c, err := u.remote()
	if err != nil {
		return nil, err
	}
	resp, err := c.Invoke(ctx, "tags.getListUser", Params{"user_id": u.id})
	if err != nil {
		return nil, err
	}
	tags := []string{}
	for _, tag := range CoerceToList(Dig(resp, "who", "tags", "tag")) {
		tags = append(tags, Text(tag))
	}
	return tags, nil
}

func (u *User) PopularTags(ctx context.Context) ([]TagCount, error) {
	c, err := u.remote()
	if err != nil {
		return nil, err
	}
	resp, err := c.Invoke(ctx, "tags.getListUserPopular", Params{"user_id": u.id})
	if err != nil {
		return nil, fmt.Errorf("popular tags of %s: %w", u.id, err)
	}
	tags := []TagCount{}
	for _, row := range Rows(Dig(resp, "who", "tags", "tag")) {
		tags = append(tags, TagCount{Tag: Text(row["content"]), Count: atoi(Text(row["count"]))})
	}
	return tags, nil
}
