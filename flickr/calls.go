package flickr

import (
	"context"
	"fmt"
)

type License struct {
	ID   string
	Name string
	URL  string
}

// PhotosRequest calls a method that lists photos and wraps the rows in a
// PhotoCollection bound to c. A response without photo rows gives an empty
// collection.
func (c *Client) PhotosRequest(ctx context.Context, method string, params Params) (*PhotoCollection, error) {
	resp, err := c.Invoke(ctx, method, params)
	if err != nil {
		return nil, err
	}

	container := photoContainer(resp)
	if container == nil || len(CoerceToList(container["photo"])) == 0 {
		return &PhotoCollection{Photos: []*Photo{}}, nil
	}

	pc := NewPhotoCollection(resp, c.apiKey)
	for _, p := range pc.Photos {
		p.Bind(c)
	}
	return pc, nil
}

func (c *Client) PhotosSearch(ctx context.Context, params Params) (*PhotoCollection, error) {
	return c.PhotosRequest(ctx, "photos.search", params)
}

// Photos searches photos; with no criteria the service returns recent
// public photos.
func (c *Client) Photos(ctx context.Context, params Params) (*PhotoCollection, error) {
	return c.PhotosSearch(ctx, params)
}

func (c *Client) Recent(ctx context.Context, params Params) (*PhotoCollection, error) {
	return c.PhotosRequest(ctx, "photos.getRecent", params)
}

func (c *Client) Interesting(ctx context.Context, params Params) (*PhotoCollection, error) {
	return c.PhotosRequest(ctx, "interestingness.getList", params)
}

// Users finds a user by email, falling back to a lookup by username when
// that fails for any reason. The username lookup's error is returned if both
// fail.
func (c *Client) Users(ctx context.Context, identifier string) (*User, error) {
	resp, err := c.Invoke(ctx, "people.findByEmail", Params{"find_email": identifier})
	if err != nil {
		c.log.Debug("user not found by email", "err", err)
		resp, err = c.Invoke(ctx, "people.findByUsername", Params{"username": identifier})
		if err != nil {
			return nil, err
		}
	}

	row := rowOf(resp["user"])
	if row == nil {
		return nil, fmt.Errorf("user lookup for %q: response has no user", identifier)
	}
	return userFromRow(c, row), nil
}

// Groups searches groups matching query; extra is merged into the search
// parameters.
func (c *Client) Groups(ctx context.Context, query string, extra Params) ([]*Group, error) {
	resp, err := c.Invoke(ctx, "groups.search", extra.With(Params{"text": query}))
	if err != nil {
		return nil, err
	}
	return groupsFrom(c, Dig(resp, "groups", "group")), nil
}

func (c *Client) RelatedTags(ctx context.Context, tag string) ([]string, error) {
	resp, err := c.Invoke(ctx, "tags.getRelated", Params{"tag": tag})
	if err != nil {
		return nil, err
	}
	tags := []string{}
	for _, t := range CoerceToList(Dig(resp, "tags", "tag")) {
		tags = append(tags, Text(t))
	}
	return tags, nil
}

func (c *Client) Licenses(ctx context.Context) ([]License, error) {
	resp, err := c.Invoke(ctx, "photos.licenses.getInfo", nil)
	if err != nil {
		return nil, err
	}
	var licenses []License
	for _, row := range Rows(Dig(resp, "licenses", "license")) {
		licenses = append(licenses, License{
			ID:   Text(row["id"]),
			Name: Text(row["name"]),
			URL:  Text(row["url"]),
		})
	}
	return licenses, nil
}
