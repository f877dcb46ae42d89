package flickr

import "context"

// Group fields are late-bound: whatever the search or listing returned.
type Group struct {
	entity
}

func NewGroup(id, apiKey string, attrs map[string]any) *Group {
	return &Group{entity: newEntity(id, apiKey, attrs)}
}

func groupsFrom(c *Client, v any) []*Group {
	groups := []*Group{}
	for _, row := range Rows(v) {
		id := Text(row["nsid"])
		if id == "" {
			id = Text(row["id"])
		}
		attrs := make(map[string]any, len(row))
		for k, v := range row {
			if k != "nsid" {
				attrs[k] = v
			}
		}
		groups = append(groups, c.Group(id, attrs))
	}
	return groups
}

func (g *Group) Equal(other *Group) bool {
	return other != nil && g.id == other.id
}

func (g *Group) Name() string { return g.attrs.String("name") }

// EighteenPlus reports the adult flag.
func (g *Group) EighteenPlus() bool { return g.attrs.String("eighteenplus") == "1" }

func (g *Group) Description() string { return g.attrs.String("description") }

func (g *Group) Members() int { return atoi(g.attrs.String("members")) }

func (g *Group) Online() int { return atoi(g.attrs.String("online")) }

func (g *Group) Privacy() string { return g.attrs.String("privacy") }

// Photos lists the group pool.
func (g *Group) Photos(ctx context.Context, params Params) (*PhotoCollection, error) {
	c, err := g.remote()
	if err != nil {
		return nil, err
	}
	return c.PhotosRequest(ctx, "groups.pools.getPhotos", params.With(Params{"group_id": g.id}))
}
