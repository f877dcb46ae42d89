package flickr

import (
	"context"
	"fmt"
	"github.com/jaytaylor/html2text"
	"time"
)

type Photo struct {
	entity

	// infoLoaded is set once photos.getInfo succeeded, whatever it returned,
	// so fields that came back empty are not fetched again.
	infoLoaded bool

	sizes       []Size
	sizesLoaded bool
}

type Note struct {
	ID         string
	Author     string
	AuthorName string
	Content    string
	X, Y, W, H int
}

type Tag struct {
	ID         string
	Author     string
	Raw        string
	Content    string
	MachineTag bool
}

// NewPhoto builds a photo from its id and whatever other fields are known.
// apiKey may be empty; Bind attaches a client.
func NewPhoto(id, apiKey string, attrs map[string]any) *Photo {
	return &Photo{entity: newEntity(id, apiKey, attrs)}
}

func (p *Photo) Equal(other *Photo) bool {
	return other != nil && p.id == other.id
}

func (p *Photo) InfoLoaded() bool { return p.infoLoaded }

func (p *Photo) loadInfo(ctx context.Context) error {
	if p.infoLoaded {
		return nil
	}
	c, err := p.remote()
	if err != nil {
		return err
	}

	resp, err := c.Invoke(ctx, "photos.getInfo", Params{"photo_id": p.id})
	if err != nil {
		return fmt.Errorf("get info of photo %s: %w", p.id, err)
	}
	p.applyInfo(c, rowOf(resp["photo"]))
	p.infoLoaded = true
	return nil
}

func (p *Photo) applyInfo(c *Client, info map[string]any) {
	p.attrs["title"] = ""
	p.attrs["description"] = ""
	p.attrs["comments"] = ""
	p.attrs["notes"] = []Note{}
	p.attrs["tags"] = []Tag{}

	for k, v := range info {
		switch k {
		case "id":
		case "owner":
			if row := rowOf(v); row != nil {
				p.attrs["owner"] = userFromRow(c, row)
			} else if id := Text(v); id != "" {
				p.attrs["owner"] = id
			}
		case "title", "description", "comments":
			p.attrs[k] = Text(v)
		case "notes":
			p.attrs["notes"] = notesFrom(Dig(v, "note"))
		case "tags":
			p.attrs["tags"] = tagsFrom(Dig(v, "tag"))
		case "urls":
			if urls := CoerceToList(Dig(v, "url")); len(urls) > 0 {
				p.attrs["url"] = Text(urls[0])
			}
		default:
			p.attrs[k] = v
		}
	}
}

func notesFrom(v any) []Note {
	notes := []Note{}
	for _, row := range Rows(v) {
		notes = append(notes, Note{
			ID:         Text(row["id"]),
			Author:     Text(row["author"]),
			AuthorName: Text(row["authorname"]),
			Content:    Text(row["content"]),
			X:          atoi(Text(row["x"])),
			Y:          atoi(Text(row["y"])),
			W:          atoi(Text(row["w"])),
			H:          atoi(Text(row["h"])),
		})
	}
	return notes
}

func tagsFrom(v any) []Tag {
	tags := []Tag{}
	for _, item := range CoerceToList(v) {
		row := rowOf(item)
		if row == nil {
			tags = append(tags, Tag{Raw: Text(item), Content: Text(item)})
			continue
		}
		tags = append(tags, Tag{
			ID:         Text(row["id"]),
			Author:     Text(row["author"]),
			Raw:        Text(row["raw"]),
			Content:    Text(row["content"]),
			MachineTag: Text(row["machine_tag"]) == "1",
		})
	}
	return tags
}

// info returns the attribute, fetching the full info first if it is unset.
func (p *Photo) info(ctx context.Context, key string) (string, error) {
	if s := p.attrs.String(key); s != "" {
		return s, nil
	}
	if err := p.loadInfo(ctx); err != nil {
		return "", err
	}
	return p.attrs.String(key), nil
}

func (p *Photo) Title(ctx context.Context) (string, error) {
	return p.info(ctx, "title")
}

func (p *Photo) Description(ctx context.Context) (string, error) {
	return p.info(ctx, "description")
}

// PlainDescription is the description with its HTML rendered to text.
func (p *Photo) PlainDescription(ctx context.Context) (string, error) {
	desc, err := p.Description(ctx)
	if err != nil || desc == "" {
		return "", err
	}
	return html2text.FromString(desc, html2text.Options{})
}

// Comments is the comment count as reported by the service.
func (p *Photo) Comments(ctx context.Context) (string, error) {
	return p.info(ctx, "comments")
}

func (p *Photo) License(ctx context.Context) (string, error) {
	return p.info(ctx, "license")
}

func (p *Photo) Media(ctx context.Context) (string, error) {
	return p.info(ctx, "media")
}

// DateUploaded reads "dateuploaded" (getInfo) or "dateupload" (search
// extras).
func (p *Photo) DateUploaded(ctx context.Context) (time.Time, error) {
	s := p.attrs.String("dateupload")
	if s == "" {
		var err error
		s, err = p.info(ctx, "dateuploaded")
		if err != nil {
			return time.Time{}, err
		}
	}
	return ParseTime(s)
}

func (p *Photo) Notes(ctx context.Context) ([]Note, error) {
	if notes, ok := p.attrs["notes"].([]Note); ok {
		return notes, nil
	}
	if err := p.loadInfo(ctx); err != nil {
		return nil, err
	}
	notes, _ := p.attrs["notes"].([]Note)
	return notes, nil
}

func (p *Photo) Tags(ctx context.Context) ([]Tag, error) {
	if tags, ok := p.attrs["tags"].([]Tag); ok {
		return tags, nil
	}
	if err := p.loadInfo(ctx); err != nil {
		return nil, err
	}
	tags, _ := p.attrs["tags"].([]Tag)
	return tags, nil
}

// Owner resolves the owner attribute to a User. A bare id becomes a detached
// User; a missing owner triggers the info fetch. The result is cached.
func (p *Photo) Owner(ctx context.Context) (*User, error) {
	if u := p.cachedOwner(); u != nil || p.infoLoaded {
		return u, nil
	}
	if err := p.loadInfo(ctx); err != nil {
		return nil, err
	}
	return p.cachedOwner(), nil
}

func (p *Photo) cachedOwner() *User {
	switch o := p.attrs["owner"].(type) {
	case *User:
		return o
	case string:
		if o == "" {
			return nil
		}
		u := NewUser(o, "", nil)
		p.attrs["owner"] = u
		return u
	case map[string]any:
		u := userFromRow(p.client, o)
		p.attrs["owner"] = u
		return u
	default:
		return nil
	}
}

// Sizes lists every available size, asking the service once.
func (p *Photo) Sizes(ctx context.Context) ([]Size, error) {
	if p.sizesLoaded {
		return p.sizes, nil
	}
	c, err := p.remote()
	if err != nil {
		return nil, err
	}

	resp, err := c.Invoke(ctx, "photos.getSizes", Params{"photo_id": p.id})
	if err != nil {
		return nil, fmt.Errorf("get sizes of photo %s: %w", p.id, err)
	}
	sizes := []Size{}
	for _, row := range Rows(Dig(resp, "sizes", "size")) {
		sizes = append(sizes, sizeFromRow(row))
	}
	p.sizes, p.sizesLoaded = sizes, true
	return sizes, nil
}

// SizeFor finds the size labelled size (normalized) among Sizes.
func (p *Photo) SizeFor(ctx context.Context, size string) (Size, bool, error) {
	size = NormalizeSize(size)
	sizes, err := p.Sizes(ctx)
	if err != nil {
		return Size{}, false, err
	}
	for _, s := range sizes {
		if s.Label == size {
			return s, true, nil
		}
	}
	return Size{}, false, nil
}

// Source is the image file URL for size, Medium when size is "". It is built
// locally when farm, server and secret are known, otherwise looked up with
// photos.getSizes. "" means the service has no such size.
func (p *Photo) Source(ctx context.Context, size string) (string, error) {
	size = NormalizeSize(size)
	if size == "" {
		size = Medium
	}
	if u := p.imageSourceURIFromSelf(size); u != "" {
		return u, nil
	}
	s, _, err := p.SizeFor(ctx, size)
	return s.Source, err
}

// URL is the photo's page. Any size other than Medium gives that size's page
// instead (see SizeURL).
func (p *Photo) URL(ctx context.Context, size string) (string, error) {
	size = NormalizeSize(size)
	if size != "" && size != Medium {
		return p.SizeURL(ctx, size)
	}
	if u := p.attrs.String("url"); u != "" {
		return u, nil
	}
	if u := p.uriForPhotoFromSelf(""); u != "" {
		return u, nil
	}
	return p.info(ctx, "url")
}

// SizeURL is the page showing the photo at size, built locally when the owner
// is known and looked up with photos.getSizes otherwise.
func (p *Photo) SizeURL(ctx context.Context, size string) (string, error) {
	size = NormalizeSize(size)
	if u := p.uriForPhotoFromSelf(size); u != "" {
		return u, nil
	}
	s, _, err := p.SizeFor(ctx, size)
	return s.URL, err
}

// Context returns the photos before and after this one in the owner's
// photostream. Either may be nil at the ends.
func (p *Photo) Context(ctx context.Context) (prev, next *Photo, err error) {
	c, err := p.remote()
	if err != nil {
		return nil, nil, err
	}
	resp, err := c.Invoke(ctx, "photos.getContext", Params{"photo_id": p.id})
	if err != nil {
		return nil, nil, err
	}

	neighbour := func(key string) *Photo {
		row := rowOf(resp[key])
		id := Text(row["id"])
		if id == "" || id == "0" {
			return nil
		}
		return c.Photo(id, row)
	}
	return neighbour("prevphoto"), neighbour("nextphoto"), nil
}
