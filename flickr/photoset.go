package flickr

import "context"

type Photoset struct {
	entity
}

func NewPhotoset(id, apiKey string, attrs map[string]any) *Photoset {
	return &Photoset{entity: newEntity(id, apiKey, attrs)}
}

func (s *Photoset) Equal(other *Photoset) bool {
	return other != nil && s.id == other.id
}

func (s *Photoset) Title() string { return s.attrs.String("title") }

func (s *Photoset) Photos(ctx context.Context) (*PhotoCollection, error) {
	c, err := s.remote()
	if err != nil {
		return nil, err
	}
	return c.PhotosRequest(ctx, "photosets.getPhotos", Params{"photoset_id": s.id})
}
