package flickr

import (
	"context"
	"fmt"
	"github.com/paulmach/orb"
	"strconv"
)

// PhotosWithin searches for geotagged photos inside bound.
func (c *Client) PhotosWithin(ctx context.Context, bound orb.Bound, params Params) (*PhotoCollection, error) {
	return c.PhotosSearch(ctx, params.With(Params{
		"bbox": fmt.Sprintf("%.6f,%.6f,%.6f,%.6f", bound.Left(), bound.Bottom(), bound.Right(), bound.Top()),
	}))
}

// Location is the photo's geotag from the "geo" search extra or the getInfo
// location element. ok is false for photos that are not geotagged.
func (p *Photo) Location() (point orb.Point, ok bool) {
	lat, lng := p.attrs.String("latitude"), p.attrs.String("longitude")
	if lat == "" || lng == "" {
		loc := rowOf(p.attrs["location"])
		lat, lng = Text(loc["latitude"]), Text(loc["longitude"])
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return orb.Point{}, false
	}
	lngF, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return orb.Point{}, false
	}
	if latF == 0 && lngF == 0 {
		return orb.Point{}, false
	}
	return orb.Point{lngF, latF}, true
}
