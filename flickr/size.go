package flickr

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	Square    = "Square"
	Thumbnail = "Thumbnail"
	Small     = "Small"
	Medium    = "Medium"
	Large     = "Large"
	Original  = "Original"
)

var sizeLabels = []string{Square, Thumbnail, Small, Medium, Large, Original}

// suffixes of static image files, Medium has none
var sourceSuffixes = map[string]string{
	Square:    "s",
	Thumbnail: "t",
	Small:     "m",
	Large:     "b",
	Original:  "o",
}

// letters of the /sizes/ pages on the website
var pageSizeLetters = map[string]string{
	Square:    "sq",
	Thumbnail: "t",
	Small:     "s",
	Medium:    "m",
	Large:     "l",
	Original:  "o",
}

// NormalizeSize returns the canonical label for a size name, matched
// case-insensitively. Unknown names are capitalized the same way, so the
// result is stable under repeated normalization. "" stays "".
func NormalizeSize(size string) string {
	if size == "" {
		return ""
	}
	for _, label := range sizeLabels {
		if strings.EqualFold(size, label) {
			return label
		}
	}
	r, n := utf8.DecodeRuneInString(size)
	return string(unicode.ToUpper(r)) + strings.ToLower(size[n:])
}

// Size is one entry of photos.getSizes.
type Size struct {
	Label  string
	Width  int
	Height int
	Source string
	URL    string
	Media  string
}

func sizeFromRow(row map[string]any) Size {
	return Size{
		Label:  Text(row["label"]),
		Width:  atoi(Text(row["width"])),
		Height: atoi(Text(row["height"])),
		Source: Text(row["source"]),
		URL:    Text(row["url"]),
		Media:  Text(row["media"]),
	}
}

// imageSourceURIFromSelf builds the static image URL from farm, server and
// secret without asking the service. It returns "" if any is missing.
func (p *Photo) imageSourceURIFromSelf(size string) string {
	farm, server, secret := p.attrs.String("farm"), p.attrs.String("server"), p.attrs.String("secret")
	if p.id == "" || farm == "" || server == "" || secret == "" {
		return ""
	}

	suffix := ""
	if s, ok := sourceSuffixes[NormalizeSize(size)]; ok {
		suffix = "_" + s
	}
	return fmt.Sprintf("http://farm%s.%s/%s/%s_%s%s.jpg", farm, StaticHost, server, p.id, secret, suffix)
}

// uriForPhotoFromSelf builds the photo page URL from the owner and id
// without asking the service. It returns "" if either is missing.
func (p *Photo) uriForPhotoFromSelf(size string) string {
	owner := p.ownerID()
	if p.id == "" || owner == "" {
		return ""
	}

	u := "http://" + WebHost + "/photos/" + owner + "/" + p.id
	if letter, ok := pageSizeLetters[NormalizeSize(size)]; ok {
		u += "/sizes/" + letter + "/"
	}
	return u
}

func (p *Photo) ownerID() string {
	switch o := p.attrs["owner"].(type) {
	case *User:
		if o == nil {
			return ""
		}
		if o.id != "" {
			return o.id
		}
		return o.Username()
	case string:
		return o
	case map[string]any:
		if id := Text(o["nsid"]); id != "" {
			return id
		}
		return Text(o["username"])
	default:
		return ""
	}
}
