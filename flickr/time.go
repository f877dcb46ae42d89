package flickr

import (
	"strconv"
	"time"
)

type ParseTimeError struct {
	Value string
}

func (e *ParseTimeError) Error() string {
	return "invalid flickr time: " + strconv.Quote(e.Value)
}

// ParseTime reads both time formats the service uses: "2006-01-02 15:04:05"
// for taken dates and unix seconds for upload dates.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateTime, s); err == nil {
		return t, nil
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, &ParseTimeError{s}
	}
	return time.Unix(secs, 0), nil
}

// DateTaken reads the "datetaken" search extra or the taken date of getInfo.
func (p *Photo) DateTaken() (time.Time, bool) {
	s := p.attrs.String("datetaken")
	if s == "" {
		s = Text(Dig(p.attrs["dates"], "taken"))
	}
	if s == "" {
		return time.Time{}, false
	}
	t, err := ParseTime(s)
	return t, err == nil
}
