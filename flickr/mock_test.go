package flickr

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/url"
	"testing"
)

type transportMock struct {
	t       *testing.T
	expects []requestExpect
	urls    []string
}

type requestExpect struct {
	method string
	params map[string]string
	body   string
	err    error
}

func mockTransport(t *testing.T) *transportMock {
	return &transportMock{t: t}
}

func (m *transportMock) expectCall(method string, params map[string]string, body string, err error) *transportMock {
	m.expects = append(m.expects, requestExpect{method, params, body, err})
	return m
}

func (m *transportMock) Get(_ context.Context, rawURL string) ([]byte, error) {
	m.urls = append(m.urls, rawURL)
	if len(m.expects) == 0 {
		m.t.Fatalf("unexpected request %s", rawURL)
	}
	expected := m.expects[0]
	m.expects = m.expects[1:]

	u, err := url.Parse(rawURL)
	require.NoError(m.t, err)
	q := u.Query()

	assert.Equal(m.t, expected.method, q.Get("method"))
	for k, v := range expected.params {
		assert.Equal(m.t, v, q.Get(k), "param %q", k)
	}

	if expected.err != nil {
		return nil, expected.err
	}
	return []byte(expected.body), nil
}

func (m *transportMock) assertDone() {
	assert.Empty(m.t, m.expects, "expected requests were not made")
}

func testClient(t *testing.T, tr Transport) *Client {
	c, err := New(Options{APIKey: "some_api_key", Transport: tr})
	require.NoError(t, err)
	return c
}

func authenticatedClient(t *testing.T, tr Transport) *Client {
	c, err := New(Options{
		APIKey:       "some_api_key",
		SharedSecret: "shared_secret_code",
		AuthToken:    "some_auth_token",
		Transport:    tr,
	})
	require.NoError(t, err)
	return c
}

func rsp(inner string) string {
	return `<?xml version="1.0" encoding="utf-8" ?><rsp stat="ok">` + inner + `</rsp>`
}

const failResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="fail">
	<err code="[error-code]" msg="[error-message]" />
</rsp>`

const photosResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
	<photos page="3" pages="5" perpage="10" total="42">
		<photo id="foo123" key1="value1" key2="value2" />
		<photo id="bar456" key3="value3" />
	</photos>
</rsp>`

const singlePhotoResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
	<photos page="1" pages="1" perpage="100" total="1">
		<photo id="foo123" key1="value1" key2="value2" />
	</photos>
</rsp>`

const zeroPhotosResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
	<photos page="1" pages="0" perpage="100" total="0" />
</rsp>`

const userResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
	<user id="12037949632@N01" nsid="12037949632@N01">
		<username>Stewart</username>
	</user>
</rsp>`

const groupsResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
	<groups page="1" pages="1" perpage="100" total="2">
		<group nsid="group1" name="Group One" eighteenplus="0" />
		<group nsid="group2" name="Group Two" eighteenplus="1" />
	</groups>
</rsp>`

const singleGroupResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
	<groups page="1" pages="1" perpage="100" total="1">
		<group nsid="group1" name="Group One" eighteenplus="0" />
	</groups>
</rsp>`

const photoInfoResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
	<photo id="22527834" secret="ae75bd3111" server="3142" farm="4" dateuploaded="1204145093" isfavorite="0" license="0" rotation="0" media="photo">
		<owner nsid="9383319@N05" username="Rootes_arrow_1725" realname="John" location="U.K" />
		<title>1964 120 amazon estate</title>
		<description>1964 Volvo 120 amazon estate spotted in &lt;b&gt;derbyshire&lt;/b&gt;.</description>
		<visibility ispublic="1" isfriend="0" isfamily="0" />
		<dates posted="1204145093" taken="2007-06-10 13:18:27" takengranularity="0" lastupdate="1204166772" />
		<editability cancomment="0" canaddmeta="0" />
		<usage candownload="0" canblog="0" canprint="0" />
		<comments>1</comments>
		<notes>
			<note id="313" author="12037949754@N01" authorname="Bees" x="10" y="10" w="50" h="50">foo</note>
		</notes>
		<tags>
			<tag id="9377979-2296968304-2228" author="9383319@N05" raw="volvo" machine_tag="0">volvo</tag>
			<tag id="9377979-2296968304-2229" author="9383319@N06" raw="amazon" machine_tag="0">amazon</tag>
		</tags>
		<urls>
			<url type="photopage">http://www.flickr.com/photos/rootes_arrow/2296968304/</url>
		</urls>
	</photo>
</rsp>`

const sparsePhotoInfoResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
	<photo id="22527834" secret="ae75bd3111" server="3142" farm="4" dateuploaded="1204145093" isfavorite="0" license="0" rotation="0" media="photo">
		<owner nsid="9383319@N05" username="Rootes_arrow_1725" realname="John" location="U.K" />
		<title>1964 120 amazon estate</title>
		<description/>
		<comments>1</comments>
		<notes/>
		<tags/>
		<urls>
			<url type="photopage">http://www.flickr.com/photos/rootes_arrow/2296968304/</url>
		</urls>
	</photo>
</rsp>`

const sizesResponse = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
	<sizes canblog="0" canprint="0" candownload="1">
		<size label="Square" width="75" height="75" source="http://farm4.static.flickr.com/3142/22527834_ae75bd3111_s.jpg" url="http://www.flickr.com/photos/x/22527834/sizes/sq/" media="photo" />
		<size label="Medium" width="500" height="375" source="http://farm4.static.flickr.com/3142/22527834_ae75bd3111.jpg" url="http://www.flickr.com/photos/x/22527834/sizes/m/" media="photo" />
		<size label="Large" width="1024" height="768" source="http://farm4.static.flickr.com/3142/22527834_ae75bd3111_b.jpg" url="http://www.flickr.com/photos/x/22527834/sizes/l/" media="photo" />
	</sizes>
</rsp>`
