package flickr

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func newUser(c *Client) *User {
	u := NewUser("foo123", "", map[string]any{
		"username": "some_user",
		"name":     "Some User",
		"foo":      "bar",
	})
	if c != nil {
		u.Bind(c)
	}
	return u
}

func TestNewUser(t *testing.T) {
	u := newUser(nil)
	assert.Equal(t, "foo123", u.ID())
	assert.Equal(t, "some_user", u.Username())
	assert.Equal(t, "Some User", u.Name())
	assert.Equal(t, "bar", u.Get("foo"))
	assert.Equal(t, "some_user", u.Get("username"))
	assert.Equal(t, "Some User", u.Get("name"))
	assert.Nil(t, u.Client())
}

func TestUserName(t *testing.T) {
	for _, tc := range []struct {
		attrs map[string]any
		want  string
	}{
		{map[string]any{"realname": "Bob", "fullname": "Robert"}, "Bob"},
		{map[string]any{"fullname": "Robert", "realname": ""}, "Robert"},
		{map[string]any{"name": "B", "realname": "Bob", "fullname": "Robert"}, "B"},
		{map[string]any{"location": "UK"}, ""},
	} {
		u := NewUser("1", "", tc.attrs)
		assert.Equal(t, tc.want, u.Name(), tc.attrs)
		for k, v := range tc.attrs {
			assert.Equal(t, v, u.Get(k))
		}
	}
}

func TestNewLegacyUser(t *testing.T) {
	u := NewLegacyUser("foo123", "some_user", "email@test.com", "password", "bar456")
	assert.Equal(t, "foo123", u.ID())
	assert.Equal(t, "some_user", u.Username())
	assert.Equal(t, "some_user", u.Get("username"))
	assert.Equal(t, "email@test.com", u.Email())
	assert.Equal(t, "password", u.password)
	require.NotNil(t, u.Client())
	assert.Equal(t, "bar456", u.Client().APIKey())
}

func TestUserURLs(t *testing.T) {
	u := newUser(testClient(t, mockTransport(t)))
	assert.Equal(t, "http://www.flickr.com/people/foo123/", u.URL())
	assert.Equal(t, "http://www.flickr.com/photos/foo123/", u.PhotosURL())
}

func TestUserPrettyURLIsCached(t *testing.T) {
	m := mockTransport(t).expectCall("flickr.urls.getUserProfile", map[string]string{"user_id": "foo123"},
		`<rsp stat="ok"><user nsid="bar456" url="http://www.flickr.com/people/killer_bob/" /></rsp>`, nil)
	u := newUser(testClient(t, m))

	for i := 0; i < 2; i++ {
		pretty, err := u.PrettyURL(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "http://www.flickr.com/people/killer_bob/", pretty)
	}
	assert.Len(t, m.urls, 1)
}

func TestUserGroups(t *testing.T) {
	for _, tc := range []struct {
		name   string
		body   string
		expect int
	}{
		{"many", groupsResponse, 2},
		{"one", singleGroupResponse, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, mockTransport(t).expectCall("flickr.people.getPublicGroups", map[string]string{"user_id": "foo123"}, tc.body, nil))
			groups, err := newUser(c).Groups(context.Background())
			require.NoError(t, err)
			require.Len(t, groups, tc.expect)
			assert.Equal(t, "group1", groups[0].ID())
			assert.Equal(t, "Group One", groups[0].Name())
			assert.Same(t, c, groups[0].Client())
		})
	}
}

func TestUserPhotoListings(t *testing.T) {
	table := []struct {
		method string
		call   func(u *User) (*PhotoCollection, error)
	}{
		{"flickr.people.getPublicPhotos", func(u *User) (*PhotoCollection, error) { return u.Photos(context.Background()) }},
		{"flickr.favorites.getPublicList", func(u *User) (*PhotoCollection, error) { return u.Favorites(context.Background()) }},
		{"flickr.photos.getContactsPublicPhotos", func(u *User) (*PhotoCollection, error) { return u.ContactsPhotos(context.Background()) }},
	}
	for _, tc := range table {
		t.Run(tc.method, func(t *testing.T) {
			m := mockTransport(t).expectCall(tc.method, map[string]string{"user_id": "foo123"}, photosResponse, nil)
			photos, err := tc.call(newUser(testClient(t, m)))
			require.NoError(t, err)
			assert.Equal(t, 2, photos.Len())
			m.assertDone()
		})
	}
}

func TestUserContacts(t *testing.T) {
	c := testClient(t, mockTransport(t).expectCall("flickr.contacts.getPublicList", nil, `<rsp stat="ok">
		<contacts page="1" pages="1" perpage="1000" total="1">
			<contact nsid="12037949629@N01" username="Eric" iconserver="1" ignored="0" />
		</contacts></rsp>`, nil))

	contacts, err := newUser(c).Contacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "12037949629@N01", contacts[0].ID())
	assert.Equal(t, "Eric", contacts[0].Username())
}

func TestUserPhotosets(t *testing.T) {
	c := testClient(t, mockTransport(t).expectCall("flickr.photosets.getList", nil, `<rsp stat="ok">
		<photosets>
			<photoset id="5" primary="2483" secret="abcdef" server="8" photos="4"><title>Test</title></photoset>
			<photoset id="4" primary="1234" secret="832659" server="3" photos="12"><title>Test 2</title></photoset>
		</photosets></rsp>`, nil))

	sets, err := newUser(c).Photosets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "5", sets[0].ID())
	assert.Equal(t, "Test", sets[0].Title())
	assert.Same(t, c, sets[1].Client())
}

func TestUserTags(t *testing.T) {
	c := testClient(t, mockTransport(t).expectCall("flickr.tags.getListUser", map[string]string{"user_id": "foo123"}, `<rsp stat="ok">
		<who id="9259187@N05"><tags>
			<tag>offf08</tag><tag>ruby</tag><tag>rubyonrails</tag>
		</tags></who></rsp>`, nil))

	tags, err := newUser(c).Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"offf08", "ruby", "rubyonrails"}, tags)
}

func TestUserPopularTags(t *testing.T) {
	c := testClient(t, mockTransport(t).expectCall("flickr.tags.getListUserPopular", map[string]string{"user_id": "foo123"}, `<rsp stat="ok">
		<who id="9259187@N05"><tags>
			<tag count="94">design</tag><tag count="3">ruby</tag>
		</tags></who></rsp>`, nil))

	tags, err := newUser(c).PopularTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []TagCount{{Tag: "design", Count: 94}, {Tag: "ruby", Count: 3}}, tags)
}

func TestDetachedUserNeedsClient(t *testing.T) {
	_, err := newUser(nil).Groups(context.Background())
	assert.ErrorIs(t, err, ErrNoClient)
}
