// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package essays

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCDNPrefix = "https://substackcdn.com/image/fetch/w_320,h_213,c_fill,f_auto,q_auto:good,fl_progressive:steep,g_center/"

const bucketImage = "https://substack-post-media.s3.amazonaws.com/public/images/abc123_1456x816.png"

func TestParsePageMeta(t *testing.T) {
	page := `<html><head>
		<meta property="og:title" content="An Essay"/>
		<meta property="og:description" content="About something."/>
		<meta property="og:image" content="` + bucketImage + `"/>
	</head><body></body></html>`

	meta, err := ParsePageMeta(page)
	require.NoError(t, err)
	assert.Equal(t, "An Essay", meta.Title)
	assert.Equal(t, "About something.", meta.Description)
	assert.Equal(t, bucketImage, meta.ImageURL)
}

func TestParsePageMeta_MissingTags(t *testing.T) {
	meta, err := ParsePageMeta("<html><head></head><body></body></html>")
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Description)
	assert.Empty(t, meta.ImageURL)
}

func TestThumbnailURL(t *testing.T) {
	tests := []struct {
		name    string
		ogImage string
		want    string
	}{
		{
			"raw bucket url",
			bucketImage,
			testCDNPrefix + bucketImage,
		},
		{
			"bucket url nested in cdn url, percent-encoded",
			"https://substackcdn.com/image/fetch/w_1200/" +
				"https%3A%2F%2Fsubstack-post-media.s3.amazonaws.com%2Fpublic%2Fimages%2Fabc123_1456x816.png",
			testCDNPrefix + bucketImage,
		},
		{
			"og image without bucket url is discarded, not passed through",
			"https://elsewhere.example/img.png",
			"",
		},
		{
			"empty",
			"",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThumbnailURL(tt.ogImage, testCDNPrefix))
		})
	}
}

func TestResolveImage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><head><meta property="og:image" content="` + bucketImage + `"/></head></html>`))
	}))
	defer ts.Close()

	cfg := testFeedConfig("")
	cfg.CDNPrefix = testCDNPrefix

	img, err := ResolveImage(context.Background(), ts.Client(), ts.URL, cfg)
	require.NoError(t, err)
	assert.Equal(t, testCDNPrefix+bucketImage, img)
}

func TestResolveImage_FetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	img, err := ResolveImage(context.Background(), ts.Client(), ts.URL, testFeedConfig(""))
	require.Error(t, err)
	assert.Empty(t, img)
}
