package s3url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgfit/imgfit/internal/errs"
)

func TestParse_AcceptedForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ObjectRef
	}{
		{
			name: "s3 scheme",
			raw:  "s3://photos/a/b/photo.jpg",
			want: ObjectRef{Bucket: "photos", Key: "a/b/photo.jpg"},
		},
		{
			name: "virtual-hosted",
			raw:  "https://photos.s3.eu-central-1.amazonaws.com/a/b/photo.jpg",
			want: ObjectRef{Bucket: "photos", Key: "a/b/photo.jpg"},
		},
		{
			name: "virtual-hosted legacy hyphen",
			raw:  "https://photos.s3-eu-central-1.amazonaws.com/a/b/photo.jpg",
			want: ObjectRef{Bucket: "photos", Key: "a/b/photo.jpg"},
		},
		{
			name: "path-style",
			raw:  "https://s3.eu-central-1.amazonaws.com/photos/a/b/photo.jpg",
			want: ObjectRef{Bucket: "photos", Key: "a/b/photo.jpg"},
		},
		{
			name: "path-style over http",
			raw:  "http://s3.eu-central-1.amazonaws.com/photos/a/b/photo.jpg",
			want: ObjectRef{Bucket: "photos", Key: "a/b/photo.jpg"},
		},
		{
			name: "top-level key",
			raw:  "s3://photos/photo.jpg",
			want: ObjectRef{Bucket: "photos", Key: "photo.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// All accepted spellings of the same object must resolve identically.
func TestParse_FormsAgree(t *testing.T) {
	forms := []string{
		"s3://photos/a/b/photo.jpg",
		"https://photos.s3.eu-central-1.amazonaws.com/a/b/photo.jpg",
		"https://photos.s3-eu-central-1.amazonaws.com/a/b/photo.jpg",
		"https://s3.eu-central-1.amazonaws.com/photos/a/b/photo.jpg",
	}

	want := ObjectRef{Bucket: "photos", Key: "a/b/photo.jpg"}
	for _, raw := range forms {
		got, err := Parse(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParse_Rejected(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"unknown scheme", "ftp://photos/a.jpg"},
		{"not an object-store host", "https://example.com/a.jpg"},
		{"s3 scheme without key", "s3://photos"},
		{"s3 scheme without key trailing slash", "s3://photos/"},
		{"s3 scheme without bucket", "s3:///a.jpg"},
		{"path-style without key", "https://s3.eu-central-1.amazonaws.com/photos"},
		{"virtual-hosted without key", "https://photos.s3.eu-central-1.amazonaws.com/"},
		{"bare words", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)
			assert.True(t, errs.IsInvalidURL(err), "want invalid_url, got %v", err)
		})
	}
}

// Offending input must be carried in the message for diagnostics.
func TestParse_ErrorNamesInput(t *testing.T) {
	_, err := Parse("ftp://photos/a.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ftp://photos/a.jpg")
}

func TestObjectRef_URL(t *testing.T) {
	ref := ObjectRef{Bucket: "photos", Key: "a/b/photo.jpg"}
	assert.Equal(t, "s3://photos/a/b/photo.jpg", ref.URL())
}
