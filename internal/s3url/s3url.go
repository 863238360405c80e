// Package s3url resolves the textual object-store references accepted by the
// resize API into a canonical (bucket, key) pair.
//
// Three forms are accepted, tried in order:
//
//	s3://bucket/key
//	https://bucket.s3.region.domain/key   (and the legacy bucket.s3-region.domain)
//	https://s3.region.domain/bucket/key
//
// Anything else fails with errs.ErrKindInvalidURL carrying the offending input.
package s3url

import (
	"net/url"
	"strings"

	"github.com/imgfit/imgfit/internal/errs"
)

// ObjectRef is a canonical object-store address. Bucket and Key are non-empty
// and Key carries no leading slash. Produced only by Parse.
type ObjectRef struct {
	Bucket string
	Key    string
}

// URL renders the canonical s3:// form of the reference.
func (r ObjectRef) URL() string {
	return "s3://" + r.Bucket + "/" + r.Key
}

// Parse resolves raw into an ObjectRef.
func Parse(raw string) (ObjectRef, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ObjectRef{}, errs.Wrap(errs.ErrKindInvalidURL, "malformed URL "+quoted(raw), err)
	}

	var bucket, key string

	switch u.Scheme {
	case "s3":
		bucket = u.Host
		key = strings.TrimLeft(u.Path, "/")

	case "http", "https":
		host := u.Hostname()
		if host == "" {
			return ObjectRef{}, errs.New(errs.ErrKindInvalidURL, "missing host in "+quoted(raw))
		}

		switch {
		// Virtual-hosted form: bucket.s3.region.domain or legacy bucket.s3-region.domain.
		case strings.Contains(host, ".s3.") || strings.Contains(host, ".s3-"):
			bucket = host[:strings.Index(host, ".")]
			key = strings.TrimLeft(u.Path, "/")

		// Path-style form: s3.region.domain/bucket/key.
		case strings.HasPrefix(host, "s3.") || strings.HasPrefix(host, "s3-"):
			path := strings.TrimLeft(u.Path, "/")
			bucket, key, _ = strings.Cut(path, "/")

		default:
			return ObjectRef{}, errs.New(errs.ErrKindInvalidURL, "not an object-store URL: "+quoted(raw))
		}

	default:
		return ObjectRef{}, errs.New(errs.ErrKindInvalidURL, "unsupported scheme in "+quoted(raw))
	}

	if bucket == "" {
		return ObjectRef{}, errs.New(errs.ErrKindInvalidURL, "missing bucket in "+quoted(raw))
	}
	if key == "" {
		return ObjectRef{}, errs.New(errs.ErrKindInvalidURL, "missing object key in "+quoted(raw))
	}

	return ObjectRef{Bucket: bucket, Key: key}, nil
}

func quoted(raw string) string {
	return `"` + raw + `"`
}
