package nvp

import (
	"net/url"
	"strings"
)

// Response is a parsed NVP reply. The processor should only ever send
// key=value segments, but the live API occasionally emits segments without
// a separator; those are kept in Bare instead of being dropped.
type Response struct {
	Values map[string]string
	Bare   []string
}

// Get looks up a decoded field. Every caller must handle the missing case
// explicitly; the processor's replies are not trusted to be complete.
func (r *Response) Get(key string) (string, bool) {
	value, ok := r.Values[key]
	return value, ok
}

// Ack returns the processor's per-call success indicator, empty if absent.
func (r *Response) Ack() string {
	return r.Values["ACK"]
}

// ParseResponse splits an ampersand-delimited NVP body. Each segment is
// split on its first "=", both sides are trimmed and the value is
// percent-decoded. Segments with an empty key contribute nothing; segments
// with no separator at all are preserved as bare values.
func ParseResponse(body string) *Response {
	out := &Response{Values: make(map[string]string)}

	for _, segment := range strings.Split(body, "&") {
		i := strings.Index(segment, "=")
		if i <= 0 {
			if segment != "" {
				out.Bare = append(out.Bare, segment)
			}
			continue
		}

		key := strings.TrimSpace(segment[:i])
		if key == "" {
			continue
		}
		value := strings.TrimSpace(segment[i+1:])
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		out.Values[key] = value
	}

	return out
}
