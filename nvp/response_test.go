package nvp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResponse(t *testing.T) {
	resp := ParseResponse("A=1&B=2")
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, resp.Values)
	assert.Empty(t, resp.Bare)
}

func TestParseResponseEmptySegment(t *testing.T) {
	resp := ParseResponse("A=1&&B=2")
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, resp.Values)
	assert.Empty(t, resp.Bare)
}

func TestParseResponseBareSegment(t *testing.T) {
	resp := ParseResponse("free&B=2")
	assert.Equal(t, map[string]string{"B": "2"}, resp.Values)
	assert.Equal(t, []string{"free"}, resp.Bare)
}

func TestParseResponseEmptyKey(t *testing.T) {
	// " =1" has an empty key after trimming and contributes nothing
	resp := ParseResponse(" =1&B=2")
	assert.Equal(t, map[string]string{"B": "2"}, resp.Values)
}

func TestParseResponseDecodesAndTrims(t *testing.T) {
	resp := ParseResponse("DESC=order%2042& TOKEN = tok123 ")
	assert.Equal(t, "order 42", resp.Values["DESC"])
	assert.Equal(t, "tok123", resp.Values["TOKEN"])
}

func TestParseResponseFirstSeparatorOnly(t *testing.T) {
	resp := ParseResponse("CUSTOM=a=b")
	assert.Equal(t, "a=b", resp.Values["CUSTOM"])
}

func TestResponseGetMissing(t *testing.T) {
	resp := ParseResponse("ACK=Success")
	_, ok := resp.Get("TOKEN")
	assert.False(t, ok)
	assert.Equal(t, "Success", resp.Ack())
}
