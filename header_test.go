package httphead

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/httphead/config"
	"github.com/indigo-web/httphead/lexeme"
	"github.com/indigo-web/httphead/status"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T, name string) lexeme.FieldKey {
	key, err := lexeme.Key(name)
	require.NoError(t, err)

	return key
}

func TestParseRequest(t *testing.T) {
	t.Run("ordinary request", func(t *testing.T) {
		req, body, err := ParseRequest([]byte("GET /x HTTP/1.1\r\nHost: a.com\r\n\r\nBODY"))
		require.NoError(t, err)
		require.Equal(t, "BODY", string(body))

		method, err := req.Method()
		require.NoError(t, err)
		require.Equal(t, "GET", method.String())

		uri, err := req.URI()
		require.NoError(t, err)
		require.Equal(t, "/x", uri.String())

		proto, err := req.Proto()
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1", proto.String())

		value, found := req.Field(mustKey(t, "Host"))
		require.True(t, found)
		require.Equal(t, "a.com", value.String())
		require.Equal(t, 1, req.Len())
	})

	t.Run("no fields", func(t *testing.T) {
		req, body, err := ParseRequest([]byte("GET / HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.Empty(t, body)
		require.Equal(t, 0, req.Len())
	})

	t.Run("missing terminator", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"GET / HTTP/1.1",
			"GET / HTTP/1.1\r\nHost: a.com\r\n",
		} {
			_, _, err := ParseRequest([]byte(raw))
			require.ErrorIs(t, err, status.ErrTruncated, "%q", raw)
			require.Equal(t, status.Truncated, status.KindOf(err))
		}
	})

	t.Run("status line arity", func(t *testing.T) {
		for _, raw := range []string{
			"GET /\r\n\r\n",
			"GET / HTTP/1.1 EXTRA\r\n\r\n",
			"GET  / HTTP/1.1\r\n\r\n",
			"\r\n\r\n",
		} {
			_, _, err := ParseRequest([]byte(raw))
			require.ErrorIs(t, err, status.ErrBadStatusLine, "%q", raw)
			require.Equal(t, status.ProtocolViolation, status.KindOf(err))
		}
	})

	t.Run("status line gets trimmed", func(t *testing.T) {
		req, _, err := ParseRequest([]byte("  GET /x HTTP/1.1 \t\r\n\r\n"))
		require.NoError(t, err)

		method, err := req.Method()
		require.NoError(t, err)
		require.Equal(t, "GET", method.String())
	})

	t.Run("field line without a colon", func(t *testing.T) {
		_, _, err := ParseRequest([]byte("GET / HTTP/1.1\r\nno colon here\r\n\r\n"))
		require.ErrorIs(t, err, status.ErrNoColon)
	})

	t.Run("empty value is legal", func(t *testing.T) {
		req, _, err := ParseRequest([]byte("GET / HTTP/1.1\r\nX-Empty:\r\n\r\n"))
		require.NoError(t, err)

		value, found := req.Field(mustKey(t, "X-Empty"))
		require.True(t, found)
		require.Empty(t, value.String())
	})

	t.Run("value keeps its own colons", func(t *testing.T) {
		req, _, err := ParseRequest([]byte("GET / HTTP/1.1\r\nHost: a.com:8080\r\n\r\n"))
		require.NoError(t, err)

		value, _ := req.Field(mustKey(t, "Host"))
		require.Equal(t, "a.com:8080", value.String())
	})

	t.Run("illegal field keys", func(t *testing.T) {
		for _, raw := range []string{
			"GET / HTTP/1.1\r\n: no key\r\n\r\n",
			"GET / HTTP/1.1\r\nBad Key: x\r\n\r\n",
			"GET / HTTP/1.1\r\nHost : x\r\n\r\n",
		} {
			_, _, err := ParseRequest([]byte(raw))
			require.ErrorIs(t, err, status.ErrBadFieldKey, "%q", raw)
		}
	})

	t.Run("non-printable field value", func(t *testing.T) {
		_, _, err := ParseRequest([]byte("GET / HTTP/1.1\r\nX: a\x00b\r\n\r\n"))
		require.ErrorIs(t, err, status.ErrNonPrintable)
	})

	t.Run("duplicates last wins", func(t *testing.T) {
		req, _, err := ParseRequest([]byte("GET / HTTP/1.1\r\nA: 1\r\nA: 2\r\n\r\n"))
		require.NoError(t, err)

		value, found := req.Field(mustKey(t, "A"))
		require.True(t, found)
		require.Equal(t, "2", value.String())
		require.Equal(t, 1, req.Len())
	})

	t.Run("long random value survives", func(t *testing.T) {
		payload := uniuri.NewLen(5000)
		req, _, err := ParseRequest([]byte("GET / HTTP/1.1\r\nX-Long: " + payload + "\r\n\r\n"))
		require.NoError(t, err)

		value, found := req.Field(mustKey(t, "X-Long"))
		require.True(t, found)
		require.Equal(t, payload, value.String())
	})
}

func TestParseResponse(t *testing.T) {
	resp, body, err := ParseResponse([]byte("HTTP/1.1 200 OK\r\nServer: indigo\r\n\r\ntail"))
	require.NoError(t, err)
	require.Equal(t, "tail", string(body))

	proto, err := resp.Proto()
	require.NoError(t, err)
	require.Equal(t, "HTTP/1.1", proto.String())

	code, err := resp.Status()
	require.NoError(t, err)
	require.Equal(t, uint16(200), code)

	reason, err := resp.Reason()
	require.NoError(t, err)
	require.Equal(t, "OK", reason.String())
}

func TestFieldLookup(t *testing.T) {
	req, _, err := ParseRequest([]byte("GET / HTTP/1.1\r\nContent-Length: 13\r\n\r\n"))
	require.NoError(t, err)

	t.Run("exact match only", func(t *testing.T) {
		_, found := req.Field(mustKey(t, "content-length"))
		require.False(t, found)

		value, found := req.Field(mustKey(t, "Content-Length"))
		require.True(t, found)
		require.Equal(t, "13", value.String())
	})

	t.Run("fold lookup", func(t *testing.T) {
		value, found := req.FieldFold("CONTENT-LENGTH")
		require.True(t, found)
		require.Equal(t, "13", value.String())

		_, found = req.FieldFold("Missing")
		require.False(t, found)
	})

	t.Run("pairs", func(t *testing.T) {
		pairs := map[string]string{}
		for key, value := range req.Pairs() {
			pairs[key] = value
		}
		require.Equal(t, map[string]string{"Content-Length": "13"}, pairs)
	})
}

func TestBorrowing(t *testing.T) {
	raw := func() []byte {
		return []byte("GET / HTTP/1.1\r\nHost: a.com\r\n\r\nBODY")
	}

	t.Run("values alias the source buffer", func(t *testing.T) {
		buf := raw()
		req, body, err := ParseRequest(buf)
		require.NoError(t, err)

		// flip a byte inside the Host value region and watch it bleed through
		buf[22] = 'x'
		value, _ := req.Field(mustKey(t, "Host"))
		require.Equal(t, "x.com", value.String())

		buf[len(buf)-1] = 'X'
		require.Equal(t, "BODX", string(body))
	})

	t.Run("copy mode detaches parsed values", func(t *testing.T) {
		cfg := config.Default()
		cfg.Memory.Copy = true

		buf := raw()
		req, _, err := New(cfg).ParseRequest(buf)
		require.NoError(t, err)

		buf[22] = 'x'
		value, _ := req.Field(mustKey(t, "Host"))
		require.Equal(t, "a.com", value.String())
	})
}
