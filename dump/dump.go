// Package dump turns parsed headers back into human-inspectable forms:
// the exact wire rendition and a JSON digest. Meant for diagnostics,
// logging and test assertions rather than the hot path.
package dump

import (
	"bytes"
	"iter"

	"github.com/indigo-web/httphead"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Request renders the parsed request header back into wire form.
func Request(req httphead.Request) (string, error) {
	var buff bytes.Buffer
	_, err := req.WriteTo(&buff)

	return buff.String(), err
}

// Response renders the parsed response header back into wire form.
func Response(resp httphead.Response) (string, error) {
	var buff bytes.Buffer
	_, err := resp.WriteTo(&buff)

	return buff.String(), err
}

type requestModel struct {
	Method string            `json:"method"`
	URI    string            `json:"uri"`
	Proto  string            `json:"proto"`
	Fields map[string]string `json:"fields"`
}

type responseModel struct {
	Proto  string            `json:"proto"`
	Status uint16            `json:"status"`
	Reason string            `json:"reason"`
	Fields map[string]string `json:"fields"`
}

// RequestJSON digests the request header into JSON, running all the
// typed accessors on the way.
func RequestJSON(req httphead.Request) (string, error) {
	method, err := req.Method()
	if err != nil {
		return "", err
	}

	uri, err := req.URI()
	if err != nil {
		return "", err
	}

	proto, err := req.Proto()
	if err != nil {
		return "", err
	}

	data, err := json.ConfigDefault.Marshal(requestModel{
		Method: method.String(),
		URI:    uri.String(),
		Proto:  proto.String(),
		Fields: collect(req.Pairs()),
	})
	if err != nil {
		return "", err
	}

	return uf.B2S(data), nil
}

// ResponseJSON digests the response header into JSON, running all the
// typed accessors on the way.
func ResponseJSON(resp httphead.Response) (string, error) {
	proto, err := resp.Proto()
	if err != nil {
		return "", err
	}

	code, err := resp.Status()
	if err != nil {
		return "", err
	}

	reason, err := resp.Reason()
	if err != nil {
		return "", err
	}

	data, err := json.ConfigDefault.Marshal(responseModel{
		Proto:  proto.String(),
		Status: code,
		Reason: reason.String(),
		Fields: collect(resp.Pairs()),
	})
	if err != nil {
		return "", err
	}

	return uf.B2S(data), nil
}

func collect(pairs iter.Seq2[string, string]) map[string]string {
	fields := make(map[string]string)
	for key, value := range pairs {
		fields[key] = value
	}

	return fields
}
