package negotiate

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html/template"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// A Renderer serializes a handler's data into the bytes of one media type.
//
// The request rides along so a Renderer can vary its output on request
// state, say pretty-printing when a debug query param is set.
type Renderer func(r *http.Request, data any) ([]byte, error)

// JSON renders data as compact JSON.
func JSON(_ *http.Request, data any) ([]byte, error) {
	return json.Marshal(data)
}

// YAML renders data as a YAML document.
func YAML(_ *http.Request, data any) ([]byte, error) {
	return yaml.Marshal(data)
}

// Msgpack renders data in the MessagePack binary format.
func Msgpack(_ *http.Request, data any) ([]byte, error) {
	return msgpack.Marshal(data)
}

// XML renders data as XML. The data must be something encoding/xml can
// marshal, so structs rather than maps.
func XML(_ *http.Request, data any) ([]byte, error) {
	return xml.Marshal(data)
}

// Proto renders data in the protobuf wire format. The data must implement
// proto.Message.
func Proto(_ *http.Request, data any) ([]byte, error) {
	msg, ok := data.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("cannot render %T: not a proto.Message", data)
	}

	return proto.Marshal(msg)
}

// Template renders data through the named template in t.
func Template(t *template.Template, name string) Renderer {
	return func(_ *http.Request, data any) ([]byte, error) {
		buf := new(bytes.Buffer)
		if err := t.ExecuteTemplate(buf, name, data); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}
}
