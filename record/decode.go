package record

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-iterate/collections"
)

// Format names a dataset encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// ErrUnknownFormat is returned for an encoding that is not supported.
var ErrUnknownFormat = errors.New("record: unknown format (known: yaml, json, cbor)")

var cborDecoder = func() cbor.DecMode {
	mode, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("record: cbor decoder options: " + err.Error())
	}
	return mode
}()

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cbor":
		return FormatCBOR, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "extension of %q", path)
}

// Decode reads a list of records from r.
func Decode(r io.Reader, format Format) (*collections.Collection[Record], error) {
	var rows []map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "decode yaml dataset")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&rows); err != nil {
			return nil, errors.Wrap(err, "decode json dataset")
		}
	case FormatCBOR:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "read cbor dataset")
		}
		if err := cborDecoder.Unmarshal(data, &rows); err != nil {
			return nil, errors.Wrap(err, "decode cbor dataset")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	records := collections.WithCapacity[Record](len(rows))
	for _, row := range rows {
		records.Add(Record(row))
	}
	return records, nil
}

// Load decodes the dataset file at path, choosing the format by extension.
func Load(path string) (*collections.Collection[Record], error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", path)
	}
	return Decode(bytes.NewReader(data), format)
}

// EncodeCBOR writes records as a CBOR array of maps.
func EncodeCBOR(w io.Writer, records []Record) error {
	return errors.Wrap(cbor.NewEncoder(w).Encode(records), "encode cbor dataset")
}
