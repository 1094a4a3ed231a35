package cmd

import (
	"context"
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"
)

// Report formats shared by commands that print structured results.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// encode writes v to w as YAML or JSON according to format.
func encode(ctx context.Context, w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case formatYAML:
		data, err = yaml.MarshalContext(ctx, v, yaml.Indent(2))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}
	default:
		data, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		data = append(data, '\n')
	}

	_, err = w.Write(data)
	if err != nil {
		return ErrWriteReport.Wrap(err)
	}

	return nil
}
