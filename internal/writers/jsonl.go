// internal/writers/jsonl.go
package writers

import (
	"context"
	"encoding/json"
	"io"

	"rptidx/internal/jsonlutil"
	"rptidx/internal/output"
)

// StartGroupJSONLWriter streams each output.Entry as one JSON line (v1).
func StartGroupJSONLWriter(out io.Writer, bufSize int) *jsonlutil.Writer[output.Entry] {
	return jsonlutil.Start(out, bufSize,
		func(enc *json.Encoder, e output.Entry) error {
			return enc.Encode(output.ToAPIGroup(e))
		},
		IsBrokenPipe,
	)
}

func writeJSONL(w io.Writer, list []output.Entry) error {
	jw := StartGroupJSONLWriter(w, 64)
	ctx := context.Background()
	for _, e := range list {
		if err := jw.Send(ctx, e); err != nil {
			break
		}
	}
	_, err := jw.Close()
	return err
}
