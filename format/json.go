package format

import (
	"encoding/json"
	"io"

	"github.com/svalder/sntools/gen"
)

// WriteJSON writes one JSON object per event, one event per line.
func WriteJSON(w io.Writer, events []gen.Event) error {
	enc := json.NewEncoder(w)
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			return err
		}
	}
	return nil
}
