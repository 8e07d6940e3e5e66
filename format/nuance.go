// Package format writes generated event lists in downstream-consumable
// formats.
package format

import (
	"fmt"
	"io"

	"github.com/svalder/sntools/gen"
)

// WriteNuance writes events in the NUANCE text format read by the
// Super-K/Hyper-K detector-simulation tooling. Incoming particles carry
// tracking flag -1 (not tracked), outgoing particles flag 0 (tracked).
// The interaction vertex is left at the origin; placing events in the
// detector volume is the detector simulation's job.
func WriteNuance(w io.Writer, events []gen.Event) error {
	for i, ev := range events {
		if _, err := fmt.Fprintf(w, "$ begin\n$ nuance %d\n", ev.Code); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "$ vertex %.5f %.5f %.5f %.8f\n", 0.0, 0.0, 0.0, ev.Time); err != nil {
			return err
		}
		for _, p := range ev.Incoming {
			if err := writeTrack(w, p, -1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "$ info 0 0 %d\n", i); err != nil {
			return err
		}
		for _, p := range ev.Outgoing {
			if err := writeTrack(w, p, 0); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "$ end\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "$ stop\n")
	return err
}

func writeTrack(w io.Writer, p gen.Particle, flag int) error {
	_, err := fmt.Fprintf(w, "$ track %d %.5f %.5f %.5f %.5f %d\n",
		p.PID, p.Energy, p.Direction.X, p.Direction.Y, p.Direction.Z, flag)
	return err
}
