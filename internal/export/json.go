package export

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/mwichro/dealab/internal/exc"
	"github.com/mwichro/dealab/internal/lab"
)

// Outcome is the JSON shape of one scenario outcome. Failure fields are
// omitted for passing runs.
type Outcome struct {
	Scenario  string  `json:"scenario"`
	OK        bool    `json:"ok"`
	Kind      string  `json:"kind,omitempty"`
	File      string  `json:"file,omitempty"`
	Line      int     `json:"line,omitempty"`
	Condition string  `json:"condition,omitempty"`
	Report    string  `json:"report,omitempty"`
	Millis    float64 `json:"duration_ms"`
}

// WriteJSON writes outcomes as an indented JSON array.
func WriteJSON(w io.Writer, outcomes []lab.Outcome) error {
	out := make([]Outcome, len(outcomes))
	for i, o := range outcomes {
		out[i] = Outcome{
			Scenario: o.Scenario,
			OK:       !o.Failed(),
			Report:   o.Report,
			Millis:   float64(o.Duration) / float64(time.Millisecond),
		}
		var e *exc.Error
		if errors.As(o.Err, &e) {
			out[i].Kind = e.Name()
			out[i].File = e.File()
			out[i].Line = e.Line()
			out[i].Condition = e.Condition()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
