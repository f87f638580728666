package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/nmwire/nmwire-go/pkg/log"
)

// Env is what every command writes to.
type Env struct {
	Out     io.Writer
	Format  string
	Logger  log.Logger
	Session string

	now func() time.Time
}

// NewEnv creates an Env with a fresh session ID. A nil logger discards
// events.
func NewEnv(out io.Writer, format string, logger log.Logger) *Env {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Env{
		Out:     out,
		Format:  format,
		Logger:  logger,
		Session: uuid.NewString(),
		now:     time.Now,
	}
}

// record stamps and logs an event.
func (e *Env) record(event log.Event) {
	event.Timestamp = e.now()
	event.SessionID = e.Session
	e.Logger.Log(event)
}

// structured writes v as indented JSON or as YAML. YAML goes through JSON
// so that both formats use the same field names and enum spellings.
func (e *Env) structured(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if e.Format == FormatJSON {
		_, err = fmt.Fprintln(e.Out, string(data))
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = e.Out.Write(out)
	return err
}
