package commands

import (
	"fmt"
	"strings"

	"github.com/nmwire/nmwire-go/pkg/log"
	"github.com/nmwire/nmwire-go/pkg/mm"
)

// LocationPlan is the outcome of planning a modem's location sources.
type LocationPlan struct {
	Capabilities []string `json:"capabilities"`
	Enabled      []string `json:"enabled"`
	Setup        []string `json:"setup"`
	Mask         uint32   `json:"mask"`
	Change       bool     `json:"change"`
}

// RunLocation computes the Location.Setup call for a modem whose
// Location.Capabilities and Location.Enabled masks are given.
func RunLocation(env *Env, capabilities, enabled string, gps bool) error {
	caps, err := ParseWire(capabilities)
	if err != nil {
		return err
	}
	current, err := ParseWire(enabled)
	if err != nil {
		return err
	}

	mask, change, err := mm.PlanLocationSetup(caps, current, gps)
	if err != nil {
		env.record(log.Event{
			Category: log.CategoryError,
			Table:    "mm.location-source",
			Property: mm.LocationInterface + ".Capabilities",
			Wire:     caps,
			Message:  err.Error(),
		})
		return err
	}

	plan := LocationPlan{
		Capabilities: mm.ModemLocationSourceTable.Describe(caps),
		Enabled:      mm.ModemLocationSourceTable.Describe(current),
		Setup:        mm.ModemLocationSourceTable.Describe(mask),
		Mask:         mask,
		Change:       change,
	}
	if env.Format != FormatText {
		return env.structured(plan)
	}

	if !change {
		fmt.Fprintf(env.Out, "No change: %s already enabled\n", strings.Join(plan.Enabled, "|"))
		return nil
	}
	fmt.Fprintf(env.Out, "Setup(0x%08x, false): %s -> %s\n", mask, strings.Join(plan.Enabled, "|"), strings.Join(plan.Setup, "|"))
	return nil
}
