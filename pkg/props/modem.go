package props

import (
	"github.com/nmwire/nmwire-go/pkg/codes"
	"github.com/nmwire/nmwire-go/pkg/mm"
	"github.com/nmwire/nmwire-go/pkg/status"
)

// DecodeModem decodes an MM Modem object. The 3GPP registration fields are
// filled only when the object carries the Modem3gpp interface.
func (d *Decoder) DecodeModem(modem PropertySource) (status.ModemStatus, error) {
	const iface = mm.ModemInterface
	r := d.reader(modem)
	st := status.ModemStatus{Object: r.object}
	var err error

	if st.Model, err = r.optString(iface, "Model"); err != nil {
		return st, err
	}
	if st.Manufacturer, err = r.optString(iface, "Manufacturer"); err != nil {
		return st, err
	}
	if st.Revision, err = r.optString(iface, "Revision"); err != nil {
		return st, err
	}

	state, err := r.code(iface, "State")
	if err != nil {
		return st, err
	}
	st.ConnectionStatus = mm.ModemStateFromUInt32(state).Status()

	if power, ok, err := r.optCode(iface, "PowerState"); err != nil {
		return st, err
	} else if ok {
		st.PowerState = mm.ModemPowerStateFromUInt32(power).Status()
	}

	tech, err := r.code(iface, "AccessTechnologies")
	if err != nil {
		return st, err
	}
	st.AccessTechnologies = mm.AccessTechnologies(tech)

	bands, err := r.optCodes(iface, "CurrentBands")
	if err != nil {
		return st, err
	}
	st.CurrentBands = mm.Bands(bands)

	if st.CurrentModes, err = r.modePair(iface, "CurrentModes"); err != nil {
		return st, err
	}

	if current, ok, err := r.optCode(iface, "CurrentCapabilities"); err != nil {
		return st, err
	} else if ok {
		st.CurrentCapabilities = mm.Capabilities(current)
	}

	supported, err := r.optCodes(iface, "SupportedCapabilities")
	if err != nil {
		return st, err
	}
	for _, mask := range supported {
		if st.SupportedCapabilities == nil {
			st.SupportedCapabilities = codes.NewSet[status.ModemCapability]()
		}
		for c := range mm.Capabilities(mask) {
			st.SupportedCapabilities.Add(c)
		}
	}

	if st.SignalQuality, err = r.signalQuality(iface, "SignalQuality"); err != nil {
		return st, err
	}
	if st.Ports, err = r.ports(iface, "Ports"); err != nil {
		return st, err
	}

	st.RegistrationStatus = status.RegistrationStatusUnknown
	if reg, ok, err := r.optCode(mm.Modem3gppInterface, "RegistrationState"); err != nil {
		return st, err
	} else if ok {
		st.RegistrationStatus = mm.Modem3gppRegistrationStateFromUInt32(reg).Status()
	}
	if st.OperatorName, err = r.optString(mm.Modem3gppInterface, "OperatorName"); err != nil {
		return st, err
	}
	return st, nil
}

// tuple reads an optional D-Bus struct of n members.
func (r *reader) tuple(iface, name string, n int) ([]any, error) {
	l, err := r.optList(iface, name)
	if err != nil || l == nil {
		return nil, err
	}
	if len(l) != n {
		v, _ := r.src.Get(iface, name)
		return nil, r.fail(iface, name, typeError(key(iface, name), v, "struct"))
	}
	return l, nil
}

// modePair reads a (uu) allowed and preferred mode pair.
func (r *reader) modePair(iface, name string) (status.ModemModePair, error) {
	t, err := r.tuple(iface, name, 2)
	if err != nil || t == nil {
		return status.ModemModePair{}, err
	}
	allowed, ok1 := asUint32(t[0])
	preferred, ok2 := asUint32(t[1])
	if !ok1 || !ok2 {
		return status.ModemModePair{}, r.fail(iface, name, typeError(key(iface, name), t, "(uu)"))
	}
	r.translated(iface, name, allowed)
	r.translated(iface, name, preferred)
	return mm.ModePair(allowed, preferred), nil
}

// signalQuality reads the percentage of a (ub) signal quality pair.
func (r *reader) signalQuality(iface, name string) (uint32, error) {
	t, err := r.tuple(iface, name, 2)
	if err != nil || t == nil {
		return 0, err
	}
	q, ok := asUint32(t[0])
	if !ok {
		return 0, r.fail(iface, name, typeError(key(iface, name), t, "(ub)"))
	}
	return q, nil
}

// ports reads an a(su) list of port names and types.
func (r *reader) ports(iface, name string) ([]status.ModemPort, error) {
	l, err := r.optList(iface, name)
	if err != nil || l == nil {
		return nil, err
	}
	out := make([]status.ModemPort, 0, len(l))
	for _, e := range l {
		p, ok := asList(e)
		if !ok || len(p) != 2 {
			return nil, r.fail(iface, name, typeError(key(iface, name), e, "(su)"))
		}
		portName, ok1 := asString(p[0])
		portType, ok2 := asUint32(p[1])
		if !ok1 || !ok2 {
			return nil, r.fail(iface, name, typeError(key(iface, name), e, "(su)"))
		}
		r.translated(iface, name, portType)
		out = append(out, status.ModemPort{
			Name: portName,
			Type: mm.ModemPortTypeFromUInt32(portType).Status(),
		})
	}
	return out, nil
}
