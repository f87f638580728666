// Package props decodes D-Bus property values of NetworkManager and
// ModemManager objects into the status model.
//
// Values are read through a PropertySource, so the same decoder serves live
// D-Bus bindings, CBOR snapshots and YAML fixtures. Each code the decoder
// translates is reported to a log.Logger as an event; codes the tables do
// not recognize are reported, never returned as errors.
//
//	d := props.NewDecoder(props.WithLogger(logger))
//	dev, err := d.DecodeDevice(deviceProps, ip4Props)
//	if err != nil {
//		return err
//	}
//	fmt.Println(dev.Interface, dev.State)
package props
