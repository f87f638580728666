package status

// ModemBand is a radio frequency band a modem can operate on.
type ModemBand uint16

// Band constants follow the 3GPP and 3GPP2 band numbering.
const (
	ModemBandUnknown ModemBand = iota
	ModemBandEgsm
	ModemBandDcs
	ModemBandPcs
	ModemBandG850
	ModemBandUtran1
	ModemBandUtran3
	ModemBandUtran4
	ModemBandUtran6
	ModemBandUtran5
	ModemBandUtran8
	ModemBandUtran9
	ModemBandUtran2
	ModemBandUtran7
	ModemBandG450
	ModemBandG480
	ModemBandG750
	ModemBandG380
	ModemBandG410
	ModemBandG710
	ModemBandG810
	ModemBandEutran1
	ModemBandEutran2
	ModemBandEutran3
	ModemBandEutran4
	ModemBandEutran5
	ModemBandEutran6
	ModemBandEutran7
	ModemBandEutran8
	ModemBandEutran9
	ModemBandEutran10
	ModemBandEutran11
	ModemBandEutran12
	ModemBandEutran13
	ModemBandEutran14
	ModemBandEutran17
	ModemBandEutran18
	ModemBandEutran19
	ModemBandEutran20
	ModemBandEutran21
	ModemBandEutran22
	ModemBandEutran23
	ModemBandEutran24
	ModemBandEutran25
	ModemBandEutran26
	ModemBandEutran27
	ModemBandEutran28
	ModemBandEutran29
	ModemBandEutran30
	ModemBandEutran31
	ModemBandEutran32
	ModemBandEutran33
	ModemBandEutran34
	ModemBandEutran35
	ModemBandEutran36
	ModemBandEutran37
	ModemBandEutran38
	ModemBandEutran39
	ModemBandEutran40
	ModemBandEutran41
	ModemBandEutran42
	ModemBandEutran43
	ModemBandEutran44
	ModemBandEutran45
	ModemBandEutran46
	ModemBandEutran47
	ModemBandEutran48
	ModemBandEutran49
	ModemBandEutran50
	ModemBandEutran51
	ModemBandEutran52
	ModemBandEutran53
	ModemBandEutran54
	ModemBandEutran55
	ModemBandEutran56
	ModemBandEutran57
	ModemBandEutran58
	ModemBandEutran59
	ModemBandEutran60
	ModemBandEutran61
	ModemBandEutran62
	ModemBandEutran63
	ModemBandEutran64
	ModemBandEutran65
	ModemBandEutran66
	ModemBandEutran67
	ModemBandEutran68
	ModemBandEutran69
	ModemBandEutran70
	ModemBandEutran71
	ModemBandCdmaBc0
	ModemBandCdmaBc1
	ModemBandCdmaBc2
	ModemBandCdmaBc3
	ModemBandCdmaBc4
	ModemBandCdmaBc5
	ModemBandCdmaBc6
	ModemBandCdmaBc7
	ModemBandCdmaBc8
	ModemBandCdmaBc9
	ModemBandCdmaBc10
	ModemBandCdmaBc11
	ModemBandCdmaBc12
	ModemBandCdmaBc13
	ModemBandCdmaBc14
	ModemBandCdmaBc15
	ModemBandCdmaBc16
	ModemBandCdmaBc17
	ModemBandCdmaBc18
	ModemBandCdmaBc19
	ModemBandUtran10
	ModemBandUtran11
	ModemBandUtran12
	ModemBandUtran13
	ModemBandUtran14
	ModemBandUtran19
	ModemBandUtran20
	ModemBandUtran21
	ModemBandUtran22
	ModemBandUtran25
	ModemBandUtran26
	ModemBandUtran32
	ModemBandAny

	modemBandCount
)

var modemBandNames = [modemBandCount]string{
	ModemBandUnknown:  "UNKNOWN",
	ModemBandEgsm:     "EGSM",
	ModemBandDcs:      "DCS",
	ModemBandPcs:      "PCS",
	ModemBandG850:     "G850",
	ModemBandUtran1:   "UTRAN_1",
	ModemBandUtran3:   "UTRAN_3",
	ModemBandUtran4:   "UTRAN_4",
	ModemBandUtran6:   "UTRAN_6",
	ModemBandUtran5:   "UTRAN_5",
	ModemBandUtran8:   "UTRAN_8",
	ModemBandUtran9:   "UTRAN_9",
	ModemBandUtran2:   "UTRAN_2",
	ModemBandUtran7:   "UTRAN_7",
	ModemBandG450:     "G450",
	ModemBandG480:     "G480",
	ModemBandG750:     "G750",
	ModemBandG380:     "G380",
	ModemBandG410:     "G410",
	ModemBandG710:     "G710",
	ModemBandG810:     "G810",
	ModemBandEutran1:  "EUTRAN_1",
	ModemBandEutran2:  "EUTRAN_2",
	ModemBandEutran3:  "EUTRAN_3",
	ModemBandEutran4:  "EUTRAN_4",
	ModemBandEutran5:  "EUTRAN_5",
	ModemBandEutran6:  "EUTRAN_6",
	ModemBandEutran7:  "EUTRAN_7",
	ModemBandEutran8:  "EUTRAN_8",
	ModemBandEutran9:  "EUTRAN_9",
	ModemBandEutran10: "EUTRAN_10",
	ModemBandEutran11: "EUTRAN_11",
	ModemBandEutran12: "EUTRAN_12",
	ModemBandEutran13: "EUTRAN_13",
	ModemBandEutran14: "EUTRAN_14",
	ModemBandEutran17: "EUTRAN_17",
	ModemBandEutran18: "EUTRAN_18",
	ModemBandEutran19: "EUTRAN_19",
	ModemBandEutran20: "EUTRAN_20",
	ModemBandEutran21: "EUTRAN_21",
	ModemBandEutran22: "EUTRAN_22",
	ModemBandEutran23: "EUTRAN_23",
	ModemBandEutran24: "EUTRAN_24",
	ModemBandEutran25: "EUTRAN_25",
	ModemBandEutran26: "EUTRAN_26",
	ModemBandEutran27: "EUTRAN_27",
	ModemBandEutran28: "EUTRAN_28",
	ModemBandEutran29: "EUTRAN_29",
	ModemBandEutran30: "EUTRAN_30",
	ModemBandEutran31: "EUTRAN_31",
	ModemBandEutran32: "EUTRAN_32",
	ModemBandEutran33: "EUTRAN_33",
	ModemBandEutran34: "EUTRAN_34",
	ModemBandEutran35: "EUTRAN_35",
	ModemBandEutran36: "EUTRAN_36",
	ModemBandEutran37: "EUTRAN_37",
	ModemBandEutran38: "EUTRAN_38",
	ModemBandEutran39: "EUTRAN_39",
	ModemBandEutran40: "EUTRAN_40",
	ModemBandEutran41: "EUTRAN_41",
	ModemBandEutran42: "EUTRAN_42",
	ModemBandEutran43: "EUTRAN_43",
	ModemBandEutran44: "EUTRAN_44",
	ModemBandEutran45: "EUTRAN_45",
	ModemBandEutran46: "EUTRAN_46",
	ModemBandEutran47: "EUTRAN_47",
	ModemBandEutran48: "EUTRAN_48",
	ModemBandEutran49: "EUTRAN_49",
	ModemBandEutran50: "EUTRAN_50",
	ModemBandEutran51: "EUTRAN_51",
	ModemBandEutran52: "EUTRAN_52",
	ModemBandEutran53: "EUTRAN_53",
	ModemBandEutran54: "EUTRAN_54",
	ModemBandEutran55: "EUTRAN_55",
	ModemBandEutran56: "EUTRAN_56",
	ModemBandEutran57: "EUTRAN_57",
	ModemBandEutran58: "EUTRAN_58",
	ModemBandEutran59: "EUTRAN_59",
	ModemBandEutran60: "EUTRAN_60",
	ModemBandEutran61: "EUTRAN_61",
	ModemBandEutran62: "EUTRAN_62",
	ModemBandEutran63: "EUTRAN_63",
	ModemBandEutran64: "EUTRAN_64",
	ModemBandEutran65: "EUTRAN_65",
	ModemBandEutran66: "EUTRAN_66",
	ModemBandEutran67: "EUTRAN_67",
	ModemBandEutran68: "EUTRAN_68",
	ModemBandEutran69: "EUTRAN_69",
	ModemBandEutran70: "EUTRAN_70",
	ModemBandEutran71: "EUTRAN_71",
	ModemBandCdmaBc0:  "CDMA_BC0",
	ModemBandCdmaBc1:  "CDMA_BC1",
	ModemBandCdmaBc2:  "CDMA_BC2",
	ModemBandCdmaBc3:  "CDMA_BC3",
	ModemBandCdmaBc4:  "CDMA_BC4",
	ModemBandCdmaBc5:  "CDMA_BC5",
	ModemBandCdmaBc6:  "CDMA_BC6",
	ModemBandCdmaBc7:  "CDMA_BC7",
	ModemBandCdmaBc8:  "CDMA_BC8",
	ModemBandCdmaBc9:  "CDMA_BC9",
	ModemBandCdmaBc10: "CDMA_BC10",
	ModemBandCdmaBc11: "CDMA_BC11",
	ModemBandCdmaBc12: "CDMA_BC12",
	ModemBandCdmaBc13: "CDMA_BC13",
	ModemBandCdmaBc14: "CDMA_BC14",
	ModemBandCdmaBc15: "CDMA_BC15",
	ModemBandCdmaBc16: "CDMA_BC16",
	ModemBandCdmaBc17: "CDMA_BC17",
	ModemBandCdmaBc18: "CDMA_BC18",
	ModemBandCdmaBc19: "CDMA_BC19",
	ModemBandUtran10:  "UTRAN_10",
	ModemBandUtran11:  "UTRAN_11",
	ModemBandUtran12:  "UTRAN_12",
	ModemBandUtran13:  "UTRAN_13",
	ModemBandUtran14:  "UTRAN_14",
	ModemBandUtran19:  "UTRAN_19",
	ModemBandUtran20:  "UTRAN_20",
	ModemBandUtran21:  "UTRAN_21",
	ModemBandUtran22:  "UTRAN_22",
	ModemBandUtran25:  "UTRAN_25",
	ModemBandUtran26:  "UTRAN_26",
	ModemBandUtran32:  "UTRAN_32",
	ModemBandAny:      "ANY",
}

// String returns the band name.
func (b ModemBand) String() string {
	if b < modemBandCount {
		return modemBandNames[b]
	}
	return "UNKNOWN"
}

// MarshalText implements encoding.TextMarshaler.
func (b ModemBand) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *ModemBand) UnmarshalText(text []byte) error {
	return parseText(b, "modem band", text, modemBandCount)
}
