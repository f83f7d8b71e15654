package tsl1128

// VersionLabels maps the field codes of a .vr response to friendly names.
var VersionLabels = map[string]string{
	"MF": "Manufacturer",
	"US": "Unit serial",
	"PV": "Protocol version",
	"UF": "Firmware version",
	"UB": "Bootloader version",
	"RS": "RFID serial",
	"RF": "RFID firmware",
	"RB": "RFID bootloader",
	"AS": "Assembly serial",
	"BA": "Bluetooth address",
	"BV": "Battery voltage",

	// Older field names for compatibility.
	"VR": "Firmware version",
	"AP": "Model",
	"SN": "Serial number",
}

// BatteryLabels maps the field codes of a .bl response to friendly names.
var BatteryLabels = map[string]string{
	"BV": "Battery voltage",
	"PC": "Charge level",
	"BP": "Charge level",
	"CH": "Charging state",
}

// InventoryLabels maps the non-transponder field codes of a .iv response
// to friendly names.
var InventoryLabels = map[string]string{
	"RI": "Signal strength",
}

// labelFor returns the friendly name for a field code, or the raw code
// when the table has no entry.
func labelFor(labels map[string]string, field string) string {
	if label, ok := labels[field]; ok {
		return label
	}

	return field
}
