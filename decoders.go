package tsl1128

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// VersionDecoder interprets the payload of the .vr command. Values are
// kept verbatim; only the field codes are expanded to friendly labels.
type VersionDecoder struct{}

// Decode implements the Decoder interface.
func (VersionDecoder) Decode(lines []string) Result {
	fields := map[string]string{}

	for _, line := range lines {
		field, value, ok := splitField(line)

		if !ok {
			continue
		}

		fields[labelFor(VersionLabels, field)] = value
	}

	return Result{Fields: fields}
}

// BatteryDecoder interprets the payload of the .bl command. The battery
// voltage is reported in millivolts and scaled to volts with two
// decimals; the charge level is reported as a bare integer percentage.
type BatteryDecoder struct{}

// Decode implements the Decoder interface.
func (BatteryDecoder) Decode(lines []string) Result {
	fields := map[string]string{}

	for _, line := range lines {
		field, value, ok := splitField(line)

		if !ok {
			continue
		}

		switch field {
		case "BV":
			value = formatVoltage(value)
		case "BP", "PC":
			value = strings.TrimSuffix(value, "%")
		}

		fields[labelFor(BatteryLabels, field)] = value
	}

	return Result{Fields: fields}
}

// formatVoltage converts a raw millivolt reading to a decimal voltage
// string. Readings that are not plain integers pass through unchanged.
func formatVoltage(value string) string {
	millivolts, err := strconv.ParseInt(value, 10, 64)

	if err != nil {
		return value
	}

	return fmt.Sprintf("%.2f", float64(millivolts)/1000)
}

// epcPattern matches transponder lines that carry no field prefix. Some
// firmware revisions report bare EPCs during an inventory round.
var epcPattern = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

// InventoryDecoder interprets the payload of the .iv command. Every
// EP:<epc> line (or bare hexadecimal EPC line) increments the tally for
// that transponder; the result lists distinct EPCs in first-seen order.
type InventoryDecoder struct{}

// Decode implements the Decoder interface.
func (InventoryDecoder) Decode(lines []string) Result {
	fields := map[string]string{}
	counts := map[string]int{}
	order := []string{}

	tally := func(epc string) {
		if _, seen := counts[epc]; !seen {
			order = append(order, epc)
		}

		counts[epc]++
	}

	for _, line := range lines {
		field, value, ok := splitField(line)

		if !ok {
			if epc := strings.TrimSpace(line); epcPattern.MatchString(epc) {
				tally(epc)
			}

			continue
		}

		switch field {
		case "EP":
			tally(value)
		case "RI":
			fields[labelFor(InventoryLabels, field)] = formatStrength(value)
		default:
			fields[labelFor(InventoryLabels, field)] = value
		}
	}

	tags := make([]TagCount, 0, len(order))

	for _, epc := range order {
		tags = append(tags, TagCount{EPC: epc, Count: counts[epc]})
	}

	return Result{Fields: fields, Tags: tags}
}

// formatStrength converts a raw RSSI reading in dBm to a percentage
// string. Readings that are not numeric pass through unchanged.
func formatStrength(value string) string {
	dbm, err := strconv.ParseFloat(value, 64)

	if err != nil {
		return value
	}

	return fmt.Sprintf("%d%%", StrengthToPercentage(dbm))
}
