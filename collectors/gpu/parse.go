package gpu

import (
	"bufio"
	"bytes"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// parseWMIC reads `wmic ... /format:value` output and returns the value of
// the first non-empty "Name=" line.
func parseWMIC(output []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !strings.HasPrefix(line, "Name=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(line, "Name="))
		if name != "" {
			return name, true
		}
	}
	return "", false
}

// lspciClasses are the device classes that identify a graphics adapter.
var lspciClasses = []string{"VGA compatible controller", "3D controller"}

// parseLspci reads `lspci -mm` output. Each device is a line of quoted
// fields: slot "class" "vendor" "device" ... The first graphics-class line
// yields "vendor device".
func parseLspci(output []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !isGraphicsClass(line) {
			continue
		}
		// Splitting on quotes gives: slot, class, sep, vendor, sep, device, ...
		parts := strings.Split(line, `"`)
		if len(parts) >= 6 {
			return parts[3] + " " + parts[5], true
		}
	}
	return "", false
}

func isGraphicsClass(line string) bool {
	for _, class := range lspciClasses {
		if strings.Contains(line, class) {
			return true
		}
	}
	return false
}

// systemProfilerReport is the subset of `system_profiler -json` output
// needed to name the first display adapter.
type systemProfilerReport struct {
	Displays []struct {
		Name string `json:"_name"`
	} `json:"SPDisplaysDataType"`
}

// nameKey is the raw marker scanned for when the report does not decode.
const nameKey = `"_name" : "`

// parseSystemProfiler returns the first adapter's _name from a
// SPDisplaysDataType report. Reports that fail to decode (truncated output
// from a killed or failing tool) fall back to a raw scan for the key.
func parseSystemProfiler(output []byte) (string, bool) {
	var report systemProfilerReport
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(output, &report); err == nil {
		for _, d := range report.Displays {
			if d.Name != "" {
				return d.Name, true
			}
		}
		return "", false
	}

	text := string(output)
	start := strings.Index(text, nameKey)
	if start < 0 {
		return "", false
	}
	start += len(nameKey)
	end := strings.IndexByte(text[start:], '"')
	if end < 0 {
		return "", false
	}
	return text[start : start+end], true
}
