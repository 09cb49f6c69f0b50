// Package art holds the static ASCII-art banner shown in the art panel.
package art

import "strings"

// logo is five rows tall so it fits the narrow layout's eight-row art
// region inside its border.
const logo = `  ___ _   _ ___ / _| ___| |_ ___| |__
 / __| | | / __| |_ / _ \ __/ __| '_ \
 \__ \ |_| \__ \  _|  __/ || (__| | | |
 |___/\__, |___/_|  \___|\__\___|_| |_|
      |___/
`

// Logo returns the banner text verbatim.
func Logo() string {
	return logo
}

// Lines returns the banner split into rows, without the trailing empty row.
func Lines() []string {
	return strings.Split(strings.TrimRight(logo, "\n"), "\n")
}
