package normalize

// The rule tables below come from corpus analysis of fleet lshw output:
// fields listed here were observed with mixed serializations across
// collectors and must land on one canonical type.

// numericFields should always hold numbers.
var numericFields = map[string]bool{
	"latency":           true,
	"cores":             true,
	"enabledcores":      true,
	"microcode":         true,
	"threads":           true,
	"level":             true,
	"ansiversion":       true,
	"size":              true,
	"capacity":          true,
	"width":             true,
	"clock":             true,
	"units":             true,
	"depth":             true,
	"FATs":              true,
	"logicalsectorsize": true,
	"sectorsize":        true,
}

// booleanFields should always hold booleans.
var booleanFields = map[string]bool{
	"claimed":   true,
	"disabled":  true,
	"boot":      true,
	"broadcast": true,
	"link":      true,
	"multicast": true,
	"slave":     true,
	"removable": true,
	"audio":     true,
	"dvd":       true,
}

// capabilityBooleans are capability names whose values are boolean flags
// rather than descriptive text.
var capabilityBooleans = map[string]bool{
	"pci":                  true,
	"pciexpress":           true,
	"pm":                   true,
	"msi":                  true,
	"msix":                 true,
	"bus_master":           true,
	"cap_list":             true,
	"rom":                  true,
	"fb":                   true,
	"pnp":                  true,
	"upgrade":              true,
	"shadowing":            true,
	"cdboot":               true,
	"bootselect":           true,
	"edd":                  true,
	"usb":                  true,
	"netboot":              true,
	"acpi":                 true,
	"biosbootspecification": true,
	"uefi":                 true,
	"escd":                 true,
	"virtualmachine":       true,
	"smp":                  true,
	"vsyscall32":           true,
	"gpt-1_00":             true,
	"partitioned":          true,
	"partitioned:gpt":      true,
	"nofs":                 true,
	"fat":                  true,
	"initialized":          true,
	"journaled":            true,
	"extended_attributes":  true,
	"large_files":          true,
	"huge_files":           true,
	"dir_nlink":            true,
	"recover":              true,
	"extents":              true,
	"ethernet":             true,
	"physical":             true,
	"removable":            true,
	"audio":                true,
	"dvd":                  true,
}

// negativeMarkers flag a descriptive capability string as an absence
// statement. Checked as substrings of the lowercased, trimmed text.
var negativeMarkers = []string{
	" no ",
	"not ",
	"none",
	"disabled",
	"unsupported",
	"unavailable",
}

// trueWords and falseWords are the spellings the boolean rule recognizes,
// matched case-insensitively after trimming.
var (
	trueWords  = map[string]bool{"true": true, "yes": true, "1": true, "on": true}
	falseWords = map[string]bool{"false": true, "no": true, "0": true, "off": true}
)
