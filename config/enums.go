package config

//go:generate go tool go-enum --marshal --names

// Format of the resolved properties dump.
// ENUM(yaml, json)
type OutputFmt int

// Ext returns file name extension for the format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtYaml:
		return ".yaml"
	case OutputFmtJson:
		return ".json"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
