package validate

import "github.com/fredericlepied/lshw-normalization/core/typetag"

// expectedTypes declares the acceptable categories per known field name.
// Null is always acceptable on top of these: lshw emits null for fields it
// could not probe. Fields absent from this table are never type-checked.
var expectedTypes = map[string][]typetag.Tag{
	"latency":           {typetag.Integer, typetag.Float},
	"cores":             {typetag.Integer},
	"enabledcores":      {typetag.Integer},
	"microcode":         {typetag.Integer, typetag.String},
	"threads":           {typetag.Integer},
	"level":             {typetag.Integer},
	"ansiversion":       {typetag.Integer, typetag.String},
	"size":              {typetag.Integer, typetag.Float},
	"capacity":          {typetag.Integer, typetag.Float},
	"width":             {typetag.Integer},
	"clock":             {typetag.Integer, typetag.Float},
	"depth":             {typetag.Integer},
	"FATs":              {typetag.Integer},
	"logicalsectorsize": {typetag.Integer},
	"sectorsize":        {typetag.Integer},

	"claimed":   {typetag.Boolean},
	"disabled":  {typetag.Boolean},
	"broadcast": {typetag.Boolean},
	"link":      {typetag.Boolean},
	"multicast": {typetag.Boolean},
	"slave":     {typetag.Boolean},
	"removable": {typetag.Boolean},
	"audio":     {typetag.Boolean},
	"dvd":       {typetag.Boolean},

	"physid":      {typetag.String},
	"version":     {typetag.String},
	"logicalname": {typetag.Array, typetag.String},
	"children":    {typetag.Array},
}

// booleanWarnFields are probed for boolean literals spelled as strings.
var booleanWarnFields = map[string]bool{
	"broadcast": true,
	"link":      true,
	"multicast": true,
	"slave":     true,
	"claimed":   true,
	"disabled":  true,
}

// numericWarnFields are probed for numbers spelled as strings.
var numericWarnFields = map[string]bool{
	"latency":      true,
	"cores":        true,
	"enabledcores": true,
	"threads":      true,
	"level":        true,
	"size":         true,
	"capacity":     true,
	"width":        true,
	"clock":        true,
	"depth":        true,
}
