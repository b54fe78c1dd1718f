package ioload

// strainAliases maps shorthand column names used in measurement files to
// canonical strain names. The table is fixed; nothing mutates it at
// runtime.
var strainAliases = map[string]string{
	"B6": "C57BL/6J",
	"D2": "DBA/2J",
}

// translateAlias returns the canonical strain name for a known alias,
// and the input unchanged for everything else.
func translateAlias(name string) string {
	if canonical, ok := strainAliases[name]; ok {
		return canonical
	}
	return name
}
