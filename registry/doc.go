// Package registry provides a global registry for named enum-like mappings.
//
// Processes that define their enums in one place (an init function, a config
// loader) can resolve them by name everywhere else, without threading *Enum
// values through every call site:
//
//	registry.Register("priority", enumkit.FromMap(map[string]int{
//	    "Low": 1, "Medium": 2, "High": 3,
//	}))
//
//	v, err := registry.ToValue("priority", input, enumkit.WithConvert())
//
// # Thread Safety
//
// All operations are safe for concurrent use; the registry guards its state
// with a sync.RWMutex. The registered Enum values themselves are shared, so
// callers must not mutate them after registration.
package registry
