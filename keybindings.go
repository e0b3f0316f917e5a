package main

import (
	"slices"
	"sort"
)

// GetCombinedKeybindings merges the user's key bindings on top of the
// defaults. A key the user binds loses its default action entirely.
//
// usage example: GetCombinedKeybindings(conf.Keybindings, c.DefaultMappings)["Ctrl+S"]
// returns ["submit"].
func GetCombinedKeybindings(kb map[string][]string, defaults map[string]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(kb))

	for k, v := range defaults {
		result[k] = []string{v}
	}

	for k, v := range kb {
		result[k] = slices.Clone(v)
	}

	return result
}

// GetAllBoundActions is the inverse of GetCombinedKeybindings: it returns, for
// each action, the sorted list of keys that trigger it.
//
// usage example: GetAllBoundActions(conf.Keybindings, c.DefaultMappings)["delete"]
// returns ["Ctrl+D", "Delete"].
func GetAllBoundActions(kb map[string][]string, defaults map[string]string) map[string][]string {
	result := make(map[string][]string)

	combined := GetCombinedKeybindings(kb, defaults)

	keys := make([]string, 0, len(combined))
	for k := range combined {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		for _, action := range combined[k] {
			if slices.Contains(result[action], k) {
				continue
			}

			result[action] = append(result[action], k)
		}
	}

	return result
}
