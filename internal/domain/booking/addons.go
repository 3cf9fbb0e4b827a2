package booking

// Add-on services offered during the wizard's confirmation step. The
// price table is fixed reference data.
var addonPrices = map[string]int64{
	"limpieza-dental": 15000,
	"masaje":          20000,
	"pedicure":        10000,
}

// AddonPrice returns 0 for unknown addon ids, as the source did.
func AddonPrice(id string) int64 {
	return addonPrices[id]
}

func ValidAddon(id string) bool {
	_, ok := addonPrices[id]
	return ok
}

// AddonsTotal sums the price of each listed addon.
func AddonsTotal(ids []string) int64 {
	var total int64
	for _, id := range ids {
		total += AddonPrice(id)
	}
	return total
}

// ToggleAddon returns the list with id added when absent or removed when
// present (symmetric difference membership toggle), plus whether the
// addon ended up selected.
func ToggleAddon(addons []string, id string) ([]string, bool) {
	for i, a := range addons {
		if a == id {
			return append(addons[:i], addons[i+1:]...), false
		}
	}
	return append(addons, id), true
}
