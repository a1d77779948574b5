package match

import (
	"context"
	"log"

	"news-radio/internal/locale"
	"news-radio/internal/station"
	"news-radio/internal/utils"
)

// GlobalDefault is the station of last resort.
const GlobalDefault = "NPR"

// Defaults resolves which station "the news" means on this device.
// Priority: station picked by the user, then a user-configured custom
// url, then the default for the device's country, then the global
// default. The order is load-bearing; do not reorder.
type Defaults struct {
	Catalog *station.Catalog
	Tables  *locale.Tables

	Selected    string // user-picked acronym, empty when unset
	CustomURL   string // user-supplied url, empty when unset
	CountryCode string // ISO code, empty when unknown
	Area        string // free-text location fallback

	// CountryFromArea is injectable for tests; nil uses the live lookup.
	CountryFromArea func(area string) (string, error)
}

// Station resolves the default station.
func (d *Defaults) Station(ctx context.Context) station.Station {
	if d.Selected != "" {
		if s, err := d.Catalog.Lookup(d.Selected); err == nil {
			return s
		}
		log.Printf("⚠️ Configured station %q is unknown, falling through", d.Selected)
	}

	if d.CustomURL != "" {
		if s, err := d.Catalog.Lookup(station.CustomAcronym); err == nil {
			return s
		}
		return d.Catalog.SetCustom(ctx, d.CustomURL)
	}

	if code := d.countryCode(); code != "" {
		if acronym, ok := d.Tables.CountryDefaults[code]; ok {
			if s, err := d.Catalog.Lookup(acronym); err == nil {
				return s
			}
		}
	}

	s, err := d.Catalog.Lookup(GlobalDefault)
	if err != nil {
		// The builtin table always carries the global default; an empty
		// catalog is a wiring bug, not a runtime condition.
		log.Printf("❌ Global default station %s missing from catalog", GlobalDefault)
	}
	return s
}

func (d *Defaults) countryCode() string {
	if d.CountryCode != "" {
		return d.CountryCode
	}
	if d.Area == "" {
		return ""
	}
	lookup := d.CountryFromArea
	if lookup == nil {
		lookup = utils.GetCountryFromArea
	}
	code, err := lookup(d.Area)
	if err != nil {
		log.Printf("⚠️ Country lookup for area %q failed: %v", d.Area, err)
		return ""
	}
	return code
}
