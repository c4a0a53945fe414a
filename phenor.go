// Package phenor evaluates plant phenology models: daily environmental driver
// series (temperature, daylength, precipitation, vapour-pressure deficit) plus
// a model-specific parameter vector yield a predicted event day-of-year per
// site. Sites are independent columns and may be evaluated in any order.
package phenor

// DateUndefined marks a site whose event criterion was never met within the
// observed series. It is the only no-event sentinel used by the catalog.
const DateUndefined = 9999.
