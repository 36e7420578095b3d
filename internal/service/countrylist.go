package service

// countryAllowList is the fixed set of country names accepted by the
// countries validator. Matching is case-insensitive on the trimmed input.
var countryAllowList = []string{
	"Afghanistan",
	"Albania",
	"Algeria",
	"Argentina",
	"Australia",
	"Austria",
	"Bangladesh",
	"Belgium",
	"Bolivia",
	"Brazil",
	"Bulgaria",
	"Canada",
	"Chile",
	"China",
	"Colombia",
	"Costa Rica",
	"Croatia",
	"Cuba",
	"Czechia",
	"Denmark",
	"Ecuador",
	"Egypt",
	"Estonia",
	"Ethiopia",
	"Finland",
	"France",
	"Germany",
	"Ghana",
	"Greece",
	"Hungary",
	"Iceland",
	"India",
	"Indonesia",
	"Iran",
	"Iraq",
	"Ireland",
	"Israel",
	"Italy",
	"Japan",
	"Kenya",
	"Latvia",
	"Lithuania",
	"Luxembourg",
	"Malaysia",
	"Mexico",
	"Morocco",
	"Netherlands",
	"New Zealand",
	"Nigeria",
	"Norway",
	"Pakistan",
	"Peru",
	"Philippines",
	"Poland",
	"Portugal",
	"Romania",
	"Russia",
	"Saudi Arabia",
	"Serbia",
	"Singapore",
	"Slovakia",
	"Slovenia",
	"South Africa",
	"South Korea",
	"Spain",
	"Sweden",
	"Switzerland",
	"Thailand",
	"Turkey",
	"Ukraine",
	"United Arab Emirates",
	"United Kingdom",
	"United States",
	"Uruguay",
	"Venezuela",
	"Vietnam",
}
