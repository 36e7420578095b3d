package service

import "encoding/json"

// berlinWeatherMock is a realistic Open-Meteo forecast response for Berlin,
// returned by the weather adapter whenever live data cannot be fetched. The
// payload is fixed regardless of the requested coordinates so that offline
// runs behave deterministically.
var berlinWeatherMock = json.RawMessage(`{
  "latitude": 52.52,
  "longitude": 13.405,
  "generationtime_ms": 0.12302398681640625,
  "utc_offset_seconds": 0,
  "timezone": "Europe/Berlin",
  "timezone_abbreviation": "CET",
  "elevation": 38.0,
  "current_units": {
    "time": "iso8601",
    "interval": "seconds",
    "temperature_2m": "°C",
    "wind_speed_10m": "km/h"
  },
  "current": {
    "time": "2024-01-15T10:00",
    "interval": 900,
    "temperature_2m": 2.1,
    "wind_speed_10m": 12.2
  }
}`)

// germanyCountryMock is a canned REST Countries v3.1 record for Germany,
// returned by the countries adapter whenever live data cannot be fetched.
var germanyCountryMock = json.RawMessage(`[
  {
    "name": {
      "common": "Germany",
      "official": "Federal Republic of Germany",
      "nativeName": {
        "deu": {"official": "Bundesrepublik Deutschland", "common": "Deutschland"}
      }
    },
    "tld": [".de"],
    "cca2": "DE",
    "ccn3": "276",
    "cca3": "DEU",
    "cioc": "GER",
    "independent": true,
    "status": "officially-assigned",
    "unMember": true,
    "currencies": {"EUR": {"name": "Euro", "symbol": "€"}},
    "capital": ["Berlin"],
    "region": "Europe",
    "subregion": "Western Europe",
    "languages": {"deu": "German"},
    "latlng": [51.0, 9.0],
    "landlocked": false,
    "borders": ["AUT", "BEL", "CZE", "DNK", "FRA", "LUX", "NLD", "POL", "CHE"],
    "area": 357114.0,
    "population": 83240525,
    "flag": "🇩🇪",
    "timezones": ["UTC+01:00"],
    "continents": ["Europe"],
    "flags": {
      "png": "https://flagcdn.com/w320/de.png",
      "svg": "https://flagcdn.com/de.svg",
      "alt": "The flag of Germany is composed of three equal horizontal bands of black, red and gold."
    },
    "startOfWeek": "monday",
    "capitalInfo": {"latlng": [52.52, 13.4]}
  }
]`)
