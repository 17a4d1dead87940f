/*
Copyright 2026 the Airport Gap Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package twin

// Airport is a single catalogue entry, keyed by its IATA code.
type Airport struct {
	ID        string  `json:"-"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	IATA      string  `json:"iata"`
	ICAO      string  `json:"icao"`
	Latitude  float64 `json:"latitude,string"`
	Longitude float64 `json:"longitude,string"`
	Altitude  int     `json:"altitude"`
	Timezone  string  `json:"timezone"`
}

func airport(iata, name, city, country, icao string, lat, lon float64, alt int, tz string) Airport {
	return Airport{
		ID:        iata,
		Name:      name,
		City:      city,
		Country:   country,
		IATA:      iata,
		ICAO:      icao,
		Latitude:  lat,
		Longitude: lon,
		Altitude:  alt,
		Timezone:  tz,
	}
}

// DefaultAirports returns the seed catalogue, in listing order.
// The first page matches the ordering of the hosted service.
//
//nolint:funlen
func DefaultAirports() []Airport {
	return []Airport{
		airport("GKA", "Goroka Airport", "Goroka", "Papua New Guinea", "AYGA", -6.08169, 145.391998, 5282, "Pacific/Port_Moresby"),
		airport("MAG", "Madang Airport", "Madang", "Papua New Guinea", "AYMD", -5.20708, 145.789001, 20, "Pacific/Port_Moresby"),
		airport("HGU", "Mount Hagen Kagamuga Airport", "Mount Hagen", "Papua New Guinea", "AYMH", -5.82679, 144.296005, 5388, "Pacific/Port_Moresby"),
		airport("LAE", "Nadzab Airport", "Nadzab", "Papua New Guinea", "AYNZ", -6.569803, 146.725977, 239, "Pacific/Port_Moresby"),
		airport("POM", "Port Moresby Jacksons International Airport", "Port Moresby", "Papua New Guinea", "AYPY", -9.44338, 147.220001, 146, "Pacific/Port_Moresby"),
		airport("WWK", "Wewak International Airport", "Wewak", "Papua New Guinea", "AYWK", -3.58383, 143.669006, 19, "Pacific/Port_Moresby"),
		airport("UAK", "Narsarsuaq Airport", "Narssarssuaq", "Greenland", "BGBW", 61.1605, -45.425999, 112, "America/Godthab"),
		airport("GOH", "Godthaab / Nuuk Airport", "Godthaab", "Greenland", "BGGH", 64.19090271, -51.6781005859, 283, "America/Godthab"),
		airport("SFJ", "Kangerlussuaq Airport", "Sondrestrom", "Greenland", "BGSF", 67.0122218992, -50.7116031647, 165, "America/Godthab"),
		airport("THU", "Thule Air Base", "Thule", "Greenland", "BGTL", 76.5311965942, -68.7032012939, 251, "America/Thule"),
		airport("AEY", "Akureyri Airport", "Akureyri", "Iceland", "BIAR", 65.66000366, -18.0727005, 6, "Atlantic/Reykjavik"),
		airport("EGS", "Egilsstaðir Airport", "Egilsstadir", "Iceland", "BIEG", 65.2833023071289, -14.401399612426758, 76, "Atlantic/Reykjavik"),
		airport("HFN", "Hornafjörður Airport", "Hofn", "Iceland", "BIHN", 64.295601, -15.2272, 24, "Atlantic/Reykjavik"),
		airport("HZK", "Húsavík Airport", "Husavik", "Iceland", "BIHU", 65.952301, -17.426001, 48, "Atlantic/Reykjavik"),
		airport("IFJ", "Ísafjörður Airport", "Isafjordur", "Iceland", "BIIS", 66.05809783935547, -23.135299682617188, 8, "Atlantic/Reykjavik"),
		airport("KEF", "Keflavik International Airport", "Keflavik", "Iceland", "BIKF", 63.985000610352, -22.605600357056, 171, "Atlantic/Reykjavik"),
		airport("PFJ", "Patreksfjörður Airport", "Patreksfjordur", "Iceland", "BIPA", 65.555801, -23.965, 11, "Atlantic/Reykjavik"),
		airport("RKV", "Reykjavik Airport", "Reykjavik", "Iceland", "BIRK", 64.1299972534, -21.9405994415, 48, "Atlantic/Reykjavik"),
		airport("SIJ", "Siglufjörður Airport", "Siglufjordur", "Iceland", "BISI", 66.133301, -18.9167, 10, "Atlantic/Reykjavik"),
		airport("VEY", "Vestmannaeyjar Airport", "Vestmannaeyjar", "Iceland", "BIVM", 63.42430114746094, -20.278900146484375, 326, "Atlantic/Reykjavik"),
		airport("YAM", "Sault Ste Marie Airport", "Sault Sainte Marie", "Canada", "CYAM", 46.48500061035156, -84.5093994140625, 630, "America/Toronto"),
		airport("YAY", "St. Anthony Airport", "St. Anthony", "Canada", "CYAY", 51.3918991089, -56.0830991052, 108, "America/St_Johns"),
		airport("YAZ", "Tofino / Long Beach Airport", "Tofino", "Canada", "CYAZ", 49.079833, -125.775583, 80, "America/Vancouver"),
		airport("YBB", "Kugaaruk Airport", "Pelly Bay", "Canada", "CYBB", 68.534401, -89.808098, 56, "America/Edmonton"),
		airport("YBC", "Baie Comeau Airport", "Baie Comeau", "Canada", "CYBC", 49.13249969482422, -68.20439910888672, 71, "America/Toronto"),
		airport("YBG", "CFB Bagotville", "Bagotville", "Canada", "CYBG", 48.33060073852539, -70.99639892578125, 522, "America/Toronto"),
		airport("YBK", "Baker Lake Airport", "Baker Lake", "Canada", "CYBK", 64.29889678960001, -96.077796936, 59, "America/Winnipeg"),
		airport("YBL", "Campbell River Airport", "Campbell River", "Canada", "CYBL", 49.950801849365234, -125.27100372314453, 346, "America/Vancouver"),
		airport("YBR", "Brandon Municipal Airport", "Brandon", "Canada", "CYBR", 49.91, -99.951897, 1343, "America/Winnipeg"),
		airport("YCB", "Cambridge Bay Airport", "Cambridge Bay", "Canada", "CYCB", 69.1081008911, -105.138000488, 90, "America/Edmonton"),
		airport("JFK", "John F Kennedy International Airport", "New York", "United States", "KJFK", 40.63980103, -73.77890015, 13, "America/New_York"),
		airport("KIX", "Kansai International Airport", "Osaka", "Japan", "RJBB", 34.42729949951172, 135.24400329589844, 26, "Asia/Tokyo"),
		airport("SFO", "San Francisco International Airport", "San Francisco", "United States", "KSFO", 37.61899948120117, -122.375, 13, "America/Los_Angeles"),
		airport("LAX", "Los Angeles International Airport", "Los Angeles", "United States", "KLAX", 33.94250107, -118.4079971, 125, "America/Los_Angeles"),
		airport("ORD", "Chicago O'Hare International Airport", "Chicago", "United States", "KORD", 41.9786, -87.9048, 672, "America/Chicago"),
		airport("LHR", "London Heathrow Airport", "London", "United Kingdom", "EGLL", 51.4706, -0.461941, 83, "Europe/London"),
		airport("CDG", "Charles de Gaulle International Airport", "Paris", "France", "LFPG", 49.012798, 2.55, 392, "Europe/Paris"),
		airport("NRT", "Narita International Airport", "Tokyo", "Japan", "RJAA", 35.7647018433, 140.386001587, 141, "Asia/Tokyo"),
		airport("SYD", "Sydney Kingsford Smith International Airport", "Sydney", "Australia", "YSSY", -33.94609832763672, 151.177001953125, 21, "Australia/Sydney"),
		airport("FRA", "Frankfurt am Main Airport", "Frankfurt", "Germany", "EDDF", 50.036249, 8.559294, 364, "Europe/Berlin"),
		airport("AMS", "Amsterdam Airport Schiphol", "Amsterdam", "Netherlands", "EHAM", 52.308601, 4.76389, -11, "Europe/Amsterdam"),
		airport("SIN", "Singapore Changi Airport", "Singapore", "Singapore", "WSSS", 1.35019, 103.994003, 22, "Asia/Singapore"),
	}
}
