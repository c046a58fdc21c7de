package fixtures

// DefaultRankOptions is the pangkat list offered by the account forms. The
// order mirrors the dropdown, lowest enlisted rank first, civilian staff last.
var DefaultRankOptions = []string{
	"Prada",
	"Pratu",
	"Praka",
	"Kopda",
	"Koptu",
	"Kopka",
	"Serda",
	"Sertu",
	"Serka",
	"Serma",
	"Pelda",
	"Peltu",
	"Letda",
	"Lettu",
	"Kapten",
	"Mayor",
	"Letkol",
	"Kolonel",
	"PNS",
}
