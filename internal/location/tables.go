package location

const (
	defaultState    = "Karnataka"
	defaultDistrict = "Bengaluru Urban"
	// DefaultArea is used when nothing in the input can be resolved.
	DefaultArea = "Bengaluru"
)

// postalCodes maps Bengaluru Urban PIN codes to area names.
var postalCodes = map[string]string{
	"560001": "Shivajinagar",
	"560002": "Shivajinagar",
	"560003": "MG Road",
	"560004": "Jayanagar",
	"560005": "Basavanagudi",
	"560006": "Malleswaram",
	"560008": "Rajajinagar",
	"560010": "Hebbal",
	"560011": "Peenya",
	"560012": "Majestic/City Market",
	"560017": "Yeshwanthpur",
	"560018": "Rajajinagar",
	"560019": "Vijayanagar",
	"560020": "Banashankari",
	"560022": "Kengeri",
	"560025": "Koramangala",
	"560027": "RT Nagar",
	"560029": "Lingarajapura",
	"560032": "Indiranagar",
	"560033": "Marathahalli",
	"560034": "Whitefield",
	"560035": "Hoodi",
	"560036": "Yelahanka",
	"560037": "Jalahalli",
	"560038": "Mathikere",
	"560040": "Basaveshwaranagar",
	"560041": "Nagarbhavi",
	"560043": "HSR Layout",
	"560045": "BTM Layout",
	"560047": "JP Nagar",
	"560076": "Electronic City",
	"560078": "Sarjapur Road",
	"560100": "Sarjapur",
	"560102": "Brookefield",
	"560103": "Doddaballapur Road",
	"560104": "Bannerghatta Road",
	"560105": "Anekal",
	"561203": "Doddaballapur",
	"562125": "Kanakapura",
	"562160": "Ramanagara",
}

type areaKeyword struct {
	keyword string
	area    string
}

// areaKeywords is scanned in order; the first substring match wins.
var areaKeywords = []areaKeyword{
	{"whitefield", "Whitefield"},
	{"koramangala", "Koramangala"},
	{"indiranagar", "Indiranagar"},
	{"jayanagar", "Jayanagar"},
	{"jp nagar", "JP Nagar"},
	{"hsr layout", "HSR Layout"},
	{"btm layout", "BTM Layout"},
	{"electronic city", "Electronic City"},
	{"marathahalli", "Marathahalli"},
	{"majestic", "Majestic/City Market"},
	{"shivajinagar", "Shivajinagar"},
	{"rajajinagar", "Rajajinagar"},
	{"basavanagudi", "Basavanagudi"},
	{"malleshwaram", "Malleswaram"},
	{"malleswaram", "Malleswaram"},
	{"yelahanka", "Yelahanka"},
	{"hebbal", "Hebbal"},
	{"peenya", "Peenya"},
	{"mg road", "MG Road"},
	{"brigade road", "MG Road"},
	{"ulsoor", "MG Road"},
	{"yeswanthpur", "Yeshwanthpur"},
	{"yeshwanthpur", "Yeshwanthpur"},
	{"vijayanagar", "Vijayanagar"},
	{"banashankari", "Banashankari"},
	{"rt nagar", "RT Nagar"},
	{"kengeri", "Kengeri"},
	{"nagarbhavi", "Nagarbhavi"},
	{"sarjapur", "Sarjapur Road"},
	{"brookefield", "Brookefield"},
	{"bannerghatta", "Bannerghatta Road"},
	{"anekal", "Anekal"},
	{"doddaballapur", "Doddaballapur"},
	{"kanakapura", "Kanakapura"},
	{"ramanagara", "Ramanagara"},
	{"bengaluru", "Bengaluru"},
	{"bangalore", "Bengaluru"},
}
