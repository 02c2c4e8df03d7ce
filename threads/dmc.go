package threads

// DMC cotton embroidery floss. Nominal RGB values per the published
// conversion charts.
var dmcThreads = []Color{
	{"B5200", "Snow White", [3]uint8{255, 255, 255}, DMC},
	{"BLANC", "White", [3]uint8{252, 251, 248}, DMC},
	{"310", "Black", [3]uint8{0, 0, 0}, DMC},
	{"321", "Red", [3]uint8{199, 43, 59}, DMC},
	{"304", "Red Medium", [3]uint8{183, 31, 51}, DMC},
	{"498", "Red Dark", [3]uint8{167, 19, 43}, DMC},
	{"666", "Bright Red", [3]uint8{227, 29, 66}, DMC},
	{"816", "Garnet", [3]uint8{151, 11, 35}, DMC},
	{"814", "Garnet Dark", [3]uint8{123, 0, 27}, DMC},
	{"606", "Orange-Red Bright", [3]uint8{250, 50, 3}, DMC},
	{"608", "Bright Orange", [3]uint8{253, 93, 53}, DMC},
	{"946", "Burnt Orange Medium", [3]uint8{235, 99, 7}, DMC},
	{"900", "Burnt Orange Dark", [3]uint8{209, 88, 7}, DMC},
	{"970", "Pumpkin Light", [3]uint8{247, 139, 19}, DMC},
	{"971", "Pumpkin", [3]uint8{246, 127, 0}, DMC},
	{"972", "Canary Deep", [3]uint8{255, 181, 21}, DMC},
	{"973", "Canary Bright", [3]uint8{255, 227, 0}, DMC},
	{"307", "Lemon", [3]uint8{253, 237, 84}, DMC},
	{"444", "Lemon Dark", [3]uint8{255, 214, 0}, DMC},
	{"445", "Lemon Light", [3]uint8{255, 251, 139}, DMC},
	{"727", "Topaz Very Light", [3]uint8{255, 241, 175}, DMC},
	{"725", "Topaz", [3]uint8{255, 200, 64}, DMC},
	{"783", "Topaz Medium", [3]uint8{206, 145, 36}, DMC},
	{"699", "Green", [3]uint8{5, 101, 23}, DMC},
	{"700", "Green Bright", [3]uint8{7, 115, 27}, DMC},
	{"701", "Green Light", [3]uint8{63, 143, 41}, DMC},
	{"702", "Kelly Green", [3]uint8{71, 167, 47}, DMC},
	{"703", "Chartreuse", [3]uint8{123, 181, 71}, DMC},
	{"704", "Chartreuse Bright", [3]uint8{158, 207, 52}, DMC},
	{"905", "Parrot Green Dark", [3]uint8{98, 138, 40}, DMC},
	{"909", "Emerald Green Very Dark", [3]uint8{21, 111, 73}, DMC},
	{"911", "Emerald Green Medium", [3]uint8{24, 144, 101}, DMC},
	{"913", "Nile Green Medium", [3]uint8{109, 171, 119}, DMC},
	{"955", "Nile Green Light", [3]uint8{162, 214, 173}, DMC},
	{"500", "Blue Green Very Dark", [3]uint8{4, 77, 51}, DMC},
	{"561", "Jade Very Dark", [3]uint8{44, 106, 69}, DMC},
	{"562", "Jade Medium", [3]uint8{83, 151, 106}, DMC},
	{"820", "Royal Blue Very Dark", [3]uint8{14, 54, 92}, DMC},
	{"796", "Royal Blue Dark", [3]uint8{17, 65, 109}, DMC},
	{"797", "Royal Blue", [3]uint8{19, 71, 125}, DMC},
	{"798", "Delft Blue Dark", [3]uint8{70, 106, 142}, DMC},
	{"799", "Delft Blue Medium", [3]uint8{116, 142, 182}, DMC},
	{"800", "Delft Blue Pale", [3]uint8{192, 204, 222}, DMC},
	{"995", "Electric Blue Dark", [3]uint8{38, 150, 182}, DMC},
	{"996", "Electric Blue Medium", [3]uint8{48, 194, 236}, DMC},
	{"3843", "Electric Blue", [3]uint8{20, 170, 208}, DMC},
	{"824", "Blue Very Dark", [3]uint8{57, 105, 135}, DMC},
	{"826", "Blue Medium", [3]uint8{107, 158, 191}, DMC},
	{"827", "Blue Very Light", [3]uint8{189, 221, 237}, DMC},
	{"939", "Navy Blue Very Dark", [3]uint8{27, 40, 83}, DMC},
	{"550", "Violet Very Dark", [3]uint8{92, 24, 78}, DMC},
	{"552", "Violet Medium", [3]uint8{128, 58, 107}, DMC},
	{"554", "Violet Light", [3]uint8{219, 179, 203}, DMC},
	{"208", "Lavender Very Dark", [3]uint8{131, 91, 139}, DMC},
	{"209", "Lavender Dark", [3]uint8{163, 123, 167}, DMC},
	{"210", "Lavender Medium", [3]uint8{195, 159, 195}, DMC},
	{"211", "Lavender Light", [3]uint8{227, 203, 227}, DMC},
	{"915", "Plum Dark", [3]uint8{130, 0, 67}, DMC},
	{"917", "Plum Medium", [3]uint8{155, 19, 89}, DMC},
	{"718", "Plum", [3]uint8{156, 36, 98}, DMC},
	{"600", "Cranberry Very Dark", [3]uint8{205, 47, 99}, DMC},
	{"602", "Cranberry Medium", [3]uint8{226, 72, 116}, DMC},
	{"604", "Cranberry Light", [3]uint8{255, 176, 190}, DMC},
	{"956", "Geranium", [3]uint8{255, 145, 145}, DMC},
	{"963", "Wine Raspberry Ultra Very Light", [3]uint8{255, 215, 215}, DMC},
	{"3371", "Black Brown", [3]uint8{30, 17, 8}, DMC},
	{"898", "Coffee Brown Very Dark", [3]uint8{73, 42, 19}, DMC},
	{"801", "Coffee Brown Dark", [3]uint8{101, 57, 25}, DMC},
	{"433", "Brown Medium", [3]uint8{122, 69, 31}, DMC},
	{"434", "Brown Light", [3]uint8{152, 94, 51}, DMC},
	{"435", "Brown Very Light", [3]uint8{184, 119, 72}, DMC},
	{"436", "Tan", [3]uint8{203, 144, 81}, DMC},
	{"437", "Tan Light", [3]uint8{228, 187, 142}, DMC},
	{"738", "Tan Very Light", [3]uint8{236, 204, 158}, DMC},
	{"739", "Tan Ultra Very Light", [3]uint8{248, 228, 200}, DMC},
	{"762", "Pearl Gray Very Light", [3]uint8{236, 236, 236}, DMC},
	{"415", "Pearl Gray", [3]uint8{211, 211, 214}, DMC},
	{"318", "Steel Gray Light", [3]uint8{171, 171, 171}, DMC},
	{"414", "Steel Gray Dark", [3]uint8{140, 140, 140}, DMC},
	{"317", "Pewter Gray", [3]uint8{108, 108, 108}, DMC},
	{"413", "Pewter Gray Dark", [3]uint8{86, 86, 86}, DMC},
	{"3799", "Pewter Gray Very Dark", [3]uint8{66, 66, 66}, DMC},
}
