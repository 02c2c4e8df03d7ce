package threads

// Kreinik metallic braids. RGB values approximate the dominant hue of
// each metallic finish.
var kreinikThreads = []Color{
	{"001", "Silver", [3]uint8{192, 192, 192}, Kreinik},
	{"001HL", "Silver High Lustre", [3]uint8{218, 218, 218}, Kreinik},
	{"002", "Gold", [3]uint8{218, 176, 60}, Kreinik},
	{"002HL", "Gold High Lustre", [3]uint8{238, 196, 80}, Kreinik},
	{"005", "Black", [3]uint8{20, 20, 20}, Kreinik},
	{"005HL", "Black High Lustre", [3]uint8{45, 45, 45}, Kreinik},
	{"003", "Red", [3]uint8{196, 32, 48}, Kreinik},
	{"031", "Crimson", [3]uint8{160, 22, 42}, Kreinik},
	{"007", "Pink", [3]uint8{232, 140, 168}, Kreinik},
	{"008", "Green", [3]uint8{26, 110, 62}, Kreinik},
	{"009", "Emerald", [3]uint8{0, 132, 80}, Kreinik},
	{"015", "Chartreuse", [3]uint8{158, 196, 72}, Kreinik},
	{"006", "Blue", [3]uint8{38, 80, 150}, Kreinik},
	{"033", "Royal Blue", [3]uint8{24, 52, 120}, Kreinik},
	{"014", "Sky Blue", [3]uint8{122, 176, 220}, Kreinik},
	{"012", "Purple", [3]uint8{110, 60, 140}, Kreinik},
	{"026", "Amethyst", [3]uint8{140, 88, 164}, Kreinik},
	{"027", "Orange", [3]uint8{235, 120, 40}, Kreinik},
	{"028", "Citron", [3]uint8{230, 208, 80}, Kreinik},
	{"021", "Copper", [3]uint8{184, 108, 60}, Kreinik},
	{"022", "Brown", [3]uint8{110, 72, 42}, Kreinik},
	{"032", "Pearl", [3]uint8{242, 240, 230}, Kreinik},
	{"025", "Gray", [3]uint8{130, 130, 134}, Kreinik},
}
