package threads

// Anchor stranded cotton.
var anchorThreads = []Color{
	{"1", "White", [3]uint8{255, 255, 255}, Anchor},
	{"2", "White Bright", [3]uint8{250, 250, 248}, Anchor},
	{"403", "Black", [3]uint8{0, 0, 0}, Anchor},
	{"9046", "Christmas Red", [3]uint8{209, 40, 48}, Anchor},
	{"46", "Crimson Red", [3]uint8{237, 28, 36}, Anchor},
	{"47", "Carmine Red", [3]uint8{190, 20, 41}, Anchor},
	{"22", "Burgundy", [3]uint8{142, 19, 43}, Anchor},
	{"333", "Orange Flame", [3]uint8{239, 90, 22}, Anchor},
	{"316", "Apricot", [3]uint8{247, 151, 55}, Anchor},
	{"304", "Amber", [3]uint8{253, 185, 19}, Anchor},
	{"290", "Canary Yellow", [3]uint8{255, 229, 0}, Anchor},
	{"288", "Buttercup", [3]uint8{255, 240, 120}, Anchor},
	{"228", "Emerald", [3]uint8{0, 134, 62}, Anchor},
	{"230", "Spruce", [3]uint8{0, 106, 50}, Anchor},
	{"238", "Grass Green", [3]uint8{78, 168, 60}, Anchor},
	{"255", "Apple Green", [3]uint8{159, 201, 77}, Anchor},
	{"212", "Pine Green", [3]uint8{13, 93, 61}, Anchor},
	{"132", "Royal Blue", [3]uint8{28, 66, 136}, Anchor},
	{"134", "Sapphire", [3]uint8{17, 48, 116}, Anchor},
	{"142", "Cornflower", [3]uint8{102, 134, 189}, Anchor},
	{"433", "Electric Blue", [3]uint8{0, 139, 190}, Anchor},
	{"410", "Peacock Blue", [3]uint8{0, 116, 166}, Anchor},
	{"102", "Violet Deep", [3]uint8{85, 34, 109}, Anchor},
	{"98", "Violet", [3]uint8{131, 78, 151}, Anchor},
	{"96", "Lilac", [3]uint8{201, 165, 203}, Anchor},
	{"89", "Plum", [3]uint8{175, 26, 109}, Anchor},
	{"63", "Raspberry Deep", [3]uint8{192, 35, 94}, Anchor},
	{"54", "Pink Deep", [3]uint8{236, 118, 156}, Anchor},
	{"48", "Pink Pale", [3]uint8{249, 211, 219}, Anchor},
	{"381", "Chocolate", [3]uint8{74, 48, 28}, Anchor},
	{"358", "Coffee", [3]uint8{106, 68, 33}, Anchor},
	{"370", "Cinnamon", [3]uint8{150, 98, 54}, Anchor},
	{"368", "Fawn", [3]uint8{197, 148, 96}, Anchor},
	{"387", "Ecru", [3]uint8{240, 230, 209}, Anchor},
	{"398", "Dove Gray", [3]uint8{198, 198, 198}, Anchor},
	{"400", "Slate Gray", [3]uint8{120, 120, 120}, Anchor},
	{"401", "Charcoal", [3]uint8{74, 74, 74}, Anchor},
}
